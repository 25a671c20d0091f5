// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/storage"
)

// AccountRepository implements storage.AccountRepository for BadgerDB.
type AccountRepository struct {
	backend *Backend
}

var _ storage.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(backend *Backend) (*AccountRepository, error) {
	return &AccountRepository{backend: backend}, nil
}

// Close implements storage.Repository. Accounts hold no sequence, so
// there is nothing to release.
func (r *AccountRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *AccountRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// CreateAccount stores a new account keyed by username.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *core.Account) error {
	if err := core.ValidateAccount(account); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAccountKey(account.Username)

		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrDuplicateKey
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		account.CreatedAt = time.Now().UTC()
		account.UpdatedAt = account.CreatedAt

		if err := tx.Set(key, storage.MarshalAccount(account)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetAccount retrieves an account by username.
func (r *AccountRepository) GetAccount(ctx context.Context, username string) (*core.Account, error) {
	var account *core.Account
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		account, err = r.readAccount(tx, username)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount overwrites an existing account and bumps UpdatedAt.
// CreatedAt is preserved from the stored account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account *core.Account) error {
	if err := core.ValidateAccount(account); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		old, err := r.readAccount(tx, account.Username)
		if err != nil {
			return err
		}

		account.CreatedAt = old.CreatedAt
		account.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeAccountKey(account.Username), storage.MarshalAccount(account)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteAccount removes an account by username.
func (r *AccountRepository) DeleteAccount(ctx context.Context, username string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAccountKey(username)

		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Authenticate checks a username/password pair.
func (r *AccountRepository) Authenticate(ctx context.Context, username, password string) (*core.Account, error) {
	account, err := r.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}
	if !core.CheckPassword(password, account.PasswordHash) {
		return nil, storage.ErrInvalidCredentials
	}
	return account, nil
}

func (r *AccountRepository) readAccount(tx *badger.Txn, username string) (*core.Account, error) {
	item, err := tx.Get(makeAccountKey(username))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var account *core.Account
	err = item.Value(func(val []byte) error {
		account, err = storage.UnmarshalAccount(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

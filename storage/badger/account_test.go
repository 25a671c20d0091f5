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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/storage"
)

func setupRepositories(t *testing.T) (storage.AccountRepository, storage.FeedbackRepository, storage.TicketRepository) {
	t.Helper()
	accounts, feedback, tickets, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		tickets.Close()
		feedback.Close()
		accounts.Close()
		backend.Close()
	})
	return accounts, feedback, tickets
}

func testAccount(username string) *core.Account {
	return &core.Account{
		Username:     username,
		Name:         "Ada Lovelace",
		StaffNo:      "SE-1815",
		Email:        "ada@example.com",
		Branch:       "London",
		RemoteDays:   2,
		PasswordHash: core.HashPassword("correct horse"),
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		require.NoError(t, accounts.CreateAccount(ctx, testAccount("ada")))

		got, err := accounts.GetAccount(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", got.Name)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		require.NoError(t, accounts.CreateAccount(ctx, testAccount("ada")))
		err := accounts.CreateAccount(ctx, testAccount("ada"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("invalid account rejected", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		bad := testAccount("ada")
		bad.Email = "not-an-email"
		err := accounts.CreateAccount(ctx, bad)
		assert.ErrorIs(t, err, core.ErrInvalidEmail)
	})

	t.Run("update preserves created at", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		require.NoError(t, accounts.CreateAccount(ctx, testAccount("ada")))
		created, err := accounts.GetAccount(ctx, "ada")
		require.NoError(t, err)

		updated := testAccount("ada")
		updated.Branch = "Paris"
		require.NoError(t, accounts.UpdateAccount(ctx, updated))

		got, err := accounts.GetAccount(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, "Paris", got.Branch)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
	})

	t.Run("update missing account", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		err := accounts.UpdateAccount(ctx, testAccount("ghost"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		require.NoError(t, accounts.CreateAccount(ctx, testAccount("ada")))
		require.NoError(t, accounts.DeleteAccount(ctx, "ada"))

		_, err := accounts.GetAccount(ctx, "ada")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		assert.ErrorIs(t, accounts.DeleteAccount(ctx, "ada"), storage.ErrNotFound)
	})

	t.Run("authenticate", func(t *testing.T) {
		accounts, _, _ := setupRepositories(t)

		require.NoError(t, accounts.CreateAccount(ctx, testAccount("ada")))

		got, err := accounts.Authenticate(ctx, "ada", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "ada", got.Username)

		_, err = accounts.Authenticate(ctx, "ada", "wrong")
		assert.ErrorIs(t, err, storage.ErrInvalidCredentials)

		_, err = accounts.Authenticate(ctx, "ghost", "correct horse")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

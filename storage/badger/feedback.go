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

// FeedbackRepository implements storage.FeedbackRepository for BadgerDB.
type FeedbackRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.FeedbackRepository = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(backend *Backend) (*FeedbackRepository, error) {
	idSeq, err := backend.GetSequence(feedbackIDSeq)
	if err != nil {
		return nil, err
	}

	return &FeedbackRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *FeedbackRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *FeedbackRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddFeedback stores a new feedback entry with a generated ID.
func (r *FeedbackRepository) AddFeedback(ctx context.Context, feedback *core.Feedback) (*core.Feedback, error) {
	if err := core.ValidateFeedback(feedback); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := nextID(r.idSeq)
		if err != nil {
			return err
		}
		feedback.Id = id
		feedback.CreatedAt = time.Now().UTC()

		if err := tx.Set(makeFeedbackKey(feedback.Id), storage.MarshalFeedback(feedback)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListFeedback returns all entries ordered by ID.
func (r *FeedbackRepository) ListFeedback(ctx context.Context) ([]*core.Feedback, error) {
	var entries []*core.Feedback

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(feedbackPrefix + ":")
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalFeedback(val)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplyFeedback records a staff reply on an existing entry.
func (r *FeedbackRepository) ReplyFeedback(ctx context.Context, id core.ID, reply string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeFeedbackKey(id)

		item, err := tx.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var entry *core.Feedback
		err = item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalFeedback(val)
			return err
		})
		if err != nil {
			return err
		}

		entry.Reply = reply
		entry.RepliedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalFeedback(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteFeedback removes an entry by ID.
func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeFeedbackKey(id)

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

// nextID draws the next non-zero ID from a sequence. BadgerDB sequences
// can return 0 on first call, which would collide with the zero value.
func nextID(seq *badger.Sequence) (core.ID, error) {
	n, err := seq.Next()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		n, err = seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(n), nil
}

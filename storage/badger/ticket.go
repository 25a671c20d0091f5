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

// TicketRepository implements storage.TicketRepository for BadgerDB.
type TicketRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.TicketRepository = (*TicketRepository)(nil)

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(backend *Backend) (*TicketRepository, error) {
	idSeq, err := backend.GetSequence(ticketIDSeq)
	if err != nil {
		return nil, err
	}

	return &TicketRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *TicketRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *TicketRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddTicket stores a new ticket and derives its user-facing ref.
func (r *TicketRepository) AddTicket(ctx context.Context, ticket *core.Ticket) (*core.Ticket, error) {
	if err := core.ValidateTicket(ticket); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := nextID(r.idSeq)
		if err != nil {
			return err
		}
		ticket.Id = id
		ticket.Ref = core.TicketRef(id)
		ticket.CreatedAt = time.Now().UTC()

		if err := tx.Set(makeTicketKey(ticket.Id), storage.MarshalTicket(ticket)); err != nil {
			return err
		}
		if err := tx.Set(makeTicketRefKey(ticket.Ref), storage.MarshalID(ticket.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetTicket retrieves a ticket by its user-facing ref.
func (r *TicketRepository) GetTicket(ctx context.Context, ref string) (*core.Ticket, error) {
	var ticket *core.Ticket
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		ticket, err = r.readTicketByRef(tx, ref)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns all tickets ordered by ID.
func (r *TicketRepository) ListTickets(ctx context.Context) ([]*core.Ticket, error) {
	var tickets []*core.Ticket

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ticketPrefix + ":")
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ticket, err := storage.UnmarshalTicket(val)
				if err != nil {
					return err
				}
				tickets = append(tickets, ticket)
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
	return tickets, nil
}

// DeleteTicket removes a ticket and its ref index entry.
func (r *TicketRepository) DeleteTicket(ctx context.Context, ref string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		ticket, err := r.readTicketByRef(tx, ref)
		if err != nil {
			return err
		}

		if err := tx.Delete(makeTicketKey(ticket.Id)); err != nil {
			return err
		}
		if err := tx.Delete(makeTicketRefKey(ref)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

func (r *TicketRepository) readTicketByRef(tx *badger.Txn, ref string) (*core.Ticket, error) {
	item, err := tx.Get(makeTicketRefKey(ref))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		id, err = storage.UnmarshalID(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	item, err = tx.Get(makeTicketKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var ticket *core.Ticket
	err = item.Value(func(val []byte) error {
		ticket, err = storage.UnmarshalTicket(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

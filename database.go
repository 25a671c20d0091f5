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


package deskmate

import (
	"log/slog"

	"github.com/poiesic/deskmate/storage"
	"github.com/poiesic/deskmate/storage/badger"
)

// Database bundles the persistence repositories the serving layer uses:
// accounts, feedback and support tickets.
type Database struct {
	backend      *badger.Backend
	accountRepo  storage.AccountRepository
	feedbackRepo storage.FeedbackRepository
	ticketRepo   storage.TicketRepository
	logger       *slog.Logger
}

// NewDatabase opens the BadgerDB store at filePath and wires the
// repositories over it.
func NewDatabase(filePath string) (*Database, error) {
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	accountRepo, err := badger.NewAccountRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	feedbackRepo, err := badger.NewFeedbackRepository(backend)
	if err != nil {
		accountRepo.Close()
		backend.Close()
		return nil, err
	}

	ticketRepo, err := badger.NewTicketRepository(backend)
	if err != nil {
		feedbackRepo.Close()
		accountRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		accountRepo:  accountRepo,
		feedbackRepo: feedbackRepo,
		ticketRepo:   ticketRepo,
		logger:       slog.Default(),
	}, nil
}

// Close closes the repositories and the backend.
func (db *Database) Close() error {
	if err := db.ticketRepo.Close(); err != nil {
		db.logger.Error("error closing ticket repository", "err", err)
		return err
	}
	if err := db.feedbackRepo.Close(); err != nil {
		db.logger.Error("error closing feedback repository", "err", err)
		return err
	}
	if err := db.accountRepo.Close(); err != nil {
		db.logger.Error("error closing account repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// AccountRepository returns the account repository.
func (db *Database) AccountRepository() storage.AccountRepository {
	return db.accountRepo
}

// FeedbackRepository returns the feedback repository.
func (db *Database) FeedbackRepository() storage.FeedbackRepository {
	return db.feedbackRepo
}

// TicketRepository returns the ticket repository.
func (db *Database) TicketRepository() storage.TicketRepository {
	return db.ticketRepo
}

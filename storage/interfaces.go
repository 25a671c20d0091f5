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


package storage

import (
	"context"

	"github.com/poiesic/deskmate/core"
)

// Repository provides common storage operations shared across all
// repositories. Implementations must be thread-safe.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}

// AccountRepository manages registered user profiles.
type AccountRepository interface {
	Repository

	// CreateAccount stores a new account keyed by username.
	// Validates the account, sets CreatedAt/UpdatedAt.
	// Returns ErrDuplicateKey when the username is taken.
	CreateAccount(ctx context.Context, account *core.Account) error

	// GetAccount retrieves an account by username.
	// Returns ErrNotFound if it doesn't exist.
	GetAccount(ctx context.Context, username string) (*core.Account, error)

	// UpdateAccount overwrites an existing account's profile fields and
	// bumps UpdatedAt. Returns ErrNotFound if it doesn't exist.
	UpdateAccount(ctx context.Context, account *core.Account) error

	// DeleteAccount removes an account by username.
	// Returns ErrNotFound if it doesn't exist.
	DeleteAccount(ctx context.Context, username string) error

	// Authenticate checks a username/password pair in constant time.
	// Returns the account on success, ErrNotFound for an unknown
	// username, ErrInvalidCredentials for a wrong password.
	Authenticate(ctx context.Context, username, password string) (*core.Account, error)
}

// FeedbackRepository manages user feedback and staff replies.
type FeedbackRepository interface {
	Repository

	// AddFeedback stores a new feedback entry, generating its ID from a
	// sequence and setting CreatedAt. Returns the stored entry.
	AddFeedback(ctx context.Context, feedback *core.Feedback) (*core.Feedback, error)

	// ListFeedback returns all feedback entries ordered by ID.
	ListFeedback(ctx context.Context) ([]*core.Feedback, error)

	// ReplyFeedback records a staff reply on an entry and stamps
	// RepliedAt. Returns ErrNotFound if the entry doesn't exist.
	ReplyFeedback(ctx context.Context, id core.ID, reply string) error

	// DeleteFeedback removes an entry by ID.
	// Returns ErrNotFound if it doesn't exist.
	DeleteFeedback(ctx context.Context, id core.ID) error
}

// TicketRepository manages support tickets.
type TicketRepository interface {
	Repository

	// AddTicket stores a new ticket, generating its ID from a sequence
	// and deriving the user-facing Ref from it. Returns the stored
	// ticket with Id, Ref and CreatedAt populated.
	AddTicket(ctx context.Context, ticket *core.Ticket) (*core.Ticket, error)

	// GetTicket retrieves a ticket by its user-facing ref.
	// Returns ErrNotFound if it doesn't exist.
	GetTicket(ctx context.Context, ref string) (*core.Ticket, error)

	// ListTickets returns all tickets ordered by ID.
	ListTickets(ctx context.Context) ([]*core.Ticket, error)

	// DeleteTicket removes a ticket by its user-facing ref.
	// Returns ErrNotFound if it doesn't exist.
	DeleteTicket(ctx context.Context, ref string) error
}

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


package core

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether s has the rough shape of an email address.
// This is a sanity check, not RFC 5322 validation.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateAccount validates an Account according to domain rules.
//
// Validation rules:
//   - Username must not be empty
//   - Email must look like an address
//   - PasswordHash must be set
//
// NOT validated:
//   - StaffNo, Branch, RemoteDays (free-form profile fields)
//   - CreatedAt/UpdatedAt (populated by the repository)
func ValidateAccount(account *Account) error {
	if account == nil {
		return fmt.Errorf("%w: account is nil", ErrInvalidAccount)
	}

	if account.Username == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrEmptyUsername)
	}

	if !IsValidEmail(account.Email) {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrInvalidEmail)
	}

	if account.PasswordHash == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrEmptyPassword)
	}

	return nil
}

// ValidateFeedback validates a Feedback entry according to domain rules.
func ValidateFeedback(feedback *Feedback) error {
	if feedback == nil {
		return fmt.Errorf("%w: feedback is nil", ErrInvalidFeedback)
	}

	if feedback.Comment == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrEmptyComment)
	}

	return nil
}

// ValidateTicket validates a Ticket according to domain rules.
//
// Validation rules:
//   - Subject must not be empty
//   - Message must not be empty
//
// NOT validated:
//   - Id and Ref (populated from the repository sequence)
func ValidateTicket(ticket *Ticket) error {
	if ticket == nil {
		return fmt.Errorf("%w: ticket is nil", ErrInvalidTicket)
	}

	if ticket.Subject == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTicket, ErrEmptySubject)
	}

	if ticket.Message == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTicket, ErrEmptyMessage)
	}

	return nil
}

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

import "errors"

// Domain validation errors
var (
	// ErrInvalidAccount indicates an Account failed validation.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidFeedback indicates a Feedback entry failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")

	// ErrInvalidTicket indicates a Ticket failed validation.
	ErrInvalidTicket = errors.New("invalid ticket")

	// ErrEmptyUsername indicates the account Username field is empty.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrInvalidEmail indicates the Email field does not look like an address.
	ErrInvalidEmail = errors.New("email address is malformed")

	// ErrEmptyPassword indicates an empty password was supplied.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyComment indicates the feedback Comment field is empty.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrEmptySubject indicates the ticket Subject field is empty.
	ErrEmptySubject = errors.New("subject cannot be empty")

	// ErrEmptyMessage indicates the ticket Message field is empty.
	ErrEmptyMessage = errors.New("message cannot be empty")
)

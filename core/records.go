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
	"time"
)

// ID is a unique identifier for persisted records. Generated from database
// sequences, or from content hashing where determinism matters.
type ID uint64

// Account is a registered user profile. The password itself is never
// stored, only its digest.
type Account struct {
	Username     string
	Name         string
	StaffNo      string // staff reference number as issued by HR
	Email        string
	Branch       string
	RemoteDays   int // agreed work-from-home days per week
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Feedback is one user-submitted comment, optionally answered by staff.
type Feedback struct {
	Id        ID
	Comment   string
	Reply     string
	CreatedAt time.Time
	RepliedAt time.Time // zero until a staff reply is recorded
}

// Ticket is one support request. Ref is the user-facing identifier.
type Ticket struct {
	Id        ID
	Ref       string // "FE<n>", derived from Id
	Subject   string
	Message   string
	CreatedAt time.Time
}

// TicketRef formats the user-facing reference for a ticket id.
func TicketRef(id ID) string {
	return fmt.Sprintf("FE%d", id)
}

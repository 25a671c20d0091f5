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
	"github.com/poiesic/deskmate/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalAccount serializes an Account to bytes.
func MarshalAccount(account *core.Account) []byte {
	buf := make([]byte, core.AccountMUS.Size(*account))
	core.AccountMUS.Marshal(*account, buf)
	return buf
}

// UnmarshalAccount deserializes an Account from bytes.
func UnmarshalAccount(data []byte) (*core.Account, error) {
	account, _, err := core.AccountMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// MarshalFeedback serializes a Feedback to bytes.
func MarshalFeedback(feedback *core.Feedback) []byte {
	buf := make([]byte, core.FeedbackMUS.Size(*feedback))
	core.FeedbackMUS.Marshal(*feedback, buf)
	return buf
}

// UnmarshalFeedback deserializes a Feedback from bytes.
func UnmarshalFeedback(data []byte) (*core.Feedback, error) {
	feedback, _, err := core.FeedbackMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// MarshalTicket serializes a Ticket to bytes.
func MarshalTicket(ticket *core.Ticket) []byte {
	buf := make([]byte, core.TicketMUS.Size(*ticket))
	core.TicketMUS.Marshal(*ticket, buf)
	return buf
}

// UnmarshalTicket deserializes a Ticket from bytes.
func UnmarshalTicket(data []byte) (*core.Ticket, error) {
	ticket, _, err := core.TicketMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

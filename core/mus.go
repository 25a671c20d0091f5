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
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the persisted record types. Timestamps
// are encoded as Unix microseconds, with 0 reserved for the zero time.

// IDMUS serializes IDs.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func marshalTime(t time.Time, bs []byte) (n int) {
	var micros int64
	if !t.IsZero() {
		micros = t.UnixMicro()
	}
	return varint.Int64.Marshal(micros, bs)
}

func unmarshalTime(bs []byte) (t time.Time, n int, err error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil || micros == 0 {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func sizeTime(t time.Time) (size int) {
	var micros int64
	if !t.IsZero() {
		micros = t.UnixMicro()
	}
	return varint.Int64.Size(micros)
}

// AccountMUS serializes Accounts.
var AccountMUS = accountMUS{}

type accountMUS struct{}

func (accountMUS) Marshal(v Account, bs []byte) (n int) {
	n = ord.String.Marshal(v.Username, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.StaffNo, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Branch, bs[n:])
	n += varint.Int.Marshal(v.RemoteDays, bs[n:])
	n += ord.String.Marshal(v.PasswordHash, bs[n:])
	n += marshalTime(v.CreatedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return n
}

func (accountMUS) Unmarshal(bs []byte) (v Account, n int, err error) {
	var n1 int
	if v.Username, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.StaffNo, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Email, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Branch, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.RemoteDays, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.PasswordHash, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.CreatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.UpdatedAt, n1, err = unmarshalTime(bs[n:])
	return v, n + n1, err
}

func (accountMUS) Size(v Account) (size int) {
	size = ord.String.Size(v.Username)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.StaffNo)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Branch)
	size += varint.Int.Size(v.RemoteDays)
	size += ord.String.Size(v.PasswordHash)
	size += sizeTime(v.CreatedAt)
	size += sizeTime(v.UpdatedAt)
	return size
}

// FeedbackMUS serializes Feedback entries.
var FeedbackMUS = feedbackMUS{}

type feedbackMUS struct{}

func (feedbackMUS) Marshal(v Feedback, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Comment, bs[n:])
	n += ord.String.Marshal(v.Reply, bs[n:])
	n += marshalTime(v.CreatedAt, bs[n:])
	n += marshalTime(v.RepliedAt, bs[n:])
	return n
}

func (feedbackMUS) Unmarshal(bs []byte) (v Feedback, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Comment, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Reply, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.CreatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.RepliedAt, n1, err = unmarshalTime(bs[n:])
	return v, n + n1, err
}

func (feedbackMUS) Size(v Feedback) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Comment)
	size += ord.String.Size(v.Reply)
	size += sizeTime(v.CreatedAt)
	size += sizeTime(v.RepliedAt)
	return size
}

// TicketMUS serializes Tickets.
var TicketMUS = ticketMUS{}

type ticketMUS struct{}

func (ticketMUS) Marshal(v Ticket, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Ref, bs[n:])
	n += ord.String.Marshal(v.Subject, bs[n:])
	n += ord.String.Marshal(v.Message, bs[n:])
	n += marshalTime(v.CreatedAt, bs[n:])
	return n
}

func (ticketMUS) Unmarshal(bs []byte) (v Ticket, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Ref, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Subject, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Message, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.CreatedAt, n1, err = unmarshalTime(bs[n:])
	return v, n + n1, err
}

func (ticketMUS) Size(v Ticket) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Ref)
	size += ord.String.Size(v.Subject)
	size += ord.String.Size(v.Message)
	size += sizeTime(v.CreatedAt)
	return size
}

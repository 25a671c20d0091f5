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
	"encoding/binary"
	"fmt"

	"github.com/poiesic/deskmate/core"
)

// Key prefixes for different data types
const (
	accountPrefix  = "accrec"
	feedbackPrefix = "fbkrec"
	feedbackIDSeq  = "fbkrecseq"
	ticketPrefix   = "tktrec"
	ticketRefIdx   = "tktref"
	ticketIDSeq    = "tktrecseq"
)

// makeAccountKey generates a key for an account by username.
func makeAccountKey(username string) []byte {
	return []byte(fmt.Sprintf("%s:%s", accountPrefix, username))
}

// makeFeedbackKey generates a key for a feedback entry by ID.
// IDs are BigEndian so iteration order matches insertion order.
func makeFeedbackKey(id core.ID) []byte {
	return makeSeqKey(feedbackPrefix, id)
}

// makeTicketKey generates a key for a ticket by ID.
func makeTicketKey(id core.ID) []byte {
	return makeSeqKey(ticketPrefix, id)
}

// makeTicketRefKey generates a key for the ref -> id index.
func makeTicketRefKey(ref string) []byte {
	return []byte(fmt.Sprintf("%s:%s", ticketRefIdx, ref))
}

func makeSeqKey(prefix string, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// BigEndian so lexicographic sort follows numeric order
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

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
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// HashPassword digests a password for storage using BLAKE2b-256 and returns
// the hex encoding.
func HashPassword(password string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// CheckPassword reports whether password matches the stored digest.
// The comparison is constant-time.
func CheckPassword(password, storedHash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

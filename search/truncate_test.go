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


package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Run("under budget unchanged", func(t *testing.T) {
		assert.Equal(t, "short answer", Truncate("short answer", 100))
	})

	t.Run("exact budget unchanged", func(t *testing.T) {
		s := strings.Repeat("a", 50)
		assert.Equal(t, s, Truncate(s, 50))
	})

	t.Run("cuts at paragraph boundary", func(t *testing.T) {
		content := "first paragraph here.\n\nsecond paragraph here.\n\nthird paragraph that pushes us past the budget."
		got := Truncate(content, 50)
		require.True(t, strings.HasSuffix(got, TruncateMarker))
		body := strings.TrimSuffix(got, TruncateMarker)
		assert.Equal(t, "first paragraph here.\n\nsecond paragraph here.", body)
	})

	t.Run("hard cut without boundary", func(t *testing.T) {
		content := strings.Repeat("x", 200)
		got := Truncate(content, 80)
		require.True(t, strings.HasSuffix(got, TruncateMarker))
		body := strings.TrimSuffix(got, TruncateMarker)
		assert.Len(t, body, 80)
	})

	t.Run("hard cut lands on a rune boundary", func(t *testing.T) {
		content := strings.Repeat("é", 40) // 2 bytes per rune
		got := Truncate(content, 25)
		require.True(t, utf8.ValidString(got))
		body := strings.TrimSuffix(got, TruncateMarker)
		assert.Equal(t, strings.Repeat("é", 12), body)
	})

	t.Run("marker always present when cut", func(t *testing.T) {
		content := "para one.\n\n" + strings.Repeat("y", 100)
		got := Truncate(content, 40)
		assert.True(t, strings.HasSuffix(got, TruncateMarker))
	})

	t.Run("non-positive budget unchanged", func(t *testing.T) {
		assert.Equal(t, "keep me", Truncate("keep me", 0))
	})
}

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
	"unicode/utf8"
)

// TruncateMarker is appended to any response that was shortened.
const TruncateMarker = "\n\n[shortened - ask for more detail]"

// Truncate cuts content to at most budget bytes, preferring the last
// paragraph boundary (blank line) that fits. When no paragraph fits, it
// hard-cuts at the budget, backed up to a rune boundary so multi-byte
// content never yields invalid UTF-8. The marker is appended whenever
// anything was cut, so the returned length is at most
// budget + len(TruncateMarker).
func Truncate(content string, budget int) string {
	content = strings.TrimSpace(content)
	if budget <= 0 || len(content) <= budget {
		return content
	}

	cut := budget
	if idx := strings.LastIndex(content[:budget], "\n\n"); idx > 0 {
		cut = idx
	} else {
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
	}

	return strings.TrimSpace(content[:cut]) + TruncateMarker
}

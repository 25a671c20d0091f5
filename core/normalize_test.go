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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Annual Leave", "annual leave"},
		{"punctuation collapses", "Hello,   World!!", "hello world"},
		{"leading and trailing junk", "  --What is WFH?-- ", "what is wfh"},
		{"digits kept", "Ext. 1234", "ext 1234"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
		{"unicode letters", "Café RÉSUMÉ", "café résumé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  spaced   out  ",
		"already normal",
		"MIXED case & symbols #42",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalizeCaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("hello world"), Normalize("Hello, World!"))
	assert.Equal(t, Normalize("wfh policy"), Normalize("WFH-Policy"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"annual", "leave", "days"}, Tokens("Annual Leave days?"))
	assert.Nil(t, Tokens("  ...  "))
}

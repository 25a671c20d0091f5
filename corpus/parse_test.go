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


package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want docKind
	}{
		{"annual_leave_policy.txt", kindTopic},
		{"it_support_faq.txt", kindFAQ},
		{"FAQs.md", kindFAQ},
		{"synonyms.txt", kindSynonyms},
		{"domain_keywords.txt", kindSynonyms},
		{"navigation.txt", kindNav},
		{"useful_links.md", kindNav},
		{"faquier_notes.txt", kindTopic}, // "faq" must be a whole token
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.name))
		})
	}
}

func TestTopicTitle(t *testing.T) {
	assert.Equal(t, "Annual Leave Policy", topicTitle("annual_leave-policy.txt"))
	assert.Equal(t, "Onboarding Guide", topicTitle("docs/Onboarding Guide.md"))
}

func TestFAQTopicKey(t *testing.T) {
	assert.Equal(t, "annual leave policy", faqTopicKey("annual_leave_policy_faq.txt"))
	assert.Equal(t, "", faqTopicKey("faq.txt"))
}

func TestParseFAQ(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		entries := parseFAQ("Q: What are the office hours?\nA: 9am to 5pm.", "hours")
		require.Len(t, entries, 1)
		assert.Equal(t, "What are the office hours?", entries[0].Question)
		assert.Equal(t, "what are the office hours", entries[0].QuestionNorm)
		assert.Equal(t, "9am to 5pm.", entries[0].Answer)
		assert.Equal(t, "hours", entries[0].TopicKey)
	})

	t.Run("alternate phrasings share the answer", func(t *testing.T) {
		content := "q: How do I reset my password?\nq: I forgot my password\na: Use the self-service portal."
		entries := parseFAQ(content, "")
		require.Len(t, entries, 2)
		assert.Equal(t, entries[0].Answer, entries[1].Answer)
	})

	t.Run("multi-line answer keeps paragraphs", func(t *testing.T) {
		content := "Q: How do I claim expenses?\nA: Fill in the expenses form.\n\nAttach every receipt.\nQ: next\nA: other"
		entries := parseFAQ(content, "")
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0].Answer, "Fill in the expenses form.\n\nAttach every receipt.")
	})

	t.Run("question without answer dropped", func(t *testing.T) {
		entries := parseFAQ("Q: Orphaned question?", "")
		assert.Empty(t, entries)
	})

	t.Run("answer without question dropped", func(t *testing.T) {
		entries := parseFAQ("A: Orphaned answer.\nsome trailing prose", "")
		assert.Empty(t, entries)
	})
}

func TestParseSynonyms(t *testing.T) {
	content := `# comment line
annual leave: holiday, vacation, time off
it support => helpdesk | tech support
no separator line
: missing canonical
empty alternates:
`
	decls := parseSynonyms(content)
	require.Len(t, decls, 2)

	assert.Equal(t, "annual leave", decls[0].Canonical)
	assert.Equal(t, []string{"holiday", "vacation", "time off"}, decls[0].Phrases)

	assert.Equal(t, "it support", decls[1].Canonical)
	assert.Equal(t, []string{"helpdesk", "tech support"}, decls[1].Phrases)
}

func TestParseNav(t *testing.T) {
	content := `Onboarding Checklist | https://example/onboarding
# comment
no pipe here
 | https://example/unnamed
Broken Target | ftp://example/nope
IT Helpdesk|http://intranet/helpdesk
`
	entries := parseNav(content)
	require.Len(t, entries, 2)

	assert.Equal(t, "Onboarding Checklist", entries[0].Name)
	assert.Equal(t, "onboarding checklist", entries[0].NameNorm)
	assert.Equal(t, "https://example/onboarding", entries[0].URL)
	assert.Equal(t, "IT Helpdesk", entries[1].Name)
}

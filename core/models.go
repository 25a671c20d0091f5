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

import "sort"

// Topic is one loaded reference document. Topics are created at load time
// and never mutated or deleted while serving.
type Topic struct {
	// Key is the normalized title, unique within a Corpus.
	Key string
	// Title is the display title as authored.
	Title string
	// Content is the full document body.
	Content string
}

// FAQEntry is one explicit question/answer pair extracted from an FAQ
// document. Immutable after load.
type FAQEntry struct {
	Question     string // question as authored
	QuestionNorm string // Normalize(Question)
	Answer       string
	// TopicKey is the key of the owning topic, or "" when the entry is
	// not scoped to a document.
	TopicKey string
}

// ConceptConfig describes one canonical concept: a normalized label for a
// user-intent cluster ("annual leave") covering many surface phrasings.
type ConceptConfig struct {
	// Canonical is the normalized concept name, unique in a registry.
	Canonical string
	// Weight scales every score the concept produces. Always >= 1.0;
	// re-registration only ever raises it (max-merge).
	Weight float64
}

// SynonymDecl is one parsed line of a synonym document: a canonical phrase
// and its alternates. Consumed by the concept registry at build time.
type SynonymDecl struct {
	Canonical string
	Phrases   []string
}

// NavEntry pairs a display name with a URL, parsed from a navigation
// document.
type NavEntry struct {
	Name     string
	NameNorm string
	URL      string
}

// Corpus is the immutable output of the loader: everything the matching
// engine knows. Built once, then shared read-only between requests.
type Corpus struct {
	// Topics maps normalized title -> topic.
	Topics map[string]*Topic
	FAQ    []*FAQEntry
	// Synonyms are the raw synonym declarations in document order.
	Synonyms []SynonymDecl
	Nav      []*NavEntry
}

// NewCorpus returns an empty corpus with initialized maps.
func NewCorpus() *Corpus {
	return &Corpus{Topics: make(map[string]*Topic)}
}

// Topic returns the topic for a normalized key, or nil.
func (c *Corpus) Topic(key string) *Topic {
	return c.Topics[key]
}

// TopicTitles returns all display titles, sorted alphabetically.
func (c *Corpus) TopicTitles() []string {
	titles := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		titles = append(titles, t.Title)
	}
	sort.Strings(titles)
	return titles
}

// Empty reports whether the corpus holds no topics, FAQ entries or
// navigation links.
func (c *Corpus) Empty() bool {
	return len(c.Topics) == 0 && len(c.FAQ) == 0 && len(c.Nav) == 0
}

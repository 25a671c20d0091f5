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
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poiesic/deskmate/core"
)

// docKind classifies a corpus file by its name.
type docKind int

const (
	kindTopic docKind = iota
	kindFAQ
	kindSynonyms
	kindNav
)

var titleCaser = cases.Title(language.English)

// classify maps a file name to its document kind. Classification is by
// token so "faquier_notes.txt" stays a topic while "it_faq.txt" parses
// as questions and answers.
func classify(name string) docKind {
	base := baseName(name)
	for _, tok := range strings.Fields(core.Normalize(base)) {
		switch tok {
		case "faq", "faqs":
			return kindFAQ
		case "synonym", "synonyms", "keyword", "keywords":
			return kindSynonyms
		case "nav", "navigation", "links":
			return kindNav
		}
	}
	return kindTopic
}

func baseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// topicTitle derives a display title from a file name:
// "annual_leave-policy.txt" becomes "Annual Leave Policy".
func topicTitle(name string) string {
	return titleCaser.String(core.Normalize(baseName(name)))
}

// faqTopicKey derives the owning topic key for an FAQ file by dropping
// the faq token: "annual_leave_policy_faq.txt" scopes its entries to
// topic "annual leave policy". An unscoped file yields "".
func faqTopicKey(name string) string {
	toks := strings.Fields(core.Normalize(baseName(name)))
	kept := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok == "faq" || tok == "faqs" {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// parseTopic wraps a document body as a single topic.
func parseTopic(name, content string) *core.Topic {
	title := topicTitle(name)
	return &core.Topic{
		Key:     core.Normalize(title),
		Title:   title,
		Content: strings.TrimSpace(content),
	}
}

// parseFAQ extracts question/answer pairs. Lines starting with a
// case-insensitive "Q:" open a question block of one or more question
// lines; the following "A:" block is the shared answer. A block missing
// either side is dropped. Every question line becomes its own entry so
// alternate phrasings all rank independently.
func parseFAQ(content, topicKey string) []*core.FAQEntry {
	var entries []*core.FAQEntry
	var questions []string
	var answer []string
	inAnswer := false

	flush := func() {
		text := strings.TrimSpace(strings.Join(answer, "\n"))
		if text != "" {
			for _, q := range questions {
				entries = append(entries, &core.FAQEntry{
					Question:     q,
					QuestionNorm: core.Normalize(q),
					Answer:       text,
					TopicKey:     topicKey,
				})
			}
		}
		questions = questions[:0]
		answer = answer[:0]
		inAnswer = false
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, "q:"):
			if inAnswer {
				flush()
			}
			if q := strings.TrimSpace(trimmed[2:]); q != "" {
				questions = append(questions, q)
			}
		case strings.HasPrefix(lower, "a:"):
			if len(questions) == 0 {
				// answer with no question, skip the block
				inAnswer = false
				answer = answer[:0]
				continue
			}
			inAnswer = true
			if a := strings.TrimSpace(trimmed[2:]); a != "" {
				answer = append(answer, a)
			}
		case inAnswer:
			answer = append(answer, trimmed)
		}
	}
	flush()

	return entries
}

// parseSynonyms reads one declaration per line, in either form:
//
//	canonical: alt, alt2
//	canonical => alt | alt2
//
// Malformed lines are skipped; corpus authoring mistakes never block
// the rest of the file.
func parseSynonyms(content string) []core.SynonymDecl {
	var decls []core.SynonymDecl

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var canonical, rest string
		if before, after, ok := strings.Cut(line, "=>"); ok {
			canonical, rest = before, after
		} else if before, after, ok := strings.Cut(line, ":"); ok {
			canonical, rest = before, after
		} else {
			continue
		}

		canonical = core.Normalize(canonical)
		if canonical == "" {
			continue
		}

		var phrases []string
		for _, alt := range strings.FieldsFunc(rest, func(r rune) bool {
			return r == ',' || r == '|'
		}) {
			if alt = core.Normalize(alt); alt != "" {
				phrases = append(phrases, alt)
			}
		}
		if len(phrases) == 0 {
			continue
		}

		decls = append(decls, core.SynonymDecl{Canonical: canonical, Phrases: phrases})
	}

	return decls
}

// parseNav reads "Display Name | https://url" lines. Lines without a
// pipe, an empty name, or a target that is not an http(s) URL are
// skipped.
func parseNav(content string) []*core.NavEntry {
	var entries []*core.NavEntry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, url, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || !(strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")) {
			continue
		}

		entries = append(entries, &core.NavEntry{
			Name:     name,
			NameNorm: core.Normalize(name),
			URL:      url,
		})
	}

	return entries
}

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
	"log/slog"
	"sort"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/match"
)

// FAQResult is a single accepted FAQ answer.
type FAQResult struct {
	Question string
	Answer   string
	TopicKey string
	Score    float64
}

// FAQIndex ranks curated question/answer pairs against a normalized query.
// It is immutable after construction and safe for concurrent use.
type FAQIndex struct {
	cfg     *config.Config
	logger  *slog.Logger
	entries []*core.FAQEntry
}

// FAQIndexOption configures an FAQIndex.
type FAQIndexOption func(*FAQIndex)

// WithFAQLogger sets the logger used by the index.
func WithFAQLogger(logger *slog.Logger) FAQIndexOption {
	return func(idx *FAQIndex) {
		idx.logger = logger
	}
}

// NewFAQIndex builds an index over the given entries. Entries are copied
// and sorted by normalized question so ranking is order independent.
func NewFAQIndex(cfg *config.Config, entries []*core.FAQEntry, opts ...FAQIndexOption) *FAQIndex {
	idx := &FAQIndex{
		cfg:     cfg,
		logger:  slog.Default(),
		entries: make([]*core.FAQEntry, len(entries)),
	}
	copy(idx.entries, entries)
	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].QuestionNorm < idx.entries[j].QuestionNorm
	})
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Len reports the number of indexed entries.
func (idx *FAQIndex) Len() int {
	return len(idx.entries)
}

// Search ranks every entry against the normalized query and returns the
// best one at or above the FAQ threshold. Entries belonging to
// preferredTopic receive the locality bonus, so a concept detection can
// tip the ranking toward its bound topic without excluding the rest of
// the corpus. Answers are truncated to the configured budget.
func (idx *FAQIndex) Search(queryNorm, preferredTopic string) (FAQResult, bool) {
	if queryNorm == "" || len(idx.entries) == 0 {
		return FAQResult{}, false
	}

	best, ok := match.Best(idx.entries, func(e *core.FAQEntry) float64 {
		score := match.TokenSetRatio(queryNorm, e.QuestionNorm)
		if partial := match.PartialRatio(queryNorm, e.QuestionNorm); partial > score {
			score = partial
		}
		if preferredTopic != "" && e.TopicKey == preferredTopic {
			score += idx.cfg.LocalityBonus
		}
		return score
	}, idx.cfg.FAQThreshold)
	if !ok {
		return FAQResult{}, false
	}

	idx.logger.Debug("faq match",
		slog.String("question", best.Value.QuestionNorm),
		slog.Float64("score", best.Score))

	return FAQResult{
		Question: best.Value.Question,
		Answer:   Truncate(best.Value.Answer, idx.cfg.TruncateBudget),
		TopicKey: best.Value.TopicKey,
		Score:    best.Score,
	}, true
}

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

// TopicResult is an accepted topic document.
type TopicResult struct {
	Key     string
	Title   string
	Content string
	Score   float64
}

// indexedTopic precomputes the normalized title and content preview so
// Search never re-normalizes per query.
type indexedTopic struct {
	topic       *core.Topic
	titleNorm   string
	previewNorm string
}

// TopicIndex ranks topic documents by title and, failing that, by a
// preview of their content. Immutable after construction.
type TopicIndex struct {
	cfg    *config.Config
	logger *slog.Logger
	topics []indexedTopic
	byKey  map[string]*core.Topic
}

// TopicIndexOption configures a TopicIndex.
type TopicIndexOption func(*TopicIndex)

// WithTopicLogger sets the logger used by the index.
func WithTopicLogger(logger *slog.Logger) TopicIndexOption {
	return func(idx *TopicIndex) {
		idx.logger = logger
	}
}

// NewTopicIndex builds an index over the given topics, sorted by key for
// deterministic ranking.
func NewTopicIndex(cfg *config.Config, topics map[string]*core.Topic, opts ...TopicIndexOption) *TopicIndex {
	idx := &TopicIndex{
		cfg:    cfg,
		logger: slog.Default(),
		byKey:  make(map[string]*core.Topic, len(topics)),
	}

	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t := topics[key]
		preview := t.Content
		if len(preview) > cfg.PreviewLength {
			preview = preview[:cfg.PreviewLength]
		}
		idx.topics = append(idx.topics, indexedTopic{
			topic:       t,
			titleNorm:   core.Normalize(t.Title),
			previewNorm: core.Normalize(preview),
		})
		idx.byKey[key] = t
	}

	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Len reports the number of indexed topics.
func (idx *TopicIndex) Len() int {
	return len(idx.topics)
}

// Get returns the topic for key, truncated to the response budget.
func (idx *TopicIndex) Get(key string) (TopicResult, bool) {
	t, ok := idx.byKey[key]
	if !ok {
		return TopicResult{}, false
	}
	return idx.result(t, 100), true
}

// Search resolves a query to a topic document. A preferred topic, when
// present, is returned directly. Otherwise titles are ranked first;
// content previews are consulted only when no title clears its
// threshold, since titles are far more discriminating than prose.
func (idx *TopicIndex) Search(queryNorm, preferredTopic string) (TopicResult, bool) {
	if preferredTopic != "" {
		if res, ok := idx.Get(preferredTopic); ok {
			return res, true
		}
	}
	if queryNorm == "" || len(idx.topics) == 0 {
		return TopicResult{}, false
	}

	if best, ok := match.Best(idx.topics, func(it indexedTopic) float64 {
		return match.TokenSetRatio(queryNorm, it.titleNorm)
	}, idx.cfg.TopicTitleThreshold); ok {
		idx.logger.Debug("topic title match",
			slog.String("key", best.Value.topic.Key),
			slog.Float64("score", best.Score))
		return idx.result(best.Value.topic, best.Score), true
	}

	if best, ok := match.Best(idx.topics, func(it indexedTopic) float64 {
		return match.PartialRatio(queryNorm, it.previewNorm)
	}, idx.cfg.TopicContentThreshold); ok {
		idx.logger.Debug("topic content match",
			slog.String("key", best.Value.topic.Key),
			slog.Float64("score", best.Score))
		return idx.result(best.Value.topic, best.Score), true
	}

	return TopicResult{}, false
}

func (idx *TopicIndex) result(t *core.Topic, score float64) TopicResult {
	return TopicResult{
		Key:     t.Key,
		Title:   t.Title,
		Content: Truncate(t.Content, idx.cfg.TruncateBudget),
		Score:   score,
	}
}

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
)

func testTopics() map[string]*core.Topic {
	return map[string]*core.Topic{
		"annual leave policy": {
			Key:     "annual leave policy",
			Title:   "Annual Leave Policy",
			Content: "Leave requests go through your manager.",
		},
		"working hours": {
			Key:     "working hours",
			Title:   "Working Hours",
			Content: "Our office hours are nine to five on weekdays.",
		},
		"it support": {
			Key:     "it support",
			Title:   "IT Support",
			Content: "Raise a ticket with the service desk for hardware issues.",
		},
	}
}

func TestTopicIndexSearch(t *testing.T) {
	cfg := config.Default()

	t.Run("preferred topic returned directly", func(t *testing.T) {
		idx := NewTopicIndex(cfg, testTopics())
		require.Equal(t, 3, idx.Len())

		res, ok := idx.Search("anything at all", "it support")
		require.True(t, ok)
		assert.Equal(t, "it support", res.Key)
		assert.Equal(t, "IT Support", res.Title)
	})

	t.Run("unknown preferred topic falls through", func(t *testing.T) {
		idx := NewTopicIndex(cfg, testTopics())

		res, ok := idx.Search("annual leave policy", "no such topic")
		require.True(t, ok)
		assert.Equal(t, "annual leave policy", res.Key)
	})

	t.Run("title match", func(t *testing.T) {
		idx := NewTopicIndex(cfg, testTopics())

		res, ok := idx.Search("working hours", "")
		require.True(t, ok)
		assert.Equal(t, "working hours", res.Key)
		assert.Equal(t, float64(100), res.Score)
	})

	t.Run("content match when no title fits", func(t *testing.T) {
		idx := NewTopicIndex(cfg, testTopics())

		res, ok := idx.Search("raise a ticket with the service desk", "")
		require.True(t, ok)
		assert.Equal(t, "it support", res.Key)
	})

	t.Run("no match", func(t *testing.T) {
		idx := NewTopicIndex(cfg, testTopics())

		_, ok := idx.Search("completely unrelated gibberish zzz", "")
		assert.False(t, ok)
	})

	t.Run("get by key truncates content", func(t *testing.T) {
		cfg := config.New(config.WithTruncateBudget(20))
		topics := map[string]*core.Topic{
			"benefits overview": {
				Key:     "benefits overview",
				Title:   "Benefits Overview",
				Content: strings.Repeat("benefit details ", 10),
			},
		}
		idx := NewTopicIndex(cfg, topics)

		res, ok := idx.Get("benefits overview")
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(res.Content, TruncateMarker))

		_, ok = idx.Get("missing")
		assert.False(t, ok)
	})
}

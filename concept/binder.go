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


package concept

import (
	"sort"

	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/match"
)

// manualBindings pins curated concepts to an intended document whenever
// that document is loaded. Keys are normalized document titles; the table
// unconditionally replaces automatic bindings, which keeps curated
// concepts stable across corpus drift.
var manualBindings = map[string][]string{
	"annual leave policy": {"annual leave"},
	"working hours":       {"working hours", "remote work"},
	"it support":          {"it support", "troubleshooting"},
	"onboarding guide":    {"onboarding", "purpose"},
	"benefits overview":   {"benefits"},
	"best practices":      {"best practices"},
}

// BindTopics links each registered concept to its best-matching topic.
//
// Phase one fuzzy-matches every concept name against all topic keys and
// binds above the configured threshold. Phase two applies the manual
// override table for documents that are actually loaded. Run once, after
// all registration and before serving.
func (r *Registry) BindTopics(topics map[string]*core.Topic) {
	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make([]string, 0, len(r.concepts))
	for name := range r.concepts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, canonical := range names {
		best, ok := match.Best(keys, func(key string) float64 {
			return match.TokenSetRatio(canonical, key)
		}, r.cfg.BindThreshold)
		if !ok {
			continue
		}
		r.bindings[canonical] = best.Value
		r.logger.Debug("concept bound to topic",
			"concept", canonical, "topic", best.Value, "score", best.Score)
	}

	docKeys := make([]string, 0, len(manualBindings))
	for docKey := range manualBindings {
		docKeys = append(docKeys, docKey)
	}
	sort.Strings(docKeys)

	for _, docKey := range docKeys {
		if _, loaded := topics[docKey]; !loaded {
			continue
		}
		for _, canonical := range manualBindings[docKey] {
			r.bindings[core.Normalize(canonical)] = docKey
		}
	}
}

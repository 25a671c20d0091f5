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
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/deskmate/concept"
	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/router"
	"github.com/poiesic/deskmate/search"
)

// Snapshot bundles one corpus with everything derived from it. A
// snapshot is immutable; a reload builds a new one and swaps the
// Holder's pointer, so no reader ever observes a partially built index.
type Snapshot struct {
	Corpus   *core.Corpus
	Registry *concept.Registry
	FAQ      *search.FAQIndex
	Topics   *search.TopicIndex
	Router   *router.Router
}

// BuildSnapshot derives the registry, indices and router from a corpus.
// Corpus-declared synonyms register before the curated set so corpus
// authors keep control of weights, and topic binding runs last over the
// full concept set.
func BuildSnapshot(cfg *config.Config, c *core.Corpus, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}

	registry := concept.NewRegistry(cfg, concept.WithLogger(logger))
	registry.RegisterDecls(c.Synonyms)
	registry.RegisterCurated()
	registry.BindTopics(c.Topics)

	faq := search.NewFAQIndex(cfg, c.FAQ, search.WithFAQLogger(logger))
	topics := search.NewTopicIndex(cfg, c.Topics, search.WithTopicLogger(logger))

	return &Snapshot{
		Corpus:   c,
		Registry: registry,
		FAQ:      faq,
		Topics:   topics,
		Router:   router.NewRouter(cfg, c, registry, faq, topics, router.WithLogger(logger)),
	}
}

// Holder publishes the current snapshot to concurrent readers.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder seeded with the given snapshot.
func NewHolder(snap *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(snap)
	return h
}

// Snapshot returns the current snapshot.
func (h *Holder) Snapshot() *Snapshot {
	return h.current.Load()
}

// Swap atomically publishes a new snapshot.
func (h *Holder) Swap(snap *Snapshot) {
	h.current.Store(snap)
}

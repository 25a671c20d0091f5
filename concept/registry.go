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
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/match"
)

// Registry stores canonical concepts, their phrase synonyms and weights,
// and resolves queries to concepts. Build it fully before serving; it is
// read-only afterwards.
type Registry struct {
	cfg      *config.Config
	logger   *slog.Logger
	concepts map[string]*core.ConceptConfig
	synonyms map[string]string // phrase -> canonical
	bindings map[string]string // canonical -> topic key
	phrases  []string          // synonym keys ordered by phraseLess, for deterministic scans
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRegistry creates an empty registry. A nil cfg uses config.Default().
func NewRegistry(cfg *config.Config, opts ...Option) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &Registry{
		cfg:      cfg,
		logger:   slog.Default(),
		concepts: make(map[string]*core.ConceptConfig),
		synonyms: make(map[string]string),
		bindings: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register upserts a concept and binds its phrases.
//
// Registration is idempotent: an existing concept keeps the larger of its
// old and new weights (weights never decrease). Each phrase is bound to
// this concept unless it is already bound to a strictly shorter canonical
// name; shorter names are more general and deliberately win collisions.
// Corpus-derived concepts must be registered before curated ones so that
// curated entries refine, never discard, general names.
func (r *Registry) Register(canonical string, phrases []string, weight float64) {
	canonical = core.Normalize(canonical)
	if canonical == "" {
		return
	}
	if weight < 1.0 {
		weight = 1.0
	}

	if existing, ok := r.concepts[canonical]; ok {
		if weight > existing.Weight {
			existing.Weight = weight
		}
	} else {
		r.concepts[canonical] = &core.ConceptConfig{Canonical: canonical, Weight: weight}
	}

	r.bindPhrase(canonical, canonical)
	for _, phrase := range phrases {
		r.bindPhrase(phrase, canonical)
	}
}

// RegisterDecls registers corpus-derived synonym declarations at the base
// weight.
func (r *Registry) RegisterDecls(decls []core.SynonymDecl) {
	for _, decl := range decls {
		r.Register(decl.Canonical, decl.Phrases, 1.0)
	}
}

func (r *Registry) bindPhrase(phrase, canonical string) {
	phrase = core.Normalize(phrase)
	if phrase == "" {
		return
	}

	if existing, ok := r.synonyms[phrase]; ok {
		if len(canonical) >= len(existing) {
			return
		}
		r.logger.Debug("synonym rebound to shorter canonical",
			"phrase", phrase, "old", existing, "new", canonical)
		r.synonyms[phrase] = canonical
		return
	}

	r.synonyms[phrase] = canonical
	idx := sort.Search(len(r.phrases), func(i int) bool {
		return !phraseLess(r.phrases[i], phrase)
	})
	r.phrases = append(r.phrases, "")
	copy(r.phrases[idx+1:], r.phrases[idx:])
	r.phrases[idx] = phrase
}

// phraseLess orders detection candidates longest first, then
// lexicographic. With the scan in that order, equal containment scores
// resolve to the longer phrase.
func phraseLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// Concept returns the config for a canonical name.
func (r *Registry) Concept(canonical string) (*core.ConceptConfig, bool) {
	cc, ok := r.concepts[core.Normalize(canonical)]
	return cc, ok
}

// Weight returns the weight for a canonical name, or 1.0 when unknown.
func (r *Registry) Weight(canonical string) float64 {
	if cc, ok := r.concepts[canonical]; ok {
		return cc.Weight
	}
	return 1.0
}

// Binding returns the topic key bound to a canonical name.
func (r *Registry) Binding(canonical string) (string, bool) {
	key, ok := r.bindings[canonical]
	return key, ok
}

// Len returns the number of registered concepts.
func (r *Registry) Len() int {
	return len(r.concepts)
}

// Detection is the outcome of resolving a query to a concept.
// A zero Detection (Score == 0) means no rule produced a positive score.
type Detection struct {
	Concept  string
	TopicKey string
	Score    float64
}

// Found reports whether any rule matched.
func (d Detection) Found() bool {
	return d.Score > 0
}

// domainOverride force-selects a concept whenever one of its needles
// appears in the query, at a guaranteed confidence floor. The list is
// deliberately short: it exists to protect recall on a handful of
// business-critical intents, not to replace the scorer.
type domainOverride struct {
	needles []string
	concept string
}

var domainOverrides = []domainOverride{
	{needles: []string{"holiday", "holidays", "leave", "vacation"}, concept: "annual leave"},
	{needles: []string{"wfh", "remote", "work from home"}, concept: "remote work"},
	{needles: []string{"password", "helpdesk"}, concept: "it support"},
}

// Detect resolves a query to the best-scoring concept.
//
// Rules, in order: direct whole-token phrase containment (longer and
// heavier phrases win), fuzzy token-set fallback against canonical names
// scaled by weight, then domain overrides, which only ever raise the
// score to the configured floor.
func (r *Registry) Detect(query string) Detection {
	qn := core.Normalize(query)
	if qn == "" {
		return Detection{}
	}
	padded := " " + qn + " "

	var det Detection

	// Rule 1: direct containment. r.phrases is ordered longest first,
	// so of two phrases whose score products tie exactly, the longer
	// one carries the detection.
	best, ok := match.Best(r.phrases, func(phrase string) float64 {
		if !strings.Contains(padded, " "+phrase+" ") {
			return 0
		}
		canonical := r.synonyms[phrase]
		return r.cfg.ContainmentFactor * float64(len(phrase)) * r.Weight(canonical)
	}, 0)
	if ok {
		canonical := r.synonyms[best.Value]
		det = Detection{Concept: canonical, Score: best.Score}
	}

	// Rule 2: fuzzy fallback against canonical names.
	names := make([]string, 0, len(r.concepts))
	for name := range r.concepts {
		names = append(names, name)
	}
	sort.Strings(names)
	if fuzzy, ok := match.Best(names, func(name string) float64 {
		ratio := match.TokenSetRatio(qn, name)
		if ratio < r.cfg.ConceptThreshold {
			return 0
		}
		return ratio * r.Weight(name)
	}, 0); ok && fuzzy.Score > det.Score {
		det = Detection{Concept: fuzzy.Value, Score: fuzzy.Score}
	}

	// Rule 3: domain overrides, applied last. Only raises.
	for _, override := range domainOverrides {
		if det.Score >= r.cfg.OverrideFloor {
			break
		}
		for _, needle := range override.needles {
			if strings.Contains(padded, " "+needle+" ") {
				r.logger.Debug("domain override selected concept",
					"needle", needle, "concept", override.concept)
				det = Detection{Concept: override.concept, Score: r.cfg.OverrideFloor}
				break
			}
		}
	}

	if det.Concept != "" {
		if key, ok := r.bindings[det.Concept]; ok {
			det.TopicKey = key
		}
	}
	return det
}

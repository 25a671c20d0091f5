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


package router

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/deskmate/concept"
	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/match"
	"github.com/poiesic/deskmate/search"
)

// Router resolves queries against one immutable corpus snapshot. Safe
// for concurrent use; the only mutable state is the reply rotation
// counters.
type Router struct {
	cfg      *config.Config
	logger   *slog.Logger
	corpus   *core.Corpus
	registry *concept.Registry
	faq      *search.FAQIndex
	topics   *search.TopicIndex
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger the router writes match traces to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter assembles a router over prebuilt indices. The corpus,
// registry and indices must all come from the same snapshot.
func NewRouter(cfg *config.Config, corpus *core.Corpus, registry *concept.Registry,
	faq *search.FAQIndex, topics *search.TopicIndex, opts ...Option) *Router {
	r := &Router{
		cfg:      cfg,
		logger:   slog.Default(),
		corpus:   corpus,
		registry: registry,
		faq:      faq,
		topics:   topics,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reply produces exactly one non-empty reply for the query. The chain is
// evaluated top to bottom and the first step that matches wins; nothing
// in here returns an error.
func (r *Router) Reply(query string) string {
	qn := core.Normalize(query)

	// 1. nothing to work with
	if qn == "" {
		return promptReplies.pick()
	}

	// 2. greetings and small talk
	if containsPhrase(qn, greetingPhrases) {
		return greetingReplies.pick()
	}
	if containsPhrase(qn, howAreYouPhrases) {
		return howAreYouReplies.pick()
	}
	if containsPhrase(qn, jokePhrases) {
		return jokeReplies.pick()
	}

	// 3. gratitude and closings
	if containsPhrase(qn, thanksPhrases) {
		return thanksReplies.pick()
	}

	// 4. capability and topic listing, then identity. Capability
	// phrasing overlaps identity phrasing ("what are you capable of"),
	// so it is checked first.
	if qn == "help" || containsPhrase(qn, topicsPhrases) {
		return r.listTopics()
	}
	if containsPhrase(qn, identityPhrases) {
		return identityReplies.pick()
	}
	if containsPhrase(qn, companyInfoPhrases) {
		return companyInfoReplies.pick()
	}

	// 5. maintenance notes
	if containsPhrase(qn, maintenancePhrases) {
		return r.maintenanceReply()
	}

	// 6. navigation phrasing and conversational extraction
	if target, ok := stripPrefix(qn, navPrefixes); ok {
		if reply, ok := r.navigate(target); ok {
			return reply
		}
	}
	if target, ok := stripPrefix(qn, extractPrefixes); ok {
		if reply, ok := r.lookup(target); ok {
			return reply
		}
	}

	// 7. concept detection with curated templates
	det := r.registry.Detect(qn)
	if det.Found() {
		r.logger.Debug("concept detected",
			slog.String("concept", det.Concept),
			slog.String("topic", det.TopicKey),
			slog.Float64("score", det.Score))

		if tmpl, ok := conceptTemplates[det.Concept]; ok {
			return r.refineTemplate(tmpl, qn, det)
		}

		// 8. concept bound to a topic but no template
		if det.TopicKey != "" {
			if res, ok := r.faq.Search(qn, det.TopicKey); ok && res.TopicKey == det.TopicKey {
				return res.Answer
			}
			if res, ok := r.topics.Get(det.TopicKey); ok {
				return topicReply(res)
			}
		}
	}

	// 9. global FAQ search
	if res, ok := r.faq.Search(qn, ""); ok {
		return res.Answer
	}

	// 10. global topic search
	if res, ok := r.topics.Search(qn, ""); ok {
		return topicReply(res)
	}

	// 11. guaranteed fallback
	return r.fallback()
}

// lookup retries the document searches on a stripped target phrase.
func (r *Router) lookup(target string) (string, bool) {
	if res, ok := r.faq.Search(target, ""); ok {
		return res.Answer, true
	}
	if res, ok := r.topics.Search(target, ""); ok {
		return topicReply(res), true
	}
	return "", false
}

// navigate resolves a navigation target: documents first, then the
// loaded navigation entries, then the full link listing.
func (r *Router) navigate(target string) (string, bool) {
	if reply, ok := r.lookup(target); ok {
		return reply, true
	}

	if best, ok := match.Best(r.corpus.Nav, func(e *core.NavEntry) float64 {
		return match.TokenSetRatio(target, e.NameNorm)
	}, r.cfg.NavThreshold); ok {
		return fmt.Sprintf("You'll find %s here: %s", best.Value.Name, best.Value.URL), true
	}

	if len(r.corpus.Nav) > 0 {
		return r.navListing(), true
	}
	return "", false
}

// refineTemplate returns the curated template, extended with a
// document-sourced FAQ answer when one exists inside the concept's bound
// topic. The template text always comes first.
func (r *Router) refineTemplate(tmpl, qn string, det concept.Detection) string {
	if det.TopicKey == "" {
		return tmpl
	}
	res, ok := r.faq.Search(qn, det.TopicKey)
	if !ok || res.TopicKey != det.TopicKey {
		return tmpl
	}
	return tmpl + "\n\nFrom the loaded documents: " + res.Answer
}

func (r *Router) maintenanceReply() string {
	for _, title := range r.corpus.TopicTitles() {
		key := core.Normalize(title)
		if !strings.Contains(" "+key+" ", " maintenance ") {
			continue
		}
		if res, ok := r.topics.Get(key); ok {
			return topicReply(res)
		}
	}
	return maintenanceFallback
}

func (r *Router) listTopics() string {
	titles := r.corpus.TopicTitles()
	if len(titles) == 0 {
		return "I don't have any documents loaded yet. Once a corpus is loaded " +
			"I can answer questions about its topics, FAQs and links."
	}

	var b strings.Builder
	b.WriteString("Here's what I can help you with:\n")
	for _, title := range titles {
		b.WriteString("- ")
		b.WriteString(title)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nAsk about any of them, for example \"tell me about %s\".", titles[0])
	return b.String()
}

func (r *Router) navListing() string {
	var b strings.Builder
	b.WriteString("Here are the links I know about:\n")
	for _, e := range r.corpus.Nav {
		fmt.Fprintf(&b, "- %s: %s\n", e.Name, e.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

// fallback is the terminal step: always a non-empty, non-defeatist reply.
func (r *Router) fallback() string {
	var b strings.Builder
	b.WriteString("I couldn't match that to anything I know yet. ")
	b.WriteString("I can help with onboarding, policies, IT support and internal links.\n")
	b.WriteString("Try one of these:\n")
	b.WriteString("- \"What are the working hours?\"\n")
	b.WriteString("- \"Tell me about the onboarding guide\"\n")
	b.WriteString("- \"Where do I find the IT helpdesk?\"")

	if titles := r.corpus.TopicTitles(); len(titles) > 0 {
		b.WriteString("\nOr type \"topics\" to see everything I have loaded.")
	}
	return b.String()
}

func topicReply(res search.TopicResult) string {
	return "Here's what I found on " + res.Title + ":\n\n" + res.Content
}

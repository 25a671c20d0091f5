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
	"strings"
	"sync/atomic"
)

// replySet is a fixed set of canned replies with deterministic rotation.
// Rotation keeps repeated small talk from sounding robotic without
// introducing randomness into the reply path.
type replySet struct {
	replies []string
	next    atomic.Uint64
}

func newReplySet(replies ...string) *replySet {
	return &replySet{replies: replies}
}

func (s *replySet) pick() string {
	n := s.next.Add(1) - 1
	return s.replies[n%uint64(len(s.replies))]
}

// intent keyword sets, matched as whole-token phrases against the
// normalized query.
var (
	greetingPhrases = []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	}
	// apostrophes normalize to spaces, so both spellings are listed
	howAreYouPhrases = []string{
		"how are you", "hows it going", "how s it going",
		"how you doing", "whats up", "what s up",
	}
	identityPhrases = []string{
		"who are you", "what are you", "introduce yourself",
	}
	companyInfoPhrases = []string{
		"company info", "company information", "about the company",
		"about this company", "what is the company", "what is this company",
		"what does the company do",
	}
	jokePhrases = []string{
		"joke", "make me laugh", "funny",
	}
	thanksPhrases = []string{
		"thanks", "thank you", "cool", "great", "awesome", "nice", "perfect",
	}
	// a bare "help" lists topics too, but only as the whole query, so
	// "help with my password" still reaches the document searches
	topicsPhrases = []string{
		"main topics", "topics", "documents", "resources",
		"what can you do", "how can you help", "capabilities",
		"what are you capable of",
	}
	maintenancePhrases = []string{
		"maintenance", "changelog", "whats new", "what s new",
		"recent updates", "release notes",
	}
)

// navPrefixes trigger the full navigation path: FAQ, topic, then
// navigation entries. Longer prefixes first so the longest one strips.
var navPrefixes = []string{
	"where can i find the", "where can i find", "where do i find the",
	"where do i find", "where is the", "where is", "navigate to the",
	"navigate to", "take me to the", "take me to", "how do i get to",
	"link to the", "link to", "link for",
}

// extractPrefixes strip conversational phrasing down to a target subject
// before retrying the document searches. No navigation lookup for these.
var extractPrefixes = []string{
	"tell me more about", "tell me about", "show me", "give info on",
	"what is the", "what is", "details on", "info about", "explain",
}

var (
	promptReplies = newReplySet(
		"Please type a question and I'll do my best to help.",
		"I didn't catch anything there. Ask me about onboarding, policies or IT support.",
	)
	greetingReplies = newReplySet(
		"Hello! How can I help with your onboarding today?",
		"Hi there. Ask me anything about policies, tools or your first weeks here.",
		"Hey! What would you like to know?",
	)
	howAreYouReplies = newReplySet(
		"All systems running. How can I help you today?",
		"Doing well, thanks for asking. What can I look up for you?",
	)
	identityReplies = newReplySet(
		"I'm deskmate, the onboarding assistant. I answer questions from the internal reference documents you have loaded.",
		"I'm deskmate. I can explain policies, point you at documents and help with day-one questions.",
	)
	companyInfoReplies = newReplySet(
		"The company overview lives in the onboarding guide: who we are, what we do and how the teams fit together. Say \"tell me about the onboarding guide\" for the details.",
		"For the company story, mission and values, start with the onboarding guide or the intranet's About page.",
	)
	jokeReplies = newReplySet(
		"Why did the workflow go to therapy? Too many unresolved dependencies.",
		"I would tell you a UDP joke, but you might not get it.",
		"There are two hard problems in computing: cache invalidation, naming things, and off-by-one errors.",
	)
	thanksReplies = newReplySet(
		"You're welcome. Let me know if there's anything else you need.",
		"Anytime. Ask away if you need more info.",
		"Glad I could help.",
	)
	maintenanceFallback = "I don't have maintenance notes loaded right now. " +
		"Ask your administrator to add a maintenance document to the corpus."
)

// containsPhrase reports whether any of the phrases occurs in the
// normalized query as a whole-token sequence.
func containsPhrase(queryNorm string, phrases []string) bool {
	padded := " " + queryNorm + " "
	for _, p := range phrases {
		if strings.Contains(padded, " "+p+" ") {
			return true
		}
	}
	return false
}

// stripPrefix returns the remainder of the query after the longest
// matching prefix, with leading articles removed, or ok=false when no
// prefix matches.
func stripPrefix(queryNorm string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if !strings.HasPrefix(queryNorm, p+" ") {
			continue
		}
		target := strings.TrimSpace(strings.TrimPrefix(queryNorm, p))
		for _, article := range []string{"the ", "a ", "an ", "my "} {
			if strings.HasPrefix(target, article) {
				target = strings.TrimSpace(strings.TrimPrefix(target, article))
				break
			}
		}
		if target != "" {
			return target, true
		}
	}
	return "", false
}

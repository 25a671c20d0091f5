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

// curatedConcept is a hand-maintained intent cluster. Weights above 1.0
// let business-critical concepts outrank generic corpus matches.
type curatedConcept struct {
	canonical string
	weight    float64
	phrases   []string
}

var curatedConcepts = []curatedConcept{
	{
		canonical: "annual leave",
		weight:    1.4,
		phrases: []string{
			"annual leave days", "leave policy", "paid leave", "leave entitlement",
			"vacation days", "vacation policy", "holiday entitlement", "time off",
		},
	},
	{
		canonical: "working hours",
		weight:    1.3,
		phrases: []string{
			"office hours", "work schedule", "core hours", "start time", "finish time",
		},
	},
	{
		canonical: "remote work",
		weight:    1.3,
		phrases: []string{
			"wfh", "wfh policy", "work from home", "working from home", "hybrid work",
		},
	},
	{
		canonical: "it support",
		weight:    1.3,
		phrases: []string{
			"helpdesk", "password reset", "reset my password", "technical support", "it help",
		},
	},
	{
		canonical: "access",
		weight:    1.2,
		phrases: []string{
			"badge", "badge access", "building access", "account access", "permissions",
		},
	},
	{
		canonical: "onboarding",
		weight:    1.3,
		phrases: []string{
			"first day", "new starter", "induction", "getting started", "onboarding checklist",
		},
	},
	{
		canonical: "benefits",
		weight:    1.2,
		phrases: []string{
			"health insurance", "wellness", "learning budget", "perks",
		},
	},
	{
		canonical: "best practices",
		weight:    1.2,
		phrases: []string{
			"guidelines", "standards", "conventions", "recommended practice",
		},
	},
	{
		canonical: "troubleshooting",
		weight:    1.2,
		phrases: []string{
			"not working", "broken", "keeps failing", "error message",
		},
	},
	{
		canonical: "purpose",
		weight:    1.1,
		phrases: []string{
			"your purpose", "what are you for", "what is this assistant",
		},
	},
}

// RegisterCurated registers the curated concept set. Call it after
// RegisterDecls: curated entries must refine corpus-derived names, never
// pre-empt them.
func (r *Registry) RegisterCurated() {
	for _, cc := range curatedConcepts {
		r.Register(cc.canonical, cc.phrases, cc.weight)
	}
}

// CuratedCanonicals returns the canonical names of the curated set, in
// declaration order. The router keys its response templates off these.
func CuratedCanonicals() []string {
	names := make([]string, len(curatedConcepts))
	for i, cc := range curatedConcepts {
		names[i] = cc.canonical
	}
	return names
}

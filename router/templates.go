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

// conceptTemplates are hand-authored replies for the high-value concepts,
// keyed by canonical name. They are returned ahead of raw document text
// so policy-sensitive answers stay within what the templates commit to.
//
// The annual leave template deliberately states no day count: entitlement
// figures must come from a loaded, verified document, never from a
// template that could go stale.
var conceptTemplates = map[string]string{
	"annual leave": "Annual leave is requested through your manager and tracked " +
		"in the HR portal. Your exact entitlement depends on your contract and " +
		"location, so please check your contract or the leave policy document " +
		"for the number of days that applies to you.",

	"working hours": "Standard working hours and core hours are set per team. " +
		"Check the working hours document for the schedule that applies to " +
		"you, and agree any variation with your manager.",

	"remote work": "Hybrid and remote work are supported within the limits of " +
		"the remote work policy. Agree your remote days with your manager and " +
		"record them in the HR portal.",

	"it support": "For IT help, raise a ticket with the service desk or email " +
		"the helpdesk. Include your machine name and a short description; " +
		"password resets go through the self-service portal first.",

	"access": "Access to internal systems is granted through your manager via " +
		"the access request form. Most requests are provisioned within one " +
		"business day; chase the service desk if yours takes longer.",

	"onboarding": "Your onboarding plan lives in the onboarding guide: accounts " +
		"to set up, people to meet and training to complete in your first " +
		"weeks. Work through it top to bottom and ask your buddy when stuck.",

	"benefits": "Benefits include health cover, paid leave, wellness programs " +
		"and a learning budget. The benefits overview document has the " +
		"current details and enrolment windows.",

	"best practices": "Our engineering best practices cover code review, " +
		"testing and documentation expectations. The best practices document " +
		"is the authoritative reference; when in doubt, follow it.",

	"troubleshooting": "Start with the troubleshooting guide: it covers the " +
		"common failures and their fixes. If the guide doesn't resolve it, " +
		"raise a ticket with the service desk.",

	"purpose": "I answer onboarding and policy questions from the internal " +
		"reference documents loaded into my corpus. I never make answers up; " +
		"if the documents don't cover something, I'll say so.",
}

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


// Package router turns a free-text query into exactly one reply string.
//
// The router is a linear priority chain evaluated top to bottom, first
// match wins: small-talk intents, topic listing, maintenance notes,
// navigation phrasing, concept detection with curated templates,
// topic-scoped and then global FAQ and topic search, and a final help
// fallback. No step returns an error; every "not found" falls through,
// and the last step always produces a non-empty reply.
//
// Curated templates take precedence over raw document text for a small
// set of policy-sensitive intents, so the assistant never asserts
// figures (leave entitlements, for example) that are not sourced from a
// loaded document.
package router

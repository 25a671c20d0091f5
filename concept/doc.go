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


// Package concept resolves free-text queries to canonical concepts.
//
// A Registry maps many surface phrasings onto canonical concept names with
// per-concept weights. Detection runs three rules in order: direct phrase
// containment, weighted fuzzy fallback against concept names, and a short
// list of domain overrides that guarantee recall on business-critical
// intents.
//
// The registry is built once at load time (corpus-derived concepts first,
// curated concepts second) and is read-only afterwards, so concurrent
// detection needs no locking.
package concept

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


// Package search provides ranked fuzzy search over the loaded corpus.
//
// FAQIndex ranks question/answer pairs; TopicIndex ranks documents by
// title and content preview. Both accept a preferred topic that biases or
// short-circuits ranking, reject matches below their configured
// thresholds, and truncate accepted content at a paragraph boundary
// within the character budget.
//
// Indices are built once over an immutable corpus and are safe for
// concurrent use.
package search

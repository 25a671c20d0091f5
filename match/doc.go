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


// Package match provides fuzzy string similarity and candidate ranking.
//
// Similarity functions return scores on a 0-100 scale and expect inputs
// that already went through core.Normalize:
//   - Ratio: plain edit-distance likeness
//   - PartialRatio: best-window likeness, tolerant to partial overlap
//   - TokenSetRatio / TokenSortRatio: word-order tolerant likeness
//
// Best is the one generic "rank candidates by score, accept above
// threshold" operation. The concept registry, FAQ index, topic index and
// binder all parameterize it instead of reimplementing the loop.
package match

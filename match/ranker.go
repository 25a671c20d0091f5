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


package match

// Candidate pairs a ranked value with the score it achieved.
type Candidate[T any] struct {
	Value T
	Score float64
}

// Best scores every item and returns the highest-scoring candidate,
// provided its score is positive and at least threshold. The bool result
// reports acceptance; "no match" is not an error.
//
// Ties keep the earliest item, so callers control tie-breaking through
// item order.
func Best[T any](items []T, score func(T) float64, threshold float64) (Candidate[T], bool) {
	var best Candidate[T]
	found := false

	for _, item := range items {
		s := score(item)
		if s <= 0 {
			continue
		}
		if !found || s > best.Score {
			best = Candidate[T]{Value: item, Score: s}
			found = true
		}
	}

	if !found || best.Score < threshold {
		return Candidate[T]{}, false
	}
	return best, true
}

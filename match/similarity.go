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

import (
	"math"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// Ratio returns the edit-distance likeness of a and b on a 0-100 scale.
// Substitutions cost 2, so the score matches the classic
// (matched / total length) ratio.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}

	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return math.Round(100 * float64(total-dist) / float64(total))
}

// PartialRatio returns the best Ratio between the shorter string and any
// equally long window of the longer one. A short query scoring well
// against part of a long text scores well overall.
func PartialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	if len(shorter) == len(longer) {
		return Ratio(string(shorter), string(longer))
	}

	best := 0.0
	s := string(shorter)
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := string(longer[start : start+len(shorter)])
		if score := Ratio(s, window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSetRatio compares a and b as word sets, ignoring word order and
// duplicate words, and scoring shared words against each side's surplus.
// A query whose words are a subset of the candidate (or vice versa)
// scores 100.
func TokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		if len(setA) == len(setB) {
			return 100
		}
		return 0
	}

	var common, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	withA := joinNonEmpty(base, strings.Join(onlyA, " "))
	withB := joinNonEmpty(base, strings.Join(onlyB, " "))

	return math.Max(Ratio(base, withA),
		math.Max(Ratio(base, withB), Ratio(withA, withB)))
}

// TokenSortRatio compares a and b with their words sorted, so pure word
// reordering scores 100.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

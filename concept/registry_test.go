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

import (
	"testing"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWeightMaxMerge(t *testing.T) {
	t.Run("weight only increases", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("Annual Leave", nil, 1.0)
		r.Register("annual leave", nil, 1.4)
		r.Register("annual leave", nil, 1.1)

		cc, ok := r.Concept("annual leave")
		require.True(t, ok)
		assert.Equal(t, 1.4, cc.Weight)
	})

	t.Run("order independent", func(t *testing.T) {
		a := NewRegistry(nil)
		a.Register("access", nil, 1.0)
		a.Register("access", nil, 1.4)

		b := NewRegistry(nil)
		b.Register("access", nil, 1.4)
		b.Register("access", nil, 1.0)

		ccA, _ := a.Concept("access")
		ccB, _ := b.Concept("access")
		assert.Equal(t, ccA.Weight, ccB.Weight)
	})

	t.Run("weight floor is 1.0", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("benefits", nil, 0.2)
		cc, _ := r.Concept("benefits")
		assert.Equal(t, 1.0, cc.Weight)
	})
}

func TestSynonymCollisionShorterCanonicalWins(t *testing.T) {
	t.Run("general name registered first", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("it", []string{"support"}, 1.0)
		r.Register("it support desk", []string{"support"}, 1.0)

		det := r.Detect("I need support please")
		assert.Equal(t, "it", det.Concept)
	})

	t.Run("general name registered second", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("it support desk", []string{"support"}, 1.0)
		r.Register("it", []string{"support"}, 1.0)

		det := r.Detect("I need support please")
		assert.Equal(t, "it", det.Concept)
	})
}

func TestDetectDirectContainment(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("annual leave", []string{"annual leave days", "time off"}, 1.4)
	r.Register("working hours", []string{"office hours"}, 1.3)

	t.Run("registered phrase always detected", func(t *testing.T) {
		det := r.Detect("How many annual leave days do I get?")
		assert.True(t, det.Found())
		assert.Equal(t, "annual leave", det.Concept)
		assert.Greater(t, det.Score, 0.0)
	})

	t.Run("longer phrase outranks shorter", func(t *testing.T) {
		// both "annual leave" and "annual leave days" are contained;
		// the longer phrase must carry the detection
		cfg := config.Default()
		det := r.Detect("annual leave days")
		want := cfg.ContainmentFactor * float64(len("annual leave days")) * 1.4
		assert.Equal(t, want, det.Score)
	})

	t.Run("exact score tie resolves to longer phrase", func(t *testing.T) {
		// len("travel expense claims") * 1.0 == len("claims") * 3.5,
		// so both containment scores are identical
		r := NewRegistry(nil)
		r.Register("travel", []string{"travel expense claims"}, 1.0)
		r.Register("finance", []string{"claims"}, 3.5)

		det := r.Detect("how do travel expense claims work")
		assert.Equal(t, "travel", det.Concept)
	})

	t.Run("whole tokens only", func(t *testing.T) {
		// "off" inside "office" must not trigger "time off"
		det := r.Detect("office hours")
		assert.Equal(t, "working hours", det.Concept)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.False(t, r.Detect("   ").Found())
	})
}

func TestDetectFuzzyFallback(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("expense reports", nil, 1.0)

	// no registered phrase is contained verbatim, but the token sets line up
	det := r.Detect("reports for an expense")
	assert.True(t, det.Found())
	assert.Equal(t, "expense reports", det.Concept)
}

func TestDetectDomainOverrides(t *testing.T) {
	cfg := config.Default()

	t.Run("guarantees recall with no signal", func(t *testing.T) {
		r := NewRegistry(cfg)
		r.RegisterCurated()
		// "holiday" is not a registered phrase, only an override needle
		det := r.Detect("taking a holiday next month")
		assert.Equal(t, "annual leave", det.Concept)
		assert.GreaterOrEqual(t, det.Score, cfg.OverrideFloor)
	})

	t.Run("never lowers a higher score", func(t *testing.T) {
		r := NewRegistry(cfg)
		r.RegisterCurated()
		det := r.Detect("annual leave days during the holiday season")
		assert.Equal(t, "annual leave", det.Concept)
		assert.Greater(t, det.Score, cfg.OverrideFloor)
	})
}

func TestDetectNoMatch(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("onboarding", nil, 1.0)

	det := r.Detect("zzz qqq xxx")
	assert.False(t, det.Found())
	assert.Empty(t, det.Concept)
}

func TestRegisterDecls(t *testing.T) {
	r := NewRegistry(nil)
	r.RegisterDecls([]core.SynonymDecl{
		{Canonical: "Parking", Phrases: []string{"car park", "parking permit"}},
	})

	det := r.Detect("where do I get a parking permit")
	assert.Equal(t, "parking", det.Concept)
}

func TestBindTopics(t *testing.T) {
	topics := map[string]*core.Topic{
		"annual leave policy": {Key: "annual leave policy", Title: "Annual Leave Policy"},
		"cafeteria":           {Key: "cafeteria", Title: "Cafeteria"},
	}

	t.Run("automatic binding above threshold", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("annual leave", nil, 1.4)
		r.BindTopics(topics)

		key, ok := r.Binding("annual leave")
		require.True(t, ok)
		assert.Equal(t, "annual leave policy", key)
	})

	t.Run("no binding below threshold", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("expense reports", nil, 1.0)
		r.BindTopics(topics)

		_, ok := r.Binding("expense reports")
		assert.False(t, ok)
	})

	t.Run("manual override wins", func(t *testing.T) {
		r := NewRegistry(nil)
		r.RegisterCurated()
		all := map[string]*core.Topic{
			"annual leave policy": {Key: "annual leave policy", Title: "Annual Leave Policy"},
			"working hours":       {Key: "working hours", Title: "Working Hours"},
		}
		r.BindTopics(all)

		key, ok := r.Binding("remote work")
		require.True(t, ok)
		// "remote work" has no title resemblance to "working hours";
		// only the manual table can have produced this binding
		assert.Equal(t, "working hours", key)
	})

	t.Run("manual override skipped when document missing", func(t *testing.T) {
		r := NewRegistry(nil)
		r.RegisterCurated()
		r.BindTopics(map[string]*core.Topic{})

		_, ok := r.Binding("remote work")
		assert.False(t, ok)
	})

	t.Run("detection carries binding", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register("annual leave", []string{"annual leave days"}, 1.4)
		r.BindTopics(topics)

		det := r.Detect("how many annual leave days")
		assert.Equal(t, "annual leave policy", det.TopicKey)
	})
}

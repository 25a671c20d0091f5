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


package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/core"
)

func TestBuildSnapshot(t *testing.T) {
	cfg := config.Default()

	c := core.NewCorpus()
	c.Topics["parking"] = &core.Topic{
		Key:     "parking",
		Title:   "Parking",
		Content: "Visitor parking is behind the main building.",
	}
	c.Synonyms = []core.SynonymDecl{
		{Canonical: "parking", Phrases: []string{"car park"}},
	}

	snap := BuildSnapshot(cfg, c, nil)
	require.NotNil(t, snap.Router)

	t.Run("corpus synonyms reach the registry", func(t *testing.T) {
		det := snap.Registry.Detect("where is the car park")
		require.True(t, det.Found())
		assert.Equal(t, "parking", det.Concept)
	})

	t.Run("router answers from the snapshot", func(t *testing.T) {
		reply := snap.Router.Reply("tell me about parking")
		assert.Contains(t, reply, "Visitor parking is behind the main building")
	})
}

func TestHolderSwap(t *testing.T) {
	cfg := config.Default()

	empty := BuildSnapshot(cfg, core.NewCorpus(), nil)
	holder := NewHolder(empty)
	assert.Same(t, empty, holder.Snapshot())

	c := core.NewCorpus()
	c.Topics["parking"] = &core.Topic{Key: "parking", Title: "Parking", Content: "spaces 40 to 60"}
	loaded := BuildSnapshot(cfg, c, nil)

	holder.Swap(loaded)
	assert.Same(t, loaded, holder.Snapshot())
	assert.Contains(t, holder.Snapshot().Router.Reply("parking"), "spaces 40 to 60")
}

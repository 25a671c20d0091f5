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


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestNewAppliesOptions(t *testing.T) {
	cfg := New(
		WithFAQThreshold(70),
		WithBindThreshold(55),
		WithTruncateBudget(500),
	)
	assert.Equal(t, 70.0, cfg.FAQThreshold)
	assert.Equal(t, 55.0, cfg.BindThreshold)
	assert.Equal(t, 500, cfg.TruncateBudget)
	// untouched fields keep defaults
	assert.Equal(t, Default().NavThreshold, cfg.NavThreshold)
}

func TestValidate(t *testing.T) {
	t.Run("threshold out of range", func(t *testing.T) {
		cfg := New(WithFAQThreshold(140))
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidThreshold)
	})

	t.Run("negative threshold", func(t *testing.T) {
		cfg := New(WithNavThreshold(-1))
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidThreshold)
	})

	t.Run("zero budget", func(t *testing.T) {
		cfg := New(WithTruncateBudget(0))
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidBudget)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file keeps defaults for omitted fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deskmate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("faq_threshold: 72\ntruncate_budget: 900\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 72.0, cfg.FAQThreshold)
		assert.Equal(t, 900, cfg.TruncateBudget)
		assert.Equal(t, Default().BindThreshold, cfg.BindThreshold)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deskmate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("faq_threshold: 400\n"), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deskmate.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable scoring thresholds and budgets for the matching
// engine. All similarity thresholds are on the 0-100 fuzzy ratio scale.
//
// The defaults were tuned empirically against the reference corpus; the
// right values are corpus-dependent, which is why they live here rather
// than as literals at call sites.
type Config struct {
	// FAQThreshold is the minimum acceptance score for an FAQ answer.
	// Default: 65
	FAQThreshold float64 `yaml:"faq_threshold"`

	// TopicTitleThreshold is the minimum acceptance score when matching a
	// query against topic titles. Default: 60
	TopicTitleThreshold float64 `yaml:"topic_title_threshold"`

	// TopicContentThreshold is the minimum acceptance score when matching
	// a query against topic content previews. Default: 60
	TopicContentThreshold float64 `yaml:"topic_content_threshold"`

	// ConceptThreshold is the minimum unweighted token-set score for the
	// concept fuzzy fallback to count at all. Below it, weak character
	// overlap with an unrelated concept name is noise. Default: 60
	ConceptThreshold float64 `yaml:"concept_threshold"`

	// BindThreshold is the minimum score for automatically binding a
	// concept to a topic at load time. Default: 60
	BindThreshold float64 `yaml:"bind_threshold"`

	// NavThreshold is the minimum score for resolving a navigation target
	// against navigation entry names. Default: 70
	NavThreshold float64 `yaml:"nav_threshold"`

	// OverrideFloor is the confidence a domain override guarantees for its
	// concept. Overrides only ever raise the detection score. Default: 72
	OverrideFloor float64 `yaml:"override_floor"`

	// ContainmentFactor scales direct phrase-containment scores:
	// score = ContainmentFactor * len(phrase) * weight. Default: 12
	ContainmentFactor float64 `yaml:"containment_factor"`

	// LocalityBonus is added to an FAQ entry's score when its owning topic
	// matches the preferred topic of the search. Default: 10
	LocalityBonus float64 `yaml:"locality_bonus"`

	// TruncateBudget is the response character budget before truncation.
	// Default: 1800
	TruncateBudget int `yaml:"truncate_budget"`

	// PreviewLength is how many leading characters of topic content are
	// considered for content matching. Default: 600
	PreviewLength int `yaml:"preview_length"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithFAQThreshold sets the FAQ acceptance threshold.
func WithFAQThreshold(v float64) Option {
	return func(c *Config) { c.FAQThreshold = v }
}

// WithTopicTitleThreshold sets the topic title acceptance threshold.
func WithTopicTitleThreshold(v float64) Option {
	return func(c *Config) { c.TopicTitleThreshold = v }
}

// WithTopicContentThreshold sets the topic content acceptance threshold.
func WithTopicContentThreshold(v float64) Option {
	return func(c *Config) { c.TopicContentThreshold = v }
}

// WithConceptThreshold sets the concept fuzzy fallback acceptance threshold.
func WithConceptThreshold(v float64) Option {
	return func(c *Config) { c.ConceptThreshold = v }
}

// WithBindThreshold sets the concept-to-topic binding threshold.
func WithBindThreshold(v float64) Option {
	return func(c *Config) { c.BindThreshold = v }
}

// WithNavThreshold sets the navigation entry acceptance threshold.
func WithNavThreshold(v float64) Option {
	return func(c *Config) { c.NavThreshold = v }
}

// WithOverrideFloor sets the domain override confidence floor.
func WithOverrideFloor(v float64) Option {
	return func(c *Config) { c.OverrideFloor = v }
}

// WithTruncateBudget sets the response character budget.
func WithTruncateBudget(n int) Option {
	return func(c *Config) { c.TruncateBudget = n }
}

// Default returns a Config with the tuned default values.
func Default() *Config {
	return &Config{
		FAQThreshold:          65,
		TopicTitleThreshold:   60,
		TopicContentThreshold: 60,
		ConceptThreshold:      60,
		BindThreshold:         60,
		NavThreshold:          70,
		OverrideFloor:         72,
		ContainmentFactor:     12,
		LocalityBonus:         10,
		TruncateBudget:        1800,
		PreviewLength:         600,
	}
}

// New creates a Config with defaults and applies the provided options.
func New(opts ...Option) *Config {
	cfg := Default()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a config from a YAML file. If the file does not exist,
// returns defaults. Fields omitted from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all thresholds and budgets are usable.
func (c *Config) Validate() error {
	for _, tv := range []struct {
		name  string
		value float64
	}{
		{"faq_threshold", c.FAQThreshold},
		{"topic_title_threshold", c.TopicTitleThreshold},
		{"topic_content_threshold", c.TopicContentThreshold},
		{"concept_threshold", c.ConceptThreshold},
		{"bind_threshold", c.BindThreshold},
		{"nav_threshold", c.NavThreshold},
		{"override_floor", c.OverrideFloor},
	} {
		if tv.value < 0 || tv.value > 100 {
			return fmt.Errorf("%w: %s must be within [0, 100], got %v", ErrInvalidThreshold, tv.name, tv.value)
		}
	}

	if c.ContainmentFactor <= 0 {
		return fmt.Errorf("%w: containment_factor must be positive", ErrInvalidThreshold)
	}
	if c.LocalityBonus < 0 {
		return fmt.Errorf("%w: locality_bonus cannot be negative", ErrInvalidThreshold)
	}
	if c.TruncateBudget <= 0 {
		return fmt.Errorf("%w: truncate_budget must be positive", ErrInvalidBudget)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("%w: preview_length must be positive", ErrInvalidBudget)
	}
	return nil
}

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


// Package deskmate answers free-text questions against a closed corpus
// of internal reference documents. It never generates text: every reply
// is pre-authored, either in a loaded document or in a curated template.
package deskmate

import (
	"context"
	"log/slog"

	"github.com/poiesic/deskmate/config"
	"github.com/poiesic/deskmate/corpus"
)

// Assistant is the top-level entry point: one loaded corpus plus the
// matching engine built over it. Reply is safe for concurrent use;
// Reload swaps in a freshly built snapshot without blocking readers.
type Assistant struct {
	cfg     *config.Config
	loader  *corpus.Loader
	holder  *corpus.Holder
	docsDir string
	logger  *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	cfg      *config.Config
	logger   *slog.Logger
	poolSize int
}

// WithConfig sets the scoring configuration. Default is config.Default().
func WithConfig(cfg *config.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.cfg = cfg
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		o.logger = logger
	}
}

// WithPoolSize sets the corpus loader's worker pool size.
func WithPoolSize(size int) AssistantOption {
	return func(o *assistantOptions) {
		o.poolSize = size
	}
}

// NewAssistant loads the corpus from docsDir and builds the first
// snapshot. A missing directory is not an error; the assistant serves
// its canned replies and fallbacks until a reload finds documents.
func NewAssistant(ctx context.Context, docsDir string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		cfg:    config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	loaderOpts := []corpus.LoaderOption{corpus.WithLoaderLogger(options.logger)}
	if options.poolSize > 0 {
		loaderOpts = append(loaderOpts, corpus.WithPoolSize(options.poolSize))
	}
	loader, err := corpus.NewLoader(loaderOpts...)
	if err != nil {
		return nil, err
	}

	a := &Assistant{
		cfg:     options.cfg,
		loader:  loader,
		docsDir: docsDir,
		logger:  options.logger,
	}

	c, err := loader.Load(ctx, docsDir)
	if err != nil {
		loader.Release()
		return nil, err
	}
	a.holder = corpus.NewHolder(corpus.BuildSnapshot(a.cfg, c, a.logger))

	return a, nil
}

// Reply produces one reply string for the query. Never empty.
func (a *Assistant) Reply(query string) string {
	return a.holder.Snapshot().Router.Reply(query)
}

// Reload rebuilds the snapshot from the document directory and swaps it
// in atomically. Readers keep the old snapshot until the swap.
func (a *Assistant) Reload(ctx context.Context) error {
	c, err := a.loader.Load(ctx, a.docsDir)
	if err != nil {
		return err
	}
	a.holder.Swap(corpus.BuildSnapshot(a.cfg, c, a.logger))
	a.logger.Info("corpus reloaded", slog.String("dir", a.docsDir))
	return nil
}

// Topics returns the loaded topic titles, sorted alphabetically.
func (a *Assistant) Topics() []string {
	return a.holder.Snapshot().Corpus.TopicTitles()
}

// Snapshot returns the current snapshot, for callers that need direct
// access to the indices.
func (a *Assistant) Snapshot() *corpus.Snapshot {
	return a.holder.Snapshot()
}

// Config returns the scoring configuration the assistant was built with.
func (a *Assistant) Config() *config.Config {
	return a.cfg
}

// Close releases the loader's worker pool. The assistant keeps serving
// its current snapshot, but can no longer reload.
func (a *Assistant) Close() error {
	a.loader.Release()
	return nil
}

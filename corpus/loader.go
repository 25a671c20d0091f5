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
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/deskmate/core"
)

// Loader parses a document directory into a Corpus. Files parse
// concurrently on a worker pool; assembly is deterministic regardless
// of completion order.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) LoaderOption {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		if l.pool != nil {
			l.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLoaderLogger sets a custom logger. Default is slog.Default().
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader with its worker pool.
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}
	return l, nil
}

// Release releases the worker pool. The loader must not be used after
// calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

// fileResult holds everything parsed out of one file.
type fileResult struct {
	topic    *core.Topic
	faq      []*core.FAQEntry
	synonyms []core.SynonymDecl
	nav      []*core.NavEntry
}

// Load parses every .txt and .md file under dir into a Corpus. A
// missing directory degrades to an empty corpus. Files that cannot be
// read or decoded are logged and skipped; a single bad file never
// blocks the rest of the corpus.
func (l *Loader) Load(ctx context.Context, dir string) (*core.Corpus, error) {
	corpus := core.NewCorpus()

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("corpus directory missing, serving empty corpus",
				slog.String("dir", dir))
			return corpus, nil
		}
		return nil, err
	}
	sort.Strings(paths)

	results := make(map[string]*fileResult, len(paths))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()
			res, err := l.parseFile(path)
			if err != nil {
				l.logger.Warn("skipping corpus file",
					slog.String("path", path), slog.Any("error", err))
				return
			}
			mu.Lock()
			results[path] = res
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// assemble in path order so the corpus is deterministic
	for _, path := range paths {
		res, ok := results[path]
		if !ok {
			continue
		}
		if res.topic != nil {
			corpus.Topics[res.topic.Key] = res.topic
		}
		corpus.FAQ = append(corpus.FAQ, res.faq...)
		corpus.Synonyms = append(corpus.Synonyms, res.synonyms...)
		corpus.Nav = append(corpus.Nav, res.nav...)
	}

	l.logger.Info("corpus loaded",
		slog.String("dir", dir),
		slog.Int("topics", len(corpus.Topics)),
		slog.Int("faq_entries", len(corpus.FAQ)),
		slog.Int("synonym_decls", len(corpus.Synonyms)),
		slog.Int("nav_entries", len(corpus.Nav)))
	return corpus, nil
}

func (l *Loader) parseFile(path string) (*fileResult, error) {
	content, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	res := &fileResult{}
	switch classify(path) {
	case kindFAQ:
		res.faq = parseFAQ(content, faqTopicKey(path))
	case kindSynonyms:
		res.synonyms = parseSynonyms(content)
	case kindNav:
		res.nav = parseNav(content)
	default:
		res.topic = parseTopic(path, content)
	}
	return res, nil
}

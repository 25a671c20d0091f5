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


// Package corpus loads a directory of plain-text reference documents
// into the immutable Corpus the matching engine runs against.
//
// Files are classified by name: names containing "faq" parse as
// question/answer documents, "synonym"/"keyword" as concept
// declarations, "nav"/"links" as navigation entries, and everything
// else as a topic document whose title derives from the file name.
// Malformed lines are skipped, a missing directory yields an empty
// corpus, and files that fail UTF-8 decoding are retried as Latin-1.
//
// BuildSnapshot assembles a corpus plus its registry, indices and
// router into one immutable Snapshot; Holder swaps snapshots atomically
// for hot reload.
package corpus

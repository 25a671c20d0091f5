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


// Package core defines the domain model for deskmate.
//
// The central value is Corpus: the immutable result of loading a document
// directory, holding reference topics, FAQ entries, synonym declarations and
// navigation links. A Corpus is built once by the corpus package and shared
// read-only between concurrent requests, so none of its types carry locks.
//
// Every stored key and every incoming query passes through Normalize before
// comparison. Comparing un-normalized strings anywhere in the codebase is a
// correctness bug, not a style issue.
//
// The package also defines the persisted record types (Account, Feedback,
// Ticket) together with their validation rules and MUS serializers.
package core

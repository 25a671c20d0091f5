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


package badger

import "github.com/poiesic/deskmate/storage"

// NewMemoryRepositories creates in-memory account, feedback and ticket
// repositories for testing. Caller must close all repos and the backend
// when done.
func NewMemoryRepositories() (storage.AccountRepository, storage.FeedbackRepository, storage.TicketRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	accountRepo, err := NewAccountRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	feedbackRepo, err := NewFeedbackRepository(backend)
	if err != nil {
		accountRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	ticketRepo, err := NewTicketRepository(backend)
	if err != nil {
		feedbackRepo.Close()
		accountRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return accountRepo, feedbackRepo, ticketRepo, backend, nil
}

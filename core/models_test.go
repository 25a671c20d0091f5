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


package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusTopicTitles(t *testing.T) {
	c := NewCorpus()
	c.Topics["onboarding guide"] = &Topic{Key: "onboarding guide", Title: "Onboarding Guide"}
	c.Topics["annual leave policy"] = &Topic{Key: "annual leave policy", Title: "Annual Leave Policy"}
	c.Topics["it support"] = &Topic{Key: "it support", Title: "IT Support"}

	assert.Equal(t,
		[]string{"Annual Leave Policy", "IT Support", "Onboarding Guide"},
		c.TopicTitles())
}

func TestCorpusEmpty(t *testing.T) {
	c := NewCorpus()
	assert.True(t, c.Empty())

	c.FAQ = append(c.FAQ, &FAQEntry{Question: "q", QuestionNorm: "q", Answer: "a"})
	assert.False(t, c.Empty())
}

func TestAccountMUSRoundTrip(t *testing.T) {
	in := Account{
		Username:     "jdoe",
		Name:         "J. Doe",
		StaffNo:      "SE12345",
		Email:        "jdoe@example.com",
		Branch:       "North",
		RemoteDays:   3,
		PasswordHash: HashPassword("pw"),
		CreatedAt:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, AccountMUS.Size(in))
	n := AccountMUS.Marshal(in, bs)
	assert.Equal(t, len(bs), n)

	out, n, err := AccountMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, in, out)
	assert.True(t, out.UpdatedAt.IsZero())
}

func TestFeedbackMUSRoundTrip(t *testing.T) {
	in := Feedback{
		Id:        7,
		Comment:   "the bot helped me find the leave policy",
		Reply:     "thanks, noted",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		RepliedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
	}

	bs := make([]byte, FeedbackMUS.Size(in))
	FeedbackMUS.Marshal(in, bs)

	out, _, err := FeedbackMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTicketMUSRoundTrip(t *testing.T) {
	in := Ticket{
		Id:        3,
		Ref:       TicketRef(3),
		Subject:   "badge not working",
		Message:   "my badge stopped opening the east door",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, TicketMUS.Size(in))
	TicketMUS.Marshal(in, bs)

	out, _, err := TicketMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMUSUnmarshalTruncated(t *testing.T) {
	in := Ticket{Id: 1, Ref: "FE1", Subject: "s", Message: "m", CreatedAt: time.Now().UTC()}
	bs := make([]byte, TicketMUS.Size(in))
	TicketMUS.Marshal(in, bs)

	_, _, err := TicketMUS.Unmarshal(bs[:2])
	assert.Error(t, err)
}

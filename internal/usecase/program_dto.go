package usecase

import "time"

// ProgramFeed is the JSON document published by a seminar program feed: a
// list of topics, each with the dates it is given on.
type ProgramFeed struct {
	Topics []ProgramTopic `json:"topics"`
}

type ProgramTopic struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	EventType   string        `json:"event_type"`
	Dates       []ProgramDate `json:"dates"`
}

type ProgramDate struct {
	BeginsAt          time.Time     `json:"beginsAt"`
	EndsAt            *time.Time    `json:"endsAt"`
	NeedsRegistration bool          `json:"needsRegistration"`
	MaxAttendees      int           `json:"maxAttendees"`
	Slots             []ProgramSlot `json:"slots"`
}

type ProgramSlot struct {
	BeginsAt time.Time  `json:"beginsAt"`
	EndsAt   *time.Time `json:"endsAt"`
	Place    string     `json:"place"`
}

package model

import "time"

const (
	TypeSummaryComputed = "summary.computed"
	TypeWizardActed     = "wizard.acted"
)

// Room change operations carried on the room changes topic.
const (
	RoomCreated = "created"
	RoomUpdated = "updated"
	RoomDeleted = "deleted"
)

// Event is the envelope published on the board events topic. Exactly one of
// Summary or Wizard is set, matching Type.
type Event struct {
	Type       string           `json:"type"`
	OccurredAt time.Time        `json:"occurred_at"`
	Summary    *SummaryComputed `json:"summary,omitempty"`
	Wizard     *WizardActed     `json:"wizard,omitempty"`
}

type SummaryComputed struct {
	ID       string `json:"id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Timezone string `json:"tz"`
}

type WizardActed struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	ResModel string `json:"res_model"`
	RoomID   int64  `json:"room_id"`
	CheckIn  string `json:"check_in"`
}

// RoomChanged is consumed from upstream property systems whenever a room
// record is written.
type RoomChanged struct {
	RoomID    int64  `json:"room_id"`
	Operation string `json:"operation"`
}

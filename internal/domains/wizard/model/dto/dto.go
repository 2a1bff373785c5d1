package dto

import (
	"time"

	"hotelboard/internal/domains/wizard/model"
)

// CreateSelectorRequest carries the action context of the clicked cell,
// typically {"date": "2024-01-01 10:00:00", "room_id": 5}.
type CreateSelectorRequest struct {
	Context map[string]any `json:"context"`
}

type QuickReservationRequest struct {
	Context map[string]any `json:"context"`
}

type SelectorResponse struct {
	ID        string    `json:"id"`
	CheckIn   string    `json:"check_in"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SelectorResponse) FromModel(m model.Selector) {
	s.ID = m.ID
	s.CheckIn = m.CheckIn
	s.RoomID = m.RoomID
	s.CreatedAt = m.CreatedAt
}

type QuickReservationResponse struct {
	CheckIn string `json:"check_in,omitempty"`
	RoomID  int64  `json:"room_id,omitempty"`
}

func (q *QuickReservationResponse) FromModel(m model.QuickReservation) {
	q.CheckIn = m.CheckIn
	q.RoomID = m.RoomID
}

type WindowActionResponse struct {
	model.WindowAction
}

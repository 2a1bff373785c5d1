package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"hotelboard/internal/domains/summary/model"
	"hotelboard/shared/constant"
)

type CreateSummaryRequest struct {
	DateFrom string `json:"date_from" validate:"omitempty,naivedatetime"`
	DateTo   string `json:"date_to"   validate:"omitempty,naivedatetime"`
}

// Apply overrides the record dates the client supplied.
func (c *CreateSummaryRequest) Apply(record *model.Record) {
	applyDates(record, c.DateFrom, c.DateTo)
}

type UpdateSummaryRequest struct {
	DateFrom string `json:"date_from" validate:"omitempty,naivedatetime"`
	DateTo   string `json:"date_to"   validate:"omitempty,naivedatetime"`
}

func (u *UpdateSummaryRequest) Apply(record *model.Record) {
	applyDates(record, u.DateFrom, u.DateTo)
}

func applyDates(record *model.Record, dateFrom, dateTo string) {
	if dateFrom != constant.Empty {
		record.DateFrom = dateFrom
	}

	if dateTo != constant.Empty {
		record.DateTo = dateTo
	}
}

type SummaryDefaultsResponse struct {
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
	ConventionImage string `json:"convention_image"`
}

func (s *SummaryDefaultsResponse) FromModel(record model.Record) {
	s.DateFrom = record.DateFrom
	s.DateTo = record.DateTo
	s.ConventionImage = record.ConventionImage
}

type SummaryResponse struct {
	ID              string    `json:"id"`
	DateFrom        string    `json:"date_from"`
	DateTo          string    `json:"date_to"`
	Timezone        string    `json:"tz"`
	ConventionImage string    `json:"convention_image"`
	SummaryHeader   string    `json:"summary_header"`
	RoomSummary     string    `json:"room_summary"`
	ComputedAt      time.Time `json:"computed_at"`
}

func (s *SummaryResponse) FromModel(record model.Record) {
	s.ID = record.ID
	s.DateFrom = record.DateFrom
	s.DateTo = record.DateTo
	s.Timezone = record.Timezone
	s.ConventionImage = record.ConventionImage
	s.SummaryHeader = record.SummaryHeader
	s.RoomSummary = record.RoomSummary
	s.ComputedAt = record.ComputedAt
}

// EncodeGrid serializes grid into the record's summary_header and room_summary text.
func EncodeGrid(grid model.Grid) (summaryHeader, roomSummary string, err error) {
	header, err := json.Marshal([]model.Header{{Header: grid.Header}})
	if err != nil {
		return constant.Empty, constant.Empty, fmt.Errorf("failed to encode summary header: %w", err)
	}

	rooms := grid.Rooms
	if rooms == nil {
		rooms = []model.RoomRow{}
	}

	summary, err := json.Marshal(rooms)
	if err != nil {
		return constant.Empty, constant.Empty, fmt.Errorf("failed to encode room summary: %w", err)
	}

	return string(header), string(summary), nil
}

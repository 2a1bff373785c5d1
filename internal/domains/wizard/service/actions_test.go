package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelboard/internal/domains/wizard/model"
	"hotelboard/internal/domains/wizard/service"
	"hotelboard/shared/failure"
)

func TestDescribe(t *testing.T) {
	selector := model.Selector{ID: "abc", CheckIn: "2024-01-01 15:03:00", RoomID: 5}

	tests := []struct {
		action       string
		wantResModel string
		wantContext  map[string]any
	}{
		{
			action:       model.ActionNewReservation,
			wantResModel: "hotel.reservation",
			wantContext:  map[string]any{"room_id": int64(5), "checkin_date": "2024-01-01 15:03:00"},
		},
		{
			action:       model.ActionNewCheckin,
			wantResModel: "hotel.folio",
			wantContext:  map[string]any{"room_id": int64(5), "checkin_date": "2024-01-01 15:03:00"},
		},
		{
			action:       model.ActionRoomBlocking,
			wantResModel: "hotel.room.maintenance",
			wantContext:  map[string]any{"room_no": int64(5), "date": "2024-01-01 15:03:00"},
		},
		{
			action:       model.ActionHousekeeping,
			wantResModel: "hotel.housekeeping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, err := service.Describe(tt.action, selector)

			require.NoError(t, err)
			assert.Equal(t, "ir.actions.act_window", got.Type)
			assert.Equal(t, tt.wantResModel, got.ResModel)
			assert.Equal(t, "form", got.ViewType)
			assert.Equal(t, "form", got.ViewMode)
			assert.Equal(t, "new", got.Target)
			assert.Equal(t, tt.wantContext, got.Context)
			assert.Equal(t, map[string]any{"form": map[string]any{"action_buttons": true}}, got.Flags)
		})
	}
}

func TestDescribe_UnknownAction(t *testing.T) {
	_, err := service.Describe("delete_room", model.Selector{})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

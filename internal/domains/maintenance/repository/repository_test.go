package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelboard/internal/domains/maintenance/model"
	"hotelboard/internal/domains/maintenance/repository"
)

func TestCoveringFilter(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)

	tests := []struct {
		name string
		at   time.Time
	}{
		{name: "utc instant", at: time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)},
		{name: "zoned instant is passed as is", at: time.Date(2024, 1, 15, 15, 0, 0, 0, bogota)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.CoveringFilter(tt.at)
			where, args := filter.GetWhereClause()

			assert.Equal(t,
				"(hotel_room_maintenance.block_start_time <= :block_start AND "+
					"hotel_room_maintenance.block_end_time >= :block_end)",
				where,
			)
			assert.Equal(t, map[string]any{
				"block_start": tt.at,
				"block_end":   tt.at,
			}, args)
		})
	}
}

func TestBlock_GetJoinQuery(t *testing.T) {
	assert.Equal(t,
		"JOIN hotel_rooms ON hotel_rooms.id = hotel_room_maintenance.room_no",
		model.Block{}.GetJoinQuery(),
	)
}

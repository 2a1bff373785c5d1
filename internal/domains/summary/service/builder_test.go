package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/infras/otel/mocks"
	reservationModel "hotelboard/internal/domains/reservation/model"
	roomMocks "hotelboard/internal/domains/room/mocks"
	roomModel "hotelboard/internal/domains/room/model"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/internal/domains/summary/service"
	"hotelboard/shared/failure"
)

func newBuilder(t *testing.T) (*service.Builder, *roomMocks.MockRoom, resolverMocks) {
	resolver, m := newResolver(t, &config.Config{})
	rooms := roomMocks.NewMockRoom(gomock.NewController(t))

	return service.NewBuilder(rooms, resolver, fixedConverter(), mocks.NewOtel()), rooms, m
}

func TestBuilder_Dates(t *testing.T) {
	builder, _, _ := newBuilder(t)

	tests := []struct {
		name     string
		dateFrom string
		dateTo   string
		tz       string
		want     []string
		wantErr  error
	}{
		{
			name:     "inclusive range in utc",
			dateFrom: "2024-01-01 00:00:00",
			dateTo:   "2024-01-03 00:00:00",
			tz:       "UTC",
			want:     []string{"2024-01-01 00:00:00", "2024-01-02 00:00:00", "2024-01-03 00:00:00"},
		},
		{
			name:     "shifted to session zone",
			dateFrom: "2024-01-01 00:00:00",
			dateTo:   "2024-01-02 00:00:00",
			tz:       bogota,
			want:     []string{"2023-12-31 19:00:00", "2024-01-01 19:00:00"},
		},
		{
			name:     "same day",
			dateFrom: "2024-01-01 08:00:00",
			dateTo:   "2024-01-01 08:00:00",
			tz:       "UTC",
			want:     []string{"2024-01-01 08:00:00"},
		},
		{
			name:     "partial day is dropped",
			dateFrom: "2024-01-01 10:00:00",
			dateTo:   "2024-01-02 09:00:00",
			tz:       "UTC",
			want:     []string{"2024-01-01 10:00:00"},
		},
		{
			name:     "inverted range",
			dateFrom: "2024-01-03 00:00:00",
			dateTo:   "2024-01-01 00:00:00",
			tz:       "UTC",
			wantErr:  failure.InvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := builder.Dates(tt.dateFrom, tt.dateTo, tt.tz)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dates)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, dates)
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	builder, rooms, m := newBuilder(t)

	rooms.EXPECT().ListAll(gomock.Any()).Return([]roomModel.Room{room101, room102}, nil)

	m.reservations.EXPECT().
		FindSpanning(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]reservationModel.ReservationLine{{
			ID:            10,
			ReservationNo: "R/0010",
			State:         reservationModel.StateConfirm,
			LineName:      "102",
			PartnerName:   "Ana Gomez",
			Checkout:      utc("2024-01-05 16:00:00"),
		}}, nil).
		Times(3)
	m.folios.EXPECT().FindSpanning(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	m.maintenance.EXPECT().FindCovering(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	grid, err := builder.Build(context.Background(), "2024-01-01 00:00:00", "2024-01-03 00:00:00", "UTC")

	require.NoError(t, err)
	assert.Equal(t, []string{model.HeaderRooms, "Mon Jan 01", "Tue Jan 02", "Wed Jan 03"}, grid.Header)
	require.Len(t, grid.Rooms, 2)
	assert.Equal(t, "101", grid.Rooms[0].Name)
	assert.Equal(t, "102", grid.Rooms[1].Name)

	for _, row := range grid.Rooms {
		assert.Len(t, row.Value, len(grid.Header)-1)
	}

	for i, cell := range grid.Rooms[0].Value {
		assert.Equal(t, model.StateFree, cell.State)
		assert.Equal(t, room101.ID, cell.RoomID)
		assert.Equal(t, []string{"2024-01-01 00:00:00", "2024-01-02 00:00:00", "2024-01-03 00:00:00"}[i], cell.Date)
	}

	for _, cell := range grid.Rooms[1].Value {
		assert.Equal(t, model.StateReserved, cell.State)
		assert.Equal(t, int64(10), cell.Reservation)
	}
}

func TestBuilder_Build_InvalidRange(t *testing.T) {
	// no repository expectations: an inverted range must not query anything
	builder, _, _ := newBuilder(t)

	grid, err := builder.Build(context.Background(), "2024-01-03 00:00:00", "2024-01-01 00:00:00", "UTC")

	assert.ErrorIs(t, err, failure.InvalidDateRange)
	assert.Empty(t, grid.Header)
}

func TestBuilder_Build_ListRoomsError(t *testing.T) {
	builder, rooms, _ := newBuilder(t)

	rooms.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))

	_, err := builder.Build(context.Background(), "2024-01-01 00:00:00", "2024-01-01 00:00:00", "UTC")

	assert.Error(t, err)
}

func TestBuilder_Build_NoRooms(t *testing.T) {
	builder, rooms, m := newBuilder(t)

	rooms.EXPECT().ListAll(gomock.Any()).Return([]roomModel.Room{}, nil)
	m.reservations.EXPECT().FindSpanning(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.folios.EXPECT().FindSpanning(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.maintenance.EXPECT().FindCovering(gomock.Any(), gomock.Any()).Return(nil, nil)

	grid, err := builder.Build(context.Background(), "2024-01-01 00:00:00", "2024-01-01 00:00:00", "UTC")

	require.NoError(t, err)
	assert.Equal(t, []string{model.HeaderRooms, "Mon Jan 01"}, grid.Header)
	assert.Empty(t, grid.Rooms)
}

package timezone_test

import (
	"testing"
	"time"

	"hotelboard/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC(t *testing.T) {
	tests := []struct {
		name    string
		local   string
		tz      string
		want    string
		wantErr error
	}{
		{
			name:  "explicit zone",
			local: "2024-01-01 10:00:00",
			tz:    "America/Bogota",
			want:  "2024-01-01 15:00:00",
		},
		{
			name:  "missing zone falls back to default",
			local: "2024-01-01 10:00:00",
			tz:    "",
			want:  "2024-01-01 15:00:00",
		},
		{
			name:  "crosses midnight",
			local: "2024-01-01 21:30:00",
			tz:    "America/Bogota",
			want:  "2024-01-02 02:30:00",
		},
		{
			name:  "eastern zone",
			local: "2024-01-01 07:00:00",
			tz:    "Asia/Jakarta",
			want:  "2024-01-01 00:00:00",
		},
		{
			name:  "summer offset",
			local: "2024-07-01 08:00:00",
			tz:    "America/New_York",
			want:  "2024-07-01 12:00:00",
		},
		{
			name:    "repeated wall time is rejected",
			local:   "2024-11-03 01:30:00",
			tz:      "America/New_York",
			wantErr: timezone.ErrAmbiguousTime,
		},
		{
			name:    "skipped wall time is rejected",
			local:   "2024-03-10 02:30:00",
			tz:      "America/New_York",
			wantErr: timezone.ErrNonExistentTime,
		},
		{
			name:    "malformed input",
			local:   "01/01/2024 10:00",
			tz:      "America/Bogota",
			wantErr: timezone.ErrInvalidDateTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ToUTC(tt.local, tt.tz)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUTC_UnknownZone(t *testing.T) {
	_, err := timezone.ToUTC("2024-01-01 10:00:00", "Mars/Olympus_Mons")

	assert.Error(t, err)
}

func TestToLocal_UsesOffsetOfCurrentMoment(t *testing.T) {
	winter := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	summer := func() time.Time { return time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC) }

	winterConverter := timezone.NewConverter(timezone.DefaultZone).WithClock(winter)
	summerConverter := timezone.NewConverter(timezone.DefaultZone).WithClock(summer)

	got, err := winterConverter.ToLocal("2024-07-01 12:00:00", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01 07:00:00", got, "winter clock applies -05:00 even to a July instant")

	got, err = summerConverter.ToLocal("2024-07-01 12:00:00", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01 08:00:00", got)
}

func TestToLocal_DefaultZone(t *testing.T) {
	got, err := timezone.ToLocal("2024-01-01 15:00:00", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 10:00:00", got)
}

func TestToLocal_MalformedInput(t *testing.T) {
	_, err := timezone.ToLocal("yesterday", "")

	assert.ErrorIs(t, err, timezone.ErrInvalidDateTime)
}

func TestRoundTrip(t *testing.T) {
	winter := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	converter := timezone.NewConverter(timezone.DefaultZone).WithClock(winter)

	t.Run("zone without daylight saving round trips", func(t *testing.T) {
		utc, err := converter.ToUTC("2024-07-01 08:00:00", "America/Bogota")
		require.NoError(t, err)

		local, err := converter.ToLocal(utc, "America/Bogota")
		require.NoError(t, err)

		assert.Equal(t, "2024-07-01 08:00:00", local)
	})

	t.Run("daylight saving zone is off by the offset difference", func(t *testing.T) {
		utc, err := converter.ToUTC("2024-07-01 08:00:00", "America/New_York")
		require.NoError(t, err)

		local, err := converter.ToLocal(utc, "America/New_York")
		require.NoError(t, err)

		assert.Equal(t, "2024-07-01 07:00:00", local)
	})
}

func TestParseDateTime(t *testing.T) {
	parsed, ok := timezone.ParseDateTime("2024-01-03 00:00:00")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), parsed)

	parsed, ok = timezone.ParseDateTime("2024-01-03")
	assert.False(t, ok)
	assert.True(t, parsed.IsZero())

	assert.Equal(t, "2024-01-03 00:00:00", timezone.FormatDateTime(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
}

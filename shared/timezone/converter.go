package timezone

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"hotelboard/config"
	"hotelboard/shared/constant"
)

// DefaultZone is used whenever the caller's session carries no timezone.
const DefaultZone = "America/Bogota"

var (
	ErrAmbiguousTime   = errors.New("ambiguous local time")
	ErrNonExistentTime = errors.New("non-existent local time")
	ErrInvalidDateTime = errors.New("invalid date time")
)

var defaultConverter = NewConverter(DefaultZone)

// Converter moves naive server timestamps between a session zone and UTC.
type Converter struct {
	fallback string
	now      func() time.Time
}

func NewConverter(fallback string) Converter {
	if fallback == constant.Empty {
		fallback = DefaultZone
	}

	return Converter{
		fallback: fallback,
		now:      time.Now,
	}
}

// NewSessionConverter falls back to the configured application zone, or to
// DefaultZone when none is configured.
func NewSessionConverter(cfg *config.Config) Converter {
	return NewConverter(cfg.App.Timezone)
}

// WithClock returns a copy of the converter reading "now" from clock.
func (c Converter) WithClock(clock func() time.Time) Converter {
	c.now = clock

	return c
}

// Now reads the converter clock.
func (c Converter) Now() time.Time {
	return c.now()
}

func (c Converter) Fallback() string {
	return c.fallback
}

func (c Converter) LoadZone(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == constant.Empty {
		name = c.fallback
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	return loc, nil
}

// Localize interprets the wall clock of naive in tz and returns the UTC instant.
func (c Converter) Localize(naive time.Time, tz string) (time.Time, error) {
	loc, err := c.LoadZone(tz)
	if err != nil {
		return time.Time{}, err
	}

	wall := time.Date(naive.Year(), naive.Month(), naive.Day(), naive.Hour(), naive.Minute(), naive.Second(), 0, time.UTC)
	wallText := wall.Format(constant.DateTimeFormat)

	var matches []time.Time

	for _, offset := range candidateOffsets(wall, loc) {
		instant := wall.Add(-time.Duration(offset) * time.Second)
		if instant.In(loc).Format(constant.DateTimeFormat) == wallText {
			matches = append(matches, instant.UTC())
		}
	}

	switch len(matches) {
	case 0:
		return time.Time{}, fmt.Errorf("%s in %s: %w", wallText, loc, ErrNonExistentTime)
	case 1:
		return matches[0], nil
	default:
		return time.Time{}, fmt.Errorf("%s in %s: %w", wallText, loc, ErrAmbiguousTime)
	}
}

// Shift adds the zone offset in effect at the converter's current moment.
func (c Converter) Shift(utc time.Time, tz string) (time.Time, error) {
	loc, err := c.LoadZone(tz)
	if err != nil {
		return time.Time{}, err
	}

	_, offset := c.now().In(loc).Zone()

	utc = utc.UTC()
	naive := time.Date(utc.Year(), utc.Month(), utc.Day(), utc.Hour(), utc.Minute(), utc.Second(), 0, time.UTC)

	return naive.Add(time.Duration(offset) * time.Second), nil
}

func (c Converter) ToUTC(local, tz string) (string, error) {
	naive, ok := ParseDateTime(local)
	if !ok {
		return constant.Empty, fmt.Errorf("%q: %w", local, ErrInvalidDateTime)
	}

	utc, err := c.Localize(naive, tz)
	if err != nil {
		return constant.Empty, err
	}

	return FormatDateTime(utc), nil
}

func (c Converter) ToLocal(utc, tz string) (string, error) {
	naive, ok := ParseDateTime(utc)
	if !ok {
		return constant.Empty, fmt.Errorf("%q: %w", utc, ErrInvalidDateTime)
	}

	local, err := c.Shift(naive, tz)
	if err != nil {
		return constant.Empty, err
	}

	return FormatDateTime(local), nil
}

// ToUTC converts a naive local timestamp using the default converter.
func ToUTC(local, tz string) (string, error) {
	return defaultConverter.ToUTC(local, tz)
}

// ToLocal converts a naive UTC timestamp using the default converter.
func ToLocal(utc, tz string) (string, error) {
	return defaultConverter.ToLocal(utc, tz)
}

// ParseDateTime parses a naive server timestamp. Malformed input is reported
// through ok rather than an error; callers decide whether absence is fatal.
func ParseDateTime(value string) (t time.Time, ok bool) {
	t, err := time.Parse(constant.DateTimeFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func FormatDateTime(t time.Time) string {
	return t.Format(constant.DateTimeFormat)
}

func candidateOffsets(wall time.Time, loc *time.Location) []int {
	offsets := []int{}

	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, offset := wall.Add(probe).In(loc).Zone()
		if !slices.Contains(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}

	return offsets
}

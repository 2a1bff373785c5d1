package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"hotelboard/internal/domains/wizard/model"
	"hotelboard/shared"
	"hotelboard/shared/failure"
	"hotelboard/shared/timezone"
)

// SelectorDefaults resolves selector defaults from a client action context:
// date is read in the session zone, converted to UTC and moved forward by
// offset; room_id is coerced to an integer.
func SelectorDefaults(converter timezone.Converter, tz string, offset time.Duration, actionContext map[string]any) (selector model.Selector, err error) {
	if value, ok := actionContext[model.ContextKeyDate]; ok {
		date, err := contextString(model.ContextKeyDate, value)
		if err != nil {
			return selector, err
		}

		utc, err := converter.ToUTC(date, tz)
		if err != nil {
			return selector, failure.BadRequest(err) // nolint:wrapcheck
		}

		checkIn, _ := timezone.ParseDateTime(utc)
		selector.CheckIn = timezone.FormatDateTime(checkIn.Add(offset))
	}

	if value, ok := actionContext[model.ContextKeyRoomID]; ok {
		selector.RoomID, err = RoomID(value)
		if err != nil {
			return selector, err
		}
	}

	return selector, nil
}

// QuickReservationDefaults copies date verbatim and coerces room_id.
func QuickReservationDefaults(actionContext map[string]any) (res model.QuickReservation, err error) {
	if value, ok := actionContext[model.ContextKeyDate]; ok {
		res.CheckIn, err = contextString(model.ContextKeyDate, value)
		if err != nil {
			return res, err
		}
	}

	if value, ok := actionContext[model.ContextKeyRoomID]; ok {
		res.RoomID, err = RoomID(value)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

// RoomID accepts integers, integral floats and numeric strings.
func RoomID(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			break
		}

		return int64(v), nil
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			break
		}

		return id, nil
	case string:
		id, err := shared.ConvertStringToInt64(v)
		if err != nil {
			break
		}

		return id, nil
	}

	return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be an integer, got %v", model.ContextKeyRoomID, value)) // nolint:wrapcheck
}

func contextString(key string, value any) (string, error) {
	text, ok := value.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return "", failure.BadRequestFromString(fmt.Sprintf("%s must be a date time formatted as 2006-01-02 15:04:05", key)) // nolint:wrapcheck
	}

	return text, nil
}

package service

import (
	"fmt"

	"hotelboard/internal/domains/wizard/model"
	"hotelboard/shared/failure"
)

// Describe returns the window action the client opens for action. Only the
// descriptor is built; no record is created.
func Describe(action string, selector model.Selector) (model.WindowAction, error) {
	switch action {
	case model.ActionNewReservation:
		return formAction(model.ResModelReservation, map[string]any{
			model.ContextKeyRoomID:      selector.RoomID,
			model.ContextKeyCheckinDate: selector.CheckIn,
		}), nil
	case model.ActionNewCheckin:
		return formAction(model.ResModelFolio, map[string]any{
			model.ContextKeyRoomID:      selector.RoomID,
			model.ContextKeyCheckinDate: selector.CheckIn,
		}), nil
	case model.ActionRoomBlocking:
		return formAction(model.ResModelMaintenance, map[string]any{
			model.ContextKeyRoomNo: selector.RoomID,
			model.ContextKeyDate:   selector.CheckIn,
		}), nil
	case model.ActionHousekeeping:
		return formAction(model.ResModelHousekeeping, nil), nil
	}

	return model.WindowAction{}, failure.BadRequestFromString(fmt.Sprintf("unknown wizard action %q", action)) // nolint:wrapcheck
}

func formAction(resModel string, context map[string]any) model.WindowAction {
	return model.WindowAction{
		Type:     model.ActionTypeWindow,
		ResModel: resModel,
		ViewType: model.ViewModeForm,
		ViewMode: model.ViewModeForm,
		Target:   model.TargetNew,
		Context:  context,
		Flags: map[string]any{
			"form": map[string]any{"action_buttons": true},
		},
	}
}

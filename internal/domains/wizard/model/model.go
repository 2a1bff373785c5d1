package model

import "time"

const (
	EntityName = "wizard"
)

// Selector actions.
const (
	ActionNewReservation = "new_reservation"
	ActionNewCheckin     = "new_checkin"
	ActionRoomBlocking   = "room_blocking"
	ActionHousekeeping   = "housekeeping"
)

// Target models opened by the selector actions.
const (
	ResModelReservation  = "hotel.reservation"
	ResModelFolio        = "hotel.folio"
	ResModelMaintenance  = "hotel.room.maintenance"
	ResModelHousekeeping = "hotel.housekeeping"
)

const (
	ActionTypeWindow = "ir.actions.act_window"
	ViewModeForm     = "form"
	TargetNew        = "new"
)

// Context keys read from and written to client action contexts.
const (
	ContextKeyDate        = "date"
	ContextKeyRoomID      = "room_id"
	ContextKeyRoomNo      = "room_no"
	ContextKeyCheckinDate = "checkin_date"
)

// Selector is the transient wizard a clerk opens from a board cell.
type Selector struct {
	ID        string    `json:"id"`
	CheckIn   string    `json:"check_in"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

// QuickReservation holds the defaults of a quick room reservation form.
type QuickReservation struct {
	CheckIn string `json:"check_in,omitempty"`
	RoomID  int64  `json:"room_id,omitempty"`
}

// WindowAction describes a form the client should open. It performs nothing
// by itself.
type WindowAction struct {
	Type     string         `json:"type"`
	ResModel string         `json:"res_model"`
	ViewType string         `json:"view_type"`
	ViewMode string         `json:"view_mode"`
	Target   string         `json:"target"`
	Context  map[string]any `json:"context,omitempty"`
	Flags    map[string]any `json:"flags"`
}

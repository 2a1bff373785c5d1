package model

import "time"

const (
	TableName        = "hotel_reservations"
	LineTableName    = "hotel_reservation_lines"
	PartnerTableName = "res_partners"
	EntityName       = "reservation"

	FieldID            = "id"
	FieldReservationNo = "reservation_no"
	FieldState         = "state"
	FieldCheckin       = "checkin"
	FieldCheckout      = "checkout"
	FieldPartnerID     = "partner_id"
	FieldLineID        = "line_id"
)

const (
	StateDraft   = "draft"
	StateConfirm = "confirm"
	StateDone    = "done"
	StateCancel  = "cancel"
)

// ClosedStates never mark a room on the board.
var ClosedStates = []string{StateDone, StateCancel}

// ReservationLine is one reserved room of a reservation, flattened with the
// reservation header and its partner. LineName holds the reserved room name.
type ReservationLine struct {
	ID            int64     `db:"id"`
	ReservationNo string    `db:"reservation_no"`
	State         string    `db:"state"`
	Checkin       time.Time `db:"checkin"`
	Checkout      time.Time `db:"checkout"`
	LineID        int64     `db:"line_id"      table:"hotel_reservation_lines" column:"id"`
	LineName      string    `db:"line_name"    table:"hotel_reservation_lines" column:"name"`
	PartnerName   string    `db:"partner_name" table:"res_partners"            column:"name"`
}

func (ReservationLine) GetJoinQuery() string {
	return "JOIN hotel_reservation_lines ON hotel_reservation_lines.reservation_id = hotel_reservations.id " +
		"JOIN res_partners ON res_partners.id = hotel_reservations.partner_id"
}

package model

const (
	TableName  = "hotel_rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldFloor    = "floor"
	FieldCapacity = "capacity"
	FieldActive   = "active"
)

// Room is a bookable unit. The board matches reservation lines, folio lines
// and maintenance blocks against it by name.
type Room struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Floor    string `db:"floor"`
	Capacity int    `db:"capacity"`
	Active   bool   `db:"active"`
}

package model

import "time"

const (
	TableName     = "hotel_room_maintenance"
	RoomTableName = "hotel_rooms"
	EntityName    = "maintenance"

	FieldID             = "id"
	FieldRoomNo         = "room_no"
	FieldDescription    = "description"
	FieldBlockStartTime = "block_start_time"
	FieldBlockEndTime   = "block_end_time"
)

// Block takes a room out of service between two naive timestamps.
type Block struct {
	ID             int64     `db:"id"`
	RoomNo         int64     `db:"room_no"`
	Description    string    `db:"description"`
	BlockStartTime time.Time `db:"block_start_time"`
	BlockEndTime   time.Time `db:"block_end_time"`
	RoomName       string    `db:"room_name" table:"hotel_rooms" column:"name"`
}

func (Block) GetJoinQuery() string {
	return "JOIN hotel_rooms ON hotel_rooms.id = hotel_room_maintenance.room_no"
}

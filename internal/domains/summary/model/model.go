package model

import "time"

const (
	EntityName = "summary"

	HeaderRooms = "Rooms"

	// HeaderDayLayout renders a board column as "Mon Jan 01".
	HeaderDayLayout = "Mon Jan 02"
	// TooltipCheckoutLayout renders a local checkout as "2024-01-05  11:00 AM".
	TooltipCheckoutLayout = "2006-01-02  03:04 PM"
)

// Cell states, ordered by precedence: Occupied > Blocked > Reserved/Draft > Free.
const (
	StateFree     = "Free"
	StateDraft    = "Draft"
	StateReserved = "Reserved"
	StateOccupied = "Occupied"
	StateBlocked  = "Blocked"
)

// Record is a stored summary. SummaryHeader and RoomSummary hold the
// serialized grid.
type Record struct {
	ID              string    `json:"id"`
	DateFrom        string    `json:"date_from"`
	DateTo          string    `json:"date_to"`
	Timezone        string    `json:"tz"`
	ConventionImage string    `json:"convention_image"`
	SummaryHeader   string    `json:"summary_header"`
	RoomSummary     string    `json:"room_summary"`
	ComputedAt      time.Time `json:"computed_at"`
}

type Cell struct {
	State       string `json:"state"`
	Date        string `json:"date"`
	RoomID      int64  `json:"room_id"`
	TooltipInfo string `json:"tooltip_info,omitempty"`
	Reservation int64  `json:"reservation,omitempty"`
	FolioID     int64  `json:"folio_id,omitempty"`
}

type RoomRow struct {
	Name  string `json:"name"`
	Value []Cell `json:"value"`
}

type Header struct {
	Header []string `json:"header"`
}

// Grid is one rendering of the board: a header row and one row per room.
type Grid struct {
	Header []string
	Rooms  []RoomRow
}

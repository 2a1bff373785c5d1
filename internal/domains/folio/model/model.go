package model

import (
	"database/sql"
	"time"
)

const (
	TableName        = "hotel_folio_lines"
	FolioTableName   = "hotel_folios"
	ProductTableName = "product_products"
	PartnerTableName = "res_partners"
	EntityName       = "folio_line"

	FieldID           = "id"
	FieldFolioID      = "folio_id"
	FieldProductID    = "product_id"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldState        = "state"
)

const (
	StateDraft  = "draft"
	StateSale   = "sale"
	StateDone   = "done"
	StateCancel = "cancel"
)

// ClosedStates never mark a room as occupied.
var ClosedStates = []string{StateDone, StateCancel}

// FolioLine is a stay line of a folio, flattened with its folio, the sold
// room product and the folio partner. The folio checkout may be unset.
type FolioLine struct {
	ID            int64        `db:"id"`
	FolioID       int64        `db:"folio_id"`
	CheckinDate   time.Time    `db:"checkin_date"`
	CheckoutDate  time.Time    `db:"checkout_date"`
	FolioName     string       `db:"folio_name"     table:"hotel_folios"     column:"name"`
	FolioState    string       `db:"folio_state"    table:"hotel_folios"     column:"state"`
	FolioCheckout sql.NullTime `db:"folio_checkout" table:"hotel_folios"     column:"checkout_date"`
	ProductName   string       `db:"product_name"   table:"product_products" column:"name"`
	PartnerName   string       `db:"partner_name"   table:"res_partners"     column:"name"`
}

func (FolioLine) GetJoinQuery() string {
	return "JOIN hotel_folios ON hotel_folios.id = hotel_folio_lines.folio_id " +
		"JOIN product_products ON product_products.id = hotel_folio_lines.product_id " +
		"JOIN res_partners ON res_partners.id = hotel_folios.partner_id"
}

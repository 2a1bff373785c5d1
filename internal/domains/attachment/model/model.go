package model

import "time"

const (
	TableName  = "ir_attachments"
	EntityName = "attachment"

	FieldID        = "id"
	FieldName      = "name"
	FieldMimetype  = "mimetype"
	FieldFileSize  = "file_size"
	FieldDatas     = "datas"
	FieldURL       = "url"
	FieldWriteDate = "write_date"
)

// Attachment is a named binary. Datas carries the content inline as a data
// URI; URL points at the stored object.
type Attachment struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Mimetype  string    `db:"mimetype"`
	FileSize  int64     `db:"file_size"`
	Datas     string    `db:"datas"`
	URL       string    `db:"url"`
	WriteDate time.Time `db:"write_date"`
}

package dto

import (
	"mime/multipart"

	"hotelboard/internal/domains/attachment/model"
	"hotelboard/shared/base64"
	"hotelboard/shared/constant"
	"hotelboard/shared/timezone"

	"github.com/google/uuid"
)

type UploadAttachmentRequest struct {
	Name string                `json:"name" validate:"required,max=255"`
	File *multipart.FileHeader `json:"file" validate:"required,mimetypes=image/png image/jpeg image/gif image/svg+xml,maxfilesize=2"`
	Data []byte                `json:"-"`
}

func (u *UploadAttachmentRequest) ContentType() string {
	if u.File == nil {
		return constant.Empty
	}

	return u.File.Header.Get(constant.RequestHeaderContentType)
}

func (u *UploadAttachmentRequest) ToModel(url string) model.Attachment {
	return model.Attachment{
		ID:        uuid.NewString(),
		Name:      u.Name,
		Mimetype:  u.ContentType(),
		FileSize:  int64(len(u.Data)),
		Datas:     base64.EncodeDataURI(u.ContentType(), u.Data),
		URL:       url,
		WriteDate: timezone.Now().UTC(),
	}
}

// ToUpdate lists the columns rewritten when an attachment is replaced.
func (u *UploadAttachmentRequest) ToUpdate(url string) map[string]any {
	return map[string]any{
		model.FieldMimetype:  u.ContentType(),
		model.FieldFileSize:  int64(len(u.Data)),
		model.FieldDatas:     base64.EncodeDataURI(u.ContentType(), u.Data),
		model.FieldURL:       url,
		model.FieldWriteDate: timezone.Now().UTC(),
	}
}

type AttachmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Mimetype string `json:"mimetype"`
	FileSize int64  `json:"file_size"`
	URL      string `json:"url"`
	Datas    string `json:"datas,omitempty"`
}

func (a *AttachmentResponse) FromModel(model model.Attachment) {
	a.ID = model.ID
	a.Name = model.Name
	a.Mimetype = model.Mimetype
	a.FileSize = model.FileSize
	a.URL = model.URL
	a.Datas = model.Datas
}

// Image is the value shown by clients: the inline content when present,
// the object URL otherwise.
func (a *AttachmentResponse) Image() string {
	if a.Datas != constant.Empty {
		return a.Datas
	}

	return a.URL
}

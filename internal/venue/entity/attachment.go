package entity

import "time"

// POAttachment is a delivery note or invoice file stored in object storage
// and linked to a purchase order.
type POAttachment struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	POID     string `json:"po_id" gorm:"size:32;not null;index"`
	VenueID  string `json:"venue_id" gorm:"size:32;not null;index"`
	FileName string `json:"file_name" gorm:"size:256;not null"`
	FilePath string `json:"file_path" gorm:"size:512;not null"` // object key in the bucket
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type" gorm:"size:100"`

	UploadedBy string    `json:"uploaded_by" gorm:"size:32"`
	CreatedAt  time.Time `json:"created_at"`
}

func (POAttachment) TableName() string {
	return "po_attachments"
}

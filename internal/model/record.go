package model

import "time"

// Record is a single form submission with up to three attachment slots.
type Record struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	TextField1    string       `json:"textField1"`
	TextField2    string       `json:"textField2"`
	File1         *Attachment  `json:"file1" gorm:"serializer:json"`
	File2         *Attachment  `json:"file2" gorm:"serializer:json"`
	MultipleFiles []Attachment `json:"multipleFiles" gorm:"serializer:json"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Attachment references a file that remote storage has durably accepted.
// A record exclusively owns its attachments; replacing one orphans the old
// remote object instead of deleting it.
type Attachment struct {
	RemoteID        string    `json:"remoteId"`
	StoredName      string    `json:"storedName"`
	OriginalName    string    `json:"originalName"`
	SizeBytes       int64     `json:"sizeBytes"`
	MimeType        string    `json:"mimeType"`
	RemoteCreatedAt time.Time `json:"remoteCreatedAt"`
}

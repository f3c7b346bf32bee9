package models

import "time"

// Document is the metadata record for an exam file stored in object storage.
// The bytes themselves live in the MinIO bucket under ObjectName.
type Document struct {
	ID          string    `bson:"_id,omitempty"`
	OwnerID     string    `bson:"ownerId"`
	FileName    string    `bson:"fileName"`
	ObjectName  string    `bson:"objectName"`
	ContentType string    `bson:"contentType"`
	SizeBytes   int64     `bson:"sizeBytes"`
	UploadedAt  time.Time `bson:"uploadedAt"`
}

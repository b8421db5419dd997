package models

import "time"

// Document is a file uploaded to the object store and filed under a category.
type Document struct {
	// DocumentID is the unique identifier of the document row.
	DocumentID string `json:"document_id"`

	// UserID is the owner of the document.
	UserID string `json:"user_id"`

	// CategoryID is the category the document is filed under.
	CategoryID string `json:"category_id"`

	// Title is the user-visible name. Defaults to the uploaded file name.
	Title string `json:"title"`

	// FileURL is the public URL of the stored object.
	FileURL string `json:"file_url"`

	// ObjectKey is the object store key, "<user_id>/<unix ms>_<file name>".
	ObjectKey string `json:"object_key"`

	// Size is the object size in bytes.
	Size int64 `json:"size"`

	// ContentType is the MIME type detected at upload time.
	ContentType string `json:"content_type"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentUpload describes a file being uploaded into a category.
type DocumentUpload struct {
	UserID      string
	CategoryID  string
	FileName    string
	ContentType string
	Size        int64
}

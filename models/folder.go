package models

import "time"

// Folder groups registres, typically one folder per year/month
// ("Janvier 2025").
type Folder struct {
	FolderID  string    `json:"folder_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}

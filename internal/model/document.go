package model

import "time"

// Document represents an uploaded file plus its descriptive metadata.
// This is a pure domain model with no database-specific dependencies or tags.
// FilePath is the storage key of the binary payload; OriginalFilename is the
// name the file was uploaded under and the name suggested on download.
type Document struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	FilePath         string    `json:"file_path"`
	OriginalFilename string    `json:"original_filename"`
	Author           string    `json:"author"`
	UploadDate       time.Time `json:"upload_date"`
	UpdateDate       time.Time `json:"update_date"`
}

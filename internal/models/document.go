package models

import "time"

// Document is a generated PDF (proposal or invoice) tied to a project.
type Document struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Kind      string    `json:"kind"` // proposal | invoice
	Number    string    `json:"number"`
	FilePath  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import "time"

// Article is a knowledge article. Articles are append-only: once created
// there is no update or delete operation, so UpdatedAt always equals
// CreatedAt in practice but is kept in the schema for forward compatibility.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

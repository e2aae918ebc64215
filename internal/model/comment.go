package model

import "time"

// Comment belongs to an article. ArticleID is declared but not enforced with
// a foreign key, so comments can outlive (or precede) their article.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

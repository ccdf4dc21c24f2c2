package models

import (
	"time"
)

// Article represents an article row. CommentCount is derived by aggregating
// comments and is only present on reads that join them.
type Article struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Body          string    `json:"body,omitempty" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  *int      `json:"comment_count,omitempty" db:"comment_count"`
}

// ArticleListParams carries the raw, untrusted query string of GET /api/articles.
type ArticleListParams struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
}

// VoteUpdate is the validated body of PATCH /api/articles/:article_id.
type VoteUpdate struct {
	IncVotes int
}

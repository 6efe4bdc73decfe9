package entity

import "time"

// Review is an anonymous-friendly product review. AuthorName carries the
// reviewer's chosen display name; the UI substitutes a placeholder for
// anonymous reviews.
type Review struct {
	ID         string
	ProductID  string
	Rating     int // 1-5
	Text       string
	AuthorName string
	Images     []string
	CreatedAt  time.Time
}

package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// ReviewModel is the reviews collection document.
type ReviewModel struct {
	ProductID  string    `firestore:"productId"`
	Rating     int       `firestore:"rating"`
	Text       string    `firestore:"text"`
	AuthorName string    `firestore:"authorName"`
	Images     []string  `firestore:"images"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// FromReview converts a domain entity to its document form.
func FromReview(e *entity.Review) *ReviewModel {
	return &ReviewModel{
		ProductID:  e.ProductID,
		Rating:     e.Rating,
		Text:       e.Text,
		AuthorName: e.AuthorName,
		Images:     e.Images,
		CreatedAt:  e.CreatedAt,
	}
}

// ToEntity converts the document back to the domain entity.
func (m *ReviewModel) ToEntity(id string) *entity.Review {
	return &entity.Review{
		ID:         id,
		ProductID:  m.ProductID,
		Rating:     m.Rating,
		Text:       m.Text,
		AuthorName: m.AuthorName,
		Images:     m.Images,
		CreatedAt:  m.CreatedAt,
	}
}

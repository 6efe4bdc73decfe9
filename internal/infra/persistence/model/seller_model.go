// Package model contains the persistence representations of the domain
// entities, with the document field names used in Firestore.
package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// SellerProfileModel is the sellers collection document.
type SellerProfileModel struct {
	UID       string    `firestore:"uid"`
	Email     string    `firestore:"email"`
	RealName  string    `firestore:"realName"`
	Nickname  string    `firestore:"nickname"`
	StudentID string    `firestore:"studentId"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromSellerProfile converts a domain entity to its document form.
func FromSellerProfile(e *entity.SellerProfile) *SellerProfileModel {
	return &SellerProfileModel{
		UID:       e.UID,
		Email:     e.Email,
		RealName:  e.RealName,
		Nickname:  e.Nickname,
		StudentID: e.StudentID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToEntity converts the document back to the domain entity.
func (m *SellerProfileModel) ToEntity() *entity.SellerProfile {
	return &entity.SellerProfile{
		UID:       m.UID,
		Email:     m.Email,
		RealName:  m.RealName,
		Nickname:  m.Nickname,
		StudentID: m.StudentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

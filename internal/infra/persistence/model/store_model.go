package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// StoreProfileModel is the stores collection document, keyed by seller id.
type StoreProfileModel struct {
	SellerID   string    `firestore:"sellerId"`
	Name       string    `firestore:"name"`
	Bio        string    `firestore:"bio"`
	ProfilePic string    `firestore:"profilePic"`
	BannerPic  string    `firestore:"bannerPic"`
	Category   string    `firestore:"category"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

// FromStoreProfile converts a domain entity to its document form.
func FromStoreProfile(e *entity.StoreProfile) *StoreProfileModel {
	return &StoreProfileModel{
		SellerID:   e.SellerID,
		Name:       e.Name,
		Bio:        e.Bio,
		ProfilePic: e.ProfilePic,
		BannerPic:  e.BannerPic,
		Category:   string(e.Category),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEntity converts the document back to the domain entity.
func (m *StoreProfileModel) ToEntity() *entity.StoreProfile {
	return &entity.StoreProfile{
		SellerID:   m.SellerID,
		Name:       m.Name,
		Bio:        m.Bio,
		ProfilePic: m.ProfilePic,
		BannerPic:  m.BannerPic,
		Category:   entity.StoreCategory(m.Category),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

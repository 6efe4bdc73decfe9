package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// ProductModel is the products collection document.
type ProductModel struct {
	SellerID    string   `firestore:"sellerId"`
	Name        string   `firestore:"name"`
	Description string   `firestore:"description"`
	Images      []string `firestore:"images"`
	Category    string   `firestore:"category"`
	BuyLink     string   `firestore:"buyLink"`
	Type        string   `firestore:"type"`
	InStock     bool     `firestore:"inStock"`

	PreorderEnabled   bool       `firestore:"preorderEnabled"`
	PreorderStartDate *time.Time `firestore:"preorderStartDate,omitempty"`
	PreorderEndDate   *time.Time `firestore:"preorderEndDate,omitempty"`
	PreorderRepeat    string     `firestore:"preorderRepeat,omitempty"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromProduct converts a domain entity to its document form. The document
// id carries the product id and is not duplicated as a field.
func FromProduct(e *entity.Product) *ProductModel {
	return &ProductModel{
		SellerID:          e.SellerID,
		Name:              e.Name,
		Description:       e.Description,
		Images:            e.Images,
		Category:          e.Category,
		BuyLink:           e.BuyLink,
		Type:              string(e.Type),
		InStock:           e.InStock,
		PreorderEnabled:   e.PreorderEnabled,
		PreorderStartDate: e.PreorderStartDate,
		PreorderEndDate:   e.PreorderEndDate,
		PreorderRepeat:    string(e.PreorderRepeat),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// ToEntity converts the document back to the domain entity.
func (m *ProductModel) ToEntity(id string) *entity.Product {
	return &entity.Product{
		ID:                id,
		SellerID:          m.SellerID,
		Name:              m.Name,
		Description:       m.Description,
		Images:            m.Images,
		Category:          m.Category,
		BuyLink:           m.BuyLink,
		Type:              entity.ProductType(m.Type),
		InStock:           m.InStock,
		PreorderEnabled:   m.PreorderEnabled,
		PreorderStartDate: m.PreorderStartDate,
		PreorderEndDate:   m.PreorderEndDate,
		PreorderRepeat:    entity.PreorderRepeat(m.PreorderRepeat),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

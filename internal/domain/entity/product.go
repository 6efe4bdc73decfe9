package entity

import "time"

// ProductType classifies how a product is sold.
type ProductType string

const (
	ProductSecondhand ProductType = "secondhand"
	ProductHomemade   ProductType = "homemade"
	ProductPreorder   ProductType = "preorder"
)

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	switch t {
	case ProductSecondhand, ProductHomemade, ProductPreorder:
		return true
	}

	return false
}

// PreorderRepeat describes how a preorder window recurs.
type PreorderRepeat string

const (
	RepeatNone   PreorderRepeat = "none"
	RepeatWeekly PreorderRepeat = "weekly"
)

// Product is a single listing on a seller's storefront.
type Product struct {
	ID          string
	SellerID    string
	Name        string
	Description string
	Images      []string // URLs on the external image host.
	Category    string
	BuyLink     string // External contact/purchase link (e.g. a chat URL).
	Type        ProductType
	InStock     bool

	// Preorder window, only meaningful when Type == ProductPreorder.
	PreorderEnabled   bool
	PreorderStartDate *time.Time
	PreorderEndDate   *time.Time
	PreorderRepeat    PreorderRepeat

	CreatedAt time.Time
	UpdatedAt time.Time
}

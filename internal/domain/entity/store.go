package entity

import "time"

// StoreCategory classifies a storefront. The set is fixed by the product.
type StoreCategory string

const (
	CategoryFood       StoreCategory = "food"
	CategorySecondhand StoreCategory = "secondhand"
	CategoryHomemade   StoreCategory = "homemade"
	CategoryGadgets    StoreCategory = "gadgets"
	CategoryBooks      StoreCategory = "books"
	CategoryClothing   StoreCategory = "clothing"
	CategoryOther      StoreCategory = "other"
)

// StoreCategories lists every valid category, in display order.
var StoreCategories = []StoreCategory{
	CategoryFood,
	CategorySecondhand,
	CategoryHomemade,
	CategoryGadgets,
	CategoryBooks,
	CategoryClothing,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c StoreCategory) Valid() bool {
	for _, known := range StoreCategories {
		if c == known {
			return true
		}
	}

	return false
}

// StoreProfile represents a seller's public storefront, upserted during
// onboarding step 2 and thereafter. One-to-one with SellerProfile; its
// existence is the sole signal for "needs store setup" vs "fully onboarded".
type StoreProfile struct {
	SellerID   string        // Equals the seller's UID; document key in the data service.
	Name       string        // Storefront display name.
	Bio        string        // Short description shown on the store page.
	ProfilePic string        // URL of the store avatar image.
	BannerPic  string        // URL of the banner image, optional.
	Category   StoreCategory // One of StoreCategories.
	CreatedAt  time.Time     // Timestamp of store creation, preserved across upserts.
	UpdatedAt  time.Time     // Timestamp of the last upsert.
}

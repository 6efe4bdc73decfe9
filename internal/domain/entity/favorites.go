package entity

import "slices"

// Favorites is the device-local, account-independent pair of id sets the
// end user has marked as liked/followed. The JSON field names and the
// two-array shape are a persistence contract shared with other readers of
// the storage key and must not change without a migration.
type Favorites struct {
	Products []string `json:"products"`
	Stores   []string `json:"stores"`
}

// NewFavorites returns an empty record with both slices allocated, so the
// serialized form is always {"products":[],"stores":[]} rather than nulls.
func NewFavorites() Favorites {
	return Favorites{Products: []string{}, Stores: []string{}}
}

// HasProduct reports membership of a product id.
func (f Favorites) HasProduct(id string) bool {
	return slices.Contains(f.Products, id)
}

// HasStore reports membership of a store (seller) id.
func (f Favorites) HasStore(id string) bool {
	return slices.Contains(f.Stores, id)
}

// Clone returns a deep copy, so published snapshots cannot alias the
// owner's slices.
func (f Favorites) Clone() Favorites {
	return Favorites{
		Products: slices.Clone(f.Products),
		Stores:   slices.Clone(f.Stores),
	}
}

// Normalize replaces nil slices with empty ones. Records decoded from
// storage may omit either array.
func (f *Favorites) Normalize() {
	if f.Products == nil {
		f.Products = []string{}
	}
	if f.Stores == nil {
		f.Stores = []string{}
	}
}

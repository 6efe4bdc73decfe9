// Package firestore implements the domain repository interfaces on top of
// Cloud Firestore.
package firestore

import (
	"context"

	"bazaar/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

const (
	sellersCollection  = "sellers"
	storesCollection   = "stores"
	productsCollection = "products"
	reviewsCollection  = "reviews"
)

// New creates the Firestore client from the Firebase app and closes it on
// shutdown.
func New(ctx context.Context, lc fx.Lifecycle, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

package service

// QRCodeService generates shareable QR codes.
type QRCodeService interface {
	// GenerateStoreQR returns a PNG QR code encoding the public URL of the
	// given storefront.
	GenerateStoreQR(sellerID string) ([]byte, error)
}

package service

// QRCodeService renders connect links as QR images so a user can start
// an authorization flow on the device where they are already signed in
// to the provider (scan on the phone what the desktop shows).
type QRCodeService interface {
	// GenerateLinkQR renders the authorization URL as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}

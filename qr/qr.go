package qr

import qrcode "github.com/skip2/go-qrcode"

// PNG encodes content into a square QR image of the given pixel size.
func PNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}

package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReceiptQR generates a QR code encoding an order receipt reference
	GenerateReceiptQR(orderID uuid.UUID) ([]byte, error)

	// ParseReceiptQR parses QR code data and returns the order ID
	ParseReceiptQR(qrData string) (uuid.UUID, error)
}

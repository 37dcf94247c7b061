package service

import "portal/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStudentCard encodes a student record into a PNG QR code
	GenerateStudentCard(record *entity.RoleRecord) ([]byte, error)

	// ParseStudentCard parses QR code payload text and returns the identity it names
	ParseStudentCard(payload string) (entity.Identity, error)
}

package qrcode

import (
	"encoding/json"
	"strings"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const studentCardType = "student_card"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// StudentCardData is the JSON payload encoded in a student card.
type StudentCardData struct {
	Type      string `json:"type"`
	Identity  string `json:"identity"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Grade     string `json:"grade,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStudentCard encodes the student's identity and display data as a PNG
func (s *qrcodeService) GenerateStudentCard(record *entity.RoleRecord) ([]byte, error) {
	if record == nil || record.Role != entity.RoleStudent {
		return nil, errors.New("student card requires a student record")
	}

	data := StudentCardData{
		Type:      studentCardType,
		Identity:  record.Identity.String(),
		StudentID: record.RoleSpecificID,
		Name:      record.DisplayName,
		Grade:     record.Profile.ClassGrade,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStudentCard parses scanned payload text and returns the identity it names
func (s *qrcodeService) ParseStudentCard(payload string) (entity.Identity, error) {
	var data StudentCardData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != studentCardType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	identity := entity.Identity(strings.TrimSpace(data.Identity))
	if identity.IsZero() {
		return "", errors.New("QR code carries no identity")
	}

	return identity, nil
}

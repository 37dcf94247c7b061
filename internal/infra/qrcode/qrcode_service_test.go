package qrcode

import (
	"encoding/json"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStudentRecord() *entity.RoleRecord {
	record := entity.NewRoleRecord(entity.RoleStudent, "uid-42", "Alice Smith", "alice@example.com", "S-100")
	record.Profile.ClassGrade = "Grade 8"

	return record
}

func TestNewQRCodeService_RecoveryLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"Low letter", "L", qrcode.Low},
		{"Medium word", "medium", qrcode.Medium},
		{"High letter", "Q", qrcode.High},
		{"Highest word", "highest", qrcode.Highest},
		{"Unknown falls back to medium", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level)
			assert.Equal(t, tt.expected, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateStudentCard(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}})

	pngBytes, err := svc.GenerateStudentCard(testStudentRecord())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_GenerateStudentCard_RejectsTeacher(t *testing.T) {
	svc := newQRCodeService(256, "M")
	teacher := entity.NewRoleRecord(entity.RoleTeacher, "uid-7", "John", "john@example.com", "T-7")

	_, err := svc.GenerateStudentCard(teacher)
	assert.Error(t, err)

	_, err = svc.GenerateStudentCard(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseStudentCard(t *testing.T) {
	svc := newQRCodeService(256, "M")

	payload, err := json.Marshal(StudentCardData{
		Type:      studentCardType,
		Identity:  "uid-42",
		StudentID: "S-100",
		Name:      "Alice Smith",
	})
	require.NoError(t, err)

	identity, err := svc.ParseStudentCard(string(payload))
	require.NoError(t, err)
	assert.Equal(t, entity.Identity("uid-42"), identity)
}

func TestQRCodeService_ParseStudentCard_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		errText string
	}{
		{"Invalid JSON", "invalid json", "failed to unmarshal QR code data"},
		{"Wrong type", `{"type":"subscription","identity":"uid-1"}`, "invalid QR code type"},
		{"Missing identity", `{"type":"student_card","identity":"  "}`, "no identity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseStudentCard(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

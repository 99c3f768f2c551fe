package qrgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Размер PNG изображения QR кода в пикселях
const pngSize = 256

// NewCode генерирует уникальный короткий код пропуска вида VMS-1A2B3C4D
func NewCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "VMS-" + strings.ToUpper(raw[:8])
}

// Payload содержимое QR кода, которое сканирует ресепшн
type Payload struct {
	VisitorID string
	Name      string
	Code      string
	VisitDate string
	VisitTime string
}

// String сериализует payload в строку вида id|name|code|date|time
func (p Payload) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", p.VisitorID, p.Name, p.Code, p.VisitDate, p.VisitTime)
}

// EncodePNG генерирует PNG изображение QR кода для payload
func EncodePNG(p Payload) ([]byte, error) {
	png, err := qrcode.Encode(p.String(), qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("qrgen: failed to encode qr code: %w", err)
	}
	return png, nil
}

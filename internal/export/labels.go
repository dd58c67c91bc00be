package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/knitgauge/internal/model"
)

const (
	qrSize       = 32.0 // QR code size in mm
	qrImageName  = "payload_qr"
	qrPixelWidth = 256
)

// EncodePayloadQR returns a PNG QR code holding the payload as JSON, so a
// printed sheet can be scanned back into a renderer.
func EncodePayloadQR(payload model.ExportPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, qrPixelWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// renderPayloadLabel places the payload QR code at x, y with a caption.
func renderPayloadLabel(pdf *fpdf.Fpdf, payload model.ExportPayload, x, y float64) error {
	png, err := EncodePayloadQR(payload)
	if err != nil {
		return err
	}

	pdf.RegisterImageOptionsReader(qrImageName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(qrImageName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, qrSize, qrSize, "D")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+qrSize)
	pdf.CellFormat(qrSize, 3, "payload (JSON)", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

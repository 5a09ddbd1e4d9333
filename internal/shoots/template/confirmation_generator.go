package template

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/signintech/gopdf"
	"github.com/skip2/go-qrcode"

	"studio-backoffice/internal/analytics"
	"studio-backoffice/internal/models"
)

// ConfirmationGenerator renders a one-page booking confirmation PDF with the
// shoot code encoded as a QR for the field team.
type ConfirmationGenerator struct {
	fontPath string
}

func NewConfirmationGenerator() *ConfirmationGenerator {
	return &ConfirmationGenerator{fontPath: "./fonts/DejaVuSans.ttf"}
}

func (g *ConfirmationGenerator) Generate(shoot models.Shoot) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont("dejavu", g.fontPath); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	if err := pdf.SetFont("dejavu", "", 18); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}

	pdf.SetX(40)
	pdf.SetY(40)
	_ = pdf.Cell(nil, "Booking Confirmation")

	_ = pdf.SetFont("dejavu", "", 12)
	lines := []string{
		fmt.Sprintf("Code: %s", shoot.Code),
		fmt.Sprintf("Client: %s", shoot.ClientName),
		fmt.Sprintf("City: %s", shoot.City),
		fmt.Sprintf("Scheduled: %s", shoot.ScheduledAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Status: %s", shoot.Status),
		fmt.Sprintf("Total cost: %.2f", analytics.DeriveTotal(nil, shoot.PhotographyCost, shoot.TravelCost, shoot.EditingCost)),
	}
	y := 80.0
	for _, line := range lines {
		pdf.SetX(40)
		pdf.SetY(y)
		_ = pdf.Cell(nil, line)
		y += 22
	}

	qrBytes, err := qrcode.Encode(shoot.Code, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(qrBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR image: %w", err)
	}
	if err := pdf.ImageFrom(img, 40, y+20, &gopdf.Rect{W: 140, H: 140}); err != nil {
		return nil, fmt.Errorf("failed to place QR: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName: s.config.App.Name,
		OrderDate: o.CreatedAt.Format("2006-01-02 15:04"),
		Order:     o,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData is the data passed to the receipt template
type receiptData struct {
	StoreName string
	OrderDate string
	Order     *order.Order
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Order.OrderNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        h1 { font-size: 20px; border-bottom: 2px solid #333; padding-bottom: 8px; }
        table { width: 100%; border-collapse: collapse; margin-top: 16px; }
        th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; }
        th { background: #f5f5f5; }
        td.amount, th.amount { text-align: right; }
        .summary { margin-top: 24px; width: 50%; margin-left: auto; }
        .summary td { border: none; padding: 3px 8px; }
        .summary tr.total td { border-top: 2px solid #333; font-weight: bold; }
        .meta { color: #777; font-size: 12px; }
    </style>
</head>
<body>
    <h1>{{.StoreName}}</h1>
    <p class="meta">Order {{.Order.OrderNumber}} &middot; {{.OrderDate}}</p>

    <table>
        <tr><th>Item</th><th class="amount">Unit price</th><th class="amount">Qty</th><th class="amount">Subtotal</th></tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.Name}}</td>
            <td class="amount">{{.UnitPrice}}</td>
            <td class="amount">{{.Quantity}}</td>
            <td class="amount">{{.Subtotal}}</td>
        </tr>
        {{end}}
    </table>

    <table class="summary">
        <tr><td>Total item price</td><td class="amount">{{.Order.TotalItemPrice}}</td></tr>
        <tr><td>Item discounts</td><td class="amount">-{{.Order.TotalItemDiscountAmount}}</td></tr>
        <tr><td>Member discount</td><td class="amount">-{{.Order.TotalMemberDiscountAmount}}</td></tr>
        <tr><td>Shipping fee</td><td class="amount">{{.Order.ShippingFee}}</td></tr>
        <tr class="total"><td>Total</td><td class="amount">{{.Order.TotalPrice}}</td></tr>
    </table>
</body>
</html>
`

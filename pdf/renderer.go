package pdf

import (
	"bytes"
	"fmt"

	"facturador-backend/invoice"
	"facturador-backend/utils"

	"github.com/jung-kurt/gofpdf"
)

// Render draws a finalized invoice as an A4 PDF with the fingerprint QR
// code embedded. The session never inspects the output; it is an opaque
// artifact for the caller to serve or store.
func Render(rec invoice.HistoryRecord, qrPNG []byte) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.Cell(0, 10, "FACTURA")
	doc.Ln(12)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Invoice No: %d", rec.InvoiceNumber))
	doc.Ln(6)
	doc.Cell(0, 6, "Date: "+rec.Date)
	doc.Ln(6)
	doc.Cell(0, 6, tr("Client: "+rec.ClientName))
	doc.Ln(6)
	if rec.FiscalField != "" {
		doc.Cell(0, 6, tr("NIT/CI: "+rec.FiscalField))
		doc.Ln(6)
	}
	doc.Ln(4)

	// items table
	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Qty", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Unit Price", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Amount", "1", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	var subtotal float64
	for _, it := range rec.Items {
		amount := it.Quantity * it.UnitPrice
		subtotal += amount
		doc.CellFormat(90, 7, tr(it.Name), "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, fmt.Sprintf("%g", it.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, money(amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	symbol := rec.Currency
	if cur, err := invoice.CurrencyByCode(rec.Currency); err == nil {
		symbol = cur.Symbol
	}

	tax := rec.Total - subtotal
	doc.SetFont("Arial", "", 11)
	totalLine(doc, "Subtotal", utils.FormatAmount("$", subtotal))
	totalLine(doc, "Tax", utils.FormatAmount("$", tax))
	doc.SetFont("Arial", "B", 11)
	totalLine(doc, "Total", utils.FormatAmount("$", rec.Total))
	totalLine(doc, "Total ("+rec.Currency+")", tr(utils.FormatAmount(symbol, rec.ConvertedTotal)))
	doc.Ln(6)

	doc.SetFont("Arial", "", 8)
	doc.Cell(0, 5, "Fingerprint: "+rec.Fingerprint)
	doc.Ln(6)

	if len(qrPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		doc.RegisterImageOptionsReader("fingerprint-qr", opts, bytes.NewReader(qrPNG))
		doc.ImageOptions("fingerprint-qr", 160, 250, 30, 30, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func totalLine(doc *gofpdf.Fpdf, label, value string) {
	doc.CellFormat(155, 6, label, "", 0, "R", false, 0, "")
	doc.CellFormat(35, 6, value, "", 1, "R", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", utils.Round2(v))
}

package controllers

import (
	"fmt"
	"strconv"

	"facturador-backend/invoice"
	"facturador-backend/middlewares"
	"facturador-backend/pdf"
	"facturador-backend/qr"

	"github.com/gofiber/fiber/v2"
)

type finalizeDTO struct {
	ClientName  string `json:"client_name"`
	FiscalField string `json:"fiscal_field"`
	TaxRate     string `json:"tax_rate"`
	Currency    string `json:"currency" validate:"required"`
}

// FinalizeInvoice turns the current build into a history record. The whole
// transition is all-or-nothing inside the session.
func FinalizeInvoice(c *fiber.Ctx) error {
	var dto finalizeDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}

	rec, err := Session.Finalize(invoice.FinalizeInput{
		ClientName:     dto.ClientName,
		FiscalField:    dto.FiscalField,
		TaxRatePercent: invoice.ParseTaxRate(dto.TaxRate),
		Currency:       dto.Currency,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

func GetInvoices(c *fiber.Ctx) error {
	return c.JSON(Session.History())
}

func GetInvoice(c *fiber.Ctx) error {
	index, err := historyIndex(c)
	if err != nil {
		return err
	}
	rec, err := Session.HistoryAt(index)
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

func DeleteInvoice(c *fiber.Ctx) error {
	index, err := historyIndex(c)
	if err != nil {
		return err
	}
	if err := Session.DeleteHistory(index); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// RegenerateInvoice loads a past invoice back into the build state,
// overwriting whatever is pending. Warning about unsaved items is the
// client's job.
func RegenerateInvoice(c *fiber.Ctx) error {
	index, err := historyIndex(c)
	if err != nil {
		return err
	}
	if err := Session.Regenerate(index); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"invoice_number": Session.NextNumber(),
		"items":          Session.Items(),
	})
}

// DownloadInvoicePDF re-renders the stored invoice as a PDF with its
// fingerprint QR code embedded.
func DownloadInvoicePDF(c *fiber.Ctx) error {
	index, err := historyIndex(c)
	if err != nil {
		return err
	}
	rec, err := Session.HistoryAt(index)
	if err != nil {
		return err
	}

	png, err := qr.PNG(invoice.CodePayload(rec.InvoiceNumber, rec.Fingerprint), 256)
	if err != nil {
		return err
	}
	doc, err := pdf.Render(rec, png)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="factura-%d.pdf"`, rec.InvoiceNumber))
	return c.Send(doc)
}

func historyIndex(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid history index")
	}
	return index, nil
}

package controllers

import (
	"facturador-backend/invoice"

	"github.com/gofiber/fiber/v2"
)

// Session is the single invoice-building session served by this process.
// Wired in main before routes are registered.
var Session *invoice.Session

func AddItem(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	item, err := Session.AddItem(invoice.ItemCandidate{
		Name:      data["name"],
		Quantity:  data["quantity"],
		UnitPrice: data["unit_price"],
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func RemoveItem(c *fiber.Ctx) error {
	Session.RemoveItem(c.Params("id"))
	return c.JSON(fiber.Map{"message": "success"})
}

func GetItems(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"invoice_number": Session.NextNumber(),
		"items":          Session.Items(),
	})
}

// GetTotals computes the money view for the current items on demand.
// tax_rate and currency come in as raw query text; bad tax rates fall back
// to the default, bad currencies are an error.
func GetTotals(c *fiber.Ctx) error {
	taxRate := invoice.ParseTaxRate(c.Query("tax_rate"))
	currency := c.Query("currency", "USD")

	totals, err := Session.Totals(taxRate, currency)
	if err != nil {
		return err
	}
	return c.JSON(totals)
}

func GetCurrencies(c *fiber.Ctx) error {
	return c.JSON(invoice.Currencies())
}

package middlewares

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"facturador-backend/invoice"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandlerMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"fiber error keeps its code", fiber.NewError(fiber.StatusTeapot, "nope"), fiber.StatusTeapot},
		{"validation error is 422", &invoice.ValidationError{Fields: map[string]string{"name": "must not be blank"}}, fiber.StatusUnprocessableEntity},
		{"unknown currency is 400", &invoice.UnknownCurrencyError{Code: "XXX"}, fiber.StatusBadRequest},
		{"index out of range is 404", invoice.ErrIndexOutOfRange, fiber.StatusNotFound},
		{"hash unavailable is 503", invoice.ErrHashUnavailable, fiber.StatusServiceUnavailable},
		{"anything else is 500", assert.AnError, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := errorApp(tt.err)
			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorHandlerValidationFields(t *testing.T) {
	app := errorApp(&invoice.ValidationError{Fields: map[string]string{
		"quantity":   "must be greater than 0",
		"unit_price": "must be a number",
	}})
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Message)
	assert.Len(t, body.Errors, 2)
}

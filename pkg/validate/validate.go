package validate

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/invodash/invodash/internal/domain"
)

var valid = validator.New()

// InvoiceFormFields is the raw, still string-typed invoice form as it
// arrives from the client.
type InvoiceFormFields struct {
	CustomerID string
	Amount     string
	Status     string
}

type invoiceRules struct {
	CustomerID int     `validate:"required,gt=0"`
	Amount     float64 `validate:"required,gt=0"`
	Status     string  `validate:"required,oneof=pending paid"`
}

// InvoiceInput coerces and validates a raw invoice form. A non-numeric
// amount or customer id fails coercion outright; it is never smuggled
// through as a zero value.
func InvoiceInput(fields InvoiceFormFields) (domain.InvoiceInput, error) {
	fieldErrs := map[string]string{}

	customerID, err := strconv.Atoi(strings.TrimSpace(fields.CustomerID))
	if err != nil {
		fieldErrs["customer_id"] = "must be an integer"
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(fields.Amount), 64)
	if err != nil {
		fieldErrs["amount"] = "must be a number"
	}
	if len(fieldErrs) > 0 {
		return domain.InvoiceInput{}, domain.NewValidationError(fieldErrs)
	}

	rules := invoiceRules{
		CustomerID: customerID,
		Amount:     amount,
		Status:     fields.Status,
	}
	if err := valid.Struct(rules); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "CustomerID":
				fieldErrs["customer_id"] = "must reference a customer"
			case "Amount":
				fieldErrs["amount"] = "must be greater than zero"
			case "Status":
				fieldErrs["status"] = "must be one of: pending, paid"
			}
		}
		return domain.InvoiceInput{}, domain.NewValidationError(fieldErrs)
	}

	return domain.InvoiceInput{
		CustomerID: customerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(fields.Status),
	}, nil
}

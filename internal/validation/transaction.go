package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - assetId: Must be a valid UUID
//   - type: Must be one of: buy, sell
//   - transactionDate: Must be in YYYY-MM-DD format and not after today
//   - at least two of quantity, pricePerUnit, totalAmount, each positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest, today time.Time) error {
	if err := ValidateUUID(req.AssetID); err != nil {
		return err
	}

	errors := make(map[string]string)

	switch strings.TrimSpace(req.Type) {
	case "":
		errors["type"] = "type is required"
	case string(model.TransactionTypeBuy), string(model.TransactionTypeSell):
	default:
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if strings.TrimSpace(req.TransactionDate) == "" {
		errors["transactionDate"] = "transactionDate is required"
	} else if date, err := ParseDate(req.TransactionDate); err != nil {
		errors["transactionDate"] = err.Error()
	} else if date.After(today) {
		errors["transactionDate"] = "transactionDate cannot be in the future"
	}

	provided := 0
	for field, v := range map[string]*float64{
		"quantity":     req.Quantity,
		"pricePerUnit": req.PricePerUnit,
		"totalAmount":  req.TotalAmount,
	} {
		if v == nil {
			continue
		}
		provided++
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
			errors[field] = field + " must be a positive number"
		}
	}
	if provided < 2 {
		errors["amounts"] = "at least two of quantity, pricePerUnit and totalAmount are required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

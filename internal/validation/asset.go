package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ndewijer/Household-Wealth-Dashboard/internal/api/request"
	"github.com/ndewijer/Household-Wealth-Dashboard/internal/model"
)

var isinPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: non-blank, 100 characters or less
//   - symbol: non-blank, 20 characters or less
//   - type: one of etf, crypto, savings
//
// Optional fields:
//   - isin: 12-character ISIN when provided
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	} else if len(req.Symbol) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !model.AssetType(req.Type).Valid() {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if isin := strings.TrimSpace(req.Isin); isin != "" && !isinPattern.MatchString(strings.ToUpper(isin)) {
		errors["isin"] = "isin must be 12 characters: 2-letter country code, 9 alphanumerics, check digit"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAsset validates a rename request.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Name == nil {
		errors["name"] = "name is required"
	} else {
		validateName(errors, *req.Name)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateCreateInterestRate validates a new rate interval.
//
// Required fields:
//   - rate: annual percentage between 0 and 100
//   - startDate: YYYY-MM-DD
func ValidateCreateInterestRate(req request.CreateInterestRateRequest) error {
	errors := make(map[string]string)

	switch {
	case req.Rate == nil:
		errors["rate"] = "rate is required"
	case math.IsNaN(*req.Rate) || *req.Rate < 0 || *req.Rate > 100:
		errors["rate"] = "rate must be between 0 and 100"
	}

	if strings.TrimSpace(req.StartDate) == "" {
		errors["startDate"] = "startDate is required"
	} else if _, err := ParseDate(req.StartDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateName(errors map[string]string, name string) {
	if strings.TrimSpace(name) == "" {
		errors["name"] = "name is required"
	} else if len(name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}
}

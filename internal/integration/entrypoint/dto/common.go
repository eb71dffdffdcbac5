// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// DateRangeResponse is an inclusive date window.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AmountInput accepts an amount sent either as a JSON number or as a string
// such as "$1,200.50".
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = AmountInput(n.String())
	return nil
}

// Ptr returns nil for an empty amount.
func (a *AmountInput) Ptr() *string {
	if a == nil || *a == "" {
		return nil
	}
	s := string(*a)
	return &s
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func toFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := toFloat(*d)
	return &f
}

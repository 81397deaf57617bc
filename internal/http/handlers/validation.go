package handlers

import (
	"strings"
)

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateItem(i ItemRequest) []ItemValidationError {
	errs := []ItemValidationError{}
	if strings.TrimSpace(i.SKU) == "" {
		errs = append(errs, ItemValidationError{Field: "SKU", Description: "SKU is required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, ItemValidationError{Field: "Name", Description: "Name is required"})
	}
	if i.Quantity < 0 {
		errs = append(errs, ItemValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if i.ReorderLevel < 0 {
		errs = append(errs, ItemValidationError{Field: "ReorderLevel", Description: "Reorder level cannot be negative"})
	}
	if i.UnitCost < 0 {
		errs = append(errs, ItemValidationError{Field: "UnitCost", Description: "Unit cost cannot be negative"})
	}
	return errs
}

package model

import "errors"

var (
	ErrValidation             = errors.New("validation error")         // 400
	ErrPartNotFound           = errors.New("part not found")           // 404
	ErrInvoiceNotFound        = errors.New("invoice not found")        // 404
	ErrDuplicatePartCode      = errors.New("duplicate part code")      // 400
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number") // 400
	ErrInsufficientStock      = errors.New("insufficient stock")       // 400
	ErrInvalidStatus          = errors.New("invalid invoice status")   // 400
	ErrStatusTransition       = errors.New("status transition not allowed")
	ErrInvoiceConflict        = errors.New("invoice conflict")
)

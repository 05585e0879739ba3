package gsjson

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

// ErrNoWorksheetFound indicates that the worksheet selection matched nothing.
var ErrNoWorksheetFound = errors.New("no worksheet found")

// ErrInvalidColumnIdentifier indicates a malformed or wrongly typed column identifier.
var ErrInvalidColumnIdentifier = transform.ErrInvalidColumnIdentifier

// WorksheetError represents a sheet source failure for one worksheet.
type WorksheetError struct {
	Worksheet string
	Op        string // "list", "cells"
	Err       error
}

func (e *WorksheetError) Error() string {
	if e.Worksheet == "" {
		return fmt.Sprintf("sheet source error (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sheet source error in worksheet %q (%s): %v", e.Worksheet, e.Op, e.Err)
}

func (e *WorksheetError) Unwrap() error {
	return e.Err
}

// NewWorksheetError creates a new WorksheetError.
func NewWorksheetError(worksheet, op string, err error) *WorksheetError {
	return &WorksheetError{
		Worksheet: worksheet,
		Op:        op,
		Err:       err,
	}
}

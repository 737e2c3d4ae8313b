package reconcile

import (
	"encoding/json"
	"fmt"
)

// SchemaError means a source could not be parsed into a table.
type SchemaError struct {
	Source string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("unreadable table: %v", e.Err)
	}
	return fmt.Sprintf("unreadable table %s: %v", e.Source, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DataError names a group that could not be reconciled.
type DataError struct {
	ItemNumber string
	Line       int
	Field      string
	Value      string
	Reason     string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("item %q (line %d): %s %q: %s", e.ItemNumber, e.Line, e.Field, e.Value, e.Reason)
}

// MarshalJSON renders the error as an object so that API clients get the
// location alongside the message.
func (e *DataError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"item_number": e.ItemNumber,
		"line":        e.Line,
		"field":       e.Field,
		"value":       e.Value,
		"message":     e.Error(),
	})
}

// FormatError names a start price that is not a number.
type FormatError struct {
	ItemNumber string
	Line       int
	Value      string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("item %q (line %d): start price %q is not a number", e.ItemNumber, e.Line, e.Value)
}

// MarshalJSON renders the warning as an object with its location.
func (e *FormatError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"item_number": e.ItemNumber,
		"line":        e.Line,
		"value":       e.Value,
		"message":     e.Error(),
	})
}

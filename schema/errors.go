package schema

import (
	"errors"
	"fmt"

	"record-mapper/internal/diagnostic"
)

// ErrSchemaConfiguration is matched by every SchemaError.
var ErrSchemaConfiguration = errors.New("schema configuration error")

// SchemaError reports the problems found while building the schema of a
// record type and the record types nested in it.
type SchemaError struct {
	Type        string
	Diagnostics diagnostic.Diagnostics
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error for %q: %v", e.Type, e.Diagnostics.Error())
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaConfiguration
}

// Codes lists the diagnostic codes of all errors, in order.
func (e *SchemaError) Codes() []string {
	codes := make([]string, 0, len(e.Diagnostics.Errors))
	for _, d := range e.Diagnostics.Errors {
		codes = append(codes, d.Code)
	}
	return codes
}

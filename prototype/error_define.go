package prototype

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrJSONFormatErr = errors.New("JSON Format Error")
	ErrUint128Range  = errors.New("value exceeds 128 bits")
)

// OverflowError reports a checked arithmetic failure.
type OverflowError struct {
	Operation string
	Operand1  string
	Operand2  string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("Overflow: Cannot %s with %s and %s", e.Operation, e.Operand1, e.Operand2)
}

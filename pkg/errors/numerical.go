package errors

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxReportedValues limits how many values NumericalInstabilityError prints.
const maxReportedValues = 5

// NumericalInstabilityError reports NaN or ±Inf where a finite value is required.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int // -1 for closed-form results
}

func (e *NumericalInstabilityError) Error() string {
	shown := e.Values
	if len(shown) > maxReportedValues {
		shown = shown[:maxReportedValues]
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	if len(e.Values) > maxReportedValues {
		parts = append(parts, "...")
	}

	where := e.Operation
	if e.Iteration >= 0 {
		where = fmt.Sprintf("%s (iteration %d)", e.Operation, e.Iteration)
	}
	return fmt.Sprintf(prefix+"non-finite values in %s: [%s]", where, strings.Join(parts, ", "))
}

func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckNumericalStability returns a NumericalInstabilityError carrying all of
// values if any of them is not finite.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if !IsFinite(v) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

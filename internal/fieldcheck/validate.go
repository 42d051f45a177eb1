// Package fieldcheck evaluates named field values against a required-non-null rule.
//
// Every Field carries its own optional override message. An absent field yields
// exactly one Violation whose message is the override when set, or DefaultMessage
// otherwise. Present fields never yield violations, and identical (path, message)
// pairs collapse in the returned Result.
//
// Validate keeps no state between fields or between calls and is safe for
// concurrent use.
package fieldcheck

import (
	"errors"
	"fmt"

	"github.com/gabapcia/fieldguard/internal/pkg/validator"
)

// DefaultMessage is the violation message used when a field has no override.
const DefaultMessage = "must not be null"

// ErrInvalidArgument is returned when the field sequence itself is malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// Validate runs one validation pass over fields.
//
// A nil slice, or a field without a name, fails with ErrInvalidArgument.
// An empty, non-nil slice yields an empty Result.
func Validate(fields []Field) (Result, error) {
	if fields == nil {
		return Result{}, fmt.Errorf("%w: nil field sequence", ErrInvalidArgument)
	}

	result := NewResult()
	for i, f := range fields {
		if f.Name == "" {
			return Result{}, fmt.Errorf("%w: field at index %d has no name", ErrInvalidArgument, i)
		}

		if validator.Check(f.Value, validator.TagNotNull) {
			continue
		}

		result.set.Add(Violation{
			Path:    f.Name,
			Message: f.message(),
		})
	}

	return result, nil
}

package training

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is matched by every *UnknownTypeError.
	ErrUnknownType = errors.New("unknown workout type")
	// ErrArity is matched by every *ArityError.
	ErrArity = errors.New("wrong number of fields")
	// ErrInvalidInput is returned when a field would be used as a zero divisor.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnimplemented is returned for a workout with no calorie formula.
	ErrUnimplemented = errors.New("calorie formula not implemented")
)

// UnknownTypeMessage is shown to the user when a batch stops on an unknown
// workout type.
const UnknownTypeMessage = "Не удалось определить вид тренировки, приятного дня."

// UnknownTypeError reports a workout type code that has no training variant.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Code)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// ArityError reports a field list that does not match the variant's fields.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("workout type %s expects %d fields, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

package accident

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when every requested year failed to load, leaving
// nothing to summarize.
var ErrNoData = errors.New("no usable data for any requested year")

// InvalidYearError reports a year argument that cannot be coerced to an integer.
type InvalidYearError struct {
	Value any
}

func (e InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %q: not coercible to an integer", fmt.Sprint(e.Value))
}

// InvalidStateError reports a state-code argument that cannot be coerced to an integer.
type InvalidStateError struct {
	Value any
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state code %q: not coercible to an integer", fmt.Sprint(e.Value))
}

// UnknownStateError reports a state code that coerced fine but does not occur
// anywhere in the loaded year's data.
type UnknownStateError struct {
	Code int
	Year int
}

func (e UnknownStateError) Error() string {
	return fmt.Sprintf("state code %d not present in %d accident data", e.Code, e.Year)
}

package model

// Result is the outcome of a single calculation: either a flux density
// in Tesla or an error. The zero value is Ok(0).
type Result struct {
	value float64
	err   error
}

// Ok returns a successful Result carrying value.
func Ok(value float64) Result {
	return Result{value: value}
}

// Err returns a failed Result. A nil err yields Ok(0).
func Err(err error) Result {
	return Result{err: err}
}

// FromValue builds a Result from a conventional (value, error) pair.
func FromValue(value float64, err error) Result {
	if err != nil {
		return Err(err)
	}
	return Ok(value)
}

// IsOk reports whether the calculation succeeded.
func (r Result) IsOk() bool {
	return r.err == nil
}

// Value returns the flux density in Tesla. It is 0 for a failed Result.
func (r Result) Value() float64 {
	return r.value
}

// Err returns the failure, or nil.
func (r Result) Err() error {
	return r.err
}

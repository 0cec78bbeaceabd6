package profile

import "fmt"

// ValidationError reports a record whose required field is missing or
// malformed. Callers skip the offending item rather than abort.
type ValidationError struct {
    Field string
    Value string
}

func (e *ValidationError) Error() string {
    if e.Value == "" {
        return fmt.Sprintf("validation: %s is required", e.Field)
    }
    return fmt.Sprintf("validation: %s has invalid value %q", e.Field, e.Value)
}

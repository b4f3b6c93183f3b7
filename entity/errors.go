package entity

// ValidationErrors carries save-validation failures keyed by field name so a
// client can surface each message next to the relevant input.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	for field, msg := range v {
		return field + ": " + msg
	}
	return "validation failed"
}

// Any reports whether any field failed.
func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

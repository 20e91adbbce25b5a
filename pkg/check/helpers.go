package check

import "fmt"

// Failf sets the result to failed status with a formatted message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...))
}

// Detail records a diagnostic key/value pair on the result.
func (r *Result) Detail(key string, value any) *Result {
	if r.Details == nil {
		r.Details = make(map[string]any)
	}
	r.Details[key] = value
	return r
}

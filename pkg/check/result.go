package check

// Result holds the outcome of a single page check.
//
// OK is the only field consulted for control flow; Message and Details
// are diagnostic payload carried through to the printed report.
type Result struct {
	Name    string         `json:"-"`
	OK      bool           `json:"ok"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Pass sets the result to passed status.
func (r *Result) Pass() Result {
	r.OK = true
	return *r
}

// Fail sets the result to failed status with a message.
func (r *Result) Fail(message string) Result {
	r.OK = false
	r.Message = message
	return *r
}

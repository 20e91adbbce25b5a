package check

// Overall is the derived pass/fail flag of a whole report.
type Overall struct {
	OK bool `json:"ok"`
}

// Report aggregates the results of a check battery.
// Overall.OK is true iff every result in Details passed.
type Report struct {
	Overall Overall           `json:"overall"`
	Details map[string]Result `json:"details"`

	order []string
}

// NewReport creates an empty report. An empty report passes until a
// failing result is added.
func NewReport() *Report {
	return &Report{
		Overall: Overall{OK: true},
		Details: make(map[string]Result),
	}
}

// Add records a named result and refolds the overall flag.
func (rep *Report) Add(name string, r Result) {
	if _, seen := rep.Details[name]; !seen {
		rep.order = append(rep.order, name)
	}
	rep.Details[name] = r

	ok := true
	for _, res := range rep.Details {
		ok = ok && res.OK
	}
	rep.Overall.OK = ok
}

// OK reports whether every recorded result passed.
func (rep *Report) OK() bool {
	return rep.Overall.OK
}

// Names returns check names in the order they were added.
func (rep *Report) Names() []string {
	names := make([]string, len(rep.order))
	copy(names, rep.order)
	return names
}

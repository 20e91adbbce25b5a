package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jwalton/go-supportscolor"

	"pagecheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		if r.Message != "" {
			fmt.Printf("       %s\n", r.Message)
		}
	}
	for _, k := range sortedKeys(r.Details) {
		fmt.Printf("       %s: %v\n", k, r.Details[k])
	}
}

// PrintReport outputs every result in battery order, then the overall
// verdict.
func PrintReport(rep *check.Report) {
	for _, name := range rep.Names() {
		r := rep.Details[name]
		r.Name = name
		PrintResult(r)
	}
	if rep.OK() {
		fmt.Printf("%soverall: OK%s\n", green, reset)
	} else {
		fmt.Printf("%soverall: FAIL%s\n", red, reset)
	}
}

// ReportJSON renders the report as indented JSON.
func ReportJSON(rep *check.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package testutils

import (
	"fmt"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs a formatted table of comparison results, one row per
// case with failing rows marked by > <. It fails the test if any case has
// Pass=false.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	const (
		Reset = "\033[0m"
		Red   = "\033[31m"
		Green = "\033[32m"
	)

	withNames := false
	for _, tc := range cases {
		if tc.Name != "" {
			withNames = true
			break
		}
	}

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)

	// Header
	if withNames {
		fmt.Fprintf(w, "  Name\tInput\tExpected Value\tReturned Value\t\n")
	} else {
		fmt.Fprintf(w, "  Input\tExpected Value\tReturned Value\t\n")
	}

	var failed []string
	for _, tc := range cases {
		color, leftPtr, rightPtr := Green, " ", " "
		if !tc.Pass {
			color, leftPtr, rightPtr = Red, ">", "<"
			label := tc.Name
			if label == "" {
				label = fmt.Sprintf("%q", tc.Input)
			}
			failed = append(failed, label)
		}
		name := ""
		if withNames {
			name = tc.Name + "\t"
		}
		fmt.Fprintf(w, "%s %s%s\t%s\t%s%s%s\t%s\n",
			leftPtr, name, tc.Input, tc.Expected, color, tc.Actual, Reset, rightPtr)
	}
	w.Flush()
	t.Log("\n" + buf.String())

	if len(failed) > 0 {
		t.Errorf("%d of %d cases failed: %s", len(failed), len(cases), strings.Join(failed, ", "))
	}
}

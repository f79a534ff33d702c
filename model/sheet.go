package model

import "fmt"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is a single problem found while parsing or planning an
// import. Errors block execution, warnings are informational only. The
// column, row, and field references are optional; -1 means not applicable.
type ValidationIssue struct {
	Severity Severity `json:"severity"`
	Column   int      `json:"column"`
	Row      int      `json:"row"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

func (i ValidationIssue) String() string {
	if i.Column >= 0 {
		return fmt.Sprintf("[%s] column %d: %s", i.Severity, i.Column, i.Message)
	}
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

func ErrorIssue(column, row int, field, message string) ValidationIssue {
	return ValidationIssue{Severity: SeverityError, Column: column, Row: row, Field: field, Message: message}
}

func WarningIssue(column, row int, field, message string) ValidationIssue {
	return ValidationIssue{Severity: SeverityWarning, Column: column, Row: row, Field: field, Message: message}
}

// SheetColumn is one franchise's raw data lifted out of a draft sheet. It
// only exists during an import.
type SheetColumn struct {
	ExternalID string
	Name       string
	Picks      []string // positional, index 0 = round 1; blanks allowed
	Position   int      // zero-based column position in the sheet
}

// NonBlankPicks counts the pick cells that actually hold text.
func (c *SheetColumn) NonBlankPicks() int {
	n := 0
	for _, p := range c.Picks {
		if p != "" {
			n++
		}
	}
	return n
}

// SheetParseResult carries the parsed columns plus every issue found along
// the way. Warnings (like a short pick list) sit in the same list as errors;
// OK only considers error severity.
type SheetParseResult struct {
	Columns []SheetColumn
	Issues  []ValidationIssue
}

func (r *SheetParseResult) OK() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return false
		}
	}
	return true
}

// SplitIssues partitions the issues by severity.
func (r *SheetParseResult) SplitIssues() (errors, warnings []ValidationIssue) {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			errors = append(errors, i)
		} else {
			warnings = append(warnings, i)
		}
	}
	return errors, warnings
}

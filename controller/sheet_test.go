package controller

import (
	"strings"
	"testing"

	"github.com/mheath/league_manager/model"
	"github.com/mheath/league_manager/testutils"
)

func TestParseSheet_fullSheet(t *testing.T) {
	text := testutils.SheetText(testutils.FullSheetColumns(12, 0))

	result := ParseSheet(strings.NewReader(text))
	if !result.OK() {
		t.Fatalf("expected a clean parse, got issues: %v", result.Issues)
	}
	if len(result.Columns) != 12 {
		t.Fatalf("expected 12 columns, got %d", len(result.Columns))
	}

	for i, col := range result.Columns {
		if col.Position != i {
			t.Errorf("column %d has position %d", i, col.Position)
		}
		if col.NonBlankPicks() != model.DraftRounds {
			t.Errorf("column %d has %d picks, expected %d", i, col.NonBlankPicks(), model.DraftRounds)
		}
	}
}

func TestParseSheet_byteOrderMark(t *testing.T) {
	text := "\uFEFF" + testutils.SheetText(testutils.FullSheetColumns(2, 0))

	result := ParseSheet(strings.NewReader(text))
	if !result.OK() {
		t.Fatalf("BOM should be stripped, got issues: %v", result.Issues)
	}
	if result.Columns[0].ExternalID != testutils.ExternalID(0) {
		t.Errorf("first identifier corrupted by BOM: %q", result.Columns[0].ExternalID)
	}
}

func TestParseSheet_structuralErrors(t *testing.T) {
	tests := map[string]string{
		"empty sheet":     "",
		"single row":      "9000000000000000001,9000000000000000002\n",
		"no team columns": ",,\n,,\nNA Cloud9,,\n",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			result := ParseSheet(strings.NewReader(text))
			if result.OK() {
				t.Fatal("expected a fatal parse issue, got none")
			}
			if len(result.Columns) != 0 {
				t.Errorf("expected no columns, got %d", len(result.Columns))
			}
		})
	}
}

func TestParseSheet_scanStopsAtEmptyIdentifier(t *testing.T) {
	// Column 2 has an empty identity cell; column 3 must be ignored even
	// though it holds data.
	text := "9000000000000000001,9000000000000000002,,9000000000000000004\n" +
		"Alpha,Beta,Gamma,Delta\n" +
		"NA Cloud9,EU Fnatic,KR T1,CN JDG\n"

	result := ParseSheet(strings.NewReader(text))
	if len(result.Columns) != 2 {
		t.Fatalf("expected scanning to stop at column 2, got %d columns", len(result.Columns))
	}
	if result.Columns[1].Name != "Beta" {
		t.Errorf("unexpected second column: %+v", result.Columns[1])
	}
}

func TestParseSheet_raggedRows(t *testing.T) {
	// Short rows are treated as blank-padded, not as errors.
	text := "9000000000000000001,9000000000000000002\n" +
		"Alpha,Beta\n" +
		"NA Cloud9\n" +
		"EU Fnatic,KR T1\n"

	result := ParseSheet(strings.NewReader(text))
	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
	if result.Columns[1].Picks[0] != "" {
		t.Errorf("expected a blank round-1 pick for column 1, got %q", result.Columns[1].Picks[0])
	}
	if result.Columns[1].Picks[1] != "KR T1" {
		t.Errorf("expected KR T1 in round 2 for column 1, got %q", result.Columns[1].Picks[1])
	}
}

func TestParseSheet_columnIssues(t *testing.T) {
	tests := map[string]struct {
		text     string
		severity model.Severity
		contains string
	}{
		"malformed identifier": {
			text:     "12345,9000000000000000002\nAlpha,Beta\nNA Cloud9,EU Fnatic\n",
			severity: model.SeverityError,
			contains: "not a valid account identifier",
		},
		"identifier too long": {
			text:     "900000000000000000001,9000000000000000002\nAlpha,Beta\nNA Cloud9,EU Fnatic\n",
			severity: model.SeverityError,
			contains: "not a valid account identifier",
		},
		"missing franchise name": {
			text:     "9000000000000000001,9000000000000000002\n,Beta\nNA Cloud9,EU Fnatic\n",
			severity: model.SeverityError,
			contains: "franchise name is missing",
		},
		"short pick list": {
			text:     "9000000000000000001\nAlpha\nNA Cloud9\n",
			severity: model.SeverityWarning,
			contains: "only 1 of 8 picks supplied",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := ParseSheet(strings.NewReader(tc.text))
			found := false
			for _, issue := range result.Issues {
				if issue.Severity == tc.severity && strings.Contains(issue.Message, tc.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %s issue containing %q, got: %v", tc.severity, tc.contains, result.Issues)
			}
		})
	}
}

func TestParseSheet_duplicateIdentifiers(t *testing.T) {
	text := "123456789012345678,9000000000000000002,123456789012345678\n" +
		"Alpha,Beta,Gamma\n" +
		"NA Cloud9,EU Fnatic,KR T1\n"

	result := ParseSheet(strings.NewReader(text))
	if result.OK() {
		t.Fatal("expected a duplicate identifier error")
	}

	var dupes []model.ValidationIssue
	for _, issue := range result.Issues {
		if issue.Severity == model.SeverityError && strings.Contains(issue.Message, "appears in columns") {
			dupes = append(dupes, issue)
		}
	}
	if len(dupes) != 1 {
		t.Fatalf("expected exactly one duplicate error, got %d: %v", len(dupes), dupes)
	}
	if !strings.Contains(dupes[0].Message, "123456789012345678") {
		t.Errorf("duplicate error does not name the value: %s", dupes[0].Message)
	}
	if !strings.Contains(dupes[0].Message, "0, 2") {
		t.Errorf("duplicate error does not name both columns: %s", dupes[0].Message)
	}
}

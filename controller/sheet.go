package controller

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/mheath/league_manager/model"
)

// Row layout of a draft sheet export: row 0 holds external account ids,
// row 1 holds franchise names, rows 2-9 hold picks for rounds 1-8.
const (
	rowExternalID = 0
	rowName       = 1
	rowFirstPick  = 2
)

// External account ids are numeric snowflakes, 17 to 20 digits.
var externalIDRegex = regexp.MustCompile(`^\d{17,20}$`)

func (c *controller) ParseSheet(r io.Reader) *model.SheetParseResult {
	return ParseSheet(r)
}

// ParseSheet reads a comma-separated columnar draft sheet into per-team
// columns. One spreadsheet column per franchise; scanning stops at the first
// column with an empty identity cell, which tolerates trailing blank columns.
func ParseSheet(r io.Reader) *model.SheetParseResult {
	result := &model.SheetParseResult{}

	raw, err := io.ReadAll(r)
	if err != nil {
		result.Issues = append(result.Issues, model.ErrorIssue(-1, -1, "", fmt.Sprintf("error reading sheet: %v", err)))
		return result
	}
	text := strings.TrimPrefix(string(raw), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // rows may be ragged
	rows, err := reader.ReadAll()
	if err != nil {
		result.Issues = append(result.Issues, model.ErrorIssue(-1, -1, "", fmt.Sprintf("error parsing sheet: %v", err)))
		return result
	}

	if len(rows) == 0 {
		result.Issues = append(result.Issues, model.ErrorIssue(-1, -1, "", "sheet is empty"))
		return result
	}
	if len(rows) < 2 {
		result.Issues = append(result.Issues, model.ErrorIssue(-1, -1, "", fmt.Sprintf("sheet needs at least an identifier row and a name row, got %d rows", len(rows))))
		return result
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for col := 0; col < width; col++ {
		externalID := cell(rows, rowExternalID, col)
		if externalID == "" {
			// A blank identity cell ends the sheet; anything to the right is
			// trailing spreadsheet junk.
			break
		}

		column := model.SheetColumn{
			ExternalID: externalID,
			Position:   col,
			Picks:      make([]string, model.DraftRounds),
		}

		if !externalIDRegex.MatchString(externalID) {
			result.Issues = append(result.Issues,
				model.ErrorIssue(col, rowExternalID, "externalId",
					fmt.Sprintf("%q is not a valid account identifier", externalID)))
		}

		column.Name = cell(rows, rowName, col)
		if column.Name == "" {
			result.Issues = append(result.Issues,
				model.ErrorIssue(col, rowName, "name", "franchise name is missing"))
		}

		for round := 0; round < model.DraftRounds; round++ {
			column.Picks[round] = cell(rows, rowFirstPick+round, col)
		}
		if n := column.NonBlankPicks(); n < model.DraftRounds {
			result.Issues = append(result.Issues,
				model.WarningIssue(col, -1, "picks",
					fmt.Sprintf("only %d of %d picks supplied", n, model.DraftRounds)))
		}

		result.Columns = append(result.Columns, column)
	}

	if len(result.Columns) == 0 {
		result.Issues = append(result.Issues, model.ErrorIssue(-1, -1, "", "no team columns found in sheet"))
		return result
	}

	result.Issues = append(result.Issues, duplicateIDIssues(result.Columns)...)

	return result
}

// duplicateIDIssues emits one error per external identifier that appears in
// more than one column, naming every column it appears in.
func duplicateIDIssues(columns []model.SheetColumn) []model.ValidationIssue {
	byID := make(map[string][]int)
	for _, c := range columns {
		byID[c.ExternalID] = append(byID[c.ExternalID], c.Position)
	}

	dupes := make([]string, 0)
	for id, cols := range byID {
		if len(cols) > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)

	issues := make([]model.ValidationIssue, 0, len(dupes))
	for _, id := range dupes {
		cols := byID[id]
		issues = append(issues, model.ErrorIssue(cols[0], rowExternalID, "externalId",
			fmt.Sprintf("account identifier %s appears in columns %s", id, joinInts(cols))))
	}
	return issues
}

func cell(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

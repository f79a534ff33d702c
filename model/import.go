package model

// TeamPreview is the per-column slice of an import plan, carrying everything
// a confirmation screen needs without re-deriving any planner logic.
type TeamPreview struct {
	Column          int    `json:"column"`
	ExternalID      string `json:"externalId"`
	Name            string `json:"name"`
	AccountExists   bool   `json:"accountExists"`
	FranchiseExists bool   `json:"franchiseExists"`
	ResolvedPicks   int    `json:"resolvedPicks"`
	UnresolvedPicks int    `json:"unresolvedPicks"`
}

type ImportPreview struct {
	TotalTeams int           `json:"totalTeams"`
	TotalPicks int           `json:"totalPicks"`
	PerTeam    []TeamPreview `json:"perTeam"`
}

// ImportPlan is the dry-run result of validating a parsed sheet against the
// current league state. Valid is true iff no errors were produced; warnings
// never affect validity.
type ImportPlan struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	Preview  ImportPreview     `json:"preview"`
}

// ImportResult reports what an executed import actually wrote.
type ImportResult struct {
	AccountsCreated    int `json:"accountsCreated"`
	AccountsFound      int `json:"accountsFound"`
	FranchisesCreated  int `json:"franchisesCreated"`
	FranchisesUpdated  int `json:"franchisesUpdated"`
	DraftPicksCreated  int `json:"draftPicksCreated"`
	RosterSlotsCreated int `json:"rosterSlotsCreated"`
}

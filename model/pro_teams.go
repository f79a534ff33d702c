package model

import (
	"strings"
	"unicode"
)

// ProTeam is one of the real competitive teams that gets drafted onto
// franchise rosters, as opposed to the franchises doing the drafting.
type ProTeam struct {
	ID     string // canonical id, league code + team name, e.g. "NACloud9"
	League string // two-letter league code
	Name   string
}

// The five league codes teams can be drafted from. DefaultLeague is the
// code assumed when a sheet names a team without one.
var LeagueCodes = []string{"NA", "EU", "KR", "CN", "BR"}

const DefaultLeague = "NA"

var (
	proTeams = []ProTeam{
		{ID: "NACloud9", League: "NA", Name: "Cloud9"},
		{ID: "NATeamLiquid", League: "NA", Name: "Team Liquid"},
		{ID: "NA100Thieves", League: "NA", Name: "100 Thieves"},
		{ID: "NAFlyQuest", League: "NA", Name: "FlyQuest"},
		{ID: "NADignitas", League: "NA", Name: "Dignitas"},
		{ID: "NANRG", League: "NA", Name: "NRG"},
		{ID: "NAImmortals", League: "NA", Name: "Immortals"},
		{ID: "NAShopify", League: "NA", Name: "Shopify"},

		{ID: "EUFnatic", League: "EU", Name: "Fnatic"},
		{ID: "EUG2", League: "EU", Name: "G2"},
		{ID: "EUMADLions", League: "EU", Name: "MAD Lions"},
		{ID: "EURogue", League: "EU", Name: "Rogue"},
		{ID: "EUVitality", League: "EU", Name: "Vitality"},
		{ID: "EUHeretics", League: "EU", Name: "Heretics"},
		{ID: "EUBDS", League: "EU", Name: "BDS"},
		{ID: "EUSKGaming", League: "EU", Name: "SK Gaming"},

		{ID: "KRT1", League: "KR", Name: "T1"},
		{ID: "KRGenG", League: "KR", Name: "Gen G"},
		{ID: "KRDplusKIA", League: "KR", Name: "Dplus KIA"},
		{ID: "KRDRX", League: "KR", Name: "DRX"},
		{ID: "KRKTRolster", League: "KR", Name: "KT Rolster"},
		{ID: "KRHanwhaLife", League: "KR", Name: "Hanwha Life"},
		{ID: "KRSandbox", League: "KR", Name: "Sandbox"},
		{ID: "KRKwangdong", League: "KR", Name: "Kwangdong"},

		{ID: "CNJDG", League: "CN", Name: "JDG"},
		{ID: "CNBilibili", League: "CN", Name: "Bilibili"},
		{ID: "CNWeibo", League: "CN", Name: "Weibo"},
		{ID: "CNTopEsports", League: "CN", Name: "Top Esports"},
		{ID: "CNRNG", League: "CN", Name: "RNG"},
		{ID: "CNEDG", League: "CN", Name: "EDG"},
		{ID: "CNLNG", League: "CN", Name: "LNG"},
		{ID: "CNInvictus", League: "CN", Name: "Invictus"},

		{ID: "BRLOUD", League: "BR", Name: "LOUD"},
		{ID: "BRPain", League: "BR", Name: "Pain"},
		{ID: "BRFuria", League: "BR", Name: "Furia"},
		{ID: "BRRedCanids", League: "BR", Name: "Red Canids"},
		{ID: "BRKaBuM", League: "BR", Name: "KaBuM"},
		{ID: "BRFluxo", League: "BR", Name: "Fluxo"},
		{ID: "BRVivoKeyd", League: "BR", Name: "Vivo Keyd"},
		{ID: "BRIntz", League: "BR", Name: "Intz"},
	}

	teamsByID   map[string]*ProTeam = buildIDMap()
	teamsByKey  map[string]*ProTeam = buildKeyMap()
	teamsByName map[string]*ProTeam = buildNameMap()
)

// LookupTeam returns the catalog entry for a canonical team id, or nil.
func LookupTeam(id string) *ProTeam {
	return teamsByID[id]
}

type MatchConfidence string

const (
	// MatchHigh means the sheet named the team with its league code.
	MatchHigh MatchConfidence = "high"
	// MatchLow means the league had to be guessed from the bare team name.
	// Callers should surface these to the operator rather than treat them
	// like high-confidence matches.
	MatchLow MatchConfidence = "low"
	// MatchNone means no catalog entry fits the text.
	MatchNone MatchConfidence = "none"
)

type TeamResolution struct {
	Confidence MatchConfidence
	Team       *ProTeam
}

// ResolveTeamName matches free-text from a draft sheet against the pro-team
// catalog. Text starting with a known league code is matched within that
// league; bare names fall back to a catalog-wide name lookup and come back
// low confidence. Never returns an error; absence is MatchNone.
func ResolveTeamName(raw string) TeamResolution {
	norm := normalizeTeamText(raw)
	if norm == "" {
		return TeamResolution{Confidence: MatchNone}
	}

	for _, code := range LeagueCodes {
		prefix := strings.ToLower(code)
		if !strings.HasPrefix(norm, prefix) {
			continue
		}
		if t, found := teamsByKey[norm]; found {
			return TeamResolution{Confidence: MatchHigh, Team: t}
		}
	}

	if t, found := teamsByName[norm]; found && t != nil {
		return TeamResolution{Confidence: MatchLow, Team: t}
	}

	return TeamResolution{Confidence: MatchNone}
}

func normalizeTeamText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func buildIDMap() map[string]*ProTeam {
	m := make(map[string]*ProTeam, len(proTeams))
	for i := range proTeams {
		m[proTeams[i].ID] = &proTeams[i]
	}
	return m
}

func buildKeyMap() map[string]*ProTeam {
	m := make(map[string]*ProTeam, len(proTeams))
	for i := range proTeams {
		t := &proTeams[i]
		m[normalizeTeamText(t.ID)] = t
		m[normalizeTeamText(t.League+t.Name)] = t
	}
	return m
}

// buildNameMap indexes bare team names. A name shared by teams in more than
// one league maps to nil so the fallback stays unambiguous.
func buildNameMap() map[string]*ProTeam {
	m := make(map[string]*ProTeam, len(proTeams))
	for i := range proTeams {
		t := &proTeams[i]
		key := normalizeTeamText(t.Name)
		if existing, found := m[key]; found && existing != t {
			m[key] = nil
			continue
		}
		m[key] = t
	}
	return m
}

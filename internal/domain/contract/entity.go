package contract

import "strings"

// RiskItem is one identified deviation from the baseline.
// ClauseText is verbatim from the document and never translated; the
// explanatory fields are in the caller-selected Language.
type RiskItem struct {
	ClauseText string    `json:"clause_text"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Category   Category  `json:"category"`
	Baseline   string    `json:"baseline"`
	Deviation  string    `json:"deviation"`
	Suggestion string    `json:"suggestion"`
}

// SafeItem is one clause that conforms to the baseline.
type SafeItem struct {
	ClauseSummary string `json:"clause_summary"`
	Reason        string `json:"reason"`
}

// ContractAnalysis is the aggregate result of one audit.  Both sequences keep
// detection order.
type ContractAnalysis struct {
	Risks       []RiskItem `json:"risks"`
	SafeClauses []SafeItem `json:"safe_clauses"`
}

// HasRisks reports whether any deviation was found.
func (a *ContractAnalysis) HasRisks() bool {
	return a != nil && len(a.Risks) > 0
}

// clauseKey folds case and whitespace so the same clause compares equal
// however the provider spaced or capitalised it.
func clauseKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

//Personal.AI order the ending

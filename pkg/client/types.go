package client

// Risk levels and verdicts as the server emits them.  Risk levels are
// returned as the model wrote them; compare with strings.EqualFold.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"

	VerdictHighRisk  = "high-risk"
	VerdictNegotiate = "negotiate"
	VerdictStandard  = "standard/safe"
)

// RiskItem is one deviation from the baseline.  ClauseText is verbatim.
type RiskItem struct {
	ClauseText string `json:"clause_text"`
	RiskLevel  string `json:"risk_level"`
	Category   string `json:"category"`
	Baseline   string `json:"baseline"`
	Deviation  string `json:"deviation"`
	Suggestion string `json:"suggestion"`
}

// SafeItem is a clause that matches the baseline.
type SafeItem struct {
	ClauseSummary string `json:"clause_summary"`
	Reason        string `json:"reason"`
}

// Analysis is the validated model output.
type Analysis struct {
	Risks       []RiskItem `json:"risks"`
	SafeClauses []SafeItem `json:"safe_clauses"`
}

// Assessment is the server-computed score.  Scored is false when there are
// no risks.
type Assessment struct {
	Scored       bool   `json:"scored"`
	Score        int    `json:"score"`
	Verdict      string `json:"verdict,omitempty"`
	VerdictLabel string `json:"verdict_label,omitempty"`
	Band         string `json:"band"`
	Message      string `json:"message,omitempty"`
}

// AuditRequest is the body of POST /api/v1/audits.
type AuditRequest struct {
	DocumentType string `json:"document_type,omitempty"`
	Language     string `json:"language,omitempty"`
	ContractText string `json:"contract_text"`
	DraftEmail   bool   `json:"draft_email,omitempty"`
	Export       bool   `json:"export,omitempty"`
}

// AuditResult is the response of an audit or a demo.
type AuditResult struct {
	AuditID       string     `json:"audit_id"`
	DocumentType  string     `json:"document_type"`
	DocumentLabel string     `json:"document_label"`
	Language      string     `json:"language"`
	Analysis      *Analysis  `json:"analysis"`
	Assessment    Assessment `json:"assessment"`
	Report        string     `json:"report"`
	Email         string     `json:"email,omitempty"`
	EmailError    string     `json:"email_error,omitempty"`
	Degraded      bool       `json:"degraded"`
	Provider      string     `json:"provider,omitempty"`
	ReportURL     string     `json:"report_url,omitempty"`
	ExportError   string     `json:"export_error,omitempty"`
}

// DocumentType is one entry of the rule catalog.
type DocumentType struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Catalog lists the supported document types and explanation languages.
type Catalog struct {
	DocumentTypes []DocumentType `json:"document_types"`
	Languages     []string       `json:"languages"`
}

// Rulebook is the baseline text for one document type.
type Rulebook struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Rules string `json:"rules"`
}

// HealthStatus is the liveness response.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

//Personal.AI order the ending

package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// wire types keep required-ness observable: a nil pointer is a missing key.
type wireAnalysis struct {
	Risks       *[]wireRisk `json:"risks"`
	SafeClauses *[]wireSafe `json:"safe_clauses"`
}

type wireRisk struct {
	ClauseText *string `json:"clause_text"`
	RiskLevel  *string `json:"risk_level"`
	Category   *string `json:"category"`
	Baseline   *string `json:"baseline"`
	Deviation  *string `json:"deviation"`
	Suggestion *string `json:"suggestion"`
}

type wireSafe struct {
	ClauseSummary *string `json:"clause_summary"`
	Reason        *string `json:"reason"`
}

// ExtractJSON returns the JSON object embedded in raw provider text,
// tolerating markdown fences and leading or trailing prose.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		return s
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// ParseAnalysis decodes raw structured output and validates it against the
// analysis schema.  Enumerated fields are matched case-insensitively and kept
// as returned.  Any violation is a CodeSchemaValidation error.
func ParseAnalysis(raw string) (*ContractAnalysis, error) {
	payload := ExtractJSON(raw)
	if payload == "" {
		return nil, errors.New(errors.CodeSchemaValidation, "structured output is empty")
	}

	var w wireAnalysis
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	if err := dec.Decode(&w); err != nil {
		return nil, errors.Wrap(err, errors.CodeSchemaValidation, "structured output could not be decoded")
	}
	return w.toAnalysis()
}

func schemaErr(format string, args ...interface{}) error {
	return errors.New(errors.CodeSchemaValidation, "structured output does not match schema").
		WithDetail(fmt.Sprintf(format, args...))
}

func (w *wireAnalysis) toAnalysis() (*ContractAnalysis, error) {
	if w.Risks == nil {
		return nil, schemaErr("missing field %q", "risks")
	}
	if w.SafeClauses == nil {
		return nil, schemaErr("missing field %q", "safe_clauses")
	}

	out := &ContractAnalysis{
		Risks:       make([]RiskItem, 0, len(*w.Risks)),
		SafeClauses: make([]SafeItem, 0, len(*w.SafeClauses)),
	}
	for i, r := range *w.Risks {
		item, err := r.toRisk(i)
		if err != nil {
			return nil, err
		}
		out.Risks = append(out.Risks, item)
	}
	for i, s := range *w.SafeClauses {
		item, err := s.toSafe(i)
		if err != nil {
			return nil, err
		}
		out.SafeClauses = append(out.SafeClauses, item)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

func required(field string, idx int, section string, v *string) (string, error) {
	if v == nil {
		return "", schemaErr("%s[%d]: missing field %q", section, idx, field)
	}
	return strings.TrimSpace(*v), nil
}

// verbatim is required without trimming.  Emptiness is checked by Validate.
func verbatim(field string, idx int, section string, v *string) (string, error) {
	if v == nil {
		return "", schemaErr("%s[%d]: missing field %q", section, idx, field)
	}
	return *v, nil
}

func (r wireRisk) toRisk(i int) (RiskItem, error) {
	var item RiskItem
	var err error
	if item.ClauseText, err = verbatim("clause_text", i, "risks", r.ClauseText); err != nil {
		return item, err
	}
	level, err := required("risk_level", i, "risks", r.RiskLevel)
	if err != nil {
		return item, err
	}
	if _, ok := ParseRiskLevel(level); !ok {
		return item, schemaErr("risks[%d]: risk_level %q is not HIGH or MEDIUM", i, level)
	}
	item.RiskLevel = RiskLevel(level)

	cat, err := required("category", i, "risks", r.Category)
	if err != nil {
		return item, err
	}
	if _, ok := ParseCategory(cat); !ok {
		return item, schemaErr("risks[%d]: category %q is not one of Financial, Career, Privacy, Legal, Freedom", i, cat)
	}
	item.Category = Category(cat)

	if item.Baseline, err = required("baseline", i, "risks", r.Baseline); err != nil {
		return item, err
	}
	if item.Deviation, err = required("deviation", i, "risks", r.Deviation); err != nil {
		return item, err
	}
	if item.Suggestion, err = required("suggestion", i, "risks", r.Suggestion); err != nil {
		return item, err
	}
	return item, nil
}

func (s wireSafe) toSafe(i int) (SafeItem, error) {
	var item SafeItem
	var err error
	if item.ClauseSummary, err = required("clause_summary", i, "safe_clauses", s.ClauseSummary); err != nil {
		return item, err
	}
	if item.Reason, err = required("reason", i, "safe_clauses", s.Reason); err != nil {
		return item, err
	}
	return item, nil
}

// Validate checks the invariants of an analysis built in code or decoded
// from a provider: non-empty clause text, known enums in any letter case,
// and no clause both flagged and cleared.
func Validate(a *ContractAnalysis) error {
	if a == nil {
		return schemaErr("analysis is nil")
	}
	flagged := make(map[string]int, len(a.Risks))
	for i, r := range a.Risks {
		if strings.TrimSpace(r.ClauseText) == "" {
			return schemaErr("risks[%d]: clause_text is empty", i)
		}
		if _, ok := ParseRiskLevel(string(r.RiskLevel)); !ok {
			return schemaErr("risks[%d]: risk_level %q is not HIGH or MEDIUM", i, r.RiskLevel)
		}
		if _, ok := ParseCategory(string(r.Category)); !ok {
			return schemaErr("risks[%d]: category %q is not a known category", i, r.Category)
		}
		flagged[clauseKey(r.ClauseText)] = i
	}
	for i, s := range a.SafeClauses {
		if strings.TrimSpace(s.ClauseSummary) == "" {
			return schemaErr("safe_clauses[%d]: clause_summary is empty", i)
		}
		if j, dup := flagged[clauseKey(s.ClauseSummary)]; dup {
			return schemaErr("safe_clauses[%d] repeats risks[%d]; a clause cannot be both flagged and cleared", i, j)
		}
	}
	return nil
}

//Personal.AI order the ending

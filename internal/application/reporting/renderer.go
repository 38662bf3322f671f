// Package reporting renders audit results as the plain-text report and
// exports it to object storage.
package reporting

import (
	"fmt"
	"strings"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
)

// ContentType is the MIME type of a rendered report.
const ContentType = "text/plain; charset=utf-8"

// DefaultProduct brands the header and footer.
const DefaultProduct = "TrueClause"

var rule = strings.Repeat("-", 40)

var verdictIcons = map[contract.Verdict]string{
	contract.VerdictHighRisk:  "❌",
	contract.VerdictNegotiate: "⚠️",
	contract.VerdictStandard:  "✅",
}

// Renderer serialises an analysis into the fixed report layout: header,
// risks, safe clauses, footer.  Output is a pure function of its inputs.
type Renderer struct {
	product string
}

// NewRenderer returns a Renderer branded with product, or DefaultProduct.
func NewRenderer(product string) *Renderer {
	if strings.TrimSpace(product) == "" {
		product = DefaultProduct
	}
	return &Renderer{product: product}
}

// Render writes the report.  The assessment is recomputed by the caller
// from analysis.Risks; a nil analysis renders as an empty one.
func (r *Renderer) Render(analysis *contract.ContractAnalysis, assessment contract.Assessment) string {
	if analysis == nil {
		analysis = &contract.ContractAnalysis{}
	}
	var b strings.Builder

	fmt.Fprintf(&b, "🚩 %s AUDIT REPORT 🚩\n\n", strings.ToUpper(r.product))
	if assessment.Scored {
		fmt.Fprintf(&b, "Toxicity Score: %d%%\n", assessment.Score)
		fmt.Fprintf(&b, "Verdict: %s\n", verdictText(assessment))
	} else {
		b.WriteString("No risks found\n")
		msg := assessment.Message
		if msg == "" {
			msg = contract.NoRisksMessage
		}
		b.WriteString(msg + "\n")
	}
	b.WriteString(rule + "\n\n")

	if len(analysis.Risks) > 0 {
		b.WriteString("⚠️ IDENTIFIED RISKS & DEVIATIONS:\n\n")
		for _, risk := range analysis.Risks {
			fmt.Fprintf(&b, "[%s RISK] | Category: %s\n", strings.ToUpper(string(risk.RiskLevel)), risk.Category)
			fmt.Fprintf(&b, "Found Clause: \"%s\"\n", risk.ClauseText)
			fmt.Fprintf(&b, "Baseline: %s\n", risk.Baseline)
			fmt.Fprintf(&b, "Deviation: %s\n", risk.Deviation)
			fmt.Fprintf(&b, "Suggestion: %s\n", risk.Suggestion)
			b.WriteString(rule + "\n\n")
		}
	}

	if len(analysis.SafeClauses) > 0 {
		b.WriteString("✅ CLAUSES CHECKED & PASSED (STANDARD):\n\n")
		for _, s := range analysis.SafeClauses {
			fmt.Fprintf(&b, "- %s: %s\n", s.ClauseSummary, s.Reason)
		}
		b.WriteString(rule + "\n\n")
	}

	fmt.Fprintf(&b, "Generated by %s (Not Legal Advice)", r.product)
	return b.String()
}

func verdictText(a contract.Assessment) string {
	label := a.VerdictLabel
	if label == "" {
		label = a.Verdict.Label()
	}
	if icon, ok := verdictIcons[a.Verdict]; ok {
		return icon + " " + label
	}
	return label
}

//Personal.AI order the ending

package contract

// Risk weights and the score ceiling.
const (
	HighRiskWeight   = 30
	MediumRiskWeight = 15
	MaxScore         = 100
)

// Verdict thresholds, evaluated high to low.
const (
	HighRiskThreshold  = 70
	NegotiateThreshold = 30
)

// Verdict classifies a score.
type Verdict string

const (
	VerdictHighRisk  Verdict = "high-risk"
	VerdictNegotiate Verdict = "negotiate"
	VerdictStandard  Verdict = "standard/safe"
)

// Label is the headline shown next to the score.
func (v Verdict) Label() string {
	switch v {
	case VerdictHighRisk:
		return "Highly Toxic"
	case VerdictNegotiate:
		return "Negotiate Terms"
	case VerdictStandard:
		return "Generally Safe"
	default:
		return ""
	}
}

func (v Verdict) String() string { return string(v) }

// Band is a display colour.
type Band string

const (
	BandRed    Band = "red"
	BandOrange Band = "orange"
	BandGreen  Band = "green"
)

// NoRisksMessage is reported instead of a score when nothing was flagged.
const NoRisksMessage = "Good news! This contract aligns with standard industry practices. No traps found."

// Weight returns the score contribution of one risk.
func Weight(r RiskItem) int {
	if r.RiskLevel.IsHigh() {
		return HighRiskWeight
	}
	return MediumRiskWeight
}

// Score sums risk weights and caps the total at MaxScore.  The result for an
// empty list is 0 and carries no meaning; callers check HasRisks or use Assess.
func Score(risks []RiskItem) int {
	total := 0
	for _, r := range risks {
		total += Weight(r)
		if total >= MaxScore {
			return MaxScore
		}
	}
	return total
}

// VerdictFor maps a score onto the verdict table.
func VerdictFor(score int) Verdict {
	switch {
	case score >= HighRiskThreshold:
		return VerdictHighRisk
	case score >= NegotiateThreshold:
		return VerdictNegotiate
	default:
		return VerdictStandard
	}
}

// ScoreBand maps a score onto its display colour.
func ScoreBand(score int) Band {
	switch {
	case score > 50:
		return BandRed
	case score > 20:
		return BandOrange
	default:
		return BandGreen
	}
}

// LevelBand maps a risk level onto its display colour.
func LevelBand(l RiskLevel) Band {
	if l.IsHigh() {
		return BandRed
	}
	return BandOrange
}

// Assessment is the derived view of an analysis.  It is recomputed from the
// risks on demand and never stored on its own.
type Assessment struct {
	// Scored is false when the analysis has no risks; Score and Verdict are then zero.
	Scored       bool    `json:"scored"`
	Score        int     `json:"score"`
	Verdict      Verdict `json:"verdict,omitempty"`
	VerdictLabel string  `json:"verdict_label,omitempty"`
	Band         Band    `json:"band"`
	Message      string  `json:"message,omitempty"`
}

// Assess scores risks.  An empty list skips the verdict table entirely.
func Assess(risks []RiskItem) Assessment {
	if len(risks) == 0 {
		return Assessment{Band: BandGreen, Message: NoRisksMessage}
	}
	score := Score(risks)
	verdict := VerdictFor(score)
	return Assessment{
		Scored:       true,
		Score:        score,
		Verdict:      verdict,
		VerdictLabel: verdict.Label(),
		Band:         ScoreBand(score),
	}
}

//Personal.AI order the ending

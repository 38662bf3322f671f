package audit

import (
	"sort"
	"strings"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// Demo is a canned document with a prepared analysis, runnable without
// provider credentials.
type Demo struct {
	Name         string                    `json:"name"`
	DocumentType contract.DocumentType     `json:"document_type"`
	ContractText string                    `json:"contract_text"`
	Analysis     contract.ContractAnalysis `json:"analysis"`
}

var demos = map[string]Demo{
	"employment": {
		Name:         "employment",
		DocumentType: contract.DocumentEmployment,
		ContractText: "EMPLOYMENT AGREEMENT\n\n" +
			"1. The employee shall be on a standard probation period of 6 months.\n" +
			"2. The Company reserves the right to terminate the employee immediately without notice, while the employee must serve a 90-day notice period if they wish to resign.\n" +
			"3. The Employee agrees to pay a training recovery fee of ₹3,00,000 if they leave within the first 2 years of service.\n" +
			"4. The employee is bound by a standard confidentiality agreement (NDA) during and after employment.",
		Analysis: contract.ContractAnalysis{
			Risks: []contract.RiskItem{
				{
					ClauseText: "Company reserves the right to terminate... while employee must serve a 90-day notice",
					RiskLevel:  contract.RiskLevelHigh,
					Category:   contract.CategoryCareer,
					Baseline:   "Mutual notice periods (e.g., 30 to 60 days for BOTH employer and employee).",
					Deviation:  "Highly asymmetric. Gives the company power to fire you instantly, but forces you to stay for 3 months.",
					Suggestion: "Negotiate a mutual notice period (e.g., 30 days for both).",
				},
				{
					ClauseText: "pay a training recovery fee of ₹3,00,000 if they leave within the first 2 years",
					RiskLevel:  contract.RiskLevelHigh,
					Category:   contract.CategoryFinancial,
					Baseline:   "Companies cover standard onboarding costs. Bonds are only fair for expensive 3rd-party certifications.",
					Deviation:  "Arbitrary financial trap. ₹3 Lakhs is excessive for basic training and acts as forced labor leverage.",
					Suggestion: "Ask for the bond to be removed or request an itemized list of training costs.",
				},
			},
			SafeClauses: []contract.SafeItem{
				{ClauseSummary: "Confidentiality (NDA)", Reason: "Standard practice to protect company IP."},
				{ClauseSummary: "6-Month Probation Period", Reason: "Standard duration across the IT industry."},
			},
		},
	},
	"rental": {
		Name:         "rental",
		DocumentType: contract.DocumentRental,
		ContractText: "LEASE AGREEMENT\n\n" +
			"1. The Tenant shall pay a security deposit of ₹1,00,000.\n" +
			"2. The Landlord reserves the right to automatically deduct 50% of the security deposit for 'standard repainting and deep cleaning' upon vacating, regardless of the flat's actual condition.\n" +
			"3. The Tenant must give 2 months' notice to vacate, but the Landlord can evict the Tenant with 24 hours' notice.\n" +
			"4. The Tenant is allowed to use the premises for residential purposes only.",
		Analysis: contract.ContractAnalysis{
			Risks: []contract.RiskItem{
				{
					ClauseText: "automatically deduct 50% of the security deposit for 'standard repainting...'",
					RiskLevel:  contract.RiskLevelHigh,
					Category:   contract.CategoryFinancial,
					Baseline:   "Deductions should only be for actual damages beyond normal wear and tear.",
					Deviation:  "Predatory deduction. Assumes you will damage the property and steals 50k upfront.",
					Suggestion: "Add a clause stating deductions require itemized bills for actual damages.",
				},
				{
					ClauseText: "Tenant must give 2 months' notice... Landlord can evict with 24 hours' notice",
					RiskLevel:  contract.RiskLevelHigh,
					Category:   contract.CategoryFreedom,
					Baseline:   "Equal notice periods (usually 1-2 months for both).",
					Deviation:  "Leaves you vulnerable to sudden homelessness while binding you for 2 months.",
					Suggestion: "Demand a mutual 1-month notice period.",
				},
			},
			SafeClauses: []contract.SafeItem{
				{ClauseSummary: "Security Deposit", Reason: "Collecting a deposit is standard (though amount varies by city)."},
				{ClauseSummary: "Residential Use Only", Reason: "Standard zoning and usage restriction."},
			},
		},
	},
	"freelance": {
		Name:         "freelance",
		DocumentType: contract.DocumentFreelance,
		ContractText: "INDEPENDENT CONTRACTOR AGREEMENT\n\n" +
			"1. The Contractor will operate as an independent contractor, not an employee.\n" +
			"2. The Contractor will be paid strictly on a Net-90 days basis after invoice submission.\n" +
			"3. The Contractor may not work with any other client in the software industry globally for a period of 5 years after project completion.",
		Analysis: contract.ContractAnalysis{
			Risks: []contract.RiskItem{
				{
					ClauseText: "paid strictly on a Net-90 days basis",
					RiskLevel:  contract.RiskLevelMedium,
					Category:   contract.CategoryFinancial,
					Baseline:   "Net-15 to Net-30 days is standard for freelancers.",
					Deviation:  "Client is holding your money for 3 months interest-free.",
					Suggestion: "Negotiate Net-15 or Net-30 payment terms.",
				},
				{
					ClauseText: "may not work with any other client... globally for a period of 5 years",
					RiskLevel:  contract.RiskLevelHigh,
					Category:   contract.CategoryCareer,
					Baseline:   "Non-competes should be highly specific (direct competitors) and short (6-12 months).",
					Deviation:  "Absurdly broad. Prevents you from working in your own industry globally for 5 years.",
					Suggestion: "Restrict the non-compete to specific direct competitors and reduce duration to 6 months.",
				},
			},
			SafeClauses: []contract.SafeItem{
				{ClauseSummary: "Independent Contractor Status", Reason: "Standard classification for freelance work, exempting client from employee benefits."},
			},
		},
	},
}

// DemoNames lists the built-in demos in sorted order.
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for n := range demos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupDemo returns a deep copy of the named demo so callers may mutate it.
func LookupDemo(name string) (Demo, error) {
	d, ok := demos[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Demo{}, errors.NotFound("unknown demo").
			WithDetail("available: " + strings.Join(DemoNames(), ", "))
	}
	d.Analysis.Risks = append([]contract.RiskItem(nil), d.Analysis.Risks...)
	d.Analysis.SafeClauses = append([]contract.SafeItem(nil), d.Analysis.SafeClauses...)
	return d, nil
}

// Demo renders a built-in demo through the scoring and report pipeline.
// The prepared analyses are written in English, so the result is always
// labelled English.
func (s *Service) Demo(name string) (*Result, error) {
	d, err := LookupDemo(name)
	if err != nil {
		return nil, err
	}
	return s.Present(string(d.DocumentType), string(contract.LanguageEnglish), &d.Analysis)
}

//Personal.AI order the ending

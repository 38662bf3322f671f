package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

func TestDemoNames(t *testing.T) {
	assert.Equal(t, []string{"employment", "freelance", "rental"}, DemoNames())
}

func TestDemo_Scores(t *testing.T) {
	primary := common.NewMockProvider("primary", "")
	svc := newService(t, primary, common.NewMockProvider("secondary", ""))

	cases := []struct {
		name    string
		score   int
		verdict contract.Verdict
		label   string
	}{
		{"employment", 60, contract.VerdictNegotiate, "Employment / Job Offer"},
		{"rental", 60, contract.VerdictNegotiate, "Rental / Lease Agreement"},
		{"freelance", 45, contract.VerdictNegotiate, "Freelance / Agency Contract"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Demo(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Assessment.Score)
			assert.Equal(t, tc.verdict, res.Assessment.Verdict)
			assert.Equal(t, tc.label, res.DocumentLabel)
			assert.Equal(t, contract.LanguageEnglish, res.Language)
			assert.Contains(t, res.Report, "Generated by TrueClause (Not Legal Advice)")
		})
	}
	assert.Equal(t, 0, primary.Calls())
}

func TestLookupDemo_CopiesAnalysis(t *testing.T) {
	d, err := LookupDemo(" Rental ")
	require.NoError(t, err)
	d.Analysis.Risks[0].ClauseText = "changed"

	again, err := LookupDemo("rental")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Analysis.Risks[0].ClauseText)
	assert.GreaterOrEqual(t, contract.WordCount(again.ContractText), contract.DefaultMinWords)
}

func TestLookupDemo_Unknown(t *testing.T) {
	_, err := LookupDemo("nda")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
	assert.Contains(t, err.Error(), "employment, freelance, rental")
}

//Personal.AI order the ending

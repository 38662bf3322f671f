package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

const analysisJSON = `{
  "risks": [
    {"clause_text": "deduct half of the deposit for repainting", "risk_level": "High", "category": "financial",
     "baseline": "Deductions only for actual damage.", "deviation": "Predatory.", "suggestion": "Require itemized bills."},
    {"clause_text": "rent may rise 5% every year", "risk_level": "Medium", "category": "Financial",
     "baseline": "Rent revisions by mutual consent.", "deviation": "Unilateral.", "suggestion": "Cap at 5% after renewal."}
  ],
  "safe_clauses": [{"clause_summary": "Security Deposit", "reason": "Two months is standard."}]
}`

const leaseText = "This lease agreement is made between the landlord and the tenant. The tenant shall pay " +
	"a security deposit of two months rent. The landlord may deduct half of the deposit for repainting " +
	"when the tenant leaves the premises."

// fakeInference is an OpenAI-compatible chat completions endpoint.  JSON-mode
// requests get analysisJSON; text requests get a short email.
type fakeInference struct {
	srv   *httptest.Server
	calls int32
}

func newFakeInference(t *testing.T) *fakeInference {
	t.Helper()
	f := &fakeInference{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.calls, 1)
		body, _ := io.ReadAll(r.Body)
		content := "Dear Landlord,\n\nI would like to discuss the deposit clause.\n\nRegards"
		if strings.Contains(string(body), "response_format") {
			content = analysisJSON
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// config points both providers at the fake so no real key is needed.
func (f *fakeInference) config(t *testing.T) string {
	t.Helper()
	return writeFile(t, "config.yaml", fmt.Sprintf(`
log:
  level: error
  format: console
inference:
  attempt_timeout: 5s
  primary:
    name: fake-primary
    kind: openai
    model: test-model
    api_key: test
    base_url: %[1]s
  secondary:
    name: fake-secondary
    kind: openai
    model: test-model
    api_key: test
    base_url: %[1]s
`, f.srv.URL))
}

func TestAuditCmd_Text(t *testing.T) {
	f := newFakeInference(t)
	contractFile := writeFile(t, "lease.txt", leaseText)

	out, errOut, err := execute(t, "", "audit", "-c", f.config(t), "-f", contractFile, "-t", "rental")
	require.NoError(t, err)
	assert.Contains(t, out, "TRUECLAUSE AUDIT REPORT")
	assert.Contains(t, out, "Toxicity Score: 45%")
	assert.Contains(t, out, "[HIGH RISK] | Category: financial")
	assert.Contains(t, errOut, "WARNING: 1 high-risk clause(s) found")
	assert.EqualValues(t, 1, atomic.LoadInt32(&f.calls))
}

func TestAuditCmd_JSONWithEmailFromStdin(t *testing.T) {
	f := newFakeInference(t)

	out, _, err := execute(t, leaseText, "audit", "-c", f.config(t), "-f", "-", "-t", "Rental / Lease Agreement",
		"-l", "hinglish", "--email", "-o", "json")
	require.NoError(t, err)

	var res audit.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "rental", string(res.DocumentType))
	assert.Equal(t, "Hinglish", string(res.Language))
	assert.Equal(t, 45, res.Assessment.Score)
	assert.Len(t, res.Analysis.Risks, 2)
	assert.Contains(t, res.Email, "Dear Landlord")
	assert.False(t, res.Degraded)
	assert.EqualValues(t, 2, atomic.LoadInt32(&f.calls))
}

func TestAuditCmd_TableAndReportFile(t *testing.T) {
	f := newFakeInference(t)
	contractFile := writeFile(t, "lease.txt", leaseText)
	reportFile := contractFile + ".report"

	out, _, err := execute(t, "", "audit", "-c", f.config(t), "-f", contractFile, "-t", "rental",
		"-o", "table", "--report-file", reportFile)
	require.NoError(t, err)
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "MEDIUM")
	assert.Contains(t, out, "Score: 45/100  Negotiate Terms")

	report, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Generated by TrueClause (Not Legal Advice)")
}

func TestAuditCmd_RejectsBeforeInference(t *testing.T) {
	f := newFakeInference(t)
	cfg := f.config(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"short document", []string{"-f", writeFile(t, "short.txt", "too short")}, errors.CodeDocumentUnreadable},
		{"missing file", []string{"-f", "/nonexistent/contract.txt"}, errors.CodeDocumentUnreadable},
		{"unknown type", []string{"-f", writeFile(t, "a.txt", leaseText), "-t", "mortgage"}, errors.CodeUnknownDocumentType},
		{"bad language", []string{"-f", writeFile(t, "b.txt", leaseText), "-l", "French"}, errors.CodeUnsupportedLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", append([]string{"audit", "-c", cfg}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
	assert.Zero(t, atomic.LoadInt32(&f.calls))
}

func TestAuditCmd_RequiresFile(t *testing.T) {
	_, _, err := execute(t, "", "audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestEmailCmd_FromSavedResult(t *testing.T) {
	f := newFakeInference(t)
	saved := writeFile(t, "result.json", `{"document_type": "rental", "analysis": `+analysisJSON+`}`)

	out, _, err := execute(t, "", "email", "-c", f.config(t), "-f", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Dear Landlord")
}

func TestEmailCmd_BareAnalysisJSON(t *testing.T) {
	f := newFakeInference(t)
	saved := writeFile(t, "analysis.json", analysisJSON)

	out, _, err := execute(t, "", "email", "-c", f.config(t), "-f", saved, "-t", "rental", "-o", "json")
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.True(t, strings.HasPrefix(body["email"], "Dear Landlord"))
}

func TestEmailCmd_Invalid(t *testing.T) {
	f := newFakeInference(t)

	_, _, err := execute(t, "", "email", "-c", f.config(t), "-f", writeFile(t, "x.json", "not json"))
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	_, _, err = execute(t, "", "email", "-c", f.config(t), "-f", writeFile(t, "y.json", `{"risks": [], "safe_clauses": []}`))
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
	assert.Zero(t, atomic.LoadInt32(&f.calls))
}

func TestRulesCmd(t *testing.T) {
	out, _, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "Rental / Lease Agreement")

	out, _, err = execute(t, "", "rules", "-o", "json")
	require.NoError(t, err)
	var list struct {
		DocumentTypes []struct{ Key, Label string } `json:"document_types"`
		Languages     []string                      `json:"languages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list.DocumentTypes, 6)
	assert.Equal(t, []string{"English", "Hindi", "Hinglish"}, list.Languages)

	out, _, err = execute(t, "", "rules", "RENTAL")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Rental / Lease Agreement (rental)"))

	_, _, err = execute(t, "", "rules", "mortgage")
	assert.True(t, errors.IsCode(err, errors.CodeUnknownDocumentType))
}

func TestDemoCmd(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, "employment\nfreelance\nrental\n", out)

	out, _, err = execute(t, "", "demo", "rental")
	require.NoError(t, err)
	assert.Contains(t, out, "Toxicity Score: 60%")
	assert.Contains(t, out, "Negotiate Terms")

	out, _, err = execute(t, "", "demo", "Employment", "-o", "json")
	require.NoError(t, err)
	var res audit.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "employment", string(res.DocumentType))
	assert.True(t, res.Assessment.Scored)

	_, _, err = execute(t, "", "demo", "mortgage")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "trueclause "+Version)

	out, _, err = execute(t, "", "version", "-o", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info["version"])
	assert.NotEmpty(t, info["go_version"])
}

//Personal.AI order the ending

package client_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/app"
	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/pkg/client"
)

// newServer runs the real router with default configuration.  No provider
// credentials are set, so only paths that never reach inference succeed.
func newServer(t *testing.T) *client.Client {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Server.Mode = "test"

	a, err := app.New(context.Background(), cfg, nil, "e2e")
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)

	c, err := client.NewClient(srv.URL, client.WithRetryMax(0))
	require.NoError(t, err)
	return c
}

func TestE2E_CatalogAndDemos(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", h.Version)

	cat, err := c.Rules().List(ctx)
	require.NoError(t, err)
	require.Len(t, cat.DocumentTypes, 6)
	assert.Equal(t, []string{"English", "Hindi", "Hinglish"}, cat.Languages)

	rb, err := c.Rules().Get(ctx, "Rental / Lease Agreement")
	require.NoError(t, err)
	assert.Equal(t, "rental", rb.Key)
	assert.NotEmpty(t, rb.Rules)

	names, err := c.Demos().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"employment", "freelance", "rental"}, names)

	res, err := c.Demos().Get(ctx, "rental")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Assessment.Score)
	assert.Equal(t, client.VerdictNegotiate, res.Assessment.Verdict)
	assert.Equal(t, "English", res.Language)
	assert.True(t, strings.HasSuffix(res.Report, "Generated by TrueClause (Not Legal Advice)"))
}

func TestE2E_Rejections(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    *client.AuditRequest
		status int
		code   string
	}{
		{"short", &client.AuditRequest{ContractText: "far too short"}, 422, "AUDIT_001"},
		{"unknown type", &client.AuditRequest{DocumentType: "mortgage", ContractText: "x"}, 400, "AUDIT_005"},
		{"language", &client.AuditRequest{Language: "French", ContractText: "x"}, 400, "AUDIT_006"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Audits().Create(ctx, tt.req)
			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}

	_, err := c.Demos().Get(ctx, "mortgage")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}

func TestE2E_ProvidersUnavailable(t *testing.T) {
	c := newServer(t)
	text := strings.Repeat("The tenant shall pay rent on the first day of every month. ", 4)

	_, err := c.Audits().Create(context.Background(), &client.AuditRequest{DocumentType: "rental", ContractText: text})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "AUDIT_003", apiErr.Code)
	assert.Equal(t, "Both primary and backup engines are currently unavailable due to high traffic.", apiErr.Message)
}

func TestE2E_ClientSideValidation(t *testing.T) {
	c := newServer(t)
	_, err := c.Audits().Create(context.Background(), &client.AuditRequest{})
	assert.Error(t, err)
	_, err = c.Audits().DraftEmail(context.Background(), "rental", &client.Analysis{})
	assert.Error(t, err)
}

//Personal.AI order the ending

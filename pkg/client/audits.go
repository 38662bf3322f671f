package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// AuditsClient runs audits and drafts negotiation emails.
type AuditsClient struct {
	client *Client
}

// Create audits req.ContractText.  Rejections (short text, unknown type or
// language) come back as a 4xx *APIError without any provider call.
func (a *AuditsClient) Create(ctx context.Context, req *AuditRequest) (*AuditResult, error) {
	if req == nil || strings.TrimSpace(req.ContractText) == "" {
		return nil, errors.InvalidParam("contract text is required")
	}
	var out AuditResult
	if err := a.client.post(ctx, apiPrefix+"/audits", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DraftEmail drafts an email from an analysis returned by Create.
func (a *AuditsClient) DraftEmail(ctx context.Context, documentType string, analysis *Analysis) (string, error) {
	if analysis == nil || len(analysis.Risks) == 0 {
		return "", errors.InvalidParam("analysis has no risks to negotiate")
	}
	body := struct {
		DocumentType string    `json:"document_type"`
		Analysis     *Analysis `json:"analysis"`
	}{documentType, analysis}

	var out struct {
		Email string `json:"email"`
	}
	if err := a.client.post(ctx, apiPrefix+"/emails", body, &out); err != nil {
		return "", err
	}
	return out.Email, nil
}

// RulesClient reads the rule catalog.
type RulesClient struct {
	client *Client
}

// List returns the document types and languages.
func (r *RulesClient) List(ctx context.Context) (*Catalog, error) {
	var out Catalog
	if err := r.client.get(ctx, apiPrefix+"/rules", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one rulebook by key or label.
func (r *RulesClient) Get(ctx context.Context, documentType string) (*Rulebook, error) {
	if strings.TrimSpace(documentType) == "" {
		return nil, errors.InvalidParam("document type is required")
	}
	var out Rulebook
	if err := r.client.get(ctx, apiPrefix+"/rules/"+url.PathEscape(documentType), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DemosClient renders the built-in sample audits.
type DemosClient struct {
	client *Client
}

// List returns the demo names.
func (d *DemosClient) List(ctx context.Context) ([]string, error) {
	var out struct {
		Demos []string `json:"demos"`
	}
	if err := d.client.get(ctx, apiPrefix+"/demos", &out); err != nil {
		return nil, err
	}
	return out.Demos, nil
}

// Get renders one demo.  Demo results are always in English.
func (d *DemosClient) Get(ctx context.Context, name string) (*AuditResult, error) {
	path := apiPrefix + "/demos/" + url.PathEscape(name)
	var out AuditResult
	if err := d.client.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//Personal.AI order the ending

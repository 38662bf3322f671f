package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
	"github.com/Gopesh111/TrueClause/internal/domain/contract"
)

// AuditService is the slice of the audit service the HTTP layer needs.
type AuditService interface {
	Audit(ctx context.Context, req audit.Request) (*audit.Result, error)
	DraftEmail(ctx context.Context, documentType string, analysis *contract.ContractAnalysis) (string, error)
	Demo(name string) (*audit.Result, error)
}

// AuditHandler serves audits and negotiation emails.
type AuditHandler struct {
	svc AuditService
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// EmailRequest drafts from a previously returned analysis.
type EmailRequest struct {
	DocumentType string                     `json:"document_type"`
	Analysis     *contract.ContractAnalysis `json:"analysis"`
}

// EmailResponse carries the drafted body.
type EmailResponse struct {
	Email string `json:"email"`
}

// Create handles POST /api/v1/audits.  ?export=true and ?email=true override
// the body flags.
func (h *AuditHandler) Create(c *gin.Context) {
	var req audit.Request
	if !bindJSON(c, &req) {
		return
	}
	if v, ok := c.GetQuery("export"); ok {
		req.Export, _ = strconv.ParseBool(v)
	}
	if v, ok := c.GetQuery("email"); ok {
		req.DraftEmail, _ = strconv.ParseBool(v)
	}

	res, err := h.svc.Audit(c.Request.Context(), req)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Email handles POST /api/v1/emails.
func (h *AuditHandler) Email(c *gin.Context) {
	var req EmailRequest
	if !bindJSON(c, &req) {
		return
	}
	body, err := h.svc.DraftEmail(c.Request.Context(), req.DocumentType, req.Analysis)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, EmailResponse{Email: body})
}

// ListDemos handles GET /api/v1/demos.
func (h *AuditHandler) ListDemos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"demos": audit.DemoNames()})
}

// Demo handles GET /api/v1/demos/:name.
func (h *AuditHandler) Demo(c *gin.Context) {
	res, err := h.svc.Demo(c.Param("name"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

//Personal.AI order the ending

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/domain/rulebook"
)

// RulesHandler exposes the rule catalog read-only.
type RulesHandler struct {
	catalog *rulebook.Catalog
}

// NewRulesHandler creates a RulesHandler.
func NewRulesHandler(catalog *rulebook.Catalog) *RulesHandler {
	return &RulesHandler{catalog: catalog}
}

// DocumentTypeView is one catalog entry without its rule text.
type DocumentTypeView struct {
	Key   contract.DocumentType `json:"key"`
	Label string                `json:"label"`
}

// List handles GET /api/v1/rules.
func (h *RulesHandler) List(c *gin.Context) {
	all := h.catalog.All()
	out := make([]DocumentTypeView, 0, len(all))
	for _, rs := range all {
		out = append(out, DocumentTypeView{Key: rs.Type, Label: rs.Label})
	}
	c.JSON(http.StatusOK, gin.H{
		"document_types": out,
		"languages":      contract.Languages(),
	})
}

// Get handles GET /api/v1/rules/*type.  The type may be a key or a label.
func (h *RulesHandler) Get(c *gin.Context) {
	rs, err := h.catalog.Resolve(strings.TrimPrefix(c.Param("type"), "/"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": rs.Type, "label": rs.Label, "rules": rs.Rules})
}

//Personal.AI order the ending

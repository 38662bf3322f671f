// Package prompt renders the analysis and negotiation-email prompts.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// DefaultProduct is the analyzer persona named in the analysis prompt.
const DefaultProduct = "TrueClause"

// Template names.
const (
	TemplateAnalysisSystem = "analysis.system"
	TemplateAnalysisUser   = "analysis.user"
	TemplateEmail          = "email.user"
)

// UntranslatedClauseInstruction keeps quoted evidence in the source language.
const UntranslatedClauseInstruction = "(clause_text must remain in original language)."

var builtinTemplates = map[string]string{
	TemplateAnalysisSystem: `You are {{.Product}}, an enterprise-grade contract risk analyzer.
RULEBOOK: {{.Rules}}

TASK:
1. Identify RED FLAGS (deviations from baselines). Extract exact quoted text. Explain the standard baseline and how this clause deviates.
2. Identify GREEN FLAGS (standard, fair clauses). List them to prove you are analyzing the document without 'alert fatigue'. Do not flag standard clauses as risks.

LANGUAGE: Write the 'baseline', 'deviation', 'suggestion', 'clause_summary', and 'reason' strictly in {{.Language}}. ` + UntranslatedClauseInstruction,

	TemplateAnalysisUser: `Contract: {{.Contract}}`,

	TemplateEmail: `You are an elite negotiator. Write a highly professional, polite email regarding a {{.DocumentLabel}} to negotiate these red flags:
{{range .Risks}}- Clause: '{{.ClauseText}}'
  Request: {{.Suggestion}}
{{end}}Keep it concise and corporate. Start with "Dear [Name],". No subject line.`,
}

type analysisData struct {
	Product  string
	Rules    string
	Language contract.Language
	Contract string
}

type emailData struct {
	DocumentLabel string
	Risks         []contract.RiskItem
}

// Option configures a Builder.
type Option func(*Builder)

// WithProduct overrides the persona name.
func WithProduct(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.product = name
		}
	}
}

// Builder is immutable after construction and safe for concurrent use.
type Builder struct {
	product   string
	templates map[string]*template.Template
}

// NewBuilder parses the built-in templates.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{product: DefaultProduct, templates: make(map[string]*template.Template, len(builtinTemplates))}
	for _, opt := range opts {
		opt(b)
	}
	for name, raw := range builtinTemplates {
		t, err := template.New(name).Option("missingkey=error").Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "parse prompt template "+name)
		}
		b.templates[name] = t
	}
	return b, nil
}

// MustBuilder is NewBuilder for process start-up.
func MustBuilder(opts ...Option) *Builder {
	b, err := NewBuilder(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// BuildAnalysis binds rules, document text and explanation language.  The
// rules and task go in the system message, the document in the user message.
func (b *Builder) BuildAnalysis(rules, contractText string, language contract.Language) (common.Prompt, error) {
	if strings.TrimSpace(rules) == "" {
		return common.Prompt{}, errors.InvalidParam("rules text is empty")
	}
	if strings.TrimSpace(contractText) == "" {
		return common.Prompt{}, errors.New(errors.CodeDocumentUnreadable, "document text is empty")
	}
	lang, err := contract.ParseLanguage(string(language))
	if err != nil {
		return common.Prompt{}, err
	}

	data := analysisData{Product: b.product, Rules: rules, Language: lang, Contract: contractText}
	system, err := b.render(TemplateAnalysisSystem, data)
	if err != nil {
		return common.Prompt{}, err
	}
	user, err := b.render(TemplateAnalysisUser, data)
	if err != nil {
		return common.Prompt{}, err
	}
	return common.Prompt{System: system, User: user}, nil
}

// BuildEmail lists each risk's clause and suggestion under a negotiation
// brief.  documentLabel is the display label of the document type.
func (b *Builder) BuildEmail(risks []contract.RiskItem, documentLabel string) (common.Prompt, error) {
	if len(risks) == 0 {
		return common.Prompt{}, errors.InvalidParam("no risks to negotiate")
	}
	if strings.TrimSpace(documentLabel) == "" {
		documentLabel = "contract"
	}
	user, err := b.render(TemplateEmail, emailData{DocumentLabel: documentLabel, Risks: risks})
	if err != nil {
		return common.Prompt{}, err
	}
	return common.Prompt{User: user}, nil
}

func (b *Builder) render(name string, data interface{}) (string, error) {
	t, ok := b.templates[name]
	if !ok {
		return "", errors.Newf(errors.CodeInternal, "prompt template %q not registered", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "render prompt template "+name)
	}
	return buf.String(), nil
}

//Personal.AI order the ending

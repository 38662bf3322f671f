// Package audit orchestrates one contract audit: rule selection, prompt
// construction, failover inference, validation, scoring, report rendering,
// and the optional negotiation email and report export.
package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gopesh111/TrueClause/internal/application/reporting"
	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/domain/rulebook"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/internal/intelligence/failover"
	"github.com/Gopesh111/TrueClause/internal/intelligence/prompt"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// Inference is the failover call contract.  *failover.Client implements it.
type Inference interface {
	Invoke(ctx context.Context, p common.Prompt, mode common.Mode, validate failover.Validator) (failover.Result, error)
}

// Recorder receives audit outcomes.  *prometheus.AuditMetrics implements it.
type Recorder interface {
	RecordAudit(documentType, result string, duration time.Duration, risks int, score int, scored bool)
	RecordEmail(success bool)
	RecordExport(success bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordAudit(string, string, time.Duration, int, int, bool) {}
func (noopRecorder) RecordEmail(bool)                                          {}
func (noopRecorder) RecordExport(bool)                                         {}

// Request is one audit.
type Request struct {
	DocumentType string `json:"document_type"`
	Language     string `json:"language"`
	ContractText string `json:"contract_text"`
	DraftEmail   bool   `json:"draft_email"`
	Export       bool   `json:"export"`
}

// Result is what the caller owns after an audit.  Assessment and Report are
// derived from Analysis and recomputed on every call.
type Result struct {
	AuditID       string                     `json:"audit_id"`
	DocumentType  contract.DocumentType      `json:"document_type"`
	DocumentLabel string                     `json:"document_label"`
	Language      contract.Language          `json:"language"`
	Analysis      *contract.ContractAnalysis `json:"analysis"`
	Assessment    contract.Assessment        `json:"assessment"`
	Report        string                     `json:"report"`
	Email         string                     `json:"email,omitempty"`
	EmailError    string                     `json:"email_error,omitempty"`
	Degraded      bool                       `json:"degraded"`
	Provider      string                     `json:"provider,omitempty"`
	ReportURL     string                     `json:"report_url,omitempty"`
	ExportError   string                     `json:"export_error,omitempty"`
}

// Config tunes request defaults.
type Config struct {
	MinWords            int
	DefaultLanguage     contract.Language
	DefaultDocumentType contract.DocumentType
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithExporter enables report export.
func WithExporter(e *reporting.Exporter) Option {
	return func(s *Service) { s.exporter = e }
}

// WithRenderer overrides the report renderer.
func WithRenderer(r *reporting.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithIDGenerator overrides audit id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Service is stateless between calls and safe for concurrent use.
type Service struct {
	catalog  *rulebook.Catalog
	builder  *prompt.Builder
	client   Inference
	drafter  *EmailDrafter
	renderer *reporting.Renderer
	exporter *reporting.Exporter
	recorder Recorder
	logger   logging.Logger
	cfg      Config
	newID    func() string
}

// NewService wires the audit pipeline.
func NewService(catalog *rulebook.Catalog, builder *prompt.Builder, client Inference, cfg Config, opts ...Option) *Service {
	if cfg.MinWords < 1 {
		cfg.MinWords = contract.DefaultMinWords
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = contract.LanguageEnglish
	}
	if cfg.DefaultDocumentType == "" {
		cfg.DefaultDocumentType = contract.DocumentGeneric
	}
	s := &Service{
		catalog:  catalog,
		builder:  builder,
		client:   client,
		renderer: reporting.NewRenderer(""),
		recorder: noopRecorder{},
		logger:   logging.NewNopLogger(),
		cfg:      cfg,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("audit")
	s.drafter = NewEmailDrafter(builder, client, s.logger, s.recorder)
	return s
}

// Catalog exposes the rule catalog.
func (s *Service) Catalog() *rulebook.Catalog { return s.catalog }

// Drafter exposes the email drafter for stand-alone drafting.
func (s *Service) Drafter() *EmailDrafter { return s.drafter }

// Audit runs the full pipeline.  A failed email draft or export is reported
// in the result and never discards the analysis.
func (s *Service) Audit(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	auditID := s.newID()
	log := logging.FromContext(ctx, s.logger).With(logging.String(logging.FieldAuditID, auditID))

	rules, lang, err := s.resolve(req)
	if err != nil {
		s.recorder.RecordAudit("unknown", string(errors.GetCode(err)), time.Since(start), 0, 0, false)
		return nil, err
	}
	docType := string(rules.Type)

	if err := contract.CheckReadable(req.ContractText, s.cfg.MinWords); err != nil {
		s.recorder.RecordAudit(docType, string(errors.GetCode(err)), time.Since(start), 0, 0, false)
		return nil, err
	}

	analysis, inv, err := s.Analyze(ctx, rules, req.ContractText, lang)
	if err != nil {
		log.Error("audit failed", logging.String("document_type", docType), logging.Err(err))
		s.recorder.RecordAudit(docType, string(errors.GetCode(err)), time.Since(start), 0, 0, false)
		return nil, err
	}

	res := s.present(auditID, rules, lang, analysis)
	res.Degraded = inv.Degraded
	res.Provider = inv.Provider
	s.recorder.RecordAudit(docType, "success", time.Since(start), len(analysis.Risks), res.Assessment.Score, res.Assessment.Scored)
	log.Info("audit completed",
		logging.String("document_type", docType),
		logging.String(logging.FieldProvider, inv.Provider),
		logging.Bool("degraded", inv.Degraded),
		logging.Int("risks", len(analysis.Risks)),
		logging.Int("safe_clauses", len(analysis.SafeClauses)),
		logging.Int("score", res.Assessment.Score),
		logging.Duration("duration", time.Since(start)))

	if req.DraftEmail && analysis.HasRisks() {
		email, err := s.drafter.Draft(ctx, analysis.Risks, rules.Label)
		if err != nil {
			res.EmailError = errors.DefaultMessageForCode(errors.CodeEmailUnavailable)
		} else {
			res.Email = email
		}
	}

	if req.Export {
		s.export(ctx, log, res)
	}
	return res, nil
}

// Analyze runs structured inference and returns the validated analysis.
func (s *Service) Analyze(ctx context.Context, rules rulebook.RuleSet, text string, lang contract.Language) (*contract.ContractAnalysis, failover.Result, error) {
	p, err := s.builder.BuildAnalysis(rules.Rules, text, lang)
	if err != nil {
		return nil, failover.Result{}, err
	}

	var analysis *contract.ContractAnalysis
	inv, err := s.client.Invoke(ctx, p, common.ModeStructured, func(raw string) error {
		a, perr := contract.ParseAnalysis(raw)
		if perr != nil {
			return perr
		}
		analysis = a
		return nil
	})
	if err != nil {
		return nil, failover.Result{}, err
	}
	if analysis == nil {
		if analysis, err = contract.ParseAnalysis(inv.Text); err != nil {
			return nil, failover.Result{}, err
		}
	}
	return analysis, inv, nil
}

// Present builds a Result for an analysis produced elsewhere, such as a
// saved analysis file or a demo.
func (s *Service) Present(documentType string, language string, analysis *contract.ContractAnalysis) (*Result, error) {
	rules, err := s.catalog.Resolve(s.orDefault(documentType, string(s.cfg.DefaultDocumentType)))
	if err != nil {
		return nil, err
	}
	lang, err := contract.ParseLanguage(s.orDefault(language, string(s.cfg.DefaultLanguage)))
	if err != nil {
		return nil, err
	}
	if err := contract.Validate(analysis); err != nil {
		return nil, err
	}
	return s.present(s.newID(), rules, lang, analysis), nil
}

func (s *Service) present(auditID string, rules rulebook.RuleSet, lang contract.Language, analysis *contract.ContractAnalysis) *Result {
	assessment := contract.Assess(analysis.Risks)
	return &Result{
		AuditID:       auditID,
		DocumentType:  rules.Type,
		DocumentLabel: rules.Label,
		Language:      lang,
		Analysis:      analysis,
		Assessment:    assessment,
		Report:        s.renderer.Render(analysis, assessment),
	}
}

func (s *Service) export(ctx context.Context, log logging.Logger, res *Result) {
	link, err := s.exporter.Export(ctx, res.AuditID, res.Report)
	s.recorder.RecordExport(err == nil)
	if err != nil {
		log.Warn("report export skipped", logging.Err(err))
		res.ExportError = errors.DefaultMessageForCode(errors.CodeReportExportFailed)
		return
	}
	res.ReportURL = link
}

func (s *Service) resolve(req Request) (rulebook.RuleSet, contract.Language, error) {
	rules, err := s.catalog.Resolve(s.orDefault(req.DocumentType, string(s.cfg.DefaultDocumentType)))
	if err != nil {
		return rulebook.RuleSet{}, "", err
	}
	lang, err := contract.ParseLanguage(s.orDefault(req.Language, string(s.cfg.DefaultLanguage)))
	if err != nil {
		return rulebook.RuleSet{}, "", err
	}
	return rules, lang, nil
}

func (s *Service) orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

//Personal.AI order the ending

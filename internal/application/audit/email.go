package audit

import (
	"context"
	"strings"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/internal/intelligence/prompt"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// EmailDrafter turns flagged risks into a polite negotiation email using the
// same failover chain as the analysis.
type EmailDrafter struct {
	builder  *prompt.Builder
	client   Inference
	logger   logging.Logger
	recorder Recorder
}

// NewEmailDrafter constructs a drafter.  A nil recorder is a no-op.
func NewEmailDrafter(builder *prompt.Builder, client Inference, logger logging.Logger, recorder Recorder) *EmailDrafter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &EmailDrafter{builder: builder, client: client, logger: logger.Named("email"), recorder: recorder}
}

// Draft returns the email body.  Every inference failure surfaces as
// CodeEmailUnavailable; the caller keeps whatever analysis it already has.
func (d *EmailDrafter) Draft(ctx context.Context, risks []contract.RiskItem, documentLabel string) (string, error) {
	p, err := d.builder.BuildEmail(risks, documentLabel)
	if err != nil {
		return "", err
	}
	log := logging.FromContext(ctx, d.logger)

	res, err := d.client.Invoke(ctx, p, common.ModeText, nonEmpty)
	if err != nil {
		d.recorder.RecordEmail(false)
		log.Warn("email draft unavailable", logging.Err(err))
		return "", errors.Wrap(err, errors.CodeEmailUnavailable, errors.DefaultMessageForCode(errors.CodeEmailUnavailable))
	}
	d.recorder.RecordEmail(true)
	log.Debug("email drafted", logging.String(logging.FieldProvider, res.Provider), logging.Int("risks", len(risks)))
	return strings.TrimSpace(res.Text), nil
}

// DraftEmail drafts from a saved analysis.  The analysis is validated and
// must contain at least one risk.
func (s *Service) DraftEmail(ctx context.Context, documentType string, analysis *contract.ContractAnalysis) (string, error) {
	rules, err := s.catalog.Resolve(s.orDefault(documentType, string(s.cfg.DefaultDocumentType)))
	if err != nil {
		return "", err
	}
	if err := contract.Validate(analysis); err != nil {
		return "", errors.InvalidParam("analysis is invalid").WithCause(err).WithDetail(err.Error())
	}
	if !analysis.HasRisks() {
		return "", errors.InvalidParam("analysis has no risks to negotiate")
	}
	return s.drafter.Draft(ctx, analysis.Risks, rules.Label)
}

func nonEmpty(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New(errors.CodeProviderEmptyOutput, "email draft is empty")
	}
	return nil
}

//Personal.AI order the ending

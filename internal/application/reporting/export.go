package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// ObjectStorage persists an exported report and returns a download URL.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Exporter writes rendered reports to object storage, one object per audit.
type Exporter struct {
	store  ObjectStorage
	logger logging.Logger
	now    func() time.Time
}

// NewExporter returns an Exporter.  A nil store yields an Exporter whose
// Enabled reports false.
func NewExporter(store ObjectStorage, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Exporter{store: store, logger: logger.Named("export"), now: time.Now}
}

// Enabled reports whether a storage backend is configured.
func (e *Exporter) Enabled() bool { return e != nil && e.store != nil }

// Key is the object key for an audit: yyyy/mm/dd/<audit id>.txt in UTC.
func (e *Exporter) Key(auditID string) string {
	return e.now().UTC().Format("2006/01/02") + "/" + auditID + ".txt"
}

// Export uploads report and returns its URL.  Failures are CodeReportExportFailed.
func (e *Exporter) Export(ctx context.Context, auditID, report string) (string, error) {
	if !e.Enabled() {
		return "", errors.New(errors.CodeReportExportFailed, "report export is not configured")
	}
	if strings.TrimSpace(auditID) == "" {
		return "", errors.InvalidParam("audit id is required for export")
	}
	key := e.Key(auditID)
	link, err := e.store.Save(ctx, key, []byte(report), ContentType)
	if err != nil {
		e.logger.Error("report export failed",
			logging.String(logging.FieldAuditID, auditID),
			logging.String("key", key),
			logging.Err(err))
		return "", errors.Wrap(err, errors.CodeReportExportFailed, errors.DefaultMessageForCode(errors.CodeReportExportFailed))
	}
	e.logger.Info("report exported", logging.String(logging.FieldAuditID, auditID), logging.String("key", key))
	return link, nil
}

//Personal.AI order the ending

package reporting

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/testutil"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, string(data), contentType)
	return args.String(0), args.Error(1)
}

func fixedClock() time.Time { return time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC) }

func TestExporter_Export(t *testing.T) {
	store := new(mockStorage)
	store.On("Save", mock.Anything, "2026/10/14/audit-1.txt", "report body", ContentType).
		Return("https://minio/reports/2026/10/14/audit-1.txt?sig", nil)

	e := NewExporter(store, nil)
	e.now = fixedClock

	link, err := e.Export(context.Background(), "audit-1", "report body")
	require.NoError(t, err)
	assert.Equal(t, "https://minio/reports/2026/10/14/audit-1.txt?sig", link)
	store.AssertExpectations(t)
}

func TestExporter_StorageFailure(t *testing.T) {
	store := new(mockStorage)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", stderrors.New("bucket gone"))
	logger := testutil.NewMockLogger()

	e := NewExporter(store, logger)
	_, err := e.Export(context.Background(), "audit-2", "x")
	assert.True(t, errors.IsCode(err, errors.CodeReportExportFailed))
	assert.True(t, logger.HasMessage("error", "report export failed"))
}

func TestExporter_Disabled(t *testing.T) {
	e := NewExporter(nil, nil)
	assert.False(t, e.Enabled())
	_, err := e.Export(context.Background(), "audit-3", "x")
	assert.True(t, errors.IsCode(err, errors.CodeReportExportFailed))

	var nilExporter *Exporter
	assert.False(t, nilExporter.Enabled())
}

func TestExporter_RequiresAuditID(t *testing.T) {
	e := NewExporter(new(mockStorage), nil)
	_, err := e.Export(context.Background(), "", "x")
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

//Personal.AI order the ending

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taxpal/internal/dto"
	"taxpal/internal/models"
	"taxpal/internal/report"
	"taxpal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrMissingReportFields = errors.New("missing required fields")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrReportNotFound      = errors.New("report not found")
	ErrReportFileNotFound  = errors.New("report file not found")
)

// Event names carried by fan-out notifications.
const (
	EventReportCreated = "reports:created"
	EventReportDeleted = "reports:deleted"
)

// Notifier broadcasts fire-and-forget events to connected real-time
// listeners. It is injected at construction; the service never reaches for
// ambient state.
type Notifier interface {
	Notify(event string, payload any)
}

// ReportService drives the report pipeline: period resolution, data
// fetching, file rendering, registry persistence and fan-out notification.
type ReportService struct {
	reportRepo *repository.ReportRepository
	source     report.DataSource
	notifier   Notifier
	dir        string
	publicPath string
	logger     *zap.Logger
	now        func() time.Time
}

func NewReportService(
	reportRepo *repository.ReportRepository,
	txRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	notifier Notifier,
	dir, publicPath string,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		source:     &reportSource{txRepo: txRepo, budgetRepo: budgetRepo},
		notifier:   notifier,
		dir:        dir,
		publicPath: publicPath,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the generation clock, for deterministic file names in
// tests.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Generate renders a report file and persists its registry record, in that
// order: the file is durably written before the record exists, and the
// record exists before the caller or any listener hears about it.
func (s *ReportService) Generate(ctx context.Context, req *dto.GenerateReportRequest, baseURL string) (*models.Report, error) {
	if req.Type == "" || req.Period == "" || req.Format == "" {
		return nil, ErrMissingReportFields
	}

	typ := report.Type(req.Type)
	period := report.Period(req.Period)
	format := report.Format(strings.ToLower(req.Format))
	if format != report.FormatCSV && format != report.FormatPDF {
		return nil, ErrUnsupportedFormat
	}

	now := s.now()
	rng, err := report.ResolvePeriod(period, req.From, req.To, now)
	if err != nil {
		return nil, err
	}

	result, err := report.Fetch(ctx, s.source, typ, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch report data: %w", err)
	}
	rows := report.Normalize(typ, result)

	name := report.FileName(typ, period, format, now)
	path := filepath.Join(s.dir, name)
	periodLabel := report.PeriodLabel(period, req.From, req.To)

	switch format {
	case report.FormatCSV:
		fields := report.CSVFields(typ, rows)
		if err := report.WriteCSVFile(path, rows, fields); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	case report.FormatPDF:
		columns := report.PDFColumns(typ, rows)
		title := fmt.Sprintf("%s report", typ)
		if err := report.WritePDF(path, title, periodLabel, rows, columns); err != nil {
			return nil, fmt.Errorf("write pdf: %w", err)
		}
	}

	rec := &models.Report{
		ID:     uuid.New(),
		Name:   name,
		Type:   string(typ),
		Period: string(period),
		Format: string(format),
		URL:    baseURL + s.publicPath + "/" + name,
		Metadata: map[string]any{
			"from":    req.From,
			"to":      req.To,
			"summary": result.Summary,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reportRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist report record: %w", err)
	}

	s.logger.Info("Report generated",
		zap.String("name", name),
		zap.String("type", string(typ)),
		zap.String("format", string(format)),
	)
	s.notifier.Notify(EventReportCreated, map[string]any{"report": rec})

	return rec, nil
}

// List returns all report records, newest first.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.List(ctx)
}

// Preview renders an HTML view of an existing report: a reconstructed table
// for CSV, an inline frame for PDF, a download link otherwise.
func (s *ReportService) Preview(ctx context.Context, id uuid.UUID, baseURL string) (string, error) {
	rec, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrReportNotFound
		}
		return "", err
	}

	path := filepath.Join(s.dir, rec.Name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrReportFileNotFound
	}

	switch report.Format(rec.Format) {
	case report.FormatCSV:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read report file: %w", err)
		}
		return report.RenderCSVPreview(rec.Name, rec.Period, string(data)), nil
	case report.FormatPDF:
		staticURL := baseURL + s.publicPath + "/" + rec.Name
		return report.RenderPDFPreview(rec.Name, rec.Period, staticURL), nil
	default:
		return report.RenderPreviewFallback(rec.URL), nil
	}
}

// Delete unlinks the backing file best-effort, then removes the record. A
// failed unlink is logged and swallowed; the registry deletion proceeds
// regardless.
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReportNotFound
		}
		return err
	}

	path := filepath.Join(s.dir, rec.Name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove report file",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReportNotFound
		}
		return err
	}

	s.notifier.Notify(EventReportDeleted, map[string]any{"id": id.String()})
	return nil
}

// reportSource adapts the repositories to the report.DataSource contract.
type reportSource struct {
	txRepo     *repository.TransactionRepository
	budgetRepo *repository.BudgetRepository
}

func (s *reportSource) TransactionsInRange(ctx context.Context, r report.Range) ([]models.Transaction, error) {
	return s.txRepo.InRange(ctx, r.Start, r.End)
}

func (s *reportSource) BudgetsInRange(ctx context.Context, r report.Range) ([]models.Budget, error) {
	return s.budgetRepo.InRange(ctx, r.Start, r.End)
}

func (s *reportSource) AllBudgets(ctx context.Context) ([]models.Budget, error) {
	return s.budgetRepo.All(ctx)
}

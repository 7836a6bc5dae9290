package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-erp/internal/events"
	"go-erp/internal/messaging/kafka"
	payrollerrors "go-erp/internal/payroll/errors"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/period"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, companyID, actorID string, req CalculateRequest) (CalculateResponse, error)
	GetDraft(ctx context.Context, companyID, actorID, category string) (CalculateResponse, error)
	Save(ctx context.Context, companyID, actorID string, req SaveReportRequest) (SaveReportResponse, error)
	Fetch(ctx context.Context, companyID, category string, p period.Period) ([]PayrollLineItem, error)
}

type Options struct {
	// CarryForward lists the categories whose baseline may come from earlier saved reports.
	CarryForward []Category
	Drafts       DraftStore
	Selection    *Selection
	Now          func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	sources   Sources
	drafts    DraftStore
	selection *Selection
	carry     map[Category]bool
	carryList []Category
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, sources Sources, opts Options, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, sources, opts, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	sources Sources,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if opts.Drafts == nil {
		opts.Drafts = NewMemoryDraftStore()
	}
	if opts.Selection == nil {
		opts.Selection = NewSelection()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	carry := make(map[Category]bool, len(opts.CarryForward))
	for _, c := range opts.CarryForward {
		carry[c] = true
	}

	return &service{
		db:        db,
		repo:      repo,
		outbox:    outboxRepo,
		sources:   sources,
		drafts:    opts.Drafts,
		selection: opts.Selection,
		carry:     carry,
		carryList: opts.CarryForward,
		now:       opts.Now,
		logger:    l,
	}
}

type snapshot struct {
	roster   []RosterEntry
	absences map[string]AbsenceEntry
	loans    map[string]float64
	history  *HistoryIndex
	warnings []string
}

func (s *service) Calculate(ctx context.Context, companyID, actorID string, req CalculateRequest) (CalculateResponse, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return CalculateResponse{}, err
	}
	p := period.New(req.Month, req.Year)
	if err := p.Validate(); err != nil {
		return CalculateResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("company_id", companyID),
		zap.String("category", string(category)),
		zap.String("period", p.String()),
	)

	ticket := s.selection.Begin(SelectionKey(companyID, actorID, category), p)
	snap := s.loadSnapshot(ctx, log, companyID, category, p)

	if !s.selection.IsCurrent(ticket) {
		log.Info("calculation discarded, selection moved on")
		return CalculateResponse{}, payrollerrors.ErrStaleSelection
	}

	inputs := make(map[string]EmployeeInput, len(req.Inputs))
	for _, in := range req.Inputs {
		inputs[in.EmployeeID] = in
	}

	resolver := NewResolver(snap.history, s.carryList, s.logger)
	records := make([]PayrollLineItem, 0, len(snap.roster))
	seen := make(map[string]bool, len(snap.roster))
	for _, emp := range snap.roster {
		empCategory, err := ParseCategory(emp.Category)
		if err != nil || empCategory != category || emp.EmployeeID == "" || seen[emp.EmployeeID] {
			continue
		}
		seen[emp.EmployeeID] = true

		in := inputs[emp.EmployeeID]
		baseline := resolver.Resolve(ctx, companyID, category, emp.EmployeeID, p, in.SalaryInput, emp.Salary)
		absence := snap.absences[emp.EmployeeID]

		item := Calculate(CalculationInput{
			Category: category,
			Baseline: baseline.Value,
			Present:  absence.Present,
			Absent:   absence.Absent,
			Grace:    in.Grace,
			Loan:     snap.loans[emp.EmployeeID],
			TDS:      in.TDS,
			PTax:     in.PTax,
		})
		item.EmployeeID = emp.EmployeeID
		item.EmployeeName = emp.Name
		records = append(records, item)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })

	ignored := 0
	for id := range inputs {
		if !seen[id] {
			ignored++
		}
	}
	if ignored > 0 && len(snap.roster) > 0 {
		snap.warnings = append(snap.warnings,
			fmt.Sprintf("inputs for %d employee(s) outside the %s roster were ignored", ignored, category))
	}

	resp := CalculateResponse{
		Category:     string(category),
		Month:        p.Month,
		Year:         p.Year,
		Records:      records,
		Warnings:     snap.warnings,
		CalculatedAt: s.now().UTC(),
	}

	if err := s.drafts.Put(ctx, companyID, actorID, resp); err != nil {
		log.Warn("payroll draft not stored", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "calculated report could not be kept as a draft")
	}

	log.Info("payroll calculated",
		zap.Int("records", len(records)),
		zap.Int("warnings", len(resp.Warnings)),
	)
	return resp, nil
}

// loadSnapshot fetches every input concurrently. A failed read degrades to empty and becomes a warning.
func (s *service) loadSnapshot(ctx context.Context, log *zap.Logger, companyID string, category Category, p period.Period) snapshot {
	var (
		g          errgroup.Group
		roster     []RosterEntry
		absences   []AbsenceEntry
		loans      []LoanEntry
		history    = NewHistoryIndex()
		rosterErr  error
		absenceErr error
		loanErr    error
		historyErr error
	)

	g.Go(func() error {
		if s.sources.Roster != nil {
			roster, rosterErr = s.sources.Roster.Roster(ctx, companyID)
		}
		return nil
	})
	g.Go(func() error {
		if s.sources.Attendance != nil {
			absences, absenceErr = s.sources.Attendance.Absences(ctx, companyID, p)
		}
		return nil
	})
	g.Go(func() error {
		if s.sources.Loans != nil {
			loans, loanErr = s.sources.Loans.Loans(ctx, companyID)
		}
		return nil
	})
	g.Go(func() error {
		if s.carry[category] {
			historyErr = s.loadHistory(ctx, companyID, category, p, history)
		}
		return nil
	})
	_ = g.Wait()

	snap := snapshot{
		absences: make(map[string]AbsenceEntry, len(absences)),
		loans:    make(map[string]float64, len(loans)),
		history:  history,
		warnings: make([]string, 0),
	}

	degrade := func(what string, err error) {
		if err == nil {
			return
		}
		log.Warn("payroll input unavailable", zap.String("source", what), zap.Error(err))
		snap.warnings = append(snap.warnings, what+" unavailable, treated as empty")
	}
	degrade("employee roster", rosterErr)
	degrade("attendance summary", absenceErr)
	degrade("loan ledger", loanErr)
	degrade("saved salary history", historyErr)

	if rosterErr == nil {
		snap.roster = roster
	}
	if absenceErr == nil {
		for _, a := range absences {
			cur := snap.absences[a.EmployeeID]
			cur.EmployeeID = a.EmployeeID
			cur.Present += a.Present
			cur.Absent += a.Absent
			snap.absences[a.EmployeeID] = cur
		}
	}
	if loanErr == nil {
		for _, l := range loans {
			snap.loans[l.EmployeeID] += l.Amount
		}
	}
	return snap
}

func (s *service) loadHistory(ctx context.Context, companyID string, category Category, p period.Period, into *HistoryIndex) error {
	to := p.Previous()
	from := p
	for i := 0; i < historyLookbackMonths; i++ {
		from = from.Previous()
	}

	reports, err := s.repo.FindReportsBetween(ctx, companyID, category, from, to)
	if err != nil {
		return err
	}
	for _, r := range reports {
		items := make([]PayrollLineItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, it.toLineItem(r.Category))
		}
		into.Add(category, period.New(r.Month, r.Year), items)
	}
	return nil
}

func (s *service) GetDraft(ctx context.Context, companyID, actorID, rawCategory string) (CalculateResponse, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return CalculateResponse{}, err
	}

	draft, err := s.drafts.Get(ctx, companyID, actorID, category)
	if errors.Is(err, payrollerrors.ErrDraftNotFound) {
		return CalculateResponse{}, err
	}
	if err != nil {
		s.logger.Error("payroll draft read failed", zap.String("company_id", companyID), zap.Error(err))
		return CalculateResponse{}, apperror.ErrPersistence.WithCause(err)
	}
	return draft, nil
}

func (s *service) Save(ctx context.Context, companyID, actorID string, req SaveReportRequest) (SaveReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	category, err := ParseCategory(req.Category)
	if err != nil {
		return SaveReportResponse{}, err
	}
	p := period.New(req.Month, req.Year)
	if err := p.Validate(); err != nil {
		return SaveReportResponse{}, err
	}
	if req.Records == nil {
		return SaveReportResponse{}, payrollerrors.ErrRecordsRequired
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SaveReportResponse{}, apperror.InvalidField("company_id")
	}

	report := &PayrollReport{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Category:  string(category),
		Month:     p.Month,
		Year:      p.Year,
		SavedBy:   actorID,
		Items:     make([]PayrollReportItem, 0, len(req.Records)),
	}

	seen := make(map[string]bool, len(req.Records))
	totalNet := decimal.Zero
	for i, rec := range req.Records {
		if rec.EmployeeID == "" {
			return SaveReportResponse{}, payrollerrors.ErrInvalidRecord
		}
		if seen[rec.EmployeeID] {
			return SaveReportResponse{}, payrollerrors.ErrDuplicateRecord.WithDetails(map[string]string{"employee_id": rec.EmployeeID})
		}
		seen[rec.EmployeeID] = true

		item := newReportItem(i, rec)
		item.ID = uuid.New()
		item.ReportID = report.ID
		report.Items = append(report.Items, item)
		totalNet = totalNet.Add(decimal.NewFromFloat(rec.NetSalary))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SaveReportResponse{}, payrollerrors.ErrSaveFailed.WithCause(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).ReplaceReport(ctx, report); err != nil {
		s.logger.Error("replace payroll report failed",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.String("category", string(category)),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return SaveReportResponse{}, payrollerrors.ErrSaveFailed.WithCause(err)
	}

	if s.outbox != nil {
		event := events.PayrollReportSavedEvent{
			EventType:   events.PayrollReportSavedType,
			ReportID:    report.ID.String(),
			CompanyID:   companyID,
			Category:    string(category),
			Month:       p.Month,
			Year:        p.Year,
			RecordCount: len(report.Items),
			TotalNet:    round(totalNet),
			SavedBy:     actorID,
			OccurredAt:  s.now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return SaveReportResponse{}, payrollerrors.ErrSaveFailed.WithCause(err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_report",
			AggregateID:   report.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollReportSavedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("payroll report outbox persist failed",
				zap.String("report_id", report.ID.String()),
				zap.Error(err),
			)
			return SaveReportResponse{}, payrollerrors.ErrSaveFailed.WithCause(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return SaveReportResponse{}, payrollerrors.ErrSaveFailed.WithCause(err)
	}

	s.logger.Info("payroll report saved",
		zap.String("request_id", rid),
		zap.String("report_id", report.ID.String()),
		zap.String("category", string(category)),
		zap.String("period", p.String()),
		zap.Int("records", len(report.Items)),
	)

	return SaveReportResponse{
		Success: true,
		Message: fmt.Sprintf("%s payroll report for %s saved", category, p),
	}, nil
}

func (s *service) Fetch(ctx context.Context, companyID, rawCategory string, p period.Period) ([]PayrollLineItem, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	report, err := s.repo.FindReport(ctx, companyID, category, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return make([]PayrollLineItem, 0), nil
	}
	if err != nil {
		s.logger.Error("fetch payroll report failed",
			zap.String("company_id", companyID),
			zap.String("category", string(category)),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return nil, payrollerrors.ErrFetchFailed.WithCause(err)
	}

	items := make([]PayrollLineItem, 0, len(report.Items))
	for _, it := range report.Items {
		items = append(items, it.toLineItem(report.Category))
	}
	return items, nil
}

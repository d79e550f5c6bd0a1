package usecase

import (
	"bytes"
	"context"
	"time"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
	"gestion_xpto/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// ReportUseCase renders xlsx exports for the screens that offer a download
// button: pending-accounts aging and goal progress.
type ReportUseCase struct {
	pending interfaces.IResourceRepository[entities.PendingAccount]
	goals   interfaces.IResourceRepository[entities.Goal]
	log     zerolog.Logger
}

func NewReportUseCase(
	pending interfaces.IResourceRepository[entities.PendingAccount],
	goals interfaces.IResourceRepository[entities.Goal],
) *ReportUseCase {
	return &ReportUseCase{pending: pending, goals: goals, log: logger.WithComponent("reports")}
}

func listAll[T any](ctx context.Context, repo interfaces.IResourceRepository[T], q interfaces.ListQuery) ([]T, error) {
	q.ItemsPerPage = 200
	q.Page = 1
	var all []T
	for {
		page, err := repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if q.Page >= page.TotalPages {
			break
		}
		q.Page++
	}
	return all, nil
}

// PendingAccountsReport exports every matching account with its balance and
// overdue flag, followed by the aggregate totals.
func (u *ReportUseCase) PendingAccountsReport(ctx context.Context, q interfaces.ListQuery) (*bytes.Buffer, error) {
	accounts, err := listAll(ctx, u.pending, q)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id", "account_type", "description", "original_amount", "paid_amount",
		"balance_due", "due_date", "overdue", "settled",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for i := range accounts {
		a := &accounts[i]
		line := []interface{}{
			a.ID, string(a.AccountType), a.Description, a.OriginalAmount, a.PaidAmount,
			a.BalanceDue, a.DueDate.Format("2006-01-02"), a.IsOverdue(now), a.Settled,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		row++
	}

	totals := entities.SummarizePending(accounts, now)
	summary := []interface{}{
		"totals", "", "",
		"receivable:", totals.TotalReceivable,
		"payable:", totals.TotalPayable,
		"overdue:", totals.TotalOverdue,
	}
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	u.log.Debug().Int("accounts", len(accounts)).Msg("pending accounts report generated")
	return buf, nil
}

// GoalsReport exports each goal with its derived progress figures.
func (u *ReportUseCase) GoalsReport(ctx context.Context, q interfaces.ListQuery) (*bytes.Buffer, error) {
	goals, err := listAll(ctx, u.goals, q)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id", "name", "start_date", "end_date", "target_amount", "current_amount",
		"target_quantity", "current_quantity", "progress_pct", "expected_pct", "on_track",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for i := range goals {
		g := &goals[i]
		line := []interface{}{
			g.ID, g.Name, g.StartDate.Format("2006-01-02"), g.EndDate.Format("2006-01-02"),
			g.TargetAmount, g.CurrentAmount, g.TargetQuantity, g.CurrentQuantity,
			g.ProgressPercentage(), g.ExpectedProgress(now), g.IsOnTrack(now),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	u.log.Debug().Int("goals", len(goals)).Msg("goals report generated")
	return buf, nil
}

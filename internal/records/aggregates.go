package records

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymentqa/paytest-backend/pkg/db/models"
	"github.com/paymentqa/paytest-backend/pkg/enums"
	pkgerrors "github.com/paymentqa/paytest-backend/pkg/errors"
)

// DefaultWindow bounds time-windowed aggregates when the caller passes a
// non-positive duration.
const DefaultWindow = 24 * time.Hour

// MethodTypeCount is one row of the active payment method breakdown.
type MethodTypeCount struct {
	Type  enums.PaymentMethodType `gorm:"column:type"`
	Count int64                   `gorm:"column:count"`
}

// CurrencyVolume is one row of the per-currency transaction volume report.
type CurrencyVolume struct {
	Currency         string          `gorm:"column:currency"`
	TransactionCount int64           `gorm:"column:transaction_count"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount"`
}

func windowCutoff(window time.Duration) time.Time {
	if window <= 0 {
		window = DefaultWindow
	}
	return time.Now().UTC().Add(-window)
}

// TransactionCountByStatus counts transactions inside the window, optionally
// restricted to one status.
func (s *Store) TransactionCountByStatus(ctx context.Context, status *enums.TransactionStatus, window time.Duration) (int64, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	query := conn.Model(&models.PaymentTransaction{}).
		Where("created_at >= ?", windowCutoff(window))
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting transactions")
	}
	return count, nil
}

// FraudAlertCount counts fraud alerts inside the window, optionally
// restricted to one severity.
func (s *Store) FraudAlertCount(ctx context.Context, severity *enums.AlertSeverity, window time.Duration) (int64, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	query := conn.Model(&models.FraudAlert{}).
		Where("created_at >= ?", windowCutoff(window))
	if severity != nil {
		query = query.Where("severity = ?", *severity)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting fraud alerts")
	}
	return count, nil
}

// TestSuccessRate returns the pass percentage for execution logs inside the
// window, optionally restricted to one suite. An empty window yields 0.0
// rather than an error.
func (s *Store) TestSuccessRate(ctx context.Context, suite *string, window time.Duration) (float64, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	var row struct {
		Passed int64 `gorm:"column:passed"`
		Total  int64 `gorm:"column:total"`
	}
	query := conn.Model(&models.TestExecutionLog{}).
		Select("COUNT(CASE WHEN status = ? THEN 1 END) AS passed, COUNT(*) AS total", enums.TestStatusPass).
		Where("created_at >= ?", windowCutoff(window))
	if suite != nil {
		query = query.Where("test_suite = ?", *suite)
	}
	if err := query.Scan(&row).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "computing test success rate")
	}

	if row.Total == 0 {
		return 0.0, nil
	}
	return float64(row.Passed) / float64(row.Total) * 100, nil
}

// PaymentMethodStats breaks down active payment methods by type, most common
// first.
func (s *Store) PaymentMethodStats(ctx context.Context) ([]MethodTypeCount, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var rows []MethodTypeCount
	if err := conn.Model(&models.PaymentMethod{}).
		Select("type, COUNT(*) AS count").
		Where("status = ?", enums.MethodStatusActive).
		Group("type").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "computing payment method stats")
	}
	return rows, nil
}

// TransactionVolumeByCurrency sums transaction counts and amounts per
// currency inside the window, largest volume first.
func (s *Store) TransactionVolumeByCurrency(ctx context.Context, window time.Duration) ([]CurrencyVolume, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var rows []CurrencyVolume
	if err := conn.Model(&models.PaymentTransaction{}).
		Select("currency, COUNT(*) AS transaction_count, SUM(amount) AS total_amount").
		Where("created_at >= ?", windowCutoff(window)).
		Group("currency").
		Order("total_amount DESC").
		Scan(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "computing transaction volume")
	}
	return rows, nil
}

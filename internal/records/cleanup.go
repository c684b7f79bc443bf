package records

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/paymentqa/paytest-backend/pkg/db/models"
	pkgerrors "github.com/paymentqa/paytest-backend/pkg/errors"
)

// DefaultLogRetentionDays is applied when CleanupOldData is called with a
// non-positive daysToKeep.
const DefaultLogRetentionDays = 90

// FraudAlertRetention is fixed regardless of the log retention knob; alerts
// stay queryable for a full year of runs.
const FraudAlertRetention = 365 * 24 * time.Hour

// CleanupOldData purges execution logs older than daysToKeep and fraud
// alerts older than FraudAlertRetention. Both purges are attempted even when
// one fails. The returned count covers the execution log table only.
func (s *Store) CleanupOldData(ctx context.Context, daysToKeep int) (int64, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	if daysToKeep <= 0 {
		daysToKeep = DefaultLogRetentionDays
	}
	logCutoff := time.Now().UTC().AddDate(0, 0, -daysToKeep)
	alertCutoff := time.Now().UTC().Add(-FraudAlertRetention)

	var errs error
	var logsDeleted, alertsDeleted int64

	res := conn.Where("created_at < ?", logCutoff).Delete(&models.TestExecutionLog{})
	if res.Error != nil {
		s.metrics.IncFailure("cleanup_test_execution_logs")
		errs = multierr.Append(errs,
			pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "purging test execution logs"))
	} else {
		logsDeleted = res.RowsAffected
	}

	res = conn.Where("created_at < ?", alertCutoff).Delete(&models.FraudAlert{})
	if res.Error != nil {
		s.metrics.IncFailure("cleanup_fraud_alerts")
		errs = multierr.Append(errs,
			pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "purging fraud alerts"))
	} else {
		alertsDeleted = res.RowsAffected
	}

	s.metrics.AddPurged(logsDeleted + alertsDeleted)
	s.logInfo(s.withField(ctx, "operation", "cleanup"), "old records purged")
	return logsDeleted, errs
}

package records

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/paymentqa/paytest-backend/pkg/config"
	"github.com/paymentqa/paytest-backend/pkg/db"
	"github.com/paymentqa/paytest-backend/pkg/db/models"
	dbtypes "github.com/paymentqa/paytest-backend/pkg/db/types"
	"github.com/paymentqa/paytest-backend/pkg/enums"
	pkgerrors "github.com/paymentqa/paytest-backend/pkg/errors"
	"github.com/paymentqa/paytest-backend/pkg/logger"
	"github.com/paymentqa/paytest-backend/pkg/metrics"
)

const (
	prefixTransaction = "txn"
	prefixMethod      = "pm"
	prefixCustomer    = "cus"
	prefixRefund      = "ref"
	prefixFraudAlert  = "fraud"
	prefixLog         = "log"
)

const idTimestampFormat = "20060102_150405"

const (
	defaultGateway     = "unknown"
	defaultMerchantID  = "default"
	defaultEnvironment = "ci"
)

// Store is the durable record store for payment test runs. It owns a single
// logical connection and all durable state; it is not safe for concurrent use
// without external serialization.
type Store struct {
	client  *db.Client
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// New builds a disconnected store. Logger and metrics may be nil.
func New(logg *logger.Logger, m *metrics.StoreMetrics) *Store {
	return &Store{logg: logg, metrics: m}
}

// Connect opens or creates the store at the configured path and ensures the
// schema exists. Fails with UNSUPPORTED_ENGINE for anything but sqlite.
func (s *Store) Connect(ctx context.Context, cfg config.StoreConfig) error {
	if s.client != nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "store already connected")
	}

	client, err := db.New(ctx, cfg, s.logg)
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

// Disconnect releases the connection. Subsequent operations fail with
// NOT_CONNECTED.
func (s *Store) Disconnect() error {
	if s.client == nil {
		return pkgerrors.New(pkgerrors.CodeNotConnected, "store is not connected")
	}
	err := s.client.Close()
	s.client = nil
	s.logInfo(context.Background(), "record store closed")
	return err
}

// Connected reports whether the store holds an open connection.
func (s *Store) Connected() bool {
	return s.client != nil
}

func (s *Store) conn(ctx context.Context) (*gorm.DB, error) {
	if s.client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotConnected, "store is not connected")
	}
	return s.client.DB().WithContext(ctx), nil
}

// newRecordID combines the entity prefix with a timestamp-derived suffix.
// Uniqueness is enforced by the primary key constraint, not here.
func newRecordID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, time.Now().UTC().Format(idTimestampFormat))
}

// InsertPaymentTransaction writes one transaction, assigning an id and
// defaults for unspecified optional fields. Returns the id.
func (s *Store) InsertPaymentTransaction(ctx context.Context, txn *models.PaymentTransaction) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if !txn.Status.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid transaction status %q", txn.Status))
	}
	if txn.Currency == "" || txn.PaymentMethod == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "currency and payment_method are required")
	}

	if txn.ID == "" {
		txn.ID = newRecordID(prefixTransaction)
	}
	if txn.Gateway == "" {
		txn.Gateway = defaultGateway
	}
	if txn.MerchantID == "" {
		txn.MerchantID = defaultMerchantID
	}
	if txn.Metadata == nil {
		txn.Metadata = dbtypes.JSONMap{}
	}

	if err := s.create(conn, "payment_transaction", txn); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "transaction_id", txn.ID), "payment transaction inserted")
	return txn.ID, nil
}

// GetPaymentTransaction looks up one transaction; returns nil, nil when the
// id is unknown.
func (s *Store) GetPaymentTransaction(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var txn models.PaymentTransaction
	if err := conn.Where("id = ?", id).First(&txn).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading payment transaction")
	}
	return &txn, nil
}

// UpdatePaymentStatus overwrites status, failure reason and updated_at for
// the given id. Returns false (and no error) when the id does not exist, so
// callers can tell the no-op apart from a real update.
func (s *Store) UpdatePaymentStatus(ctx context.Context, id string, status enums.TransactionStatus, failureReason *string) (bool, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return false, err
	}

	if !status.IsValid() {
		return false, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid transaction status %q", status))
	}

	res := conn.Model(&models.PaymentTransaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         status,
			"failure_reason": failureReason,
			"updated_at":     time.Now().UTC(),
		})
	if res.Error != nil {
		s.metrics.IncFailure("update_payment_status")
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "updating payment status")
	}

	found := res.RowsAffected > 0
	if found {
		s.logInfo(s.withField(ctx, "transaction_id", id), "payment status updated")
	}
	return found, nil
}

// InsertPaymentMethod writes one stored payment instrument.
func (s *Store) InsertPaymentMethod(ctx context.Context, method *models.PaymentMethod) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if method.CustomerID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	if !method.Type.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid payment method type %q", method.Type))
	}

	if method.ID == "" {
		method.ID = newRecordID(prefixMethod)
	}
	if method.Status == "" {
		method.Status = enums.MethodStatusActive
	}

	if err := s.create(conn, "payment_method", method); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "payment_method_id", method.ID), "payment method inserted")
	return method.ID, nil
}

// CustomerPaymentMethods returns the customer's methods, newest first.
func (s *Store) CustomerPaymentMethods(ctx context.Context, customerID string) ([]models.PaymentMethod, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var methods []models.PaymentMethod
	if err := conn.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&methods).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing payment methods")
	}
	return methods, nil
}

// InsertCustomer writes one customer record. Email uniqueness is enforced by
// the schema; duplicates surface as a store error.
func (s *Store) InsertCustomer(ctx context.Context, customer *models.Customer) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if customer.ID == "" {
		customer.ID = newRecordID(prefixCustomer)
	}

	if err := s.create(conn, "customer", customer); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "customer_id", customer.ID), "customer inserted")
	return customer.ID, nil
}

// InsertRefund writes one refund referencing the original transaction.
func (s *Store) InsertRefund(ctx context.Context, refund *models.Refund) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if refund.OriginalTransactionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "original_transaction_id is required")
	}
	if refund.Currency == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "currency is required")
	}

	if refund.ID == "" {
		refund.ID = newRecordID(prefixRefund)
	}
	if refund.Status == "" {
		refund.Status = enums.RefundStatusPending
	}

	if err := s.create(conn, "refund", refund); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "refund_id", refund.ID), "refund inserted")
	return refund.ID, nil
}

// InsertFraudAlert writes one fraud alert, preserving triggered rule order.
func (s *Store) InsertFraudAlert(ctx context.Context, alert *models.FraudAlert) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if alert.AlertType == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "alert_type is required")
	}
	if !alert.Severity.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid alert severity %q", alert.Severity))
	}

	if alert.ID == "" {
		alert.ID = newRecordID(prefixFraudAlert)
	}
	if alert.TriggeredRules == nil {
		alert.TriggeredRules = dbtypes.StringList{}
	}

	if err := s.create(conn, "fraud_alert", alert); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "fraud_alert_id", alert.ID), "fraud alert inserted")
	return alert.ID, nil
}

// LogTestExecution records one test case outcome.
func (s *Store) LogTestExecution(ctx context.Context, entry *models.TestExecutionLog) (string, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	if entry.TestSuite == "" || entry.TestCase == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "test_suite and test_case are required")
	}
	if !entry.Status.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid test status %q", entry.Status))
	}

	if entry.ID == "" {
		entry.ID = newRecordID(prefixLog)
	}
	if entry.Environment == "" {
		entry.Environment = defaultEnvironment
	}

	if err := s.create(conn, "test_execution_log", entry); err != nil {
		return "", err
	}
	s.logInfo(s.withField(ctx, "log_id", entry.ID), "test execution logged")
	return entry.ID, nil
}

func (s *Store) create(conn *gorm.DB, entity string, record any) error {
	start := time.Now()
	if err := conn.Create(record).Error; err != nil {
		s.metrics.IncFailure("insert_" + entity)
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "inserting "+entity)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "inserting "+entity)
	}
	s.metrics.IncInsert(entity)
	s.metrics.ObserveDuration("insert_"+entity, time.Since(start))
	return nil
}

func (s *Store) withField(ctx context.Context, key, value string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithField(ctx, key, value)
}

func (s *Store) logInfo(ctx context.Context, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Info(ctx, msg)
}

package models

import (
	"time"

	dbtypes "github.com/paymentqa/paytest-backend/pkg/db/types"
	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// FraudAlert is retained longer than other operational data for compliance;
// cleanup keeps alerts for a fixed 365 days regardless of the log retention.
type FraudAlert struct {
	ID             string              `gorm:"column:id;primaryKey"`
	TransactionID  *string             `gorm:"column:transaction_id;index"`
	AlertType      string              `gorm:"column:alert_type;not null"`
	Severity       enums.AlertSeverity `gorm:"column:severity;not null"`
	RiskScore      *int                `gorm:"column:risk_score"`
	TriggeredRules dbtypes.StringList  `gorm:"column:triggered_rules;type:text"`
	IPAddress      *string             `gorm:"column:ip_address"`
	UserAgent      *string             `gorm:"column:user_agent"`
	Resolved       bool                `gorm:"column:resolved;not null;default:false"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default gorm naming.
func (FraudAlert) TableName() string {
	return "fraud_alerts"
}

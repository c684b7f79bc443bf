package models

import (
	"time"

	"github.com/shopspring/decimal"

	dbtypes "github.com/paymentqa/paytest-backend/pkg/db/types"
	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// PaymentTransaction records one payment attempt against a gateway. Status
// transitions overwrite status and updated_at; no history of prior statuses
// is kept.
type PaymentTransaction struct {
	ID                   string                  `gorm:"column:id;primaryKey"`
	Amount               decimal.Decimal         `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency             string                  `gorm:"column:currency;not null"`
	PaymentMethod        string                  `gorm:"column:payment_method;not null"`
	Gateway              string                  `gorm:"column:gateway;not null;default:'unknown'"`
	Status               enums.TransactionStatus `gorm:"column:status;not null"`
	CustomerID           *string                 `gorm:"column:customer_id"`
	MerchantID           string                  `gorm:"column:merchant_id;not null;default:'default'"`
	GatewayTransactionID *string                 `gorm:"column:gateway_transaction_id"`
	FailureReason        *string                 `gorm:"column:failure_reason"`
	Metadata             dbtypes.JSONMap         `gorm:"column:metadata;type:text"`
	CreatedAt            time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default gorm naming.
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}

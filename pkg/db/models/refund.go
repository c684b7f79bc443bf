package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// Refund references the transaction being reversed. ProcessedAt stays nil
// until the refund completes.
type Refund struct {
	ID                    string             `gorm:"column:id;primaryKey"`
	OriginalTransactionID string             `gorm:"column:original_transaction_id;not null;index"`
	Amount                decimal.Decimal    `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency              string             `gorm:"column:currency;not null"`
	Reason                *string            `gorm:"column:reason"`
	Status                enums.RefundStatus `gorm:"column:status;not null;default:'pending'"`
	GatewayRefundID       *string            `gorm:"column:gateway_refund_id"`
	CreatedAt             time.Time          `gorm:"column:created_at;autoCreateTime"`
	ProcessedAt           *time.Time         `gorm:"column:processed_at"`
}

// TableName overrides the default gorm naming.
func (Refund) TableName() string {
	return "refunds"
}

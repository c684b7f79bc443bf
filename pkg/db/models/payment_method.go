package models

import (
	"time"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// PaymentMethod is a stored payment instrument belonging to one customer.
// At most one method per customer should be flagged default; the store does
// not enforce that, callers must.
type PaymentMethod struct {
	ID                     string                  `gorm:"column:id;primaryKey"`
	CustomerID             string                  `gorm:"column:customer_id;not null;index"`
	Type                   enums.PaymentMethodType `gorm:"column:type;not null"`
	GatewayPaymentMethodID *string                 `gorm:"column:gateway_payment_method_id"`
	IsDefault              bool                    `gorm:"column:is_default;not null;default:false"`
	Status                 enums.MethodStatus      `gorm:"column:status;not null;default:'active'"`
	ExpiryMonth            *int                    `gorm:"column:expiry_month"`
	ExpiryYear             *int                    `gorm:"column:expiry_year"`
	LastFour               *string                 `gorm:"column:last_four"`
	CardBrand              *string                 `gorm:"column:card_brand"`
	CreatedAt              time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default gorm naming.
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

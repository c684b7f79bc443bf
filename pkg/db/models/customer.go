package models

import "time"

// Customer is referenced by payment methods and transactions. Created once;
// email is unique across the store.
type Customer struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Email     *string   `gorm:"column:email;unique"`
	FirstName *string   `gorm:"column:first_name"`
	LastName  *string   `gorm:"column:last_name"`
	Phone     *string   `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default gorm naming.
func (Customer) TableName() string {
	return "customers"
}

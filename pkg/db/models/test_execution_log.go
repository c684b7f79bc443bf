package models

import (
	"time"

	"github.com/paymentqa/paytest-backend/pkg/enums"
)

// TestExecutionLog records one test case outcome.
type TestExecutionLog struct {
	ID            string           `gorm:"column:id;primaryKey"`
	TestSuite     string           `gorm:"column:test_suite;not null"`
	TestCase      string           `gorm:"column:test_case;not null"`
	Status        enums.TestStatus `gorm:"column:status;not null"`
	ExecutionTime *float64         `gorm:"column:execution_time"`
	Environment   string           `gorm:"column:environment;not null;default:'ci'"`
	ErrorMessage  *string          `gorm:"column:error_message"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default gorm naming.
func (TestExecutionLog) TableName() string {
	return "test_execution_logs"
}

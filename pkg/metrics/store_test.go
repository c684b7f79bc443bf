package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncInsert("payment_transaction")
	m.IncInsert("payment_transaction")
	m.IncFailure("insert_refund")
	m.ObserveDuration("transaction_count", 25*time.Millisecond)
	m.AddPurged(7)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "store_inserts_total", "entity", "payment_transaction"); err != nil {
		t.Fatalf("fetch inserts: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 inserts, got %v", got)
	}

	if got, err := fetchCounterValue(mfs, "store_failures_total", "operation", "insert_refund"); err != nil {
		t.Fatalf("fetch failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}

	if got, err := fetchPlainCounterValue(mfs, "store_cleanup_purged_total"); err != nil {
		t.Fatalf("fetch purged: %v", err)
	} else if got != 7 {
		t.Fatalf("expected 7 purged rows, got %v", got)
	}
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var m *StoreMetrics
	m.IncInsert("customer")
	m.IncFailure("insert_customer")
	m.ObserveDuration("cleanup", time.Second)
	m.AddPurged(3)

	empty := NewStoreMetrics(nil)
	empty.IncInsert("customer")
	empty.AddPurged(1)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, labelName, labelValue string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s{%s=%q} not found", name, labelName, labelValue)
}

func fetchPlainCounterValue(mfs []*dto.MetricFamily, name string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %s not found", name)
}

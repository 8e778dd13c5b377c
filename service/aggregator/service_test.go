package aggregator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/elC0mpa/aliyun-doctor/model"
)

const tolerance = 1e-9

func sampleItems() []model.BillingLineItem {
	return []model.BillingLineItem{
		{BillingDate: "2024-01-01", ProductCode: "ecs", PretaxGrossAmount: 100, InvoiceDiscount: 4, DeductedByCoupons: 3, DeductedByCashCoupons: 2, DeductedByPrepaidCard: 1},
		{BillingDate: "2024-01-01", ProductCode: "ecs", PretaxGrossAmount: 50, InvoiceDiscount: 5},
		{BillingDate: "2024-01-01", ProductCode: "oss", PretaxGrossAmount: 20, DeductedByCoupons: 2},
		{BillingDate: "2024-01-02", ProductCode: "ecs", PretaxGrossAmount: 80, DeductedByPrepaidCard: 8},
		{BillingDate: "2024-01-02", ProductCode: "", PretaxGrossAmount: 10},
	}
}

func TestAggregate(t *testing.T) {
	data := Aggregate(sampleItems())

	if len(data) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(data))
	}

	ecs := data["2024-01-01"]["ecs"]
	if ecs == nil {
		t.Fatal("missing bucket for (2024-01-01, ecs)")
	}
	if ecs.Original != 150 {
		t.Errorf("original = %v, want 150", ecs.Original)
	}
	if ecs.Discount != 15 {
		t.Errorf("discount = %v, want 15", ecs.Discount)
	}
	if math.Abs(ecs.Actual-135) > tolerance {
		t.Errorf("actual = %v, want 135", ecs.Actual)
	}

	if _, ok := data["2024-01-02"][model.UnknownProduct]; !ok {
		t.Errorf("item without product code should land in the %q bucket", model.UnknownProduct)
	}
}

func TestAggregateBucketInvariant(t *testing.T) {
	data := Aggregate(sampleItems())

	for date, products := range data {
		for code, bucket := range products {
			if math.Abs(bucket.Actual-(bucket.Original-bucket.Discount)) > tolerance {
				t.Errorf("(%s, %s): actual %v != original %v - discount %v", date, code, bucket.Actual, bucket.Original, bucket.Discount)
			}
		}
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	items := sampleItems()
	want := Aggregate(items)

	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 10; run++ {
		shuffled := make([]model.BillingLineItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Aggregate(shuffled)
		for date, products := range want {
			for code, bucket := range products {
				other := got[date][code]
				if other == nil {
					t.Fatalf("run %d: missing bucket (%s, %s)", run, date, code)
				}
				if math.Abs(other.Original-bucket.Original) > tolerance ||
					math.Abs(other.Discount-bucket.Discount) > tolerance ||
					math.Abs(other.Actual-bucket.Actual) > tolerance {
					t.Errorf("run %d: bucket (%s, %s) differs after shuffle", run, date, code)
				}
			}
		}
	}
}

func TestAggregateDuplicatesDoubleCount(t *testing.T) {
	item := model.BillingLineItem{BillingDate: "2024-01-01", ProductCode: "ecs", PretaxGrossAmount: 10}

	data := Aggregate([]model.BillingLineItem{item, item})

	if got := data["2024-01-01"]["ecs"].Original; got != 20 {
		t.Errorf("duplicates should double-count, original = %v, want 20", got)
	}
}

func TestAggregateEmpty(t *testing.T) {
	data := Aggregate(nil)
	if len(data) != 0 {
		t.Errorf("expected empty result, got %d dates", len(data))
	}
}

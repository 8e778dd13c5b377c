package model

import (
	"testing"
	"time"
)

func TestNewDateWindow(t *testing.T) {
	ref := time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		days      int
		wantStart string
		wantLen   int
	}{
		{"SingleDay", 1, "2024-03-15", 1},
		{"Week", 7, "2024-03-09", 7},
		{"SpansMonth", 20, "2024-02-25", 20},
		{"Max", 30, "2024-02-15", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := NewDateWindow(tt.days, ref)

			if got := window.Start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := window.End.Format("2006-01-02"); got != "2024-03-15" {
				t.Errorf("end = %s, want 2024-03-15", got)
			}
			if got := len(window.Days()); got != tt.wantLen {
				t.Errorf("len(Days()) = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestTotalDiscount(t *testing.T) {
	item := BillingLineItem{
		InvoiceDiscount:       1.5,
		DeductedByCoupons:     2,
		DeductedByCashCoupons: 0.5,
		DeductedByPrepaidCard: 1,
	}

	if got := item.TotalDiscount(); got != 5 {
		t.Errorf("TotalDiscount() = %v, want 5", got)
	}
}

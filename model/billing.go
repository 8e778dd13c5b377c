package model

import "time"

// UnknownProduct is the product code assigned to billing items that carry none.
const UnknownProduct = "UnknownProduct"

// BillingLineItem is a single daily billing record returned by the BSS API
type BillingLineItem struct {
	BillingDate           string
	ProductCode           string
	PretaxGrossAmount     float64
	InvoiceDiscount       float64
	DeductedByCoupons     float64
	DeductedByCashCoupons float64
	DeductedByPrepaidCard float64
}

// TotalDiscount sums the four discount components of the item
func (i BillingLineItem) TotalDiscount() float64 {
	return i.InvoiceDiscount + i.DeductedByCoupons + i.DeductedByCashCoupons + i.DeductedByPrepaidCard
}

// BillingBucket holds the running sums for one (date, product code) pair
type BillingBucket struct {
	Original float64
	Discount float64
	Actual   float64
}

// ProductCosts maps product codes to their bucket for a single date
type ProductCosts map[string]*BillingBucket

// AggregatedBillingData maps dates (YYYY-MM-DD) to per-product buckets.
// Iteration order is undefined; consumers sort keys before display.
type AggregatedBillingData map[string]ProductCosts

// DateWindow is an inclusive range of calendar days
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow returns the window ending on ref and covering days calendar days
func NewDateWindow(days int, ref time.Time) DateWindow {
	end := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return DateWindow{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}
}

// Days enumerates every day in the window in ascending order
func (w DateWindow) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

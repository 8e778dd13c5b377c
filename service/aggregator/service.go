// Package aggregator reduces flat billing line items into per-day,
// per-product cost buckets.
package aggregator

import "github.com/elC0mpa/aliyun-doctor/model"

// Aggregate groups items by (billing date, product code), summing the pretax
// gross amount, the combined discounts and the per-item net amount. Known
// limitation: items are taken as-is, so duplicates returned by the API
// double-count.
func Aggregate(items []model.BillingLineItem) model.AggregatedBillingData {
	data := make(model.AggregatedBillingData)

	for _, item := range items {
		productCode := item.ProductCode
		if productCode == "" {
			productCode = model.UnknownProduct
		}

		products, ok := data[item.BillingDate]
		if !ok {
			products = make(model.ProductCosts)
			data[item.BillingDate] = products
		}

		bucket, ok := products[productCode]
		if !ok {
			bucket = &model.BillingBucket{}
			products[productCode] = bucket
		}

		discount := item.TotalDiscount()
		bucket.Original += item.PretaxGrossAmount
		bucket.Discount += discount
		bucket.Actual += item.PretaxGrossAmount - discount
	}

	return data
}

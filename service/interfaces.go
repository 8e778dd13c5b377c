package service

import (
	"context"

	"github.com/elC0mpa/aliyun-doctor/model"
)

// BillingService provides daily billing data from the BSS API
type BillingService interface {
	GetBillingItems(ctx context.Context, days int) ([]model.BillingLineItem, error)
}

// InstanceService provides ECS instance listings
type InstanceService interface {
	ListInstances(ctx context.Context, region string, pageSize int32) (*model.InstanceList, error)
}

// ReportService renders aggregated billing data and exports it to disk
type ReportService interface {
	Render(data model.AggregatedBillingData) (string, error)
	Export(data model.AggregatedBillingData, outputPath string) (string, error)
}

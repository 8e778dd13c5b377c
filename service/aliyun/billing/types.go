package aliyunbilling

import (
	"context"
	"time"

	bssopenapi "github.com/alibabacloud-go/bssopenapi-20171214/v3/client"
	"github.com/elC0mpa/aliyun-doctor/model"
	"go.uber.org/zap"
)

// billingAPI is the slice of the BSS client the fetcher needs. Tests fake it.
type billingAPI interface {
	DescribeInstanceBill(request *bssopenapi.DescribeInstanceBillRequest) (*bssopenapi.DescribeInstanceBillResponse, error)
}

type service struct {
	client billingAPI
	logger *zap.Logger
	now    func() time.Time
}

// BillingService provides daily billing data from the BSS API
type BillingService interface {
	GetBillingItems(ctx context.Context, days int) ([]model.BillingLineItem, error)
}

package aliyunbilling

import (
	"context"
	"fmt"
	"time"

	bssopenapi "github.com/alibabacloud-go/bssopenapi-20171214/v3/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/elC0mpa/aliyun-doctor/logging"
	"github.com/elC0mpa/aliyun-doctor/model"
	"go.uber.org/zap"
)

const (
	granularityDaily = "DAILY"
	pageSize         = 300
)

func NewService(cfg *openapi.Config) (*service, error) {
	client, err := bssopenapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create BSS client: %w", err)
	}

	return &service{
		client: client,
		logger: logging.L(),
		now:    time.Now,
	}, nil
}

// GetBillingItems returns every billing line item for the window ending today
// and covering the given number of days. Each day is queried separately with
// its own billing cycle and paginated via the API's continuation token. A
// failed page aborts pagination for that day only; other days still return
// their data.
func (s *service) GetBillingItems(ctx context.Context, days int) ([]model.BillingLineItem, error) {
	window := model.NewDateWindow(days, s.now())

	var items []model.BillingLineItem
	for _, day := range window.Days() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, s.fetchDay(day)...)
	}

	return items, nil
}

func (s *service) fetchDay(day time.Time) []model.BillingLineItem {
	cycle := day.Format("2006-01")
	date := day.Format("2006-01-02")

	var items []model.BillingLineItem
	var nextToken *string
	for {
		request := &bssopenapi.DescribeInstanceBillRequest{
			BillingCycle: tea.String(cycle),
			BillingDate:  tea.String(date),
			Granularity:  tea.String(granularityDaily),
			MaxResults:   tea.Int32(pageSize),
			NextToken:    nextToken,
		}

		response, err := s.client.DescribeInstanceBill(request)
		if err != nil {
			s.logger.Warn("billing page fetch failed, skipping rest of day",
				zap.String("date", date),
				zap.Error(err))
			break
		}

		data := extractData(response)
		if data == nil {
			break
		}

		for _, item := range data.Items {
			items = append(items, convertItem(item, date))
		}

		token := tea.StringValue(data.NextToken)
		if token == "" {
			break
		}
		nextToken = tea.String(token)
	}

	return items
}

func extractData(response *bssopenapi.DescribeInstanceBillResponse) *bssopenapi.DescribeInstanceBillResponseBodyData {
	if response == nil || response.Body == nil {
		return nil
	}
	return response.Body.Data
}

func convertItem(item *bssopenapi.DescribeInstanceBillResponseBodyDataItems, requestedDate string) model.BillingLineItem {
	date := tea.StringValue(item.BillingDate)
	if date == "" {
		date = requestedDate
	}

	productCode := tea.StringValue(item.ProductCode)
	if productCode == "" {
		productCode = model.UnknownProduct
	}

	return model.BillingLineItem{
		BillingDate:           date,
		ProductCode:           productCode,
		PretaxGrossAmount:     float64(tea.Float32Value(item.PretaxGrossAmount)),
		InvoiceDiscount:       float64(tea.Float32Value(item.InvoiceDiscount)),
		DeductedByCoupons:     float64(tea.Float32Value(item.DeductedByCoupons)),
		DeductedByCashCoupons: float64(tea.Float32Value(item.DeductedByCashCoupons)),
		DeductedByPrepaidCard: float64(tea.Float32Value(item.DeductedByPrepaidCard)),
	}
}

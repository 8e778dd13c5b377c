package orchestrator

import (
	"context"
	"fmt"

	"github.com/elC0mpa/aliyun-doctor/model"
	"github.com/elC0mpa/aliyun-doctor/service"
	"github.com/elC0mpa/aliyun-doctor/service/aggregator"
	"github.com/elC0mpa/aliyun-doctor/utils"
	"github.com/jedib0t/go-pretty/v6/text"
)

const instancePageSize = 100

type orchestratorService struct {
	billingService  service.BillingService
	instanceService service.InstanceService
	reportService   service.ReportService
}

func NewService(billingService service.BillingService, instanceService service.InstanceService, reportService service.ReportService) *orchestratorService {
	return &orchestratorService{
		billingService:  billingService,
		instanceService: instanceService,
		reportService:   reportService,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	if flags.Instances {
		return s.instancesWorkflow(flags)
	}

	if flags.Export != "" {
		return s.exportWorkflow(flags)
	}

	if flags.Trend {
		return s.trendWorkflow(flags)
	}

	return s.defaultWorkflow(flags)
}

func (s *orchestratorService) defaultWorkflow(flags model.Flags) error {
	items, err := s.billingService.GetBillingItems(context.Background(), flags.Days)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawBillingTable(aggregator.Aggregate(items))
	return nil
}

func (s *orchestratorService) trendWorkflow(flags model.Flags) error {
	items, err := s.billingService.GetBillingItems(context.Background(), flags.Days)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawDailyTrendChart(aggregator.Aggregate(items))
	return nil
}

func (s *orchestratorService) instancesWorkflow(flags model.Flags) error {
	list, err := s.instanceService.ListInstances(context.Background(), flags.Region, instancePageSize)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawInstanceTable(list)
	return nil
}

func (s *orchestratorService) exportWorkflow(flags model.Flags) error {
	items, err := s.billingService.GetBillingItems(context.Background(), flags.Days)
	if err != nil {
		return err
	}

	path, err := s.reportService.Export(aggregator.Aggregate(items), flags.Export)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	fmt.Printf("\n Billing report exported to %s\n", text.FgGreen.Sprint(path))
	return nil
}

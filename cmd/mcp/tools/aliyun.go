package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/aliyun-doctor/cmd/mcp/response"
	"github.com/elC0mpa/aliyun-doctor/service/aggregator"
	aliyunbilling "github.com/elC0mpa/aliyun-doctor/service/aliyun/billing"
	aliyunconfig "github.com/elC0mpa/aliyun-doctor/service/aliyun/config"
	aliyunecs "github.com/elC0mpa/aliyun-doctor/service/aliyun/ecs"
	"github.com/elC0mpa/aliyun-doctor/service/report"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	defaultInstanceRegion   = "cn-hangzhou"
	defaultInstancePageSize = 100
	defaultBillingDays      = 7
)

// RegisterAliyunTools registers all Aliyun tools with the MCP server
func RegisterAliyunTools(s *server.MCPServer, accessKeyID, accessKeySecret, region string) {
	// Instance listing
	s.AddTool(
		mcp.NewTool("list_instances",
			mcp.WithDescription("List ECS instances in a region with status, type, IP addresses, OS and sizing"),
			mcp.WithString("region",
				mcp.Description("Aliyun region ID (default cn-hangzhou)"),
			),
			mcp.WithNumber("pageSize",
				mcp.Description("Number of instances to return, 1-100 (default 100)"),
			),
		),
		makeListInstancesHandler(accessKeyID, accessKeySecret),
	)

	// Billing aggregation
	s.AddTool(
		mcp.NewTool("get_billing_info",
			mcp.WithDescription("Get billing costs for the last N days, grouped by date and product with original, discount and actual amounts"),
			mcp.WithNumber("days",
				mcp.Description("Number of days to include, 1-30 (default 7)"),
			),
		),
		makeBillingInfoHandler(accessKeyID, accessKeySecret, region),
	)

	// Report export
	s.AddTool(
		mcp.NewTool("export_billing_report",
			mcp.WithDescription("Export an HTML billing report for the last N days and return the written file path"),
			mcp.WithNumber("days",
				mcp.Description("Number of days to include, 1-30 (default 7)"),
			),
			mcp.WithString("output_path",
				mcp.Description("Path of the HTML file to write (default exported/aliyun_billing_report.html)"),
			),
		),
		makeExportReportHandler(accessKeyID, accessKeySecret, region),
	)
}

func makeListInstancesHandler(accessKeyID, accessKeySecret string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		region := stringArg(request, "region", defaultInstanceRegion)
		pageSize := intArg(request, "pageSize", defaultInstancePageSize, 1, 100)

		configSvc := aliyunconfig.NewService()
		ecsSvc, err := aliyunecs.NewService(configSvc.GetEcsCfg(accessKeyID, accessKeySecret, region))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure ECS client: %v", err)), nil
		}

		list, err := ecsSvc.ListInstances(ctx, region, int32(pageSize))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list instances: %v", err)), nil
		}

		resp := response.ConvertInstanceList(list)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeBillingInfoHandler(accessKeyID, accessKeySecret, region string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days := intArg(request, "days", defaultBillingDays, 1, 30)

		configSvc := aliyunconfig.NewService()
		billingSvc, err := aliyunbilling.NewService(configSvc.GetBssCfg(accessKeyID, accessKeySecret, region))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure billing client: %v", err)), nil
		}

		items, err := billingSvc.GetBillingItems(ctx, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get billing data: %v", err)), nil
		}

		resp := response.ConvertAggregatedBilling(aggregator.Aggregate(items))
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeExportReportHandler(accessKeyID, accessKeySecret, region string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days := intArg(request, "days", defaultBillingDays, 1, 30)
		outputPath := stringArg(request, "output_path", report.DefaultOutputPath)

		configSvc := aliyunconfig.NewService()
		billingSvc, err := aliyunbilling.NewService(configSvc.GetBssCfg(accessKeyID, accessKeySecret, region))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure billing client: %v", err)), nil
		}

		items, err := billingSvc.GetBillingItems(ctx, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get billing data: %v", err)), nil
		}

		reportSvc := report.NewService()
		path, err := reportSvc.Export(aggregator.Aggregate(items), outputPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to export report: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Billing report exported to %s", path)), nil
	}
}

package aliyunecs

import (
	"context"
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/elC0mpa/aliyun-doctor/model"
)

func NewService(cfg *openapi.Config) (*service, error) {
	client, err := ecs.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECS client: %w", err)
	}

	return &service{
		client: client,
	}, nil
}

// ListInstances requests a single page of instances for the region and
// flattens each record into a summary. Absent fields stay at their zero
// value, they are never an error.
func (s *service) ListInstances(ctx context.Context, region string, pageSize int32) (*model.InstanceList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	request := &ecs.DescribeInstancesRequest{
		RegionId: tea.String(region),
		PageSize: tea.Int32(pageSize),
	}

	response, err := s.client.DescribeInstances(request)
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}

	result := &model.InstanceList{
		Instances: []model.EcsInstanceSummary{},
		Region:    region,
	}

	if response == nil || response.Body == nil {
		return result, nil
	}

	result.Total = int(tea.Int32Value(response.Body.TotalCount))

	if response.Body.Instances == nil {
		return result, nil
	}

	for _, instance := range response.Body.Instances.Instance {
		result.Instances = append(result.Instances, convertInstance(instance, region))
	}

	return result, nil
}

func convertInstance(instance *ecs.DescribeInstancesResponseBodyInstancesInstance, region string) model.EcsInstanceSummary {
	summary := model.EcsInstanceSummary{
		InstanceID:   tea.StringValue(instance.InstanceId),
		InstanceName: tea.StringValue(instance.InstanceName),
		Status:       tea.StringValue(instance.Status),
		InstanceType: tea.StringValue(instance.InstanceType),
		Region:       region,
		CreationTime: tea.StringValue(instance.CreationTime),
		OSType:       tea.StringValue(instance.OSType),
		OSName:       tea.StringValue(instance.OSName),
		CPU:          tea.Int32Value(instance.Cpu),
		MemoryMB:     tea.Int32Value(instance.Memory),
	}

	summary.PublicIP = firstPublicIP(instance)
	summary.PrivateIP = firstPrivateIP(instance)

	return summary
}

func firstPublicIP(instance *ecs.DescribeInstancesResponseBodyInstancesInstance) *string {
	if instance.PublicIpAddress != nil && len(instance.PublicIpAddress.IpAddress) > 0 {
		return instance.PublicIpAddress.IpAddress[0]
	}
	if instance.EipAddress != nil && tea.StringValue(instance.EipAddress.IpAddress) != "" {
		return instance.EipAddress.IpAddress
	}
	return nil
}

func firstPrivateIP(instance *ecs.DescribeInstancesResponseBodyInstancesInstance) *string {
	if instance.VpcAttributes != nil && instance.VpcAttributes.PrivateIpAddress != nil &&
		len(instance.VpcAttributes.PrivateIpAddress.IpAddress) > 0 {
		return instance.VpcAttributes.PrivateIpAddress.IpAddress[0]
	}
	if instance.InnerIpAddress != nil && len(instance.InnerIpAddress.IpAddress) > 0 {
		return instance.InnerIpAddress.IpAddress[0]
	}
	return nil
}

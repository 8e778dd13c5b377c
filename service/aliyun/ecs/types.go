package aliyunecs

import (
	"context"

	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/elC0mpa/aliyun-doctor/model"
)

// ecsAPI is the slice of the ECS client the lister needs. Tests fake it.
type ecsAPI interface {
	DescribeInstances(request *ecs.DescribeInstancesRequest) (*ecs.DescribeInstancesResponse, error)
}

type service struct {
	client ecsAPI
}

// InstanceService provides ECS instance listings
type InstanceService interface {
	ListInstances(ctx context.Context, region string, pageSize int32) (*model.InstanceList, error)
}

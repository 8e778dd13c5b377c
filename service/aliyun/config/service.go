package aliyunconfig

import (
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"
)

// The BSS OpenAPI is account level and served from a single endpoint.
const bssEndpoint = "business.aliyuncs.com"

func NewService() *service {
	return &service{}
}

func (s *service) GetBssCfg(accessKeyID, accessKeySecret, region string) *openapi.Config {
	return &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(region),
		Endpoint:        tea.String(bssEndpoint),
	}
}

func (s *service) GetEcsCfg(accessKeyID, accessKeySecret, region string) *openapi.Config {
	return &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(region),
		Endpoint:        tea.String(fmt.Sprintf("ecs.%s.aliyuncs.com", region)),
	}
}

package aliyunconfig

import (
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
)

type service struct{}

// ConfigService builds OpenAPI client configurations from static credentials
type ConfigService interface {
	GetBssCfg(accessKeyID, accessKeySecret, region string) *openapi.Config
	GetEcsCfg(accessKeyID, accessKeySecret, region string) *openapi.Config
}

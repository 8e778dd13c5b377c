package flag

import (
	"flag"

	"github.com/elC0mpa/aliyun-doctor/model"
)

const (
	defaultRegion = "cn-hangzhou"
	defaultDays   = 7
)

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	region := flag.String("region", defaultRegion, "Aliyun region for instance listing")
	days := flag.Int("days", defaultDays, "Number of days of billing data (1-30)")
	instances := flag.Bool("instances", false, "Display ECS instance summary")
	trend := flag.Bool("trend", false, "Display a daily spend trend chart")
	export := flag.String("export", "", "Export the billing report as HTML to the given path")

	flag.Parse()

	return model.Flags{
		Region:    *region,
		Days:      CoerceDays(*days),
		Instances: *instances,
		Trend:     *trend,
		Export:    *export,
	}, nil
}

// CoerceDays falls back to the default window instead of rejecting
// out-of-range values.
func CoerceDays(days int) int {
	if days < 1 || days > 30 {
		return defaultDays
	}
	return days
}

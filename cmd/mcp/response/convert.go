package response

import (
	"github.com/elC0mpa/aliyun-doctor/model"
)

// ConvertInstanceList converts model.InstanceList to response.InstanceList
func ConvertInstanceList(list *model.InstanceList) *InstanceList {
	if list == nil {
		return nil
	}

	instances := make([]EcsInstance, 0, len(list.Instances))
	for _, instance := range list.Instances {
		instances = append(instances, EcsInstance{
			InstanceID:   instance.InstanceID,
			Name:         instance.InstanceName,
			Status:       instance.Status,
			Type:         instance.InstanceType,
			PublicIP:     instance.PublicIP,
			PrivateIP:    instance.PrivateIP,
			Region:       instance.Region,
			CreationTime: instance.CreationTime,
			OSType:       instance.OSType,
			OSName:       instance.OSName,
			CPU:          instance.CPU,
			MemoryMB:     instance.MemoryMB,
		})
	}

	return &InstanceList{
		Instances: instances,
		Total:     list.Total,
		Region:    list.Region,
	}
}

// ConvertAggregatedBilling converts model.AggregatedBillingData to its wire
// form. encoding/json emits map keys in sorted order, which keeps the output
// deterministic without an explicit sort here.
func ConvertAggregatedBilling(data model.AggregatedBillingData) AggregatedBilling {
	result := make(AggregatedBilling, len(data))

	for date, products := range data {
		converted := make(map[string]BillingBucket, len(products))
		for code, bucket := range products {
			converted[code] = BillingBucket{
				Original: bucket.Original,
				Discount: bucket.Discount,
				Actual:   bucket.Actual,
			}
		}
		result[date] = converted
	}

	return result
}

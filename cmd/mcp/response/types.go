package response

// EcsInstance represents a flattened ECS instance record
type EcsInstance struct {
	InstanceID   string  `json:"instance_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Type         string  `json:"type"`
	PublicIP     *string `json:"public_ip"`
	PrivateIP    *string `json:"private_ip"`
	Region       string  `json:"region"`
	CreationTime string  `json:"creation_time"`
	OSType       string  `json:"os_type"`
	OSName       string  `json:"os_name"`
	CPU          int32   `json:"cpu"`
	MemoryMB     int32   `json:"memory_mb"`
}

// InstanceList is the list_instances tool result
type InstanceList struct {
	Instances []EcsInstance `json:"instances"`
	Total     int           `json:"total"`
	Region    string        `json:"region"`
}

// BillingBucket holds the aggregated amounts for one (date, product) pair
type BillingBucket struct {
	Original float64 `json:"original"`
	Discount float64 `json:"discount"`
	Actual   float64 `json:"actual"`
}

// AggregatedBilling maps dates to product codes to their bucket. Both key
// levels serialize in sorted order.
type AggregatedBilling map[string]map[string]BillingBucket

package model

// EcsInstanceSummary is a flattened projection of an ECS instance record.
// Fields absent in the underlying record stay at their zero value.
type EcsInstanceSummary struct {
	InstanceID   string
	InstanceName string
	Status       string
	InstanceType string
	PublicIP     *string
	PrivateIP    *string
	Region       string
	CreationTime string
	OSType       string
	OSName       string
	CPU          int32
	MemoryMB     int32
}

// InstanceList is the result of a single DescribeInstances page
type InstanceList struct {
	Instances []EcsInstanceSummary
	Total     int
	Region    string
}

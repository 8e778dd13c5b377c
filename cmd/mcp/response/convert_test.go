package response

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/elC0mpa/aliyun-doctor/model"
)

func TestConvertInstanceListNilPublicIP(t *testing.T) {
	list := &model.InstanceList{
		Instances: []model.EcsInstanceSummary{
			{InstanceID: "i-1", Status: "Running"},
		},
		Total:  1,
		Region: "cn-hangzhou",
	}

	data, err := json.Marshal(ConvertInstanceList(list))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	if !strings.Contains(string(data), `"public_ip":null`) {
		t.Errorf("absent public IP must serialize as null, got %s", data)
	}
}

func TestConvertInstanceListEmpty(t *testing.T) {
	converted := ConvertInstanceList(&model.InstanceList{Region: "cn-hangzhou"})

	data, err := json.Marshal(converted)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	if !strings.Contains(string(data), `"instances":[]`) {
		t.Errorf("empty list must serialize as [], got %s", data)
	}
}

func TestConvertAggregatedBilling(t *testing.T) {
	data := model.AggregatedBillingData{
		"2024-01-03": {"ecs": &model.BillingBucket{Original: 100, Discount: 10, Actual: 90}},
		"2024-01-01": {"oss": &model.BillingBucket{Original: 50, Discount: 5, Actual: 45}},
	}

	converted := ConvertAggregatedBilling(data)

	if got := converted["2024-01-03"]["ecs"]; got.Actual != 90 {
		t.Errorf("actual = %v, want 90", got.Actual)
	}

	// encoding/json sorts map keys, so the wire form is date-ordered.
	encoded, err := json.Marshal(converted)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Index(string(encoded), "2024-01-01") > strings.Index(string(encoded), "2024-01-03") {
		t.Errorf("dates not sorted in output: %s", encoded)
	}
}

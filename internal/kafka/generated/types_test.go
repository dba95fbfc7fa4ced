package generated_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

func sampleClusterInfo() *api.ClusterInfo {
	return &api.ClusterInfo{
		ClusterArn:  ptr.String("arn:aws:kafka:us-east-1:123456789012:cluster/orders/abc-2"),
		ClusterName: ptr.String("orders"),
		State:       api.ClusterStateActive,
		CreationTime: ptr.Timestamp(time.Date(2024, 5, 1, 10, 11, 12, 345000000, time.UTC)),
		BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{
			BrokerAZDistribution: api.BrokerAZDistributionDefault,
			ClientSubnets:        []string{"subnet-c", "subnet-a", "subnet-b"},
			InstanceType:         ptr.String("kafka.m5.large"),
			StorageInfo:          &api.StorageInfo{EbsStorageInfo: &api.EBSStorageInfo{VolumeSize: ptr.Int32(1000)}},
		},
		ClientAuthentication: &api.ClientAuthentication{
			Sasl: &api.Sasl{Iam: &api.Iam{Enabled: ptr.Bool(true)}},
		},
		EncryptionInfo: &api.EncryptionInfo{
			EncryptionInTransit: &api.EncryptionInTransit{ClientBroker: api.ClientBrokerTls, InCluster: ptr.Bool(true)},
		},
		EnhancedMonitoring:  api.EnhancedMonitoringPerBroker,
		NumberOfBrokerNodes: ptr.Int32(3),
		CurrentVersion:      ptr.String("K3AEGXETSR30VB"),
		Tags:                map[string]string{"team": "data"},
	}
}

func TestClusterInfo_JSONRoundTrip(t *testing.T) {
	in := sampleClusterInfo()

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out api.ClusterInfo
	require.NoError(t, json.Unmarshal(data, &out))

	assert.True(t, cmp.Equal(in, &out), cmp.Diff(in, &out))
	assert.Equal(t, []string{"subnet-c", "subnet-a", "subnet-b"}, out.BrokerNodeGroupInfo.ClientSubnets)
}

func TestClusterInfo_WireNames(t *testing.T) {
	data, err := json.Marshal(sampleClusterInfo())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "ACTIVE", raw["state"])
	assert.Equal(t, "2024-05-01T10:11:12.345Z", raw["creationTime"])
	assert.Equal(t, float64(3), raw["numberOfBrokerNodes"])
	assert.Contains(t, raw, "brokerNodeGroupInfo")
	assert.NotContains(t, raw, "zookeeperConnectString")
	assert.NotContains(t, raw, "stateInfo")
	assert.NotContains(t, raw, "activeOperationArn")
}

func TestModelEquality(t *testing.T) {
	a := sampleClusterInfo()
	b := sampleClusterInfo()
	assert.True(t, cmp.Equal(a, b))

	b.BrokerNodeGroupInfo.StorageInfo.EbsStorageInfo.VolumeSize = ptr.Int32(2000)
	assert.False(t, cmp.Equal(a, b))

	c := sampleClusterInfo()
	c.State = api.ClusterStateUpdating
	assert.False(t, cmp.Equal(a, c))

	d := sampleClusterInfo()
	d.BrokerNodeGroupInfo.ClientSubnets = []string{"subnet-a", "subnet-b", "subnet-c"}
	assert.False(t, cmp.Equal(a, d), "list order is significant")
}

func TestBlobIsBase64(t *testing.T) {
	in := api.DescribeConfigurationRevisionResponse{
		Arn:              ptr.String("arn:aws:kafka:us-east-1:123456789012:configuration/defaults/abc-2"),
		Revision:         ptr.Int64(2),
		ServerProperties: []byte("log.retention.hours=168\n"),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"serverProperties":"bG9nLnJldGVudGlvbi5ob3Vycz0xNjgK"`)

	var out api.DescribeConfigurationRevisionResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.ServerProperties, out.ServerProperties)
}

func TestBindingFieldsStayOffTheBody(t *testing.T) {
	data, err := json.Marshal(api.UpdateBrokerCountRequest{
		ClusterArn:                ptr.String("arn"),
		CurrentVersion:            ptr.String("K1"),
		TargetNumberOfBrokerNodes: ptr.Int32(6),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentVersion":"K1","targetNumberOfBrokerNodes":6}`, string(data))

	data, err = json.Marshal(api.TagResourceResponse{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestUnknownEnumValuesDecode(t *testing.T) {
	var out api.ClusterInfo
	require.NoError(t, json.Unmarshal([]byte(`{"state":"SOMETHING_NEW"}`), &out))
	assert.Equal(t, api.ClusterState("SOMETHING_NEW"), out.State)
}

func TestBindingsCoverEveryOperation(t *testing.T) {
	assert.Len(t, api.Bindings, 31)
	assert.Equal(t, 204, api.Bindings["TagResource"].SuccessCode)
	assert.Equal(t, "PATCH", api.Bindings["UpdateSecurity"].Method)
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *SmithyAPI {
	t.Helper()
	api, err := ParseSmithyJSON("../testdata/kafka-mini.json")
	require.NoError(t, err)
	return api
}

func TestParseSmithyJSON(t *testing.T) {
	api := loadFixture(t)

	service, name, err := api.GetServiceShape()
	require.NoError(t, err)
	assert.Equal(t, "com.amazonaws.kafka#Kafka", name)
	assert.Equal(t, "2018-11-14", service.Version)
	assert.Equal(t, "Kafka", service.StringTrait(TraitAWSService, "sdkId"))
	assert.Equal(t, "kafka", service.StringTrait(TraitSigV4, "name"))

	assert.Equal(t, []string{
		"com.amazonaws.kafka#DescribeCluster",
		"com.amazonaws.kafka#ListClusters",
		"com.amazonaws.kafka#TagResource",
	}, api.OperationNames())
	assert.Equal(t, []string{
		"com.amazonaws.kafka#InternalServerErrorException",
		"com.amazonaws.kafka#NotFoundException",
	}, api.ErrorShapes())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseSmithyJSON("does-not-exist.json")
	assert.ErrorContains(t, err, "failed to open file")

	_, err = Parse(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "failed to parse JSON")

	_, err = Parse(strings.NewReader(`{"smithy":"2.0","shapes":{}}`))
	assert.ErrorContains(t, err, "no shapes")
}

func TestHTTPBinding(t *testing.T) {
	api := loadFixture(t)

	binding, ok := api.Shapes["com.amazonaws.kafka#DescribeCluster"].GetHTTPBinding()
	require.True(t, ok)
	assert.Equal(t, HTTPBinding{Method: "GET", URI: "/v1/clusters/{clusterArn}", Code: 200}, binding)

	binding, ok = api.Shapes["com.amazonaws.kafka#TagResource"].GetHTTPBinding()
	require.True(t, ok)
	assert.Equal(t, 204, binding.Code)

	_, ok = api.Shapes["com.amazonaws.kafka#ClusterInfo"].GetHTTPBinding()
	assert.False(t, ok)
}

func TestMemberLocation(t *testing.T) {
	api := loadFixture(t)

	arn := api.Shapes["com.amazonaws.kafka#DescribeClusterRequest"].Members["ClusterArn"]
	assert.Equal(t, "uri", arn.Location())
	assert.Equal(t, "clusterArn", arn.LocationName("ClusterArn"))
	assert.True(t, arn.IsRequired())

	maxResults := api.Shapes["com.amazonaws.kafka#ListClustersRequest"].Members["MaxResults"]
	assert.Equal(t, "querystring", maxResults.Location())
	assert.Equal(t, "maxResults", maxResults.LocationName("MaxResults"))
	assert.False(t, maxResults.IsRequired())

	info := api.Shapes["com.amazonaws.kafka#DescribeClusterResponse"].Members["ClusterInfo"]
	assert.Equal(t, "", info.Location())
	assert.Equal(t, "clusterInfo", info.GetJSONName("ClusterInfo"))
}

func TestGetJSONName(t *testing.T) {
	tests := []struct {
		name      string
		member    *SmithyMember
		fieldName string
		expected  string
	}{
		{
			name:      "falls back to the member name",
			member:    &SmithyMember{},
			fieldName: "ClusterArn",
			expected:  "ClusterArn",
		},
		{
			name: "uses the jsonName trait",
			member: &SmithyMember{
				Traits: map[string]interface{}{TraitJSONName: "clusterArn"},
			},
			fieldName: "ClusterArn",
			expected:  "clusterArn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.member.GetJSONName(tt.fieldName))
		})
	}
}

func TestEnumMembersKeepModelOrder(t *testing.T) {
	api := loadFixture(t)

	shape := api.Shapes["com.amazonaws.kafka#ClusterState"]
	require.True(t, shape.IsEnum())
	assert.Equal(t, []EnumMember{
		{Name: "Active", Value: "ACTIVE"},
		{Name: "Creating", Value: "CREATING"},
		{Name: "RebootingBroker", Value: "REBOOTING_BROKER"},
		{Name: "Deleting", Value: "DELETING"},
	}, shape.GetEnumMembers())
}

func TestLegacyEnumTrait(t *testing.T) {
	shape := &SmithyShape{
		Type: "string",
		Traits: map[string]interface{}{
			TraitEnum: []interface{}{
				map[string]interface{}{"value": "TLS"},
				map[string]interface{}{"value": "TLS_PLAINTEXT"},
			},
		},
	}
	assert.True(t, shape.IsEnum())
	assert.Equal(t, []EnumMember{
		{Name: "Tls", Value: "TLS"},
		{Name: "TlsPlaintext", Value: "TLS_PLAINTEXT"},
	}, shape.GetEnumMembers())
}

func TestErrorTraits(t *testing.T) {
	api := loadFixture(t)

	notFound := api.Shapes["com.amazonaws.kafka#NotFoundException"]
	assert.True(t, notFound.IsError())
	assert.Equal(t, "client", notFound.GetErrorType())
	assert.Equal(t, 404, notFound.GetHTTPStatus())

	internal := api.Shapes["com.amazonaws.kafka#InternalServerErrorException"]
	assert.Equal(t, "server", internal.GetErrorType())
	assert.Equal(t, 500, internal.GetHTTPStatus())
}

func TestEnumConstName(t *testing.T) {
	tests := map[string]string{
		"TLS":                  "Tls",
		"TLS_PLAINTEXT":        "TlsPlaintext",
		"PER_TOPIC_PER_BROKER": "PerTopicPerBroker",
		"kafka.m5.large":       "KafkaM5Large",
		"ACTIVE":               "Active",
	}
	for in, want := range tests {
		assert.Equal(t, want, EnumConstName(in), in)
	}
}

func TestNormalizeURI(t *testing.T) {
	assert.Equal(t, "/v1/clusters/{clusterArn}/nodes", NormalizeURI("/v1/clusters/{ClusterArn}/nodes"))
	assert.Equal(t, "/v1/configurations/{arn}/revisions/{revision}", NormalizeURI("/v1/configurations/{Arn}/revisions/{Revision}"))
	assert.Equal(t, "/v1/objects/{key+}", NormalizeURI("/v1/objects/{Key+}"))
}

func TestCleanDocumentation(t *testing.T) {
	doc := CleanDocumentation("<p>Returns a list of the broker\n   nodes &amp; their endpoints.</p>")
	assert.Equal(t, "Returns a list of the broker nodes & their endpoints.", doc)
	assert.Equal(t, "Reboots brokers.", FirstSentence("Reboots brokers. The request is asynchronous."))
}

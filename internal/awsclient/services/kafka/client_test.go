package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

const testClusterArn = "arn:aws:kafka:us-east-1:123456789012:cluster/orders/0b9e1c1a-1c11-4e6d-9e0a-123456789abc-2"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(awsclient.Config{
		Endpoint:    server.URL,
		Region:      "us-east-1",
		Credentials: awsclient.NewStaticCredentials("test-key", "test-secret", ""),
		MaxRetries:  -1,
	})
}

func TestClient_DescribeCluster(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/clusters/arn%3Aaws%3Akafka%3Aus-east-1%3A123456789012%3Acluster%2Forders%2F0b9e1c1a-1c11-4e6d-9e0a-123456789abc-2", r.URL.EscapedPath())
		assert.Contains(t, r.Header.Get("Authorization"), "/us-east-1/kafka/aws4_request")
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"clusterInfo":{"clusterArn":"`+testClusterArn+`","clusterName":"orders","state":"ACTIVE",
			"creationTime":"2024-05-01T10:11:12.345Z","currentVersion":"K3AEGXETSR30VB","numberOfBrokerNodes":3,
			"tags":{"team":"data"}}}`)
	})

	out, err := client.DescribeCluster(context.Background(), &api.DescribeClusterRequest{ClusterArn: ptr.String(testClusterArn)})
	require.NoError(t, err)
	info := out.ClusterInfo
	require.NotNil(t, info)
	assert.Equal(t, "orders", ptr.ToString(info.ClusterName))
	assert.Equal(t, api.ClusterStateActive, info.State)
	assert.Equal(t, int32(3), ptr.ToInt32(info.NumberOfBrokerNodes))
	assert.Equal(t, 345000000, ptr.ToTime(info.CreationTime).Nanosecond())
	assert.Equal(t, map[string]string{"team": "data"}, info.Tags)
}

func TestClient_CreateConfigurationSendsBlob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/configurations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "defaults", body["name"])
		assert.Equal(t, "YXV0by5jcmVhdGUudG9waWNzLmVuYWJsZT1mYWxzZQ==", body["serverProperties"])
		assert.NotContains(t, body, "description")

		_, _ = io.WriteString(w, `{"arn":"arn:aws:kafka:us-east-1:123456789012:configuration/defaults/abc-2","name":"defaults",
			"state":"ACTIVE","latestRevision":{"revision":1,"creationTime":"2024-05-01T10:11:12.000Z"}}`)
	})

	out, err := client.CreateConfiguration(context.Background(), &api.CreateConfigurationRequest{
		Name:             ptr.String("defaults"),
		ServerProperties: []byte("auto.create.topics.enable=false"),
	})
	require.NoError(t, err)
	assert.Equal(t, api.ConfigurationStateActive, out.State)
	assert.Equal(t, int64(1), ptr.ToInt64(out.LatestRevision.Revision))
}

func TestClient_QueryBindings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		// signing sorts repeated values, so only membership is stable
		assert.ElementsMatch(t, []string{"env", "cost center"}, r.URL.Query()["tagKeys"])
		assert.Contains(t, r.URL.RawQuery, "cost%20center")
		w.WriteHeader(http.StatusNoContent)
	})

	out, err := client.UntagResource(context.Background(), &api.UntagResourceRequest{
		ResourceArn: ptr.String(testClusterArn),
		TagKeys:     []string{"env", "cost center"},
	})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestClient_ListClustersQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "orders", q.Get("clusterNameFilter"))
		assert.Equal(t, "5", q.Get("maxResults"))
		assert.Equal(t, "tok", q.Get("nextToken"))
		_, _ = io.WriteString(w, `{"clusterInfoList":[],"nextToken":"tok2"}`)
	})

	out, err := client.ListClusters(context.Background(), &api.ListClustersRequest{
		ClusterNameFilter: ptr.String("orders"),
		MaxResults:        ptr.Int32(5),
		NextToken:         ptr.String("tok"),
	})
	require.NoError(t, err)
	assert.Equal(t, "tok2", ptr.ToString(out.NextToken))
}

func TestClient_ValidationFailsBeforeSending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	_, err := client.UpdateBrokerCount(context.Background(), &api.UpdateBrokerCountRequest{
		ClusterArn: ptr.String(testClusterArn),
	})
	require.Error(t, err)

	var invalid *awsclient.InvalidParamsError
	require.True(t, errors.As(err, &invalid))
	assert.ElementsMatch(t, []string{"CurrentVersion", "TargetNumberOfBrokerNodes"}, invalid.Fields)

	var opErr *awsclient.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "UpdateBrokerCount", opErr.OperationName)
	assert.Equal(t, api.ServiceID, opErr.ServiceID)
}

func TestClient_ModeledErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			code:   "NotFoundException",
			check: func(t *testing.T, err error) {
				var nf *api.NotFoundException
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, "cluster is gone", ptr.ToString(nf.Message))
				assert.Equal(t, "clusterArn", ptr.ToString(nf.InvalidParameter))
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name:   "conflict",
			status: http.StatusConflict,
			code:   "ConflictException",
			check: func(t *testing.T, err error) {
				assert.True(t, IsConflict(err))
				assert.False(t, IsNotFound(err))
			},
		},
		{
			name:   "throttled",
			status: http.StatusTooManyRequests,
			code:   "TooManyRequestsException",
			check: func(t *testing.T, err error) {
				assert.True(t, IsThrottled(err))
			},
		},
		{
			name:   "unavailable",
			status: http.StatusServiceUnavailable,
			code:   "ServiceUnavailableException",
			check: func(t *testing.T, err error) {
				var su *api.ServiceUnavailableException
				require.True(t, errors.As(err, &su))
				assert.Equal(t, smithy.FaultServer, su.ErrorFault())
				assert.True(t, IsThrottled(err))
			},
		},
		{
			name:   "unmodeled",
			status: http.StatusBadGateway,
			code:   "SomethingElse",
			check: func(t *testing.T, err error) {
				var apiErr *awsclient.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "SomethingElse", apiErr.ErrorCode())
				assert.Equal(t, "SomethingElse", ErrorCode(err))
				assert.Equal(t, smithy.FaultServer, apiErr.ErrorFault())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Amzn-ErrorType", tt.code+":http://internal.amazon.com/coral/com.amazonaws.kafka/")
				w.Header().Set("x-amzn-RequestId", "req-1234")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"message":"cluster is gone","invalidParameter":"clusterArn"}`)
			})

			_, err := client.DescribeCluster(context.Background(), &api.DescribeClusterRequest{ClusterArn: ptr.String(testClusterArn)})
			require.Error(t, err)

			var respErr *awsclient.ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, "req-1234", respErr.RequestID)
			tt.check(t, err)
		})
	}
}

func TestClient_NilInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/kafka-versions", r.URL.Path)
		_, _ = io.WriteString(w, `{"kafkaVersions":[{"version":"3.5.1","status":"ACTIVE"}]}`)
	})

	out, err := client.ListKafkaVersions(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out.KafkaVersions, 1)
	assert.Equal(t, api.KafkaVersionStatusActive, out.KafkaVersions[0].Status)
}

func TestClient_SuccessCodes(t *testing.T) {
	t.Run("no content binding ignores the body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, 204, api.Bindings["TagResource"].SuccessCode)
			_, _ = io.WriteString(w, `not json`)
		})

		out, err := client.TagResource(context.Background(), &api.TagResourceRequest{
			ResourceArn: ptr.String(testClusterArn),
			Tags:        map[string]string{"env": "prod"},
		})
		require.NoError(t, err)
		assert.NotNil(t, out)
	})

	t.Run("other 2xx statuses are decoded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = io.WriteString(w, `{"clusterArn":"`+testClusterArn+`","state":"DELETING"}`)
		})

		out, err := client.DeleteCluster(context.Background(), &api.DeleteClusterRequest{ClusterArn: ptr.String(testClusterArn)})
		require.NoError(t, err)
		assert.Equal(t, api.ClusterStateDeleting, out.State)
	})
}

func TestErrorCode_NotAnAPIError(t *testing.T) {
	assert.Empty(t, ErrorCode(errors.New("dial tcp: connection refused")))
	assert.Empty(t, ErrorCode(nil))
}

func TestClient_Endpoint(t *testing.T) {
	client := NewClient(awsclient.Config{Region: "eu-central-1"})
	assert.Equal(t, "https://kafka.eu-central-1.amazonaws.com", client.Endpoint())
}

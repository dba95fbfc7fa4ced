package kafka

//go:generate mockgen -destination=mocks/mock_kafka_api.go -package=mocks github.com/nandemo-ya/mskgo/internal/kafka/generated KafkaAPI

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/smithy-go"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

// Client is an Amazon MSK service client
type Client struct {
	client   *awsclient.Client
	endpoint string
}

var _ api.KafkaAPI = (*Client)(nil)

// NewClient creates a new MSK client
func NewClient(config awsclient.Config) *Client {
	client := awsclient.NewClient(config)
	endpoint := client.BuildEndpoint(api.EndpointPrefix)

	return &Client{
		client:   client,
		endpoint: endpoint,
	}
}

// Endpoint returns the base URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// BatchAssociateScramSecret associates one or more Scram Secrets with an Amazon MSK cluster.
func (c *Client) BatchAssociateScramSecret(ctx context.Context, input *api.BatchAssociateScramSecretRequest) (*api.BatchAssociateScramSecretResponse, error) {
	return doRequest[api.BatchAssociateScramSecretRequest, api.BatchAssociateScramSecretResponse](ctx, c, "BatchAssociateScramSecret", input)
}

// BatchDisassociateScramSecret disassociates one or more Scram Secrets from an Amazon MSK cluster.
func (c *Client) BatchDisassociateScramSecret(ctx context.Context, input *api.BatchDisassociateScramSecretRequest) (*api.BatchDisassociateScramSecretResponse, error) {
	return doRequest[api.BatchDisassociateScramSecretRequest, api.BatchDisassociateScramSecretResponse](ctx, c, "BatchDisassociateScramSecret", input)
}

// CreateCluster creates a new MSK cluster.
func (c *Client) CreateCluster(ctx context.Context, input *api.CreateClusterRequest) (*api.CreateClusterResponse, error) {
	return doRequest[api.CreateClusterRequest, api.CreateClusterResponse](ctx, c, "CreateCluster", input)
}

// CreateConfiguration creates a new MSK configuration.
func (c *Client) CreateConfiguration(ctx context.Context, input *api.CreateConfigurationRequest) (*api.CreateConfigurationResponse, error) {
	return doRequest[api.CreateConfigurationRequest, api.CreateConfigurationResponse](ctx, c, "CreateConfiguration", input)
}

// DeleteCluster deletes the MSK cluster specified by the Amazon Resource Name (ARN) in the request.
func (c *Client) DeleteCluster(ctx context.Context, input *api.DeleteClusterRequest) (*api.DeleteClusterResponse, error) {
	return doRequest[api.DeleteClusterRequest, api.DeleteClusterResponse](ctx, c, "DeleteCluster", input)
}

// DeleteConfiguration deletes an MSK Configuration.
func (c *Client) DeleteConfiguration(ctx context.Context, input *api.DeleteConfigurationRequest) (*api.DeleteConfigurationResponse, error) {
	return doRequest[api.DeleteConfigurationRequest, api.DeleteConfigurationResponse](ctx, c, "DeleteConfiguration", input)
}

// DescribeCluster returns a description of the MSK cluster whose Amazon Resource Name (ARN) is specified in the request.
func (c *Client) DescribeCluster(ctx context.Context, input *api.DescribeClusterRequest) (*api.DescribeClusterResponse, error) {
	return doRequest[api.DescribeClusterRequest, api.DescribeClusterResponse](ctx, c, "DescribeCluster", input)
}

// DescribeClusterOperation returns a description of the cluster operation specified by the ARN.
func (c *Client) DescribeClusterOperation(ctx context.Context, input *api.DescribeClusterOperationRequest) (*api.DescribeClusterOperationResponse, error) {
	return doRequest[api.DescribeClusterOperationRequest, api.DescribeClusterOperationResponse](ctx, c, "DescribeClusterOperation", input)
}

// DescribeConfiguration returns a description of this MSK configuration.
func (c *Client) DescribeConfiguration(ctx context.Context, input *api.DescribeConfigurationRequest) (*api.DescribeConfigurationResponse, error) {
	return doRequest[api.DescribeConfigurationRequest, api.DescribeConfigurationResponse](ctx, c, "DescribeConfiguration", input)
}

// DescribeConfigurationRevision returns a description of this revision of the configuration.
func (c *Client) DescribeConfigurationRevision(ctx context.Context, input *api.DescribeConfigurationRevisionRequest) (*api.DescribeConfigurationRevisionResponse, error) {
	return doRequest[api.DescribeConfigurationRevisionRequest, api.DescribeConfigurationRevisionResponse](ctx, c, "DescribeConfigurationRevision", input)
}

// GetBootstrapBrokers returns the broker strings a client application can use to bootstrap.
func (c *Client) GetBootstrapBrokers(ctx context.Context, input *api.GetBootstrapBrokersRequest) (*api.GetBootstrapBrokersResponse, error) {
	return doRequest[api.GetBootstrapBrokersRequest, api.GetBootstrapBrokersResponse](ctx, c, "GetBootstrapBrokers", input)
}

// GetCompatibleKafkaVersions gets the Apache Kafka versions to which you can update the MSK cluster.
func (c *Client) GetCompatibleKafkaVersions(ctx context.Context, input *api.GetCompatibleKafkaVersionsRequest) (*api.GetCompatibleKafkaVersionsResponse, error) {
	return doRequest[api.GetCompatibleKafkaVersionsRequest, api.GetCompatibleKafkaVersionsResponse](ctx, c, "GetCompatibleKafkaVersions", input)
}

// ListClusterOperations returns a list of all the operations that have been performed on the specified MSK cluster.
func (c *Client) ListClusterOperations(ctx context.Context, input *api.ListClusterOperationsRequest) (*api.ListClusterOperationsResponse, error) {
	return doRequest[api.ListClusterOperationsRequest, api.ListClusterOperationsResponse](ctx, c, "ListClusterOperations", input)
}

// ListClusters returns a list of all the MSK clusters in the current Region.
func (c *Client) ListClusters(ctx context.Context, input *api.ListClustersRequest) (*api.ListClustersResponse, error) {
	return doRequest[api.ListClustersRequest, api.ListClustersResponse](ctx, c, "ListClusters", input)
}

// ListConfigurationRevisions returns a list of all the revisions of an MSK configuration.
func (c *Client) ListConfigurationRevisions(ctx context.Context, input *api.ListConfigurationRevisionsRequest) (*api.ListConfigurationRevisionsResponse, error) {
	return doRequest[api.ListConfigurationRevisionsRequest, api.ListConfigurationRevisionsResponse](ctx, c, "ListConfigurationRevisions", input)
}

// ListConfigurations returns a list of all the MSK configurations in this Region.
func (c *Client) ListConfigurations(ctx context.Context, input *api.ListConfigurationsRequest) (*api.ListConfigurationsResponse, error) {
	return doRequest[api.ListConfigurationsRequest, api.ListConfigurationsResponse](ctx, c, "ListConfigurations", input)
}

// ListKafkaVersions returns a list of Apache Kafka versions.
func (c *Client) ListKafkaVersions(ctx context.Context, input *api.ListKafkaVersionsRequest) (*api.ListKafkaVersionsResponse, error) {
	return doRequest[api.ListKafkaVersionsRequest, api.ListKafkaVersionsResponse](ctx, c, "ListKafkaVersions", input)
}

// ListNodes returns a list of the broker nodes in the cluster.
func (c *Client) ListNodes(ctx context.Context, input *api.ListNodesRequest) (*api.ListNodesResponse, error) {
	return doRequest[api.ListNodesRequest, api.ListNodesResponse](ctx, c, "ListNodes", input)
}

// ListScramSecrets returns a list of the Scram Secrets associated with an Amazon MSK cluster.
func (c *Client) ListScramSecrets(ctx context.Context, input *api.ListScramSecretsRequest) (*api.ListScramSecretsResponse, error) {
	return doRequest[api.ListScramSecretsRequest, api.ListScramSecretsResponse](ctx, c, "ListScramSecrets", input)
}

// ListTagsForResource returns a list of the tags associated with the specified resource.
func (c *Client) ListTagsForResource(ctx context.Context, input *api.ListTagsForResourceRequest) (*api.ListTagsForResourceResponse, error) {
	return doRequest[api.ListTagsForResourceRequest, api.ListTagsForResourceResponse](ctx, c, "ListTagsForResource", input)
}

// RebootBroker reboots brokers.
func (c *Client) RebootBroker(ctx context.Context, input *api.RebootBrokerRequest) (*api.RebootBrokerResponse, error) {
	return doRequest[api.RebootBrokerRequest, api.RebootBrokerResponse](ctx, c, "RebootBroker", input)
}

// TagResource adds tags to the specified MSK resource.
func (c *Client) TagResource(ctx context.Context, input *api.TagResourceRequest) (*api.TagResourceResponse, error) {
	return doRequest[api.TagResourceRequest, api.TagResourceResponse](ctx, c, "TagResource", input)
}

// UntagResource removes the tags associated with the keys that are provided in the query.
func (c *Client) UntagResource(ctx context.Context, input *api.UntagResourceRequest) (*api.UntagResourceResponse, error) {
	return doRequest[api.UntagResourceRequest, api.UntagResourceResponse](ctx, c, "UntagResource", input)
}

// UpdateBrokerCount updates the number of broker nodes in the cluster.
func (c *Client) UpdateBrokerCount(ctx context.Context, input *api.UpdateBrokerCountRequest) (*api.UpdateBrokerCountResponse, error) {
	return doRequest[api.UpdateBrokerCountRequest, api.UpdateBrokerCountResponse](ctx, c, "UpdateBrokerCount", input)
}

// UpdateBrokerStorage updates the EBS storage associated with MSK brokers.
func (c *Client) UpdateBrokerStorage(ctx context.Context, input *api.UpdateBrokerStorageRequest) (*api.UpdateBrokerStorageResponse, error) {
	return doRequest[api.UpdateBrokerStorageRequest, api.UpdateBrokerStorageResponse](ctx, c, "UpdateBrokerStorage", input)
}

// UpdateBrokerType updates EC2 instance type.
func (c *Client) UpdateBrokerType(ctx context.Context, input *api.UpdateBrokerTypeRequest) (*api.UpdateBrokerTypeResponse, error) {
	return doRequest[api.UpdateBrokerTypeRequest, api.UpdateBrokerTypeResponse](ctx, c, "UpdateBrokerType", input)
}

// UpdateClusterConfiguration updates the cluster with the configuration that is specified in the request body.
func (c *Client) UpdateClusterConfiguration(ctx context.Context, input *api.UpdateClusterConfigurationRequest) (*api.UpdateClusterConfigurationResponse, error) {
	return doRequest[api.UpdateClusterConfigurationRequest, api.UpdateClusterConfigurationResponse](ctx, c, "UpdateClusterConfiguration", input)
}

// UpdateClusterKafkaVersion updates the Apache Kafka version for the cluster.
func (c *Client) UpdateClusterKafkaVersion(ctx context.Context, input *api.UpdateClusterKafkaVersionRequest) (*api.UpdateClusterKafkaVersionResponse, error) {
	return doRequest[api.UpdateClusterKafkaVersionRequest, api.UpdateClusterKafkaVersionResponse](ctx, c, "UpdateClusterKafkaVersion", input)
}

// UpdateConfiguration updates an MSK configuration.
func (c *Client) UpdateConfiguration(ctx context.Context, input *api.UpdateConfigurationRequest) (*api.UpdateConfigurationResponse, error) {
	return doRequest[api.UpdateConfigurationRequest, api.UpdateConfigurationResponse](ctx, c, "UpdateConfiguration", input)
}

// UpdateMonitoring updates the monitoring settings for the cluster.
func (c *Client) UpdateMonitoring(ctx context.Context, input *api.UpdateMonitoringRequest) (*api.UpdateMonitoringResponse, error) {
	return doRequest[api.UpdateMonitoringRequest, api.UpdateMonitoringResponse](ctx, c, "UpdateMonitoring", input)
}

// UpdateSecurity updates the security settings for the cluster.
func (c *Client) UpdateSecurity(ctx context.Context, input *api.UpdateSecurityRequest) (*api.UpdateSecurityResponse, error) {
	return doRequest[api.UpdateSecurityRequest, api.UpdateSecurityResponse](ctx, c, "UpdateSecurity", input)
}

// doRequest validates, serializes and sends one operation and decodes its result.
// Any 2xx status is a success; the binding's SuccessCode decides whether a
// body is decoded. Service errors are returned as the modeled exception wrapped in
// *awsclient.ResponseError and *awsclient.OperationError.
func doRequest[TInput any, TOutput any](ctx context.Context, c *Client, operation string, input *TInput) (*TOutput, error) {
	if input == nil {
		input = new(TInput)
	}

	wrap := func(err error) error {
		return &awsclient.OperationError{ServiceID: api.ServiceID, OperationName: operation, Err: err}
	}

	binding, ok := api.Bindings[operation]
	if !ok {
		return nil, wrap(fmt.Errorf("no HTTP binding for operation %s", operation))
	}

	if err := awsclient.ValidateRequired(input); err != nil {
		return nil, wrap(err)
	}

	req, err := awsclient.BuildRequest(ctx, c.endpoint, binding.Method, binding.Path, input)
	if err != nil {
		return nil, wrap(err)
	}

	resp, err := c.client.DoRequest(ctx, req, api.SigningName, operation)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := awsclient.DecodeError(resp)
		logging.FromContext(logging.WithRequestID(ctx, apiErr.RequestID)).Debug("service returned error",
			"operation", operation, "status", resp.StatusCode, "code", apiErr.Code)
		var cause error = apiErr
		if modeled := api.NewError(apiErr.Code, optionalString(apiErr.Message), optionalString(apiErr.InvalidParameter)); modeled != nil {
			cause = modeled
		}
		return nil, wrap(&awsclient.ResponseError{
			StatusCode: resp.StatusCode,
			RequestID:  apiErr.RequestID,
			Err:        cause,
		})
	}

	if resp.StatusCode != binding.SuccessCode {
		logging.FromContext(ctx).Debug("unexpected success status",
			"operation", operation, "status", resp.StatusCode, "expected", binding.SuccessCode)
	}

	output := new(TOutput)
	// operations bound to 204 model no output members
	if binding.SuccessCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return output, nil
	}
	if err := awsclient.DecodeResponse(resp, output); err != nil {
		return nil, wrap(err)
	}

	return output, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ErrorCode returns the service error code carried by err, or "" when err is
// not an API error. Modeled and unmodeled errors are both recognized.
func ErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err carries a NotFoundException
func IsNotFound(err error) bool {
	var nf *api.NotFoundException
	return errors.As(err, &nf)
}

// IsConflict reports whether err carries a ConflictException, which MSK returns
// for stale currentVersion values and clusters that are busy with another operation
func IsConflict(err error) bool {
	var conflict *api.ConflictException
	return errors.As(err, &conflict)
}

// IsThrottled reports whether err carries a TooManyRequestsException or ServiceUnavailableException
func IsThrottled(err error) bool {
	var tooMany *api.TooManyRequestsException
	var unavailable *api.ServiceUnavailableException
	return errors.As(err, &tooMany) || errors.As(err, &unavailable)
}

package fakemsk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	"github.com/nandemo-ya/mskgo/internal/fakemsk"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

func newTestClient(t *testing.T, opts ...fakemsk.Option) (*kafka.Client, *fakemsk.Server) {
	t.Helper()
	fake := fakemsk.New(opts...)
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := kafka.NewClient(awsclient.Config{
		Endpoint:    server.URL,
		Region:      "us-east-1",
		Credentials: awsclient.NewStaticCredentials("test-key", "test-secret", ""),
		MaxRetries:  -1,
	})
	return client, fake
}

func createCluster(t *testing.T, client *kafka.Client, name string) string {
	t.Helper()
	out, err := client.CreateCluster(context.Background(), &api.CreateClusterRequest{
		ClusterName:  ptr.String(name),
		KafkaVersion: ptr.String("3.5.1"),
		BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{
			ClientSubnets: []string{"subnet-a", "subnet-b", "subnet-c"},
			InstanceType:  ptr.String("kafka.m5.large"),
			StorageInfo:   &api.StorageInfo{EbsStorageInfo: &api.EBSStorageInfo{VolumeSize: ptr.Int32(100)}},
		},
		NumberOfBrokerNodes: ptr.Int32(3),
		Tags:                map[string]string{"team": "data"},
	})
	require.NoError(t, err)
	return ptr.ToString(out.ClusterArn)
}

func TestServer_ClusterLifecycle(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	clusterArn := createCluster(t, client, "orders")
	assert.True(t, strings.HasPrefix(clusterArn, "arn:aws:kafka:us-east-1:123456789012:cluster/orders/"))

	out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	info := out.ClusterInfo
	assert.Equal(t, api.ClusterStateActive, info.State)
	assert.Equal(t, api.EnhancedMonitoringDefault, info.EnhancedMonitoring)
	assert.Equal(t, map[string]string{"team": "data"}, info.Tags)
	assert.Equal(t, "3.5.1", ptr.ToString(info.CurrentBrokerSoftwareInfo.KafkaVersion))
	assert.Nil(t, info.ActiveOperationArn)

	nodes, err := client.ListNodes(ctx, &api.ListNodesRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	require.Len(t, nodes.NodeInfoList, 3)
	assert.Equal(t, 1.0, ptr.ToFloat64(nodes.NodeInfoList[0].BrokerNodeInfo.BrokerId))
	assert.Equal(t, api.NodeTypeBroker, nodes.NodeInfoList[0].NodeType)

	deleted, err := client.DeleteCluster(ctx, &api.DeleteClusterRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	assert.Equal(t, api.ClusterStateDeleting, deleted.State)

	_, err = client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: ptr.String(clusterArn)})
	require.Error(t, err)
	assert.True(t, kafka.IsNotFound(err))
}

func TestServer_DuplicateClusterName(t *testing.T) {
	client, _ := newTestClient(t)
	createCluster(t, client, "orders")

	_, err := client.CreateCluster(context.Background(), &api.CreateClusterRequest{
		ClusterName:         ptr.String("orders"),
		KafkaVersion:        ptr.String("3.5.1"),
		BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{ClientSubnets: []string{"subnet-a"}, InstanceType: ptr.String("kafka.t3.small")},
		NumberOfBrokerNodes: ptr.Int32(1),
	})
	require.Error(t, err)
	assert.True(t, kafka.IsConflict(err))
}

func TestServer_BrokerCountMustMatchSubnets(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.CreateCluster(context.Background(), &api.CreateClusterRequest{
		ClusterName:         ptr.String("uneven"),
		KafkaVersion:        ptr.String("3.5.1"),
		BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{ClientSubnets: []string{"subnet-a", "subnet-b"}, InstanceType: ptr.String("kafka.t3.small")},
		NumberOfBrokerNodes: ptr.Int32(3),
	})
	var bad *api.BadRequestException
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, "numberOfBrokerNodes", ptr.ToString(bad.InvalidParameter))
}

func TestServer_UpdateBrokerCount(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, fakemsk.WithSettleAfter(2))

	clusterArn := createCluster(t, client, "orders")
	_, err := client.WaitUntilClusterState(ctx, clusterArn, api.ClusterStateActive, func(o *kafka.WaiterOptions) {
		o.PollInterval = time.Millisecond
		o.Timeout = time.Second
	})
	require.NoError(t, err)

	version, err := client.CurrentVersion(ctx, clusterArn)
	require.NoError(t, err)

	_, err = client.UpdateBrokerCount(ctx, &api.UpdateBrokerCountRequest{
		ClusterArn:                ptr.String(clusterArn),
		CurrentVersion:            ptr.String("stale"),
		TargetNumberOfBrokerNodes: ptr.Int32(6),
	})
	var bad *api.BadRequestException
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, "currentVersion", ptr.ToString(bad.InvalidParameter))

	update, err := client.UpdateBrokerCount(ctx, &api.UpdateBrokerCountRequest{
		ClusterArn:                ptr.String(clusterArn),
		CurrentVersion:            ptr.String(version),
		TargetNumberOfBrokerNodes: ptr.Int32(6),
	})
	require.NoError(t, err)

	_, err = client.UpdateBrokerCount(ctx, &api.UpdateBrokerCountRequest{
		ClusterArn:                ptr.String(clusterArn),
		CurrentVersion:            ptr.String(version),
		TargetNumberOfBrokerNodes: ptr.Int32(9),
	})
	assert.True(t, kafka.IsConflict(err), "a cluster that is UPDATING rejects further updates")

	op, err := client.WaitUntilOperationComplete(ctx, ptr.ToString(update.ClusterOperationArn), func(o *kafka.WaiterOptions) {
		o.PollInterval = time.Millisecond
		o.Timeout = time.Second
	})
	require.NoError(t, err)
	assert.Equal(t, "INCREASE_BROKER_COUNT", ptr.ToString(op.OperationType))
	assert.Equal(t, int32(3), ptr.ToInt32(op.SourceClusterInfo.NumberOfBrokerNodes))
	assert.Equal(t, int32(6), ptr.ToInt32(op.TargetClusterInfo.NumberOfBrokerNodes))

	nodes, err := client.ListNodes(ctx, &api.ListNodesRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	assert.Len(t, nodes.NodeInfoList, 6)

	newVersion, err := client.CurrentVersion(ctx, clusterArn)
	require.NoError(t, err)
	assert.NotEqual(t, version, newVersion)
}

func TestServer_Bootstrap(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, fakemsk.WithRegion("eu-west-1"))

	out, err := client.CreateCluster(ctx, &api.CreateClusterRequest{
		ClusterName:  ptr.String("secure"),
		KafkaVersion: ptr.String("3.6.0"),
		BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{
			ClientSubnets: []string{"subnet-a", "subnet-b"},
			InstanceType:  ptr.String("kafka.m5.large"),
		},
		NumberOfBrokerNodes: ptr.Int32(2),
		ClientAuthentication: &api.ClientAuthentication{
			Sasl: &api.Sasl{Scram: &api.Scram{Enabled: ptr.Bool(true)}, Iam: &api.Iam{Enabled: ptr.Bool(true)}},
		},
		EncryptionInfo: &api.EncryptionInfo{
			EncryptionInTransit: &api.EncryptionInTransit{ClientBroker: api.ClientBrokerTlsPlaintext},
		},
	})
	require.NoError(t, err)

	brokers, err := client.GetBootstrapBrokers(ctx, &api.GetBootstrapBrokersRequest{ClusterArn: out.ClusterArn})
	require.NoError(t, err)

	plain := strings.Split(ptr.ToString(brokers.BootstrapBrokerString), ",")
	require.Len(t, plain, 2)
	assert.True(t, strings.HasPrefix(plain[0], "b-1.secure."))
	assert.True(t, strings.HasSuffix(plain[0], ".kafka.eu-west-1.amazonaws.com:9092"))
	assert.Contains(t, ptr.ToString(brokers.BootstrapBrokerStringTls), ":9094")
	assert.Contains(t, ptr.ToString(brokers.BootstrapBrokerStringSaslScram), ":9096")
	assert.Contains(t, ptr.ToString(brokers.BootstrapBrokerStringSaslIam), ":9098")
}

func TestServer_Configurations(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	created, err := client.CreateConfiguration(ctx, &api.CreateConfigurationRequest{
		Name:             ptr.String("defaults"),
		KafkaVersions:    []string{"3.5.1"},
		ServerProperties: []byte("auto.create.topics.enable=false\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ptr.ToInt64(created.LatestRevision.Revision))
	assert.Equal(t, api.ConfigurationStateActive, created.State)

	updated, err := client.UpdateConfiguration(ctx, &api.UpdateConfigurationRequest{
		Arn:              created.Arn,
		Description:      ptr.String("raise retention"),
		ServerProperties: []byte("log.retention.hours=168\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ptr.ToInt64(updated.LatestRevision.Revision))

	rev, err := client.DescribeConfigurationRevision(ctx, &api.DescribeConfigurationRevisionRequest{
		Arn:      created.Arn,
		Revision: ptr.Int64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("auto.create.topics.enable=false\n"), rev.ServerProperties)

	_, err = client.DescribeConfigurationRevision(ctx, &api.DescribeConfigurationRevisionRequest{
		Arn:      created.Arn,
		Revision: ptr.Int64(3),
	})
	assert.True(t, kafka.IsNotFound(err))

	revisions, err := client.ListConfigurationRevisions(ctx, &api.ListConfigurationRevisionsRequest{Arn: created.Arn})
	require.NoError(t, err)
	require.Len(t, revisions.Revisions, 2)
	assert.Equal(t, "raise retention", ptr.ToString(revisions.Revisions[1].Description))

	deleted, err := client.DeleteConfiguration(ctx, &api.DeleteConfigurationRequest{Arn: created.Arn})
	require.NoError(t, err)
	assert.Equal(t, api.ConfigurationStateDeleting, deleted.State)

	_, err = client.DescribeConfiguration(ctx, &api.DescribeConfigurationRequest{Arn: created.Arn})
	assert.True(t, kafka.IsNotFound(err))
}

func TestServer_Tags(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	clusterArn := createCluster(t, client, "orders")

	_, err := client.TagResource(ctx, &api.TagResourceRequest{
		ResourceArn: ptr.String(clusterArn),
		Tags:        map[string]string{"env": "prod", "owner": "payments"},
	})
	require.NoError(t, err)

	_, err = client.UntagResource(ctx, &api.UntagResourceRequest{
		ResourceArn: ptr.String(clusterArn),
		TagKeys:     []string{"team", "owner"},
	})
	require.NoError(t, err)

	out, err := client.ListTagsForResource(ctx, &api.ListTagsForResourceRequest{ResourceArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, out.Tags)
}

func TestServer_ScramSecrets(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	clusterArn := createCluster(t, client, "orders")

	good := "arn:aws:secretsmanager:us-east-1:123456789012:secret:AmazonMSK_orders-abc123"
	bad := "arn:aws:secretsmanager:us-east-1:123456789012:secret:orders-abc123"

	out, err := client.BatchAssociateScramSecret(ctx, &api.BatchAssociateScramSecretRequest{
		ClusterArn:    ptr.String(clusterArn),
		SecretArnList: []string{good, bad},
	})
	require.NoError(t, err)
	require.Len(t, out.UnprocessedScramSecrets, 1)
	assert.Equal(t, bad, ptr.ToString(out.UnprocessedScramSecrets[0].SecretArn))

	list, err := client.ListScramSecrets(ctx, &api.ListScramSecretsRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	assert.Equal(t, []string{good}, list.SecretArnList)

	dis, err := client.BatchDisassociateScramSecret(ctx, &api.BatchDisassociateScramSecretRequest{
		ClusterArn:    ptr.String(clusterArn),
		SecretArnList: []string{good},
	})
	require.NoError(t, err)
	assert.Empty(t, dis.UnprocessedScramSecrets)
}

func TestServer_Pagination(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, fakemsk.WithPageSize(2))
	for _, name := range []string{"a-1", "a-2", "a-3", "b-1", "a-4"} {
		createCluster(t, client, name)
	}

	var names []string
	pages := 0
	p := kafka.NewListClustersPaginator(client, &api.ListClustersRequest{ClusterNameFilter: ptr.String("a-")})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		require.NoError(t, err)
		pages++
		for _, c := range page.ClusterInfoList {
			names = append(names, ptr.ToString(c.ClusterName))
		}
	}
	assert.Equal(t, []string{"a-1", "a-2", "a-3", "a-4"}, names)
	assert.Equal(t, 2, pages)

	_, err := client.ListClusters(ctx, &api.ListClustersRequest{MaxResults: ptr.Int32(101)})
	var badReq *api.BadRequestException
	assert.True(t, errors.As(err, &badReq))
}

func TestServer_KafkaVersions(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	clusterArn := createCluster(t, client, "orders")

	versions, err := client.ListKafkaVersions(ctx, &api.ListKafkaVersionsRequest{})
	require.NoError(t, err)
	require.Len(t, versions.KafkaVersions, 4)
	assert.Equal(t, api.KafkaVersionStatusDeprecated, versions.KafkaVersions[0].Status)

	compatible, err := client.GetCompatibleKafkaVersions(ctx, &api.GetCompatibleKafkaVersionsRequest{ClusterArn: ptr.String(clusterArn)})
	require.NoError(t, err)
	require.Len(t, compatible.CompatibleKafkaVersions, 1)
	assert.Equal(t, "3.5.1", ptr.ToString(compatible.CompatibleKafkaVersions[0].SourceVersion))
	assert.Equal(t, []string{"3.6.0", "3.7.x"}, compatible.CompatibleKafkaVersions[0].TargetVersions)
}

func TestServer_InjectError(t *testing.T) {
	client, fake := newTestClient(t)
	fake.InjectError("ListClusters", http.StatusTooManyRequests, "TooManyRequestsException", "slow down")

	_, err := client.ListClusters(context.Background(), &api.ListClustersRequest{})
	require.Error(t, err)
	assert.True(t, kafka.IsThrottled(err))
	assert.Contains(t, err.Error(), "slow down")

	_, err = client.ListClusters(context.Background(), &api.ListClustersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, fake.Calls("ListClusters"))
}

func TestServer_FailOperation(t *testing.T) {
	ctx := context.Background()
	client, fake := newTestClient(t, fakemsk.WithSettleAfter(100))
	clusterArn := createCluster(t, client, "orders")
	require.NoError(t, fake.SetClusterState(clusterArn, api.ClusterStateActive))

	version, err := client.CurrentVersion(ctx, clusterArn)
	require.NoError(t, err)
	update, err := client.UpdateMonitoring(ctx, &api.UpdateMonitoringRequest{
		ClusterArn:         ptr.String(clusterArn),
		CurrentVersion:     ptr.String(version),
		EnhancedMonitoring: api.EnhancedMonitoringPerBroker,
	})
	require.NoError(t, err)
	require.NoError(t, fake.FailOperation(ptr.ToString(update.ClusterOperationArn), "InternalError", "broker unreachable"))

	_, err = client.WaitUntilOperationComplete(ctx, ptr.ToString(update.ClusterOperationArn), func(o *kafka.WaiterOptions) {
		o.PollInterval = time.Millisecond
		o.Timeout = time.Second
	})
	var failed *kafka.OperationFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "InternalError", ptr.ToString(failed.ErrorInfo.ErrorCode))
}

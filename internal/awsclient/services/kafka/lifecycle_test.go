package kafka_test

import (
	"context"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	"github.com/nandemo-ya/mskgo/internal/fakemsk"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

var _ = Describe("Cluster lifecycle", func() {
	var (
		ctx     context.Context
		server  *httptest.Server
		fake    *fakemsk.Server
		client  *kafka.Client
		polling func(*kafka.WaiterOptions)
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = fakemsk.New(fakemsk.WithSettleAfter(3))
		server = httptest.NewServer(fake)
		client = kafka.NewClient(awsclient.Config{
			Endpoint:    server.URL,
			Region:      "us-east-1",
			Credentials: awsclient.NewStaticCredentials("test-key", "test-secret", ""),
			RetryDelay:  time.Millisecond,
		})
		polling = func(o *kafka.WaiterOptions) {
			o.PollInterval = time.Millisecond
			o.Timeout = 5 * time.Second
		}
	})

	AfterEach(func() {
		server.Close()
	})

	createCluster := func(name string) string {
		out, err := client.CreateCluster(ctx, &api.CreateClusterRequest{
			ClusterName:  ptr.String(name),
			KafkaVersion: ptr.String("3.5.1"),
			BrokerNodeGroupInfo: &api.BrokerNodeGroupInfo{
				ClientSubnets: []string{"subnet-a", "subnet-b"},
				InstanceType:  ptr.String("kafka.m5.large"),
				StorageInfo:   &api.StorageInfo{EbsStorageInfo: &api.EBSStorageInfo{VolumeSize: ptr.Int32(100)}},
			},
			NumberOfBrokerNodes: ptr.Int32(2),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.State).To(Equal(api.ClusterStateCreating))
		return ptr.ToString(out.ClusterArn)
	}

	It("creates, resizes and deletes a cluster", func() {
		clusterArn := createCluster("orders")

		info, err := client.WaitUntilClusterState(ctx, clusterArn, api.ClusterStateActive, polling)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.State).To(Equal(api.ClusterStateActive))

		resolved, err := client.ResolveClusterARN(ctx, "orders")
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(Equal(clusterArn))

		version, err := client.CurrentVersion(ctx, clusterArn)
		Expect(err).NotTo(HaveOccurred())

		update, err := client.UpdateBrokerStorage(ctx, &api.UpdateBrokerStorageRequest{
			ClusterArn:     ptr.String(clusterArn),
			CurrentVersion: ptr.String(version),
			TargetBrokerEBSVolumeInfo: []api.BrokerEBSVolumeInfo{
				{KafkaBrokerNodeId: ptr.String("All"), VolumeSizeGB: ptr.Int32(500)},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		op, err := client.WaitUntilOperationComplete(ctx, ptr.ToString(update.ClusterOperationArn), polling)
		Expect(err).NotTo(HaveOccurred())
		Expect(ptr.ToString(op.OperationType)).To(Equal("UPDATE_BROKER_STORAGE"))
		Expect(op.TargetClusterInfo.BrokerEBSVolumeInfo).To(HaveLen(1))
		Expect(ptr.ToInt32(op.TargetClusterInfo.BrokerEBSVolumeInfo[0].VolumeSizeGB)).To(Equal(int32(500)))

		ops, err := client.ListClusterOperations(ctx, &api.ListClusterOperationsRequest{ClusterArn: ptr.String(clusterArn)})
		Expect(err).NotTo(HaveOccurred())
		Expect(ops.ClusterOperationInfoList).To(HaveLen(2))

		_, err = client.DeleteCluster(ctx, &api.DeleteClusterRequest{ClusterArn: ptr.String(clusterArn)})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.WaitUntilClusterDeleted(ctx, clusterArn, polling)).To(Succeed())

		_, err = client.ResolveClusterARN(ctx, "orders")
		Expect(err).To(MatchError(kafka.ErrClusterNotFound))
	})

	It("retries throttled calls transparently", func() {
		fake.InjectError("ListClusters", 429, "TooManyRequestsException", "Too Many Requests")
		fake.InjectError("ListClusters", 503, "ServiceUnavailableException", "try later")

		out, err := client.ListClusters(ctx, &api.ListClustersRequest{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.ClusterInfoList).To(BeEmpty())
		Expect(fake.Calls("ListClusters")).To(Equal(3))
	})

	It("reports a failed cluster", func() {
		clusterArn := createCluster("doomed")
		Expect(fake.SetClusterState(clusterArn, api.ClusterStateFailed)).To(Succeed())

		_, err := client.WaitUntilClusterState(ctx, clusterArn, api.ClusterStateActive, polling)
		var failed *kafka.ClusterFailedError
		Expect(err).To(BeAssignableToTypeOf(failed))
	})

	It("upgrades the Apache Kafka version", func() {
		clusterArn := createCluster("upgrade")
		_, err := client.WaitUntilClusterState(ctx, clusterArn, api.ClusterStateActive, polling)
		Expect(err).NotTo(HaveOccurred())

		compatible, err := client.GetCompatibleKafkaVersions(ctx, &api.GetCompatibleKafkaVersionsRequest{ClusterArn: ptr.String(clusterArn)})
		Expect(err).NotTo(HaveOccurred())
		Expect(compatible.CompatibleKafkaVersions[0].TargetVersions).To(ContainElement("3.6.0"))

		version, err := client.CurrentVersion(ctx, clusterArn)
		Expect(err).NotTo(HaveOccurred())
		update, err := client.UpdateClusterKafkaVersion(ctx, &api.UpdateClusterKafkaVersionRequest{
			ClusterArn:         ptr.String(clusterArn),
			CurrentVersion:     ptr.String(version),
			TargetKafkaVersion: ptr.String("3.6.0"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = client.WaitUntilOperationComplete(ctx, ptr.ToString(update.ClusterOperationArn), polling)
		Expect(err).NotTo(HaveOccurred())

		out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: ptr.String(clusterArn)})
		Expect(err).NotTo(HaveOccurred())
		Expect(ptr.ToString(out.ClusterInfo.CurrentBrokerSoftwareInfo.KafkaVersion)).To(Equal("3.6.0"))
	})
})

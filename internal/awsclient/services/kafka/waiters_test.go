package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka/mocks"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

const clusterArn = "arn:aws:kafka:us-east-1:123456789012:cluster/orders/abc-2"

func describeReturning(state api.ClusterState) (*api.DescribeClusterResponse, error) {
	return &api.DescribeClusterResponse{ClusterInfo: &api.ClusterInfo{
		ClusterArn: ptr.String(clusterArn),
		State:      state,
	}}, nil
}

func serviceError(status int, err error) error {
	return &awsclient.OperationError{
		ServiceID:     api.ServiceID,
		OperationName: "DescribeCluster",
		Err:           &awsclient.ResponseError{StatusCode: status, Err: err},
	}
}

func TestWaitUntilClusterState(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	gomock.InOrder(
		client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(describeReturning(api.ClusterStateCreating)),
		client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).
			Return(nil, serviceError(429, &api.TooManyRequestsException{Message: ptr.String("slow down")})),
		client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(describeReturning(api.ClusterStateActive)),
	)

	info, err := kafka.WaitUntilClusterState(context.Background(), client, clusterArn, api.ClusterStateActive, fastPolling)
	require.NoError(t, err)
	assert.Equal(t, api.ClusterStateActive, info.State)
}

func TestWaitUntilClusterState_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(&api.DescribeClusterResponse{
		ClusterInfo: &api.ClusterInfo{
			State:     api.ClusterStateFailed,
			StateInfo: &api.StateInfo{Code: ptr.String("InsufficientCapacity"), Message: ptr.String("no capacity")},
		},
	}, nil)

	_, err := kafka.WaitUntilClusterState(context.Background(), client, clusterArn, api.ClusterStateActive, fastPolling)
	var failed *kafka.ClusterFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, clusterArn, failed.ClusterArn)
	assert.Contains(t, err.Error(), "InsufficientCapacity: no capacity")
}

func TestWaitUntilClusterState_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(describeReturning(api.ClusterStateUpdating)).AnyTimes()

	info, err := kafka.WaitUntilClusterState(context.Background(), client, clusterArn, api.ClusterStateActive,
		func(o *kafka.WaiterOptions) {
			o.PollInterval = time.Millisecond
			o.Timeout = 20 * time.Millisecond
		})
	assert.ErrorIs(t, err, kafka.ErrWaitTimeout)
	require.NotNil(t, info)
	assert.Equal(t, api.ClusterStateUpdating, info.State)
}

func TestWaitUntilClusterState_NonRetryableError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	denied := serviceError(403, &api.ForbiddenException{Message: ptr.String("denied")})
	client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(nil, denied)

	_, err := kafka.WaitUntilClusterState(context.Background(), client, clusterArn, api.ClusterStateActive, fastPolling)
	var forbidden *api.ForbiddenException
	assert.True(t, errors.As(err, &forbidden))
}

func TestWaitUntilClusterDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	gomock.InOrder(
		client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(describeReturning(api.ClusterStateDeleting)),
		client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).
			Return(nil, serviceError(404, &api.NotFoundException{Message: ptr.String("gone")})),
	)

	err := kafka.WaitUntilClusterDeleted(context.Background(), client, clusterArn, fastPolling)
	assert.NoError(t, err)
}

func TestWaitUntilOperationComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)
	operationArn := "arn:aws:kafka:us-east-1:123456789012:cluster-operation/orders/abc-2/op-1"

	operation := func(state string) (*api.DescribeClusterOperationResponse, error) {
		return &api.DescribeClusterOperationResponse{ClusterOperationInfo: &api.ClusterOperationInfo{
			OperationArn:   ptr.String(operationArn),
			OperationState: ptr.String(state),
		}}, nil
	}

	gomock.InOrder(
		client.EXPECT().DescribeClusterOperation(gomock.Any(), &api.DescribeClusterOperationRequest{
			ClusterOperationArn: ptr.String(operationArn),
		}).Return(operation(kafka.OperationStatePending)),
		client.EXPECT().DescribeClusterOperation(gomock.Any(), gomock.Any()).Return(operation(kafka.OperationStateInProgress)),
		client.EXPECT().DescribeClusterOperation(gomock.Any(), gomock.Any()).Return(operation(kafka.OperationStateComplete)),
	)

	op, err := kafka.WaitUntilOperationComplete(context.Background(), client, operationArn, fastPolling)
	require.NoError(t, err)
	assert.Equal(t, kafka.OperationStateComplete, ptr.ToString(op.OperationState))
}

func TestWaitUntilOperationComplete_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)

	client.EXPECT().DescribeClusterOperation(gomock.Any(), gomock.Any()).Return(&api.DescribeClusterOperationResponse{
		ClusterOperationInfo: &api.ClusterOperationInfo{
			OperationState: ptr.String(kafka.OperationStateFailed),
			ErrorInfo:      &api.ErrorInfo{ErrorCode: ptr.String("InvalidStorage"), ErrorString: ptr.String("volume too small")},
		},
	}, nil)

	_, err := kafka.WaitUntilOperationComplete(context.Background(), client, "op", fastPolling)
	var failed *kafka.OperationFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "cluster operation op failed: InvalidStorage: volume too small", failed.Error())
}

func TestWaiter_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockKafkaAPI(ctrl)
	client.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).Return(describeReturning(api.ClusterStateCreating)).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := kafka.WaitUntilClusterState(ctx, client, clusterArn, api.ClusterStateActive, fastPolling)
	require.Error(t, err)
	assert.NotErrorIs(t, err, kafka.ErrWaitTimeout)
}

package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

// Cluster operation states reported by DescribeClusterOperation.
const (
	OperationStatePending    = "PENDING"
	OperationStateInProgress = "UPDATE_IN_PROGRESS"
	OperationStateComplete   = "UPDATE_COMPLETE"
	OperationStateFailed     = "UPDATE_FAILED"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultWaitTimeout  = 2 * time.Hour
)

// ErrWaitTimeout is returned when a waiter gives up before the resource reaches the desired state.
var ErrWaitTimeout = errors.New("timed out waiting for desired state")

// WaiterOptions configures the polling of a waiter
type WaiterOptions struct {
	// PollInterval is the delay between two describe calls
	PollInterval time.Duration

	// Timeout bounds the whole wait
	Timeout time.Duration
}

func resolveWaiterOptions(optFns []func(*WaiterOptions)) WaiterOptions {
	options := WaiterOptions{
		PollInterval: defaultPollInterval,
		Timeout:      defaultWaitTimeout,
	}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.PollInterval <= 0 {
		options.PollInterval = defaultPollInterval
	}
	if options.Timeout <= 0 {
		options.Timeout = defaultWaitTimeout
	}
	return options
}

// ClusterFailedError is returned when a cluster enters FAILED while a waiter expects another state.
type ClusterFailedError struct {
	ClusterArn string
	StateInfo  *api.StateInfo
}

func (e *ClusterFailedError) Error() string {
	if e.StateInfo == nil {
		return fmt.Sprintf("cluster %s entered state FAILED", e.ClusterArn)
	}
	return fmt.Sprintf("cluster %s entered state FAILED: %s: %s",
		e.ClusterArn, ptr.ToString(e.StateInfo.Code), ptr.ToString(e.StateInfo.Message))
}

// OperationFailedError is returned when a cluster operation ends in UPDATE_FAILED.
type OperationFailedError struct {
	OperationArn string
	ErrorInfo    *api.ErrorInfo
}

func (e *OperationFailedError) Error() string {
	if e.ErrorInfo == nil {
		return fmt.Sprintf("cluster operation %s failed", e.OperationArn)
	}
	return fmt.Sprintf("cluster operation %s failed: %s: %s",
		e.OperationArn, ptr.ToString(e.ErrorInfo.ErrorCode), ptr.ToString(e.ErrorInfo.ErrorString))
}

// WaitUntilClusterState polls DescribeCluster until the cluster reaches want.
// A cluster in FAILED ends the wait with *ClusterFailedError unless FAILED is wanted.
func WaitUntilClusterState(ctx context.Context, client api.KafkaAPI, clusterArn string, want api.ClusterState, optFns ...func(*WaiterOptions)) (*api.ClusterInfo, error) {
	options := resolveWaiterOptions(optFns)
	logger := logging.FromContext(logging.WithCluster(ctx, clusterArn)).With("want", want)

	var last *api.ClusterInfo
	err := wait.PollUntilContextTimeout(ctx, options.PollInterval, options.Timeout, true, func(ctx context.Context) (bool, error) {
		out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: &clusterArn})
		if err != nil {
			if IsThrottled(err) {
				return false, nil
			}
			return false, err
		}
		if out.ClusterInfo == nil {
			return false, nil
		}
		last = out.ClusterInfo

		state := last.State
		logger.Debug("polled cluster state", "state", state)
		switch {
		case state == want:
			return true, nil
		case state == api.ClusterStateFailed:
			return false, &ClusterFailedError{ClusterArn: clusterArn, StateInfo: last.StateInfo}
		default:
			return false, nil
		}
	})
	if err != nil {
		if wait.Interrupted(err) && ctx.Err() == nil {
			var lastState api.ClusterState
			if last != nil {
				lastState = last.State
			}
			return last, fmt.Errorf("cluster %s did not reach %s (last state %q): %w", clusterArn, want, lastState, ErrWaitTimeout)
		}
		return last, err
	}
	return last, nil
}

// WaitUntilClusterDeleted polls DescribeCluster until the service answers NotFoundException.
func WaitUntilClusterDeleted(ctx context.Context, client api.KafkaAPI, clusterArn string, optFns ...func(*WaiterOptions)) error {
	options := resolveWaiterOptions(optFns)
	logger := logging.FromContext(logging.WithCluster(ctx, clusterArn))

	err := wait.PollUntilContextTimeout(ctx, options.PollInterval, options.Timeout, true, func(ctx context.Context) (bool, error) {
		out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: &clusterArn})
		if err != nil {
			if IsNotFound(err) {
				return true, nil
			}
			if IsThrottled(err) {
				return false, nil
			}
			return false, err
		}
		if out.ClusterInfo != nil {
			logger.Debug("cluster still present", "state", out.ClusterInfo.State)
			if out.ClusterInfo.State == api.ClusterStateFailed {
				return false, &ClusterFailedError{ClusterArn: clusterArn, StateInfo: out.ClusterInfo.StateInfo}
			}
		}
		return false, nil
	})
	if err != nil && wait.Interrupted(err) && ctx.Err() == nil {
		return fmt.Errorf("cluster %s was not deleted: %w", clusterArn, ErrWaitTimeout)
	}
	return err
}

// WaitUntilOperationComplete polls DescribeClusterOperation until the operation
// reaches UPDATE_COMPLETE. UPDATE_FAILED ends the wait with *OperationFailedError.
func WaitUntilOperationComplete(ctx context.Context, client api.KafkaAPI, operationArn string, optFns ...func(*WaiterOptions)) (*api.ClusterOperationInfo, error) {
	options := resolveWaiterOptions(optFns)
	logger := logging.FromContext(ctx).With("operation_arn", operationArn)

	var last *api.ClusterOperationInfo
	err := wait.PollUntilContextTimeout(ctx, options.PollInterval, options.Timeout, true, func(ctx context.Context) (bool, error) {
		out, err := client.DescribeClusterOperation(ctx, &api.DescribeClusterOperationRequest{ClusterOperationArn: &operationArn})
		if err != nil {
			if IsThrottled(err) {
				return false, nil
			}
			return false, err
		}
		if out.ClusterOperationInfo == nil {
			return false, nil
		}
		last = out.ClusterOperationInfo

		state := ptr.ToString(last.OperationState)
		logger.Debug("polled operation state", "state", state)
		switch state {
		case OperationStateComplete:
			return true, nil
		case OperationStateFailed:
			return false, &OperationFailedError{OperationArn: operationArn, ErrorInfo: last.ErrorInfo}
		default:
			return false, nil
		}
	})
	if err != nil {
		if wait.Interrupted(err) && ctx.Err() == nil {
			return last, fmt.Errorf("cluster operation %s did not complete: %w", operationArn, ErrWaitTimeout)
		}
		return last, err
	}
	return last, nil
}

// WaitUntilClusterState waits for the cluster to reach want
func (c *Client) WaitUntilClusterState(ctx context.Context, clusterArn string, want api.ClusterState, optFns ...func(*WaiterOptions)) (*api.ClusterInfo, error) {
	return WaitUntilClusterState(ctx, c, clusterArn, want, optFns...)
}

// WaitUntilClusterDeleted waits for the cluster to disappear
func (c *Client) WaitUntilClusterDeleted(ctx context.Context, clusterArn string, optFns ...func(*WaiterOptions)) error {
	return WaitUntilClusterDeleted(ctx, c, clusterArn, optFns...)
}

// WaitUntilOperationComplete waits for a cluster operation to finish
func (c *Client) WaitUntilOperationComplete(ctx context.Context, operationArn string, optFns ...func(*WaiterOptions)) (*api.ClusterOperationInfo, error) {
	return WaitUntilOperationComplete(ctx, c, operationArn, optFns...)
}

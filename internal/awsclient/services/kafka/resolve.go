package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

var (
	// ErrClusterNotFound is returned when no cluster has the requested name
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrAmbiguousCluster is returned when several clusters share the requested name
	ErrAmbiguousCluster = errors.New("cluster name is ambiguous")
)

// ParseClusterARN validates that s is an MSK cluster ARN.
func ParseClusterARN(s string) (arn.ARN, error) {
	a, err := arn.Parse(s)
	if err != nil {
		return arn.ARN{}, fmt.Errorf("invalid cluster ARN %q: %w", s, err)
	}
	if a.Service != api.SigningName || !strings.HasPrefix(a.Resource, "cluster/") {
		return arn.ARN{}, fmt.Errorf("invalid cluster ARN %q: not an MSK cluster", s)
	}
	return a, nil
}

// ResolveClusterARN accepts a cluster name or ARN and returns the ARN. Names are
// looked up with ListClusters and must match exactly one cluster.
func ResolveClusterARN(ctx context.Context, client api.KafkaAPI, nameOrARN string) (string, error) {
	if nameOrARN == "" {
		return "", errors.New("cluster name or ARN is required")
	}
	if arn.IsARN(nameOrARN) {
		if _, err := ParseClusterARN(nameOrARN); err != nil {
			return "", err
		}
		return nameOrARN, nil
	}

	var matches []string
	p := NewListClustersPaginator(client, &api.ListClustersRequest{ClusterNameFilter: ptr.String(nameOrARN)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list clusters: %w", err)
		}
		for _, info := range page.ClusterInfoList {
			if ptr.ToString(info.ClusterName) == nameOrARN {
				matches = append(matches, ptr.ToString(info.ClusterArn))
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrClusterNotFound, nameOrARN)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d clusters", ErrAmbiguousCluster, nameOrARN, len(matches))
	}
}

// CurrentVersion returns the cluster's currentVersion, which every Update*
// operation must echo back for optimistic concurrency.
func CurrentVersion(ctx context.Context, client api.KafkaAPI, clusterArn string) (string, error) {
	out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: &clusterArn})
	if err != nil {
		return "", err
	}
	if out.ClusterInfo == nil || ptr.ToString(out.ClusterInfo.CurrentVersion) == "" {
		return "", fmt.Errorf("cluster %s has no current version", clusterArn)
	}
	return *out.ClusterInfo.CurrentVersion, nil
}

// ResolveClusterARN resolves a cluster name or ARN
func (c *Client) ResolveClusterARN(ctx context.Context, nameOrARN string) (string, error) {
	return ResolveClusterARN(ctx, c, nameOrARN)
}

// CurrentVersion returns the cluster's current version
func (c *Client) CurrentVersion(ctx context.Context, clusterArn string) (string, error) {
	return CurrentVersion(ctx, c, clusterArn)
}

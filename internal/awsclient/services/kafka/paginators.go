package kafka

import (
	"context"
	"errors"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
)

// ErrNoMorePages is returned by NextPage after the last page was read.
var ErrNoMorePages = errors.New("no more pages available")

// PaginatorOptions configures a paginator
type PaginatorOptions struct {
	// Limit is the maximum number of items per page (maxResults). Zero leaves
	// the page size to the service.
	Limit int32
}

// Paginator walks a list operation page by page, following nextToken until the
// service returns an empty token or repeats the token it was just given.
type Paginator[TOutput any] struct {
	options   PaginatorOptions
	fetch     func(ctx context.Context, nextToken *string, limit *int32) (*TOutput, error)
	tokenOf   func(*TOutput) *string
	nextToken *string
	firstPage bool
}

func newPaginator[TOutput any](
	options PaginatorOptions,
	startToken *string,
	fetch func(ctx context.Context, nextToken *string, limit *int32) (*TOutput, error),
	tokenOf func(*TOutput) *string,
) *Paginator[TOutput] {
	return &Paginator[TOutput]{
		options:   options,
		fetch:     fetch,
		tokenOf:   tokenOf,
		nextToken: startToken,
		firstPage: true,
	}
}

// HasMorePages reports whether NextPage can return another page
func (p *Paginator[TOutput]) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && len(*p.nextToken) != 0)
}

// NextPage retrieves the next page
func (p *Paginator[TOutput]) NextPage(ctx context.Context) (*TOutput, error) {
	if !p.HasMorePages() {
		return nil, ErrNoMorePages
	}

	var limit *int32
	if p.options.Limit > 0 {
		limit = &p.options.Limit
	}

	out, err := p.fetch(ctx, p.nextToken, limit)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prevToken := p.nextToken
	p.nextToken = p.tokenOf(out)
	if prevToken != nil && p.nextToken != nil && *prevToken == *p.nextToken {
		p.nextToken = nil
	}

	return out, nil
}

func resolvePaginatorOptions(maxResults *int32, optFns []func(*PaginatorOptions)) PaginatorOptions {
	var options PaginatorOptions
	if maxResults != nil {
		options.Limit = *maxResults
	}
	for _, fn := range optFns {
		fn(&options)
	}
	return options
}

// NewListClustersPaginator returns a paginator for ListClusters
func NewListClustersPaginator(client api.KafkaAPI, params *api.ListClustersRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListClustersResponse] {
	if params == nil {
		params = &api.ListClustersRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListClustersResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListClusters(ctx, &input)
		},
		func(out *api.ListClustersResponse) *string { return out.NextToken },
	)
}

// NewListClusterOperationsPaginator returns a paginator for ListClusterOperations
func NewListClusterOperationsPaginator(client api.KafkaAPI, params *api.ListClusterOperationsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListClusterOperationsResponse] {
	if params == nil {
		params = &api.ListClusterOperationsRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListClusterOperationsResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListClusterOperations(ctx, &input)
		},
		func(out *api.ListClusterOperationsResponse) *string { return out.NextToken },
	)
}

// NewListConfigurationsPaginator returns a paginator for ListConfigurations
func NewListConfigurationsPaginator(client api.KafkaAPI, params *api.ListConfigurationsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListConfigurationsResponse] {
	if params == nil {
		params = &api.ListConfigurationsRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListConfigurationsResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListConfigurations(ctx, &input)
		},
		func(out *api.ListConfigurationsResponse) *string { return out.NextToken },
	)
}

// NewListConfigurationRevisionsPaginator returns a paginator for ListConfigurationRevisions
func NewListConfigurationRevisionsPaginator(client api.KafkaAPI, params *api.ListConfigurationRevisionsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListConfigurationRevisionsResponse] {
	if params == nil {
		params = &api.ListConfigurationRevisionsRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListConfigurationRevisionsResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListConfigurationRevisions(ctx, &input)
		},
		func(out *api.ListConfigurationRevisionsResponse) *string { return out.NextToken },
	)
}

// NewListKafkaVersionsPaginator returns a paginator for ListKafkaVersions
func NewListKafkaVersionsPaginator(client api.KafkaAPI, params *api.ListKafkaVersionsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListKafkaVersionsResponse] {
	if params == nil {
		params = &api.ListKafkaVersionsRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListKafkaVersionsResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListKafkaVersions(ctx, &input)
		},
		func(out *api.ListKafkaVersionsResponse) *string { return out.NextToken },
	)
}

// NewListNodesPaginator returns a paginator for ListNodes
func NewListNodesPaginator(client api.KafkaAPI, params *api.ListNodesRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListNodesResponse] {
	if params == nil {
		params = &api.ListNodesRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListNodesResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListNodes(ctx, &input)
		},
		func(out *api.ListNodesResponse) *string { return out.NextToken },
	)
}

// NewListScramSecretsPaginator returns a paginator for ListScramSecrets
func NewListScramSecretsPaginator(client api.KafkaAPI, params *api.ListScramSecretsRequest, optFns ...func(*PaginatorOptions)) *Paginator[api.ListScramSecretsResponse] {
	if params == nil {
		params = &api.ListScramSecretsRequest{}
	}
	options := resolvePaginatorOptions(params.MaxResults, optFns)

	return newPaginator(options, params.NextToken,
		func(ctx context.Context, nextToken *string, limit *int32) (*api.ListScramSecretsResponse, error) {
			input := *params
			input.NextToken = nextToken
			input.MaxResults = limit
			return client.ListScramSecrets(ctx, &input)
		},
		func(out *api.ListScramSecretsResponse) *string { return out.NextToken },
	)
}

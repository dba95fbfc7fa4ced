package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Credentials holds AWS credentials
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// HasKeys reports whether the credentials can sign a request.
func (c Credentials) HasKeys() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// CredentialsProvider retrieves the credentials used to sign each request attempt.
type CredentialsProvider interface {
	Retrieve(ctx context.Context) (Credentials, error)
}

// StaticCredentialsProvider returns the same credentials on every call.
type StaticCredentialsProvider struct {
	Value Credentials
}

// Retrieve implements CredentialsProvider
func (p StaticCredentialsProvider) Retrieve(context.Context) (Credentials, error) {
	return p.Value, nil
}

// AnonymousCredentials makes the client send unsigned requests.
type AnonymousCredentials struct{}

// Retrieve implements CredentialsProvider
func (AnonymousCredentials) Retrieve(context.Context) (Credentials, error) {
	return Credentials{}, nil
}

// awsCredentialsProvider adapts an aws-sdk-go-v2 provider, caching until expiry.
type awsCredentialsProvider struct {
	cache *aws.CredentialsCache
}

// NewAWSCredentialsProvider adapts any aws-sdk-go-v2 credentials provider, such as
// the one resolved by config.LoadDefaultConfig. Results are cached until they expire.
func NewAWSCredentialsProvider(provider aws.CredentialsProvider) CredentialsProvider {
	cache, ok := provider.(*aws.CredentialsCache)
	if !ok {
		cache = aws.NewCredentialsCache(provider)
	}
	return &awsCredentialsProvider{cache: cache}
}

// NewStaticCredentials returns a provider for a fixed access key pair.
func NewStaticCredentials(accessKeyID, secretAccessKey, sessionToken string) CredentialsProvider {
	return NewAWSCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, sessionToken))
}

// Retrieve implements CredentialsProvider
func (p *awsCredentialsProvider) Retrieve(ctx context.Context) (Credentials, error) {
	v, err := p.cache.Retrieve(ctx)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to retrieve credentials: %w", err)
	}
	return Credentials{
		AccessKeyID:     v.AccessKeyID,
		SecretAccessKey: v.SecretAccessKey,
		SessionToken:    v.SessionToken,
	}, nil
}

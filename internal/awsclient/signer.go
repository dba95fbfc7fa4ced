package awsclient

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// SignerOptions contains options for the signer
type SignerOptions struct {
	Service string
	Region  string
}

// Signer signs AWS requests using Signature Version 4
type Signer struct {
	credentials Credentials
	options     SignerOptions
	signer      *v4.Signer
}

// NewSigner creates a new Signer
func NewSigner(creds Credentials, opts SignerOptions) *Signer {
	return &Signer{
		credentials: creds,
		options:     opts,
		signer:      v4.NewSigner(),
	}
}

// SignRequest signs an HTTP request with AWS Signature Version 4
func (s *Signer) SignRequest(req *http.Request) error {
	return s.signRequestAt(req, time.Now().UTC())
}

func (s *Signer) signRequestAt(req *http.Request, now time.Time) error {
	hash, err := payloadHash(req)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	// a previous attempt's signature must not leak into the new one
	req.Header.Del("Authorization")
	req.Header.Del("X-Amz-Security-Token")

	creds := aws.Credentials{
		AccessKeyID:     s.credentials.AccessKeyID,
		SecretAccessKey: s.credentials.SecretAccessKey,
		SessionToken:    s.credentials.SessionToken,
	}
	if err := s.signer.SignHTTP(req.Context(), creds, req, hash, s.options.Service, s.options.Region, now); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}

// payloadHash returns the hex SHA-256 of the body and rewinds it.
func payloadHash(req *http.Request) (string, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

// Package kafkaprobe connects to the brokers of an MSK cluster with the Kafka
// protocol and reports what the cluster metadata says about them.
package kafkaprobe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/IBM/sarama"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

// AuthMode selects the listener a client connects to
type AuthMode string

// Supported listeners. MSK serves each on its own port.
const (
	AuthPlaintext AuthMode = "plaintext"
	AuthTLS       AuthMode = "tls"
	AuthSASLScram AuthMode = "sasl-scram"
	AuthSASLIAM   AuthMode = "sasl-iam"
)

const (
	defaultClientID = "mskctl"
	defaultTimeout  = 10 * time.Second
)

var (
	// ErrNoBootstrapBrokers is returned when the cluster exposes no listener for the requested mode
	ErrNoBootstrapBrokers = errors.New("no bootstrap brokers for auth mode")

	// ErrUnsupportedAuth is returned for listeners the probe cannot authenticate against
	ErrUnsupportedAuth = errors.New("unsupported auth mode")
)

// ParseAuthMode converts a flag value into an AuthMode
func ParseAuthMode(s string) (AuthMode, error) {
	switch mode := AuthMode(strings.ToLower(s)); mode {
	case AuthPlaintext, AuthTLS, AuthSASLScram, AuthSASLIAM:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAuth, s)
	}
}

// Options configures a probe
type Options struct {
	Auth AuthMode

	// KafkaVersion is the protocol version to speak, e.g. "3.5.1". Empty uses sarama's default.
	KafkaVersion string

	// Username and Password authenticate sasl-scram connections
	Username string
	Password string

	// ScramSHA256 selects SCRAM-SHA-256 instead of SCRAM-SHA-512, which MSK uses
	ScramSHA256 bool

	// TLSConfig overrides the TLS settings of tls and sasl-scram connections
	TLSConfig *tls.Config

	Timeout  time.Duration
	ClientID string
}

// BrokerInfo describes one broker from the cluster metadata
type BrokerInfo struct {
	ID         int32  `json:"id" yaml:"id"`
	Addr       string `json:"addr" yaml:"addr"`
	Controller bool   `json:"controller" yaml:"controller"`
}

// TopicInfo describes one topic from the cluster metadata
type TopicInfo struct {
	Name              string `json:"name" yaml:"name"`
	Partitions        int    `json:"partitions" yaml:"partitions"`
	ReplicationFactor int    `json:"replicationFactor" yaml:"replicationFactor"`
}

// Result is what a probe learned about a cluster
type Result struct {
	Brokers      []BrokerInfo `json:"brokers" yaml:"brokers"`
	Topics       []TopicInfo  `json:"topics" yaml:"topics"`
	ControllerID int32        `json:"controllerId" yaml:"controllerId"`
}

// SelectBrokers picks the bootstrap broker string for auth from a GetBootstrapBrokers response.
func SelectBrokers(resp *api.GetBootstrapBrokersResponse, auth AuthMode) ([]string, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w %s", ErrNoBootstrapBrokers, auth)
	}

	var raw string
	switch auth {
	case AuthPlaintext:
		raw = ptr.ToString(resp.BootstrapBrokerString)
	case AuthTLS:
		raw = ptr.ToString(resp.BootstrapBrokerStringTls)
	case AuthSASLScram:
		raw = ptr.ToString(resp.BootstrapBrokerStringSaslScram)
	case AuthSASLIAM:
		raw = ptr.ToString(resp.BootstrapBrokerStringSaslIam)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAuth, auth)
	}

	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoBootstrapBrokers, auth)
	}
	return brokers, nil
}

// ProtocolVersion maps an MSK version string such as "3.7.x" or
// "2.8.2.tiered" onto the Kafka protocol version sarama understands.
// It returns "" when nothing usable can be derived.
func ProtocolVersion(mskVersion string) string {
	parts := strings.Split(strings.TrimSpace(mskVersion), ".")
	if len(parts) < 2 {
		return ""
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	for i, p := range parts {
		if p == "x" {
			parts[i] = "0"
		}
	}

	version := strings.Join(parts, ".")
	if _, err := sarama.ParseKafkaVersion(version); err != nil {
		return ""
	}
	return version
}

func newConfig(opts Options) (*sarama.Config, error) {
	config := sarama.NewConfig()
	config.ClientID = opts.ClientID
	if config.ClientID == "" {
		config.ClientID = defaultClientID
	}

	if opts.KafkaVersion != "" {
		version, err := sarama.ParseKafkaVersion(opts.KafkaVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid kafka version %q: %w", opts.KafkaVersion, err)
		}
		config.Version = version
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	config.Net.DialTimeout = timeout
	config.Net.ReadTimeout = timeout
	config.Net.WriteTimeout = timeout
	config.Metadata.Retry.Max = 1
	config.Metadata.Full = true

	tlsConfig := opts.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	switch opts.Auth {
	case "", AuthPlaintext:
	case AuthTLS:
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = tlsConfig
	case AuthSASLScram:
		if opts.Username == "" || opts.Password == "" {
			return nil, errors.New("sasl-scram requires a username and password")
		}
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = tlsConfig
		config.Net.SASL.Enable = true
		config.Net.SASL.User = opts.Username
		config.Net.SASL.Password = opts.Password
		config.Net.SASL.Handshake = true
		if opts.ScramSHA256 {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			config.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return &scramClient{HashGeneratorFcn: sha256Generator}
			}
		} else {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			config.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return &scramClient{HashGeneratorFcn: sha512Generator}
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAuth, opts.Auth)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}
	return config, nil
}

// Probe connects to brokers and reads the cluster metadata.
func Probe(ctx context.Context, brokers []string, opts Options) (*Result, error) {
	if len(brokers) == 0 {
		return nil, errors.New("the brokers list cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	config, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := probe(brokers, config)
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.result, o.err
	}
}

func probe(addrs []string, config *sarama.Config) (*Result, error) {
	logger := logging.With("brokers", strings.Join(addrs, ","))
	logger.Debug("connecting to kafka")

	client, err := sarama.NewClient(addrs, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise the Kafka client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close kafka client", "error", err)
		}
	}()

	result := &Result{ControllerID: -1}
	if controller, err := client.Controller(); err == nil {
		result.ControllerID = controller.ID()
	} else {
		logger.Debug("controller unavailable", "error", err)
	}

	for _, b := range client.Brokers() {
		result.Brokers = append(result.Brokers, BrokerInfo{
			ID:         b.ID(),
			Addr:       b.Addr(),
			Controller: b.ID() == result.ControllerID,
		})
	}
	sort.Slice(result.Brokers, func(i, j int) bool { return result.Brokers[i].ID < result.Brokers[j].ID })

	topics, err := client.Topics()
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		partitions, err := client.Partitions(topic)
		if err != nil {
			return nil, fmt.Errorf("failed to list partitions of %s: %w", topic, err)
		}
		info := TopicInfo{Name: topic, Partitions: len(partitions)}
		if len(partitions) > 0 {
			if replicas, err := client.Replicas(topic, partitions[0]); err == nil {
				info.ReplicationFactor = len(replicas)
			}
		}
		result.Topics = append(result.Topics, info)
	}

	logger.Debug("probed kafka", "brokers", len(result.Brokers), "topics", len(result.Topics))
	return result, nil
}

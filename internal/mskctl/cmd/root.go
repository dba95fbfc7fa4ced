// Package cmd implements the mskctl command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	"github.com/nandemo-ya/mskgo/internal/config"
	"github.com/nandemo-ya/mskgo/internal/logging"
	"github.com/nandemo-ya/mskgo/internal/version"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configFile string
	region     string
	profile    string
	endpoint   string
	output     string
	logLevel   string
}

// app is the state shared by every subcommand of one invocation
type app struct {
	opts   rootOptions
	cfg    *config.Config
	client *kafka.Client
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mskctl",
		Short: "mskctl - command line client for Amazon MSK",
		Long: `mskctl manages Amazon MSK clusters and configurations through the MSK control-plane API.
Cluster arguments accept either a cluster name or a cluster ARN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configFile, "config", "", "Config file (default: mskctl.yaml in ., $HOME/.mskctl or the user config dir)")
	flags.StringVar(&a.opts.region, "region", "", "AWS region")
	flags.StringVar(&a.opts.profile, "profile", "", "Shared config profile")
	flags.StringVar(&a.opts.endpoint, "endpoint", "", "Override the MSK endpoint URL")
	flags.StringVarP(&a.opts.output, "output", "o", "", "Output format: table, json, yaml")
	flags.StringVarP(&a.opts.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newClustersCmd(a))
	root.AddCommand(newConfigurationsCmd(a))
	root.AddCommand(newKafkaVersionsCmd(a))
	root.AddCommand(newTagCmd(a))
	root.AddCommand(newUntagCmd(a))
	root.AddCommand(newVersionCmd(a))

	return root
}

// Execute runs RootCmd and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if code := kafka.ErrorCode(err); code != "" {
			logging.Debug("service error", "code", code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and initializes logging
func (a *app) setup(cmd *cobra.Command) error {
	config.ResetConfig()

	// flags override file and environment values
	flags := cmd.Flags()
	for _, o := range []struct {
		flag, key, value string
	}{
		{"region", "aws.region", a.opts.region},
		{"profile", "aws.profile", a.opts.profile},
		{"endpoint", "aws.endpoint", a.opts.endpoint},
		{"output", "output.format", a.opts.output},
		{"log-level", "output.logLevel", a.opts.logLevel},
	} {
		if flags.Changed(o.flag) {
			config.Set(o.key, o.value)
		}
	}

	if _, err := config.LoadConfig(a.opts.configFile); err != nil {
		return err
	}
	cfg := config.GetConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Initialize(&logging.Config{
		Level:  logging.ParseLevel(cfg.Output.LogLevel),
		Format: cfg.Output.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if used := config.ConfigFileUsed(); used != "" {
		logging.Debug("Loaded config file", "path", used)
	}

	a.cfg = cfg
	a.client = nil
	return nil
}

// kafkaClient builds the MSK client on first use so commands like version
// never touch the credential chain.
func (a *app) kafkaClient(ctx context.Context) (*kafka.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	region := a.cfg.AWS.Region
	var creds awsclient.CredentialsProvider

	if a.cfg.AWS.AccessKeyID != "" {
		creds = awsclient.NewStaticCredentials(a.cfg.AWS.AccessKeyID, a.cfg.AWS.SecretAccessKey, a.cfg.AWS.SessionToken)
	} else {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(region))
		}
		if a.cfg.AWS.Profile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(a.cfg.AWS.Profile))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		if region == "" {
			region = awsCfg.Region
		}
		if awsCfg.Credentials != nil {
			creds = awsclient.NewAWSCredentialsProvider(awsCfg.Credentials)
		}
	}

	if region == "" && a.cfg.AWS.Endpoint == "" {
		return nil, errors.New("no region configured: use --region, MSKCTL_AWS_REGION or AWS_REGION")
	}

	a.client = kafka.NewClient(awsclient.Config{
		Credentials:        creds,
		Region:             region,
		Endpoint:           a.cfg.AWS.Endpoint,
		InsecureSkipVerify: a.cfg.Client.InsecureSkipVerify,
		Timeout:            a.cfg.Client.Timeout,
		MaxRetries:         a.cfg.Client.MaxRetries,
		RateLimit:          a.cfg.Client.RateLimit,
		RateBurst:          a.cfg.Client.RateBurst,
		UserAgent:          "mskctl/" + version.GetVersion(),
	})
	logging.Debug("Created MSK client", "endpoint", a.client.Endpoint(), "region", region)
	return a.client, nil
}

// waiterOptions applies the configured polling to a waiter
func (a *app) waiterOptions(opts *kafka.WaiterOptions) {
	opts.PollInterval = a.cfg.Wait.PollInterval
	opts.Timeout = a.cfg.Wait.Timeout
}

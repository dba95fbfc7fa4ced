package cmd

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
	"github.com/nandemo-ya/mskgo/internal/kafkaprobe"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

func newClustersProbeCmd(a *app) *cobra.Command {
	var (
		auth        string
		username    string
		password    string
		scramSHA256 bool
		insecure    bool
		timeout     time.Duration
		brokers     []string
	)

	probeCmd := &cobra.Command{
		Use:   "probe CLUSTER",
		Short: "Connect to the brokers of a cluster and read its metadata",
		Long: `Probe looks up the bootstrap brokers of the cluster for the chosen listener,
connects with a Kafka client and prints the brokers and topics it finds.
The SCRAM password is read from MSKCTL_SCRAM_PASSWORD when --password is not set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mode, err := kafkaprobe.ParseAuthMode(auth)
			if err != nil {
				return err
			}

			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			addrs := brokers
			if len(addrs) == 0 {
				out, err := client.GetBootstrapBrokers(ctx, &api.GetBootstrapBrokersRequest{ClusterArn: ptr.String(clusterArn)})
				if err != nil {
					return fmt.Errorf("failed to get bootstrap brokers: %w", err)
				}
				if addrs, err = kafkaprobe.SelectBrokers(out, mode); err != nil {
					return err
				}
			}

			var kafkaVersion string
			if desc, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: ptr.String(clusterArn)}); err == nil && desc.ClusterInfo != nil {
				kafkaVersion = kafkaprobe.ProtocolVersion(kafkaVersionOf(desc.ClusterInfo))
			}

			if password == "" {
				password = os.Getenv("MSKCTL_SCRAM_PASSWORD")
			}

			opts := kafkaprobe.Options{
				Auth:         mode,
				KafkaVersion: kafkaVersion,
				Username:     username,
				Password:     password,
				ScramSHA256:  scramSHA256,
				Timeout:      timeout,
			}
			if insecure {
				opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
			}

			logging.Debug("Probing brokers", "cluster", clusterArn, "auth", mode, "brokers", addrs)
			result, err := kafkaprobe.Probe(ctx, addrs, opts)
			if err != nil {
				return fmt.Errorf("failed to probe cluster: %w", err)
			}

			return a.render(cmd.OutOrStdout(), result, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Kind", "Name", "Detail"})
				for _, b := range result.Brokers {
					detail := b.Addr
					if b.Controller {
						detail += " (controller)"
					}
					t.Append([]string{"broker", strconv.Itoa(int(b.ID)), detail})
				}
				for _, topic := range result.Topics {
					t.Append([]string{"topic", topic.Name, fmt.Sprintf("partitions=%d replicas=%d", topic.Partitions, topic.ReplicationFactor)})
				}
			})
		},
	}

	flags := probeCmd.Flags()
	flags.StringVar(&auth, "auth", string(kafkaprobe.AuthTLS), "Listener to use: plaintext, tls, sasl-scram")
	flags.StringVar(&username, "username", "", "SASL/SCRAM username")
	flags.StringVar(&password, "password", "", "SASL/SCRAM password")
	flags.BoolVar(&scramSHA256, "scram-sha256", false, "Use SCRAM-SHA-256 instead of SCRAM-SHA-512")
	flags.BoolVar(&insecure, "insecure-skip-verify", false, "Skip broker certificate verification")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "Dial and read timeout")
	flags.StringSliceVar(&brokers, "bootstrap", nil, "Broker addresses to use instead of the ones MSK reports")
	return probeCmd
}

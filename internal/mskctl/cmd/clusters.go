package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

func newClustersCmd(a *app) *cobra.Command {
	clustersCmd := &cobra.Command{
		Use:     "clusters",
		Aliases: []string{"cluster"},
		Short:   "Manage MSK clusters",
	}

	clustersCmd.AddCommand(
		newClustersListCmd(a),
		newClustersDescribeCmd(a),
		newClustersCreateCmd(a),
		newClustersDeleteCmd(a),
		newClustersBrokersCmd(a),
		newClustersNodesCmd(a),
		newClustersOperationsCmd(a),
		newClustersWaitCmd(a),
		newClustersUpdateBrokerCountCmd(a),
		newClustersUpdateStorageCmd(a),
		newClustersUpgradeCmd(a),
		newClustersRebootCmd(a),
		newClustersProbeCmd(a),
	)
	return clustersCmd
}

func newClustersListCmd(a *app) *cobra.Command {
	var (
		nameFilter string
		pageSize   int32
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List clusters in the region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			params := &api.ListClustersRequest{}
			if nameFilter != "" {
				params.ClusterNameFilter = ptr.String(nameFilter)
			}
			paginator := kafka.NewListClustersPaginator(client, params, func(o *kafka.PaginatorOptions) {
				o.Limit = pageSize
			})

			clusters := []api.ClusterInfo{}
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("failed to list clusters: %w", err)
				}
				clusters = append(clusters, page.ClusterInfoList...)
			}

			return a.render(cmd.OutOrStdout(), clusters, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Name", "State", "Brokers", "Kafka", "Instance", "Created"})
				for _, c := range clusters {
					t.Append([]string{
						str(c.ClusterName),
						enumStr(c.State),
						int32Str(c.NumberOfBrokerNodes),
						kafkaVersionOf(&c),
						instanceTypeOf(&c),
						age(c.CreationTime),
					})
				}
			})
		},
	}

	listCmd.Flags().StringVar(&nameFilter, "name-filter", "", "Only list clusters whose name starts with this prefix")
	listCmd.Flags().Int32Var(&pageSize, "page-size", 0, "Number of clusters requested per call")
	return listCmd
}

func newClustersDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe CLUSTER",
		Short: "Describe a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.DescribeCluster(ctx, &api.DescribeClusterRequest{ClusterArn: ptr.String(clusterArn)})
			if err != nil {
				return fmt.Errorf("failed to describe cluster: %w", err)
			}
			info := out.ClusterInfo
			if info == nil {
				info = &api.ClusterInfo{}
			}

			return a.render(cmd.OutOrStdout(), info, func(t *tablewriter.Table) {
				keyValues(t, clusterRows(info))
			})
		},
	}
}

func clusterRows(c *api.ClusterInfo) [][2]string {
	rows := [][2]string{
		{"Name", str(c.ClusterName)},
		{"ARN", str(c.ClusterArn)},
		{"State", enumStr(c.State)},
		{"Current version", str(c.CurrentVersion)},
		{"Kafka version", kafkaVersionOf(c)},
		{"Brokers", int32Str(c.NumberOfBrokerNodes)},
		{"Instance type", instanceTypeOf(c)},
	}
	if g := c.BrokerNodeGroupInfo; g != nil {
		rows = append(rows, [2]string{"Client subnets", joinOrDash(g.ClientSubnets)})
		if g.StorageInfo != nil && g.StorageInfo.EbsStorageInfo != nil && g.StorageInfo.EbsStorageInfo.VolumeSize != nil {
			rows = append(rows, [2]string{"Storage per broker", volumeSize(*g.StorageInfo.EbsStorageInfo.VolumeSize)})
		}
	}
	rows = append(rows,
		[2]string{"Enhanced monitoring", enumStr(c.EnhancedMonitoring)},
		[2]string{"Active operation", str(c.ActiveOperationArn)},
		[2]string{"Created", timeStr(c.CreationTime)},
	)
	if c.StateInfo != nil {
		rows = append(rows, [2]string{"State info", fmt.Sprintf("%s: %s", str(c.StateInfo.Code), str(c.StateInfo.Message))})
	}

	keys := make([]string, 0, len(c.Tags))
	for k := range c.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, [2]string{"Tag " + k, c.Tags[k]})
	}
	return rows
}

func kafkaVersionOf(c *api.ClusterInfo) string {
	if c.CurrentBrokerSoftwareInfo == nil {
		return "-"
	}
	return str(c.CurrentBrokerSoftwareInfo.KafkaVersion)
}

func instanceTypeOf(c *api.ClusterInfo) string {
	if c.BrokerNodeGroupInfo == nil {
		return "-"
	}
	return str(c.BrokerNodeGroupInfo.InstanceType)
}

func newClustersCreateCmd(a *app) *cobra.Command {
	var (
		file string
		wait bool
	)

	createCmd := &cobra.Command{
		Use:   "create -f FILE",
		Short: "Create a cluster from a YAML or JSON CreateCluster request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input, err := loadCreateClusterRequest(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			out, err := client.CreateCluster(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to create cluster: %w", err)
			}
			logging.Info("Cluster creation started", "cluster", ptr.ToString(out.ClusterArn))

			if wait {
				info, err := client.WaitUntilClusterState(ctx, ptr.ToString(out.ClusterArn), api.ClusterStateActive, a.waiterOptions)
				if err != nil {
					return err
				}
				out.State = info.State
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Name", "State", "ARN"})
				t.Append([]string{str(out.ClusterName), enumStr(out.State), str(out.ClusterArn)})
			})
		},
	}

	createCmd.Flags().StringVarP(&file, "file", "f", "", "Path to the request document (YAML or JSON), - for stdin")
	createCmd.Flags().BoolVar(&wait, "wait", false, "Wait until the cluster is ACTIVE")
	createCmd.MarkFlagRequired("file")
	return createCmd
}

// loadCreateClusterRequest reads a request document. YAML is converted to JSON
// first so field names follow the wire format in both cases.
func loadCreateClusterRequest(path string, stdin io.Reader) (*api.CreateClusterRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	input := &api.CreateClusterRequest{}
	if err := decodeDocument(data, filepath.Ext(path), input); err != nil {
		return nil, fmt.Errorf("invalid request file %s: %w", path, err)
	}
	return input, nil
}

func decodeDocument(data []byte, ext string, out interface{}) error {
	ext = strings.ToLower(ext)
	if ext == ".json" || (ext != ".yaml" && ext != ".yml" && json.Valid(data)) {
		return json.Unmarshal(data, out)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document is empty")
	}
	converted, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(converted, out)
}

func newClustersDeleteCmd(a *app) *cobra.Command {
	var (
		currentVersion string
		wait           bool
	)

	deleteCmd := &cobra.Command{
		Use:   "delete CLUSTER",
		Short: "Delete a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			input := &api.DeleteClusterRequest{ClusterArn: ptr.String(clusterArn)}
			if currentVersion != "" {
				input.CurrentVersion = ptr.String(currentVersion)
			}
			out, err := client.DeleteCluster(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to delete cluster: %w", err)
			}

			if wait {
				if err := client.WaitUntilClusterDeleted(ctx, clusterArn, a.waiterOptions); err != nil {
					return err
				}
				out.State = ""
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				state := enumStr(out.State)
				if wait {
					state = "DELETED"
				}
				t.SetHeader([]string{"ARN", "State"})
				t.Append([]string{str(out.ClusterArn), state})
			})
		},
	}

	deleteCmd.Flags().StringVar(&currentVersion, "current-version", "", "Only delete if the cluster is at this version")
	deleteCmd.Flags().BoolVar(&wait, "wait", false, "Wait until the cluster is gone")
	return deleteCmd
}

func newClustersBrokersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "brokers CLUSTER",
		Short: "Show the bootstrap broker strings of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.GetBootstrapBrokers(ctx, &api.GetBootstrapBrokersRequest{ClusterArn: ptr.String(clusterArn)})
			if err != nil {
				return fmt.Errorf("failed to get bootstrap brokers: %w", err)
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Auth", "Bootstrap brokers"})
				for _, row := range []struct {
					auth    string
					brokers *string
				}{
					{"plaintext", out.BootstrapBrokerString},
					{"tls", out.BootstrapBrokerStringTls},
					{"sasl-scram", out.BootstrapBrokerStringSaslScram},
					{"sasl-iam", out.BootstrapBrokerStringSaslIam},
				} {
					if ptr.ToString(row.brokers) != "" {
						t.Append([]string{row.auth, *row.brokers})
					}
				}
			})
		},
	}
}

func newClustersNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes CLUSTER",
		Short: "List the broker nodes of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			paginator := kafka.NewListNodesPaginator(client, &api.ListNodesRequest{ClusterArn: ptr.String(clusterArn)})
			nodes := []api.NodeInfo{}
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("failed to list nodes: %w", err)
				}
				nodes = append(nodes, page.NodeInfoList...)
			}

			return a.render(cmd.OutOrStdout(), nodes, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Broker", "Instance", "Subnet", "Address", "Endpoint"})
				for _, n := range nodes {
					broker, subnet, addr, endpoint := "-", "-", "-", "-"
					if b := n.BrokerNodeInfo; b != nil {
						if b.BrokerId != nil {
							broker = fmt.Sprintf("%g", *b.BrokerId)
						}
						subnet = str(b.ClientSubnet)
						addr = str(b.ClientVpcIpAddress)
						endpoint = joinOrDash(b.Endpoints)
					}
					t.Append([]string{broker, str(n.InstanceType), subnet, addr, endpoint})
				}
			})
		},
	}
}

func newClustersOperationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "operations CLUSTER",
		Short: "List the operations performed on a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			paginator := kafka.NewListClusterOperationsPaginator(client, &api.ListClusterOperationsRequest{ClusterArn: ptr.String(clusterArn)})
			operations := []api.ClusterOperationInfo{}
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("failed to list cluster operations: %w", err)
				}
				operations = append(operations, page.ClusterOperationInfoList...)
			}

			return a.render(cmd.OutOrStdout(), operations, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Type", "State", "Started", "Ended", "ARN"})
				for _, op := range operations {
					t.Append([]string{
						str(op.OperationType),
						str(op.OperationState),
						age(op.CreationTime),
						age(op.EndTime),
						str(op.OperationArn),
					})
				}
			})
		},
	}
}

func newClustersWaitCmd(a *app) *cobra.Command {
	var (
		state     string
		operation string
	)

	waitCmd := &cobra.Command{
		Use:   "wait CLUSTER",
		Short: "Wait for a cluster to reach a state, or for one of its operations to finish",
		Long: `Wait polls the cluster until it reaches --state (default ACTIVE).
Use --state DELETED to wait for a deletion, or --operation ARN to wait for an update to complete.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			if operation != "" {
				op, err := client.WaitUntilOperationComplete(ctx, operation, a.waiterOptions)
				if err != nil {
					return err
				}
				return a.render(cmd.OutOrStdout(), op, func(t *tablewriter.Table) {
					t.SetHeader([]string{"Type", "State", "ARN"})
					t.Append([]string{str(op.OperationType), str(op.OperationState), str(op.OperationArn)})
				})
			}

			if strings.EqualFold(state, "DELETED") {
				if err := client.WaitUntilClusterDeleted(ctx, clusterArn, a.waiterOptions); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cluster %s deleted\n", clusterArn)
				return nil
			}

			want, err := api.ParseClusterState(strings.ToUpper(state))
			if err != nil {
				return err
			}
			info, err := client.WaitUntilClusterState(ctx, clusterArn, want, a.waiterOptions)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), info, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Name", "State", "ARN"})
				t.Append([]string{str(info.ClusterName), enumStr(info.State), str(info.ClusterArn)})
			})
		},
	}

	waitCmd.Flags().StringVar(&state, "state", string(api.ClusterStateActive), "Cluster state to wait for, or DELETED")
	waitCmd.Flags().StringVar(&operation, "operation", "", "Wait for this cluster operation ARN instead")
	return waitCmd
}

func newClustersUpdateBrokerCountCmd(a *app) *cobra.Command {
	var (
		count int32
		wait  bool
	)

	updateCmd := &cobra.Command{
		Use:   "update-broker-count CLUSTER",
		Short: "Change the number of broker nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args[0], wait, func(client *kafka.Client, clusterArn, currentVersion string) (*string, error) {
				out, err := client.UpdateBrokerCount(cmd.Context(), &api.UpdateBrokerCountRequest{
					ClusterArn:                ptr.String(clusterArn),
					CurrentVersion:            ptr.String(currentVersion),
					TargetNumberOfBrokerNodes: ptr.Int32(count),
				})
				if err != nil {
					return nil, fmt.Errorf("failed to update broker count: %w", err)
				}
				return out.ClusterOperationArn, nil
			})
		},
	}

	updateCmd.Flags().Int32Var(&count, "count", 0, "Target number of broker nodes")
	updateCmd.Flags().BoolVar(&wait, "wait", false, "Wait until the update completes")
	updateCmd.MarkFlagRequired("count")
	return updateCmd
}

func newClustersUpdateStorageCmd(a *app) *cobra.Command {
	var (
		sizeGB int32
		broker string
		wait   bool
	)

	updateCmd := &cobra.Command{
		Use:   "update-storage CLUSTER",
		Short: "Grow the EBS volume of the brokers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args[0], wait, func(client *kafka.Client, clusterArn, currentVersion string) (*string, error) {
				out, err := client.UpdateBrokerStorage(cmd.Context(), &api.UpdateBrokerStorageRequest{
					ClusterArn:     ptr.String(clusterArn),
					CurrentVersion: ptr.String(currentVersion),
					TargetBrokerEBSVolumeInfo: []api.BrokerEBSVolumeInfo{
						{KafkaBrokerNodeId: ptr.String(broker), VolumeSizeGB: ptr.Int32(sizeGB)},
					},
				})
				if err != nil {
					return nil, fmt.Errorf("failed to update broker storage: %w", err)
				}
				return out.ClusterOperationArn, nil
			})
		},
	}

	updateCmd.Flags().Int32Var(&sizeGB, "size", 0, "Target volume size in GiB")
	updateCmd.Flags().StringVar(&broker, "broker", "All", "Broker node id to resize, or All")
	updateCmd.Flags().BoolVar(&wait, "wait", false, "Wait until the update completes")
	updateCmd.MarkFlagRequired("size")
	return updateCmd
}

func newClustersUpgradeCmd(a *app) *cobra.Command {
	var (
		target string
		wait   bool
	)

	upgradeCmd := &cobra.Command{
		Use:   "upgrade CLUSTER",
		Short: "Upgrade the Apache Kafka version of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args[0], wait, func(client *kafka.Client, clusterArn, currentVersion string) (*string, error) {
				out, err := client.UpdateClusterKafkaVersion(cmd.Context(), &api.UpdateClusterKafkaVersionRequest{
					ClusterArn:         ptr.String(clusterArn),
					CurrentVersion:     ptr.String(currentVersion),
					TargetKafkaVersion: ptr.String(target),
				})
				if err != nil {
					return nil, fmt.Errorf("failed to upgrade cluster: %w", err)
				}
				return out.ClusterOperationArn, nil
			})
		},
	}

	upgradeCmd.Flags().StringVar(&target, "kafka-version", "", "Target Apache Kafka version")
	upgradeCmd.Flags().BoolVar(&wait, "wait", false, "Wait until the upgrade completes")
	upgradeCmd.MarkFlagRequired("kafka-version")
	return upgradeCmd
}

func newClustersRebootCmd(a *app) *cobra.Command {
	var brokers []string

	rebootCmd := &cobra.Command{
		Use:   "reboot CLUSTER",
		Short: "Reboot brokers of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, clusterArn, err := a.resolveCluster(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.RebootBroker(ctx, &api.RebootBrokerRequest{
				ClusterArn: ptr.String(clusterArn),
				BrokerIds:  brokers,
			})
			if err != nil {
				return fmt.Errorf("failed to reboot brokers: %w", err)
			}
			return a.renderOperation(cmd, out.ClusterArn, out.ClusterOperationArn)
		},
	}

	rebootCmd.Flags().StringSliceVar(&brokers, "broker", nil, "Broker ids to reboot")
	rebootCmd.MarkFlagRequired("broker")
	return rebootCmd
}

type updateFunc func(client *kafka.Client, clusterArn, currentVersion string) (*string, error)

// runUpdate resolves the cluster, reads its current version for the
// optimistic concurrency check, runs update and optionally waits for the
// resulting operation.
func (a *app) runUpdate(cmd *cobra.Command, nameOrARN string, wait bool, update updateFunc) error {
	ctx := cmd.Context()
	client, clusterArn, err := a.resolveCluster(cmd, nameOrARN)
	if err != nil {
		return err
	}

	currentVersion, err := client.CurrentVersion(ctx, clusterArn)
	if err != nil {
		return err
	}

	operationArn, err := update(client, clusterArn, currentVersion)
	if err != nil {
		return err
	}
	logging.Info("Cluster update started", "cluster", clusterArn, "operation", ptr.ToString(operationArn))

	if wait && operationArn != nil {
		op, err := client.WaitUntilOperationComplete(ctx, *operationArn, a.waiterOptions)
		if err != nil {
			return err
		}
		return a.render(cmd.OutOrStdout(), op, func(t *tablewriter.Table) {
			t.SetHeader([]string{"Type", "State", "ARN"})
			t.Append([]string{str(op.OperationType), str(op.OperationState), str(op.OperationArn)})
		})
	}

	return a.renderOperation(cmd, ptr.String(clusterArn), operationArn)
}

func (a *app) renderOperation(cmd *cobra.Command, clusterArn, operationArn *string) error {
	out := struct {
		ClusterArn          *string `json:"clusterArn,omitempty"`
		ClusterOperationArn *string `json:"clusterOperationArn,omitempty"`
	}{clusterArn, operationArn}

	return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
		t.SetHeader([]string{"Cluster", "Operation"})
		t.Append([]string{str(clusterArn), str(operationArn)})
	})
}

// resolveCluster builds the client and turns a name or ARN argument into a cluster ARN
func (a *app) resolveCluster(cmd *cobra.Command, nameOrARN string) (*kafka.Client, string, error) {
	ctx := cmd.Context()
	client, err := a.kafkaClient(ctx)
	if err != nil {
		return nil, "", err
	}
	clusterArn, err := client.ResolveClusterARN(ctx, nameOrARN)
	if err != nil {
		return nil, "", err
	}
	logging.Debug("Resolved cluster", "input", nameOrARN, "arn", clusterArn)
	return client, clusterArn, nil
}

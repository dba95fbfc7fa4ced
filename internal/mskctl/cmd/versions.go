package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

func newKafkaVersionsCmd(a *app) *cobra.Command {
	var cluster string

	versionsCmd := &cobra.Command{
		Use:   "kafka-versions",
		Short: "List the Apache Kafka versions MSK offers",
		Long: `Without --cluster, list every Apache Kafka version MSK supports.
With --cluster, list the versions that cluster can be upgraded to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cluster != "" {
				client, clusterArn, err := a.resolveCluster(cmd, cluster)
				if err != nil {
					return err
				}
				out, err := client.GetCompatibleKafkaVersions(ctx, &api.GetCompatibleKafkaVersionsRequest{ClusterArn: ptr.String(clusterArn)})
				if err != nil {
					return fmt.Errorf("failed to get compatible Kafka versions: %w", err)
				}
				compatible := out.CompatibleKafkaVersions
				if compatible == nil {
					compatible = []api.CompatibleKafkaVersion{}
				}
				return a.render(cmd.OutOrStdout(), compatible, func(t *tablewriter.Table) {
					t.SetHeader([]string{"Source", "Targets"})
					for _, v := range compatible {
						t.Append([]string{str(v.SourceVersion), strings.Join(v.TargetVersions, ", ")})
					}
				})
			}

			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}
			paginator := kafka.NewListKafkaVersionsPaginator(client, &api.ListKafkaVersionsRequest{})
			versions := []api.KafkaVersion{}
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("failed to list Kafka versions: %w", err)
				}
				versions = append(versions, page.KafkaVersions...)
			}

			return a.render(cmd.OutOrStdout(), versions, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Version", "Status"})
				for _, v := range versions {
					t.Append([]string{str(v.Version), enumStr(v.Status)})
				}
			})
		},
	}

	versionsCmd.Flags().StringVar(&cluster, "cluster", "", "Only list upgrade targets of this cluster")
	return versionsCmd
}

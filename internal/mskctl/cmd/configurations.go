package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

func newConfigurationsCmd(a *app) *cobra.Command {
	configurationsCmd := &cobra.Command{
		Use:     "configurations",
		Aliases: []string{"configuration", "config"},
		Short:   "Manage MSK configurations",
	}

	configurationsCmd.AddCommand(
		newConfigurationsListCmd(a),
		newConfigurationsDescribeCmd(a),
		newConfigurationsCreateCmd(a),
		newConfigurationsUpdateCmd(a),
		newConfigurationsDeleteCmd(a),
		newConfigurationsRevisionsCmd(a),
		newConfigurationsRevisionCmd(a),
	)
	return configurationsCmd
}

func newConfigurationsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configurations in the region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			configurations, err := listConfigurations(cmd, client)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), configurations, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Name", "State", "Revision", "Kafka versions", "Created"})
				for _, c := range configurations {
					revision := "-"
					if c.LatestRevision != nil {
						revision = int64Str(c.LatestRevision.Revision)
					}
					t.Append([]string{str(c.Name), enumStr(c.State), revision, joinOrDash(c.KafkaVersions), age(c.CreationTime)})
				}
			})
		},
	}
}

func listConfigurations(cmd *cobra.Command, client *kafka.Client) ([]api.Configuration, error) {
	paginator := kafka.NewListConfigurationsPaginator(client, &api.ListConfigurationsRequest{})
	configurations := []api.Configuration{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(cmd.Context())
		if err != nil {
			return nil, fmt.Errorf("failed to list configurations: %w", err)
		}
		configurations = append(configurations, page.Configurations...)
	}
	return configurations, nil
}

// resolveConfiguration turns a configuration name or ARN into an ARN
func (a *app) resolveConfiguration(cmd *cobra.Command, nameOrARN string) (*kafka.Client, string, error) {
	client, err := a.kafkaClient(cmd.Context())
	if err != nil {
		return nil, "", err
	}
	if strings.HasPrefix(nameOrARN, "arn:") {
		return client, nameOrARN, nil
	}

	configurations, err := listConfigurations(cmd, client)
	if err != nil {
		return nil, "", err
	}
	for _, c := range configurations {
		if ptr.ToString(c.Name) == nameOrARN {
			return client, ptr.ToString(c.Arn), nil
		}
	}
	return nil, "", fmt.Errorf("configuration not found: %s", nameOrARN)
}

func newConfigurationsDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe CONFIGURATION",
		Short: "Describe a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, configurationArn, err := a.resolveConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.DescribeConfiguration(cmd.Context(), &api.DescribeConfigurationRequest{Arn: ptr.String(configurationArn)})
			if err != nil {
				return fmt.Errorf("failed to describe configuration: %w", err)
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				revision := "-"
				if out.LatestRevision != nil {
					revision = int64Str(out.LatestRevision.Revision)
				}
				keyValues(t, [][2]string{
					{"Name", str(out.Name)},
					{"ARN", str(out.Arn)},
					{"State", enumStr(out.State)},
					{"Description", str(out.Description)},
					{"Kafka versions", joinOrDash(out.KafkaVersions)},
					{"Latest revision", revision},
					{"Created", timeStr(out.CreationTime)},
				})
			})
		},
	}
}

func readServerProperties(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server properties: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("server properties file %s is empty", path)
	}
	return data, nil
}

func newConfigurationsCreateCmd(a *app) *cobra.Command {
	var (
		name          string
		description   string
		properties    string
		kafkaVersions []string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a configuration from a server.properties file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := readServerProperties(cmd, properties)
			if err != nil {
				return err
			}
			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			input := &api.CreateConfigurationRequest{
				Name:             ptr.String(name),
				KafkaVersions:    kafkaVersions,
				ServerProperties: data,
			}
			if description != "" {
				input.Description = ptr.String(description)
			}

			out, err := client.CreateConfiguration(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to create configuration: %w", err)
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				revision := "-"
				if out.LatestRevision != nil {
					revision = int64Str(out.LatestRevision.Revision)
				}
				t.SetHeader([]string{"Name", "State", "Revision", "ARN"})
				t.Append([]string{str(out.Name), enumStr(out.State), revision, str(out.Arn)})
			})
		},
	}

	createCmd.Flags().StringVar(&name, "name", "", "Configuration name")
	createCmd.Flags().StringVar(&description, "description", "", "Configuration description")
	createCmd.Flags().StringVar(&properties, "server-properties", "", "Path to a server.properties file, - for stdin")
	createCmd.Flags().StringSliceVar(&kafkaVersions, "kafka-versions", nil, "Kafka versions the configuration applies to")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("server-properties")
	return createCmd
}

func newConfigurationsUpdateCmd(a *app) *cobra.Command {
	var (
		description string
		properties  string
	)

	updateCmd := &cobra.Command{
		Use:   "update CONFIGURATION",
		Short: "Add a revision to a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readServerProperties(cmd, properties)
			if err != nil {
				return err
			}
			client, configurationArn, err := a.resolveConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			input := &api.UpdateConfigurationRequest{
				Arn:              ptr.String(configurationArn),
				ServerProperties: data,
			}
			if description != "" {
				input.Description = ptr.String(description)
			}

			out, err := client.UpdateConfiguration(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to update configuration: %w", err)
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				revision := "-"
				if out.LatestRevision != nil {
					revision = int64Str(out.LatestRevision.Revision)
				}
				t.SetHeader([]string{"ARN", "Revision"})
				t.Append([]string{str(out.Arn), revision})
			})
		},
	}

	updateCmd.Flags().StringVar(&description, "description", "", "Description of the new revision")
	updateCmd.Flags().StringVar(&properties, "server-properties", "", "Path to a server.properties file, - for stdin")
	updateCmd.MarkFlagRequired("server-properties")
	return updateCmd
}

func newConfigurationsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONFIGURATION",
		Short: "Delete a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, configurationArn, err := a.resolveConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.DeleteConfiguration(cmd.Context(), &api.DeleteConfigurationRequest{Arn: ptr.String(configurationArn)})
			if err != nil {
				return fmt.Errorf("failed to delete configuration: %w", err)
			}

			return a.render(cmd.OutOrStdout(), out, func(t *tablewriter.Table) {
				t.SetHeader([]string{"ARN", "State"})
				t.Append([]string{str(out.Arn), enumStr(out.State)})
			})
		},
	}
}

func newConfigurationsRevisionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "revisions CONFIGURATION",
		Short: "List the revisions of a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, configurationArn, err := a.resolveConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			paginator := kafka.NewListConfigurationRevisionsPaginator(client, &api.ListConfigurationRevisionsRequest{Arn: ptr.String(configurationArn)})
			revisions := []api.ConfigurationRevision{}
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list configuration revisions: %w", err)
				}
				revisions = append(revisions, page.Revisions...)
			}

			return a.render(cmd.OutOrStdout(), revisions, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Revision", "Description", "Created"})
				for _, r := range revisions {
					t.Append([]string{int64Str(r.Revision), str(r.Description), age(r.CreationTime)})
				}
			})
		},
	}
}

func newConfigurationsRevisionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "revision CONFIGURATION REVISION",
		Short: "Show one revision of a configuration",
		Long:  `Revision prints the server.properties of the revision in table mode and the full revision otherwise.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			revision, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || revision < 1 {
				return fmt.Errorf("invalid revision %q: must be a positive number", args[1])
			}

			client, configurationArn, err := a.resolveConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := client.DescribeConfigurationRevision(cmd.Context(), &api.DescribeConfigurationRevisionRequest{
				Arn:      ptr.String(configurationArn),
				Revision: ptr.Int64(revision),
			})
			if err != nil {
				return fmt.Errorf("failed to describe configuration revision: %w", err)
			}

			if strings.EqualFold(a.cfg.Output.Format, "table") {
				_, err := cmd.OutOrStdout().Write(out.ServerProperties)
				return err
			}
			return a.render(cmd.OutOrStdout(), out, nil)
		},
	}
}

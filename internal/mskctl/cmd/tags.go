package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

func newTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tag RESOURCE [KEY=VALUE...]",
		Short: "Add tags to a cluster or configuration, or list them when no pairs are given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resourceArn, err := a.resolveResource(cmd, args[0])
			if err != nil {
				return err
			}
			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			if len(args) > 1 {
				tags, err := parseTags(args[1:])
				if err != nil {
					return err
				}
				if _, err := client.TagResource(ctx, &api.TagResourceRequest{
					ResourceArn: ptr.String(resourceArn),
					Tags:        tags,
				}); err != nil {
					return fmt.Errorf("failed to tag resource: %w", err)
				}
			}

			out, err := client.ListTagsForResource(ctx, &api.ListTagsForResourceRequest{ResourceArn: ptr.String(resourceArn)})
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}
			return a.renderTags(cmd, out.Tags)
		},
	}
}

func newUntagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "untag RESOURCE KEY...",
		Short: "Remove tags from a cluster or configuration",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resourceArn, err := a.resolveResource(cmd, args[0])
			if err != nil {
				return err
			}
			client, err := a.kafkaClient(ctx)
			if err != nil {
				return err
			}

			if _, err := client.UntagResource(ctx, &api.UntagResourceRequest{
				ResourceArn: ptr.String(resourceArn),
				TagKeys:     args[1:],
			}); err != nil {
				return fmt.Errorf("failed to untag resource: %w", err)
			}

			out, err := client.ListTagsForResource(ctx, &api.ListTagsForResourceRequest{ResourceArn: ptr.String(resourceArn)})
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}
			return a.renderTags(cmd, out.Tags)
		},
	}
}

// resolveResource passes ARNs through and resolves anything else as a cluster name
func (a *app) resolveResource(cmd *cobra.Command, arg string) (string, error) {
	if strings.HasPrefix(arg, "arn:") {
		return arg, nil
	}
	_, clusterArn, err := a.resolveCluster(cmd, arg)
	return clusterArn, err
}

func parseTags(pairs []string) (map[string]string, error) {
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q: expected KEY=VALUE", pair)
		}
		tags[key] = value
	}
	return tags, nil
}

func (a *app) renderTags(cmd *cobra.Command, tags map[string]string) error {
	if tags == nil {
		tags = map[string]string{}
	}
	return a.render(cmd.OutOrStdout(), tags, func(t *tablewriter.Table) {
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		t.SetHeader([]string{"Key", "Value"})
		for _, k := range keys {
			t.Append([]string{k, tags[k]})
		}
	})
}

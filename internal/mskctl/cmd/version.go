package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, git commit, build date and MSK API version of mskctl.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo(api.APIVersion)

			switch a.cfg.Output.Format {
			case "json":
				return outputJSON(cmd.OutOrStdout(), info)
			case "yaml":
				return outputYAML(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mskctl\n")
			fmt.Fprintf(w, "Version:     %s\n", info.Version)
			fmt.Fprintf(w, "Git commit:  %s\n", info.GitCommit)
			fmt.Fprintf(w, "Built:       %s\n", info.BuildDate)
			fmt.Fprintf(w, "Go version:  %s\n", info.GoVersion)
			fmt.Fprintf(w, "MSK API:     %s\n", info.APIVersion)
			return nil
		},
	}
}

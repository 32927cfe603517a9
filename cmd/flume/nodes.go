package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentstation/flume/registry"
	"github.com/agentstation/flume/yaml"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the built-in node types",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := yaml.NewLoader()
		reg := registry.RegisterAll(loader)

		metas := make([]registry.NodeMetadata, 0, len(reg.All()))
		for _, builder := range reg.All() {
			metas = append(metas, builder.Metadata())
		}
		sort.Slice(metas, func(i, j int) bool {
			if metas[i].Category != metas[j].Category {
				return metas[i].Category < metas[j].Category
			}
			return metas[i].Type < metas[j].Type
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tCATEGORY\tDESCRIPTION")
		for _, meta := range metas {
			fmt.Fprintf(w, "%s\t%s\t%s\n", meta.Type, meta.Category, meta.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}

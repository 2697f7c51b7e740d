// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcguardproj/srcguard/internal/tool"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the srcguard version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "srcguard %s\n", tool.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Package cli EmoGo 后端的命令行入口
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configDir string
}

var flags rootFlags

// NewRootCmd 创建根命令，不带子命令时等同于 serve
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "emogo",
		Short:        "EmoGo data collection and export backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", ".", "directory containing the .env file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newAnalyzeCmd())
	return root
}

// Execute 运行根命令，出错时以非零状态退出
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

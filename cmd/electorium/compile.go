package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/katalvlaran/electorium/votewire"
)

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile",
		Short: "Compile votes on stdin into the binary case format on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := votewire.Compile(os.Stdin, cmd.OutOrStdout()); err != nil {
				logger.Error(err)

				return err
			}

			return nil
		},
	}
}

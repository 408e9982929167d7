package main

import (
	_ "embed"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func execRootCmd(args []string, ver string) error {
	version = ver
	rootCmd = cobrau.PrepareRootCmd(
		"electorium",
		"Delegated-vote election resolver",
		args,
		version,
		newResolveCmd(),
		newCompileCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/katalvlaran/electorium/election"
	"github.com/katalvlaran/electorium/introspect/logging"
	"github.com/katalvlaran/electorium/votetext"
)

// errNoWinner reports an election without a willing candidate.
var errNoWinner = errors.New("no willing candidate")

func newResolveCmd() *cobra.Command {
	var manual bool
	var voterPrefix string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Read votes on stdin and print the winner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve(cmd, voterPrefix)
		},
	}
	cmd.Flags().BoolVar(&manual, "manual", false, "Read a single case from stdin (default behavior)")
	cmd.Flags().StringVar(&voterPrefix, "voter-prefix", "voter", "Identity prefix marking non-candidate voters")

	return cmd
}

func resolve(cmd *cobra.Command, voterPrefix string) error {
	votes, err := votetext.Parse(os.Stdin, votetext.WithVoterPrefix(voterPrefix))
	if err != nil {
		logger.Error(err)

		return err
	}
	logger.Verbose("parsed", len(votes), "votes")

	opts := []election.Option{}
	if logger.IsVerbose() {
		opts = append(opts, election.WithIntrospector(logging.New()))
	}
	res, err := election.Resolve(votes, opts...)
	if err != nil {
		logger.Error(err)

		return err
	}
	if res.Winner == nil {
		logger.Error(errNoWinner)

		return errNoWinner
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Winner.VoterID)

	return nil
}

package cmd

import (
	"codesnap/pkg/logging"
	"codesnap/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	debug  bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codesnap",
	Short: "Codesnap generates reviewable text snapshots of codebases",
	Long: `Codesnap walks project directories, selects source and config files under
a set of ignore rules, and emits one line-numbered plain-text report per
project, ready to hand to a reviewer or a downstream text consumer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			if err := logging.Setup(true, "codesnap", version.Get().Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it with the
// supplied logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

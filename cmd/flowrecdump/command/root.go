package command

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	cliName        = "flowrecdump"
	cliDescription = "inspect flow record templates and their wire encoding"
)

type globalFlags struct {
	logLevel string
	noColor  bool
}

// NewRootCommand builds the flowrecdump command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}

	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			logger.SetOutput(cmd.ErrOrStderr())
			logger.WithField("log_level", level.String()).Debug("logger level has been set")

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newCatalogCommand(),
		newTemplatesCommand(),
		newEncodeIPv6Command(flags, logger),
	)

	return cmd
}

package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/taskpipego/internal/app"
	"github.com/vk/taskpipego/internal/reader"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// rootOptions holds the global flag values shared by every command.
type rootOptions struct {
	tags       []string
	logLevel   string
	logFormat  string
	thirdParty bool
}

// validate checks the global flag values the same way regardless of
// command.
func (o *rootOptions) validate() error {
	logFormat := strings.ToLower(o.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch strings.ToLower(o.logLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return nil
}

// NewRootCmd builds the command tree writing to the given output.
func NewRootCmd(outW io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "taskpipego",
		Short:         "taskpipego - a document-driven task pipeline engine",
		Long:          "taskpipego runs YAML pipeline documents: named groups of shell and docker tasks\nsharing model data, with variable propagation and tag filtering.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.thirdParty {
				return printThirdParty(outW)
			}
			return cmd.Help()
		},
	}
	root.SetOut(outW)
	root.SetErr(outW)

	flags := root.PersistentFlags()
	flags.StringArrayVar(&opts.tags, "tag", nil, "Run only tasks carrying one of these tags (repeatable).")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.Flags().BoolVar(&opts.thirdParty, "third-party", false, "List third-party dependencies and exit.")

	root.AddCommand(newRunCmd(outW, opts))
	return root
}

// newRunCmd builds the run command processing one document file.
func newRunCmd(outW io.Writer, opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Validate and run a pipeline document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			cfg, err := app.NewConfig(app.Config{
				FilePath:  file,
				Tags:      opts.tags,
				LogFormat: strings.ToLower(opts.logFormat),
				LogLevel:  strings.ToLower(opts.logLevel),
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			instance, err := app.NewApp(outW, cfg, reader.Collaborators{})
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}

			if err := instance.Run(cmd.Context()); err != nil {
				if errors.Is(err, app.ErrPipelineFailed) {
					return &ExitError{Code: 1, Message: err.Error()}
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the pipeline document.")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// Execute runs the command tree against the given arguments.
func Execute(ctx context.Context, outW io.Writer, args []string) error {
	root := NewRootCmd(outW)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/serdex/codec"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To     string // destination format
	Output string // output file path; empty writes to stdout
}

// ConvertResult is the success payload for the convert command.
type ConvertResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	From        string `json:"from"`
	To          string `json:"to"`
	Bytes       int    `json:"bytes"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a serialized file to another format",
		Long: `Convert a serialized file to another supported format.

The source format is taken from the file extension. The converted data is
written to stdout, or to --output when given. With --output and no --to,
the destination format is taken from the output file's extension.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "destination format (json|yaml|toml|ini)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runConvert(opts *ConvertOptions, srcPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	dstFormat := opts.To
	if dstFormat == "" && opts.Output != "" {
		dstFormat = codec.FormatOf(opts.Output)
	}
	if dstFormat == "" {
		formatter.Error(ErrCodeBadFormat, "no destination format: pass --to or --output with an extension", nil)
		return WrapExitError(ExitCommandError, "no destination format", nil)
	}

	formatter.VerboseLog("converting %s (%s) to %s", srcPath, codec.FormatOf(srcPath), dstFormat)

	out, err := codec.Convert(srcPath, dstFormat)
	if err != nil {
		return convertError(formatter, srcPath, dstFormat, err)
	}

	if opts.Output == "" {
		// Raw serialized output; the --format flag shapes diagnostics only.
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	if err := os.WriteFile(opts.Output, out, 0o644); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "write output", err)
	}

	return formatter.Success(ConvertResult{
		Source:      srcPath,
		Destination: opts.Output,
		From:        codec.FormatOf(srcPath),
		To:          dstFormat,
		Bytes:       len(out),
	})
}

func convertError(formatter *OutputFormatter, srcPath, dstFormat string, err error) error {
	switch {
	case codec.IsUnsupportedFormat(err):
		formatter.Error(ErrCodeBadFormat, err.Error(), nil)
		return WrapExitError(ExitCommandError, "unsupported format", err)
	case errors.Is(err, os.ErrNotExist):
		formatter.Error(ErrCodeLoadFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read source", err)
	default:
		var de *codec.DumperError
		if errors.As(err, &de) {
			formatter.Error(ErrCodeDumpFailed, err.Error(), map[string]string{"format": de.Format})
			return WrapExitError(ExitFailure, fmt.Sprintf("dump to %s", dstFormat), err)
		}
		formatter.Error(ErrCodeLoadFailed, err.Error(), map[string]string{
			"source": srcPath,
			"format": strings.TrimPrefix(filepath.Ext(srcPath), "."),
		})
		return WrapExitError(ExitFailure, "convert", err)
	}
}

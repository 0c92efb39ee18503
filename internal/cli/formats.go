package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/serdex/codec"
)

// FormatsResult is the success payload for the formats command.
type FormatsResult struct {
	Formats []string `json:"formats"`
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "formats",
		Short:         "List supported serialization formats",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			if rootOpts.Format == "json" {
				return formatter.Success(FormatsResult{Formats: codec.Formats()})
			}
			return formatter.Success(strings.Join(codec.Formats(), "\n"))
		},
	}
}

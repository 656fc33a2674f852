package cli

import (
	"github.com/spf13/cobra"
)

// newViewCommand runs a saved view from the config file by name.
func newViewCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view <name> [files...]",
		Short: "Run a saved view from the config file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, paths := args[0], args[1:]

			s, err := opts.load(paths)
			if err != nil {
				return err
			}
			f, err := s.cfg.View(name)
			if err != nil {
				return WrapExitError(ExitFailure, "resolve view", err)
			}
			return renderItems(opts.formatter(), s.engine.Query(f))
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

// newContextsCommand summarizes contexts with actionable work.
func newContextsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts [files...]",
		Short: "Show contexts with visible next actions, with counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(args)
			if err != nil {
				return err
			}
			return renderCounts(opts.formatter(), "@", s.engine.ContextCounts())
		},
	}
}

// newProjectsCommand summarizes projects with actionable work.
func newProjectsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "projects [files...]",
		Short: "Show projects with visible next actions, with counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(args)
			if err != nil {
				return err
			}
			return renderCounts(opts.formatter(), "+", s.engine.ProjectCounts())
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustedtext/trusted/internal/config"
	"github.com/trustedtext/trusted/internal/item"
	"github.com/trustedtext/trusted/internal/query"
)

// filterFlags are the shared query flags carried by every view command.
type filterFlags struct {
	contexts        []string
	excludeContexts []string
	projects        []string
	dueBefore       string
	dueAfter        string
	priorityMin     string
	priorityMax     string
	text            string
}

// register adds the filter flags to a command.
func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&ff.contexts, "context", "c", nil, "require context tag (repeatable, AND)")
	cmd.Flags().StringSliceVar(&ff.excludeContexts, "exclude-context", nil, "reject context tag (repeatable)")
	cmd.Flags().StringSliceVarP(&ff.projects, "project", "p", nil, "require project tag (repeatable, AND)")
	cmd.Flags().StringVar(&ff.dueBefore, "due-before", "", "due strictly before date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ff.dueAfter, "due-after", "", "due strictly after date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ff.priorityMin, "priority-min", "", "lowest priority character, inclusive")
	cmd.Flags().StringVar(&ff.priorityMax, "priority-max", "", "highest priority character, inclusive")
	cmd.Flags().StringVar(&ff.text, "text", "", "description substring (case-insensitive)")
}

// filter compiles the flags into a query filter. Flag values go through
// the same validation as saved views in the config file.
func (ff *filterFlags) filter() (query.Filter, error) {
	spec := config.ViewSpec{
		Contexts:        ff.contexts,
		ExcludeContexts: ff.excludeContexts,
		Projects:        ff.projects,
		DueBefore:       ff.dueBefore,
		DueAfter:        ff.dueAfter,
		PriorityMin:     ff.priorityMin,
		PriorityMax:     ff.priorityMax,
		TextContains:    ff.text,
	}
	return spec.Filter()
}

// newListCommand creates the generic filtered view: every filter
// dimension exposed, including the bucket.
func newListCommand(opts *RootOptions) *cobra.Command {
	ff := &filterFlags{}
	var bucketName string

	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List items matching a filter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter()
			if err != nil {
				return WrapExitError(ExitFailure, "invalid filter", err)
			}
			if bucketName != "" {
				b, ok := item.ParseBucket(bucketName)
				if !ok {
					return WrapExitError(ExitFailure,
						fmt.Sprintf("unknown bucket %q", bucketName), nil)
				}
				f.Bucket = &b
			}
			return runQuery(opts, args, f)
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&bucketName, "bucket", "b", "", "restrict to bucket (next|waiting|someday|tickler|completed)")
	return cmd
}

// newBucketCommand creates a view command pinned to one bucket.
// `trusted next todo.txt` is `trusted list -b next todo.txt`.
func newBucketCommand(opts *RootOptions, name string, bucket item.Bucket, short string) *cobra.Command {
	ff := &filterFlags{}

	cmd := &cobra.Command{
		Use:   name + " [files...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter()
			if err != nil {
				return WrapExitError(ExitFailure, "invalid filter", err)
			}
			b := bucket
			f.Bucket = &b
			return runQuery(opts, args, f)
		},
	}

	ff.register(cmd)
	return cmd
}

// runQuery loads the sources, runs the filter, and renders the result.
func runQuery(opts *RootOptions, paths []string, f query.Filter) error {
	s, err := opts.load(paths)
	if err != nil {
		return err
	}
	return renderItems(opts.formatter(), s.engine.Query(f))
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tasklist/internal/models"
	"tasklist/internal/tasklist"
)

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

// printView writes the current view after a mutation.
func printView(cmd *cobra.Command, tl *tasklist.Store) error {
	return renderView(cmd.OutOrStdout(), tl.View(), tl.Preferences())
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				if _, err := tl.AddTask(cmd.Context(), strings.Join(args, " ")); err != nil {
					return err
				}
				return printView(cmd, tl)
			})
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var (
		all  bool
		hide bool
		sort string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the task list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				ctx := cmd.Context()
				if all && hide {
					return fmt.Errorf("--all and --hide-finished are mutually exclusive")
				}
				if all || hide {
					if err := tl.SetShowFinished(ctx, all); err != nil {
						return err
					}
				}
				if sort != "" {
					mode, err := models.ParseSortMode(sort)
					if err != nil {
						return err
					}
					if err := tl.SetSortMode(ctx, mode); err != nil {
						return err
					}
				}
				return printView(cmd, tl)
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "show finished tasks (saved)")
	cmd.Flags().BoolVar(&hide, "hide-finished", false, "hide finished tasks (saved)")
	cmd.Flags().StringVarP(&sort, "sort", "s", "", "sort mode: name-ascending, name-descending, oldest-first, newest-first (saved)")

	return cmd
}

func newDoneCmd(opts *options, finished bool) *cobra.Command {
	use, short := "done ID", "Mark a task finished"
	if !finished {
		use, short = "undo ID", "Mark a task unfinished"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				if err := tl.SetFinished(cmd.Context(), id, finished); err != nil {
					return err
				}
				return printView(cmd, tl)
			})
		},
	}
}

func newRenameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME...",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				if err := tl.RenameTask(cmd.Context(), id, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				return printView(cmd, tl)
			})
		},
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				if err := tl.DeleteTask(cmd.Context(), id); err != nil {
					return err
				}
				return printView(cmd, tl)
			})
		},
	}
}

func newClearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskList(cmd, opts, func(tl *tasklist.Store) error {
				if err := tl.ClearAll(cmd.Context()); err != nil {
					return err
				}
				return printView(cmd, tl)
			})
		},
	}
}

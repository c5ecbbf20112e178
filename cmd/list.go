package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/todo"
)

func addList(root *cobra.Command, a *app) {
	var tasksOnly, rememberOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the todo and remember lists",
		Args:    cobra.NoArgs,
		Example: `  pydo list
  pydo ls --tasks`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.dispatcher.Run(""); err != nil {
				return err
			}
			doc, err := a.store.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !rememberOnly {
				printTasks(out, doc)
			}
			if !tasksOnly {
				printRemember(out, doc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&tasksOnly, "tasks", "t", false, "Only print tasks")
	cmd.Flags().BoolVarP(&rememberOnly, "remember", "r", false, "Only print remember items")
	cmd.MarkFlagsMutuallyExclusive("tasks", "remember")
	root.AddCommand(cmd)
}

func printTasks(w io.Writer, doc *todo.Document) {
	fmt.Fprintln(w, doc.Header)

	done := color.New(color.FgGreen)
	pending := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	for i, t := range doc.Tasks {
		mark := pending.Sprint("◯")
		if t.Completed {
			mark = done.Sprint("⬤")
		}
		tbl.AddRow(fmt.Sprintf(" %d.", i), mark, t.Task)
	}
	if len(doc.Tasks) > 0 {
		fmt.Fprintln(w, tbl)
	}

	completed, unfinished := doc.Counts()
	fmt.Fprintf(w, " %d done, %d left\n", completed, unfinished)
}

func printRemember(w io.Writer, doc *todo.Document) {
	fmt.Fprintln(w, doc.RememberHeader)

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	for i, item := range doc.RememberItems {
		tbl.AddRow(fmt.Sprintf(" %d.", i), "-", item.Item)
	}
	if len(doc.RememberItems) > 0 {
		fmt.Fprintln(w, tbl)
	}
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/todo"
)

func addDoctor(root *cobra.Command, a *app) {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check config, todo file and schema validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.doctor(cmd.OutOrStdout(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	root.AddCommand(cmd)
}

// doctor reports on the configuration and the todo file. It never creates
// or rewrites the file.
func (a *app) doctor(w io.Writer, verbose bool) error {
	fmt.Fprintln(w, "pydo doctor")
	fmt.Fprintln(w, "===========")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintln(w, "Config:")
	if len(a.sources.Files) == 0 {
		fmt.Fprintln(w, "  ✅ No config file (defaults)")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(w, "  ✅ %s\n", f)
	}
	if verbose {
		for _, field := range configFieldsWithSources(a) {
			fmt.Fprintf(w, "     %s\n", field)
		}
	}
	fmt.Fprintln(w)

	todoPath := a.cfg.TodoFile
	fmt.Fprintf(w, "Todo file: %s\n", todoPath)
	info, err := os.Stat(todoPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(w, "  ⚠️  Not found (created on first use)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Fprintln(w, "  ✅ OK")
		if !a.checkTodoFile(w, todoPath, verbose) {
			allOK = false
		}
	}
	fmt.Fprintln(w)

	schema := a.cfg.SchemaFile
	if schema == "" {
		fmt.Fprintln(w, "Schema: built-in")
	} else {
		fmt.Fprintf(w, "Schema file: %s\n", schema)
		if _, err := os.Stat(schema); err != nil {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		} else {
			fmt.Fprintln(w, "  ✅ OK")
		}
	}
	fmt.Fprintln(w)

	if a.cfg.LogFile != "" {
		dir := filepath.Dir(a.cfg.LogFile)
		fmt.Fprintf(w, "Log file: %s\n", a.cfg.LogFile)
		if _, err := os.Stat(dir); err != nil {
			fmt.Fprintf(w, "  ⚠️  Directory %s not found (created on first log)\n", dir)
		} else {
			fmt.Fprintln(w, "  ✅ OK")
		}
		fmt.Fprintln(w)
	}

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

func (a *app) checkTodoFile(w io.Writer, path string, verbose bool) bool {
	result, err := todo.ValidateFile(path, todo.ValidationOptions{SchemaPath: a.cfg.SchemaFile})
	if err != nil {
		fmt.Fprintf(w, "  ❌ Load error: %v\n", err)
		return false
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if !result.Valid {
		fmt.Fprintln(w, "  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", e)
		}
		return false
	}
	fmt.Fprintln(w, "  ✅ Valid")

	if verbose {
		doc, err := todo.Load(path)
		if err != nil {
			fmt.Fprintf(w, "  ❌ Load error: %v\n", err)
			return false
		}
		completed, unfinished := doc.Counts()
		fmt.Fprintf(w, "  Tasks: %d (%d done, %d left)\n", len(doc.Tasks), completed, unfinished)
		fmt.Fprintf(w, "  Remember items: %d\n", len(doc.RememberItems))
	}
	return true
}

func configFieldsWithSources(a *app) []string {
	var out []string
	for _, field := range configFields() {
		out = append(out, fmt.Sprintf("%s = %q (%s)", field, a.cfg.Value(field), a.sources.Sources[field]))
	}
	return out
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/command"
)

// addVerbs registers one subcommand per entry of the verb table.
func addVerbs(root *cobra.Command, a *app) {
	for _, verb := range command.Verbs() {
		root.AddCommand(verbCommand(verb, a))
	}
}

func verbCommand(verb command.Verb, a *app) *cobra.Command {
	return &cobra.Command{
		Use:     verb.Usage(),
		Aliases: []string{verb.Alias},
		Short:   verb.Short,
		Example: fmt.Sprintf("  pydo %s\n  pydo %s", verb.Usage(), example(verb)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dispatcher.Run(verb.Name, restoreNegativeIndexes(args)...)
		},
	}
}

func example(verb command.Verb) string {
	switch verb.Arg {
	case command.ArgText:
		return verb.Alias + " buy milk"
	case command.ArgIndexOrAll:
		return verb.Alias + " " + command.AllToken
	case command.ArgIndex:
		return verb.Alias + " 0"
	default:
		return verb.Alias
	}
}

// negativePrefix marks negative integers so pflag keeps them positional.
// Arguments from the OS never contain NUL.
const negativePrefix = "\x00"

// protectNegativeIndexes rewrites "-1" style arguments before flag parsing.
// Everything after "--" is already positional and left alone.
func protectNegativeIndexes(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "--" {
			copy(out[i:], args[i:])
			break
		}
		if isNegativeInt(arg) {
			arg = negativePrefix + arg
		}
		out[i] = arg
	}
	return out
}

func restoreNegativeIndexes(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.TrimPrefix(arg, negativePrefix)
	}
	return out
}

func isNegativeInt(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

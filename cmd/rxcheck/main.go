// Command rxcheck runs format rules from the command line.
//
//	rxcheck --list
//	rxcheck <rule> <value>...
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

// exitError carries a process exit code out of RunE
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitValid
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintln(stderr, "Error:", exitErr.err)
		}
		return exitErr.code
	}

	// flag or argument errors
	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}

func newRootCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "rxcheck <rule> <value>...",
		Short: "Check values against a named format rule",
		Long: `rxcheck prints "valid" or "invalid" for every value checked against the rule.
Flags are only read before the rule name; every argument after it is a value.
Exit status is 0 when all values are valid, 1 when any is invalid and 2 on usage errors.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return nil
			}
			if len(args) < 2 {
				return errors.New("requires a rule and at least one value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return printRules(cmd.OutOrStdout())
			}
			return checkValues(cmd.OutOrStdout(), args[0], args[1:])
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "print available rules")
	// flags end at the rule name, so values such as -5 are checked rather than parsed
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func checkValues(w io.Writer, name string, values []string) error {
	if _, ok := validator.Lookup(name); !ok {
		return &exitError{code: exitUsage, err: fmt.Errorf("unknown rule %q (see rxcheck --list)", name)}
	}

	anyInvalid := false
	for _, value := range values {
		ok, err := validator.Check(name, value)
		if err != nil {
			return &exitError{code: exitUsage, err: err}
		}

		verdict := "valid"
		if !ok {
			verdict = "invalid"
			anyInvalid = true
		}
		fmt.Fprintf(w, "%s\t%s\n", verdict, value)
	}

	if anyInvalid {
		return &exitError{code: exitInvalid}
	}
	return nil
}

func printRules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tTAG\tDESCRIPTION")
	for _, r := range validator.Rules() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Tag, r.Description)
	}
	return tw.Flush()
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/cnf"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	pretty  bool
	check   bool
	verbose bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "cnfdump [input.cnf ...]",
		Short: "Summarize DIMACS CNF files",
		Long: `cnfdump reads problems in the DIMACS CNF format and prints, for each
input, the sizes declared by its problem line along with the number of
clauses and comments actually read.

If no input file is given, cnfdump reads from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			if len(args) == 0 {
				return dumpOne(stdout, "<stdin>", opts, func() (*cnf.CNF, error) {
					return cnf.Parse(stdin)
				})
			}
			var failed bool
			for _, name := range args {
				name := name
				err := dumpOne(stdout, name, opts, func() (*cnf.CNF, error) {
					return cnf.ParseFile(name)
				})
				if err != nil {
					failed = true
				}
			}
			if failed {
				return errors.New("some inputs could not be parsed")
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Print the whole parsed problem")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Warn when clauses disagree with the problem line")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func dumpOne(w io.Writer, name string, opts options, parse func() (*cnf.CNF, error)) error {
	logger := log.WithField("file", name)
	logger.Debug("parsing")
	problem, err := parse()
	if err != nil {
		var e *cnf.Error
		if errors.As(err, &e) {
			logger = logger.WithField("kind", e.Kind)
			if e.Line > 0 {
				logger = logger.WithField("line", e.Line)
			}
		}
		logger.Error(err)
		return err
	}
	if opts.check {
		for _, msg := range check(problem) {
			logger.Warn(msg)
		}
	}
	if opts.pretty {
		_, err = pretty.Fprintf(w, "%s: %# v\n", name, problem)
		return err
	}
	_, err = fmt.Fprintf(w, "%s: vars=%d clauses=%d (read %d) comments=%d\n",
		name, problem.Variables, problem.ClauseCount, len(problem.Clauses), len(problem.Comments))
	return err
}

// check reports the ways in which problem disagrees with its own problem
// line. The parser accepts all of these.
func check(problem *cnf.CNF) []string {
	var msgs []string
	if problem.Format == "" {
		msgs = append(msgs, "no problem line")
	}
	if len(problem.Clauses) != problem.ClauseCount {
		msgs = append(msgs, fmt.Sprintf("problem line specifies %d clauses, but there are %d",
			problem.ClauseCount, len(problem.Clauses)))
	}
	for i, clause := range problem.Clauses {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > problem.Variables {
				msgs = append(msgs, fmt.Sprintf("clause %d contains var %d, but problem line asserts %d vars",
					i+1, v, problem.Variables))
				break
			}
		}
	}
	return msgs
}

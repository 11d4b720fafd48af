// Package cli implements the calc command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/pkg/logger"
)

// Flag names shared by the local and remote commands.
const (
	flagIn      = "in"
	flagBurned  = "burned"
	flagSteps   = "steps"
	flagJSON    = "json"
	flagVerbose = "verbose"
	flagURL     = "url"
	flagTimeout = "timeout"
)

const (
	defaultBaseURL = "http://localhost:9080"
	defaultTimeout = 10 * time.Second
)

type app struct {
	out    io.Writer
	errOut io.Writer
	client *http.Client
	log    logger.Logger

	caloriesIn     float64
	caloriesBurned float64
	steps          float64
	asJSON         bool
	verbose        bool
}

// Option configures the root command.
type Option func(*app)

// WithOutput sets where results and errors are printed.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.out = out
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithHTTPClient sets the client used by the remote command.
func WithHTTPClient(c *http.Client) Option {
	return func(a *app) {
		if c != nil {
			a.client = c
		}
	}
}

// NewRootCommand builds the calc command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Compute a daily calorie balance",
		Long:          "Compute total calories in, total calories out and the net balance.\nSteps are converted at 0.04 calories per step.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.out == nil {
				a.out = cmd.OutOrStdout()
			}
			if a.errOut == nil {
				a.errOut = cmd.ErrOrStderr()
			}
			if !a.verbose {
				return nil
			}
			if err := logger.Init(logger.WithWriter(a.errOut)); err != nil {
				return err
			}
			_ = logger.SetLevelString("debug")
			a.log = logger.Named("calc")
			return nil
		},
		RunE: a.runLocal,
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&a.caloriesIn, flagIn, 0, "calories consumed (required)")
	pf.Float64Var(&a.caloriesBurned, flagBurned, 0, "calories burned by exercise")
	pf.Float64Var(&a.steps, flagSteps, 0, "steps taken")
	pf.BoolVar(&a.asJSON, flagJSON, false, "print the result as JSON")
	pf.BoolVarP(&a.verbose, flagVerbose, "v", false, "log debug output to stderr")

	root.AddCommand(newRemoteCommand(a))
	return root
}

// input builds an Input from the flags that were actually set.
func (a *app) input(cmd *cobra.Command) calorie.Input {
	var in calorie.Input
	flags := cmd.Flags()
	if flags.Changed(flagIn) {
		in.CaloriesIn = calorie.Amount(a.caloriesIn)
	}
	if flags.Changed(flagBurned) {
		in.CaloriesBurned = calorie.Amount(a.caloriesBurned)
	}
	if flags.Changed(flagSteps) {
		in.Steps = calorie.Amount(a.steps)
	}
	return in
}

func (a *app) runLocal(cmd *cobra.Command, _ []string) error {
	in := a.input(cmd)
	res, err := calorie.Compute(in)
	if err != nil {
		if ve, ok := calorie.AsValidation(err); ok {
			a.printFieldErrors(ve.Fields())
			return fmt.Errorf("%w: %w", ErrRejected, err)
		}
		return err
	}
	a.log.Debug(cmd.Context(), "computed locally",
		logger.Float64("net_calories", res.NetCalories),
		logger.String("balance", res.Balance.String()),
	)
	return a.printResult(res)
}

func (a *app) printResult(res calorie.Result) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err := fmt.Fprintf(a.out,
		"Total Calories In:  %s\nTotal Calories Out: %s\n  %s\nNet Calories:       %s\n  %s\n",
		calorie.FormatCalories(res.TotalIn),
		calorie.FormatCalories(res.TotalOut),
		res.Breakdown(),
		calorie.FormatCalories(res.NetCalories),
		res.Balance.Description(),
	)
	return err
}

func (a *app) printFieldErrors(fields map[string]string) {
	for _, name := range []string{calorie.FieldCaloriesIn, calorie.FieldCaloriesBurned, calorie.FieldSteps} {
		if msg, ok := fields[name]; ok {
			_, _ = fmt.Fprintf(a.errOut, "%s: %s\n", name, msg)
		}
	}
}

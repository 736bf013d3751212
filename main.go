package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"q.log/tableau/instance"
	"q.log/tableau/logs"
	"q.log/tableau/model"
	"q.log/tableau/render"
	"q.log/tableau/simplex"
)

type config struct {
	logLevel string
	logJSON  string
	maxIter  int
	verify   bool
	quiet    bool

	//solve
	format string

	//form
	numVars        int
	numConstraints int
	objective      []string
	constraints    []string
	rhs            []string
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:          "tableau",
		Short:        "Solve max c·x s.t. Ax <= b, x >= 0 with the tableau simplex method",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&cfg.logJSON, "log-json", "", "also append JSON log records to this file")
	pf.IntVar(&cfg.maxIter, "max-iter", simplex.DefaultMaxIterations, "maximum number of pivots, <= 0 for no limit")
	pf.BoolVar(&cfg.verify, "verify", false, "cross-check the result with GLPK")
	pf.BoolVar(&cfg.quiet, "quiet", false, "print only the solution, not every tableau")

	solve := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a problem read from an MPS or CUE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := instance.Load(args[0], instance.Format(cfg.format))
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, m)
		},
	}
	solve.Flags().StringVar(&cfg.format, "format", "", "input format: mps, fixed-mps or cue (default: by extension)")

	form := &cobra.Command{
		Use:   "form",
		Short: "Solve a problem given as form fields; empty fields count as 0",
		Example: `  tableau form --vars 2 --constraints 3 --obj 3,5 \
    --con 1,0 --con 0,2 --con 3,2 --rhs 4,12,18`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &instance.Form{
				NumVars:        cfg.numVars,
				NumConstraints: cfg.numConstraints,
				Objective:      cfg.objective,
				RHS:            cfg.rhs,
			}
			for _, con := range cfg.constraints {
				f.Constraints = append(f.Constraints, splitFields(con))
			}
			m, err := f.Model()
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, m)
		},
	}
	ff := form.Flags()
	ff.IntVar(&cfg.numVars, "vars", 0, "number of variables")
	ff.IntVar(&cfg.numConstraints, "constraints", 0, "number of constraints")
	ff.StringSliceVar(&cfg.objective, "obj", nil, "objective coefficients, comma separated")
	ff.StringArrayVar(&cfg.constraints, "con", nil, "one constraint row, comma separated; repeat per row")
	ff.StringSliceVar(&cfg.rhs, "rhs", nil, "right-hand sides, comma separated")

	root.AddCommand(solve, form)
	return root
}

func run(stdout, stderr io.Writer, cfg *config, m *model.Model) error {
	level, err := logs.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logs.New(stderr, level, cfg.logJSON)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := m.Validate(); err != nil {
		return err
	}
	if !m.OriginFeasible() {
		logger.Warn("negative right-hand side, the origin is not feasible and the result may be wrong")
	}
	logger.Debug("model", "c", m.FormatC(), "A", m.FormatA(), "b", m.FormatB())

	c, A, b := m.Problem()
	res, err := simplex.Solve(c, A, b,
		simplex.WithMaxIterations(cfg.maxIter),
		simplex.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if !cfg.quiet || res.Status != simplex.Success {
		if err := render.Steps(stdout, res); err != nil {
			return err
		}
	}
	if res.Status == simplex.Success {
		//tableaus stay in max form, the optimum is reported in the model's sense
		if err := render.Solution(stdout, m.SourceValue(res.OptimalValue), res.Solution()); err != nil {
			return err
		}
	}

	if cfg.verify {
		if err := verify(logger, m, res); err != nil {
			return err
		}
	}
	return res.Err()
}

// verify compares the tableau result with GLPK's.
func verify(logger *slog.Logger, m *model.Model, res *simplex.Result) error {
	ref, err := instance.Reference(m)
	if err != nil {
		return err
	}

	switch {
	case ref.Unbounded != (res.Status == simplex.Unbounded):
		return fmt.Errorf("verify: glpk unbounded=%v, tableau status %v", ref.Unbounded, res.Status)
	case ref.Unbounded || res.Status != simplex.Success:
		logger.Info("verify", "status", res.Status)
		return nil
	case math.Abs(ref.Value-res.OptimalValue) > 1e-6*math.Max(1, math.Abs(ref.Value)):
		return fmt.Errorf("verify: glpk optimum %v, tableau optimum %v", ref.Value, res.OptimalValue)
	}

	x := res.Solution()
	feasible, err := m.Feasible(x, 1e-6)
	if err != nil {
		return err
	}
	if !feasible {
		return fmt.Errorf("verify: tableau solution %v is not feasible", x)
	}
	z, err := m.Objective(x)
	if err != nil {
		return err
	}
	if math.Abs(z-res.OptimalValue) > 1e-6*math.Max(1, math.Abs(z)) {
		return fmt.Errorf("verify: c·x = %v at %v, tableau optimum %v", z, x, res.OptimalValue)
	}
	logger.Info("verify", "status", res.Status, "value", ref.Value)
	return nil
}

// splitFields splits a comma separated row, keeping empty fields.
func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// slewgen generates 3D-printable cross-roller slew bearings.
//
// It derives a geometrically consistent roller diameter and pitch
// radius from a handful of envelope dimensions, validates the result
// against FDM manufacturability limits, and exports the assembly as a
// binary STL, one file per feasible design.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/engine"
	"github.com/printforge/slewgen/pkg/generate"
	"github.com/printforge/slewgen/pkg/kernel/sdfx"
)

var (
	logger *zap.Logger

	outDir  string
	verbose bool

	spec  bearing.Spec
	start int
	step  int
)

var rootCmd = &cobra.Command{
	Use:   "slewgen",
	Short: "Parametric cross-roller slew bearing generator for 3D printing",
	Long: `slewgen derives, validates and constructs the geometry of a
3D-printable cross-roller slew bearing from six high-level inputs,
exporting each feasible design as a binary STL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		return os.MkdirAll(outDir, 0o755)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single bearing from a complete spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := generate.Generate(spec, outDir, sdfx.New())
		if err != nil {
			return err
		}
		logger.Info("wrote bearing", zap.String("path", path))
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep roller counts over a fixed envelope until infeasible",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := generate.Envelope{
			OuterDiameter: spec.OuterDiameter,
			InnerDiameter: spec.InnerDiameter,
			Width:         spec.Width,
			RollerFit:     spec.RollerFit,
			RollerSlide:   spec.RollerSlide,
		}
		result, err := generate.Sweep(env, start, step, outDir, sdfx.New(), logger)
		if err != nil {
			return err
		}
		if len(result.Files) == 0 {
			return fmt.Errorf("no feasible roller count below %d: %v", result.StopCount, result.Terminal)
		}
		logger.Info("sweep finished",
			zap.Int("written", len(result.Files)),
			zap.Int("stop_count", result.StopCount))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run SCRIPT",
	Short: "Evaluate a Lisp script of bearing and sweep requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		script, evalErrs, err := engine.NewEngine().Evaluate(string(source))
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", args[0], err)
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				logger.Error("script error", zap.String("file", args[0]), zap.String("error", e.Error()))
			}
			return fmt.Errorf("%s: %d script error(s)", args[0], len(evalErrs))
		}

		k := sdfx.New()
		for i, req := range script.Requests {
			switch req.Kind {
			case engine.RequestBearing:
				path, err := generate.Generate(req.Spec, outDir, k)
				if err != nil {
					return fmt.Errorf("request %d: %w", i, err)
				}
				logger.Info("wrote bearing", zap.String("path", path))

			case engine.RequestSweep:
				result, err := generate.Sweep(req.Envelope, req.Start, req.Step, outDir, k, logger)
				if err != nil {
					return fmt.Errorf("request %d: %w", i, err)
				}
				logger.Info("sweep finished",
					zap.Int("written", len(result.Files)),
					zap.Int("stop_count", result.StopCount))
			}
		}
		return nil
	},
}

func specFlags(cmd *cobra.Command, withCount bool) {
	cmd.Flags().Float64Var(&spec.OuterDiameter, "outer-diameter", 0, "bearing outer diameter in mm")
	cmd.Flags().Float64Var(&spec.InnerDiameter, "inner-diameter", 0, "bearing bore diameter in mm")
	cmd.Flags().Float64Var(&spec.Width, "width", 0, "bearing width in mm")
	cmd.Flags().Float64Var(&spec.RollerFit, "roller-fit", 0, "clearance between races and rolling surfaces in mm")
	cmd.Flags().Float64Var(&spec.RollerSlide, "roller-slide", 0, "clearance between races and roller end faces in mm")
	_ = cmd.MarkFlagRequired("outer-diameter")
	_ = cmd.MarkFlagRequired("inner-diameter")
	_ = cmd.MarkFlagRequired("width")
	if withCount {
		cmd.Flags().IntVar(&spec.NumRollers, "num-rollers", 0, "number of rollers (even)")
		_ = cmd.MarkFlagRequired("num-rollers")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "models", "output directory for STL files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	specFlags(generateCmd, true)
	specFlags(sweepCmd, false)
	sweepCmd.Flags().IntVar(&start, "start", 2, "starting roller count")
	sweepCmd.Flags().IntVar(&step, "step", 2, "roller count increment")

	rootCmd.AddCommand(generateCmd, sweepCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

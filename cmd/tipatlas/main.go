package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tipatlas/internal/analysis"
	"github.com/san-kum/tipatlas/internal/config"
	"github.com/san-kum/tipatlas/internal/export"
	"github.com/san-kum/tipatlas/internal/storage"
	"github.com/san-kum/tipatlas/internal/tui"
	"github.com/san-kum/tipatlas/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	// Sweep parameters
	rMin       float64
	rMax       float64
	steps      int
	sweepSeed  float64
	iterations int
	keep       int

	// Signal parameters
	rFocus    float64
	sigSeed   float64
	length    int
	window    int
	noise     float64
	noiseSeed int64

	// Output
	saveRun    bool
	plotWidth  int
	plotHeight int
	outFile    string
	svgWidth   int
	svgHeight  int
	braille    bool
)

// Braille export raster: the terminal plot's default geometry at 6 px per
// sub-pixel, 1200x576 overall.
const (
	brailleCols  = 100
	brailleRows  = 24
	brailleScale = 6.0
)

// main registers commands and flags and launches the interactive dashboard
// when no subcommand is given. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "tipatlas",
		Short: "logistic map bifurcation and tipping-point atlas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, storage.New(dataDir))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tipatlas", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compute and render the bifurcation diagram",
		RunE:  runSweep,
	}
	addSweepFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&rFocus, "focus", -1, "marker position on the r axis")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	sweepCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width (chars)")
	sweepCmd.Flags().IntVar(&plotHeight, "height", 24, "plot height (chars)")

	signalCmd := &cobra.Command{
		Use:   "signal",
		Short: "compute the early-warning signal series",
		RunE:  runSignal,
	}
	addSignalFlags(signalCmd)
	signalCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [r]",
		Short: "characterize the dynamics at a growth rate",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRate,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width (chars)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 24, "plot height (chars)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a sweep run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 1200, "image width (px)")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 700, "image height (px)")
	exportSVGCmd.Flags().Float64Var(&rFocus, "focus", -1, "marker position on the r axis")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render via the terminal braille raster")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s r ∈ [%.2f, %.2f], focus %.2f\n", name, p.Sweep.RMin, p.Sweep.RMax, p.Signal.R)
			}
		},
	}

	rootCmd.AddCommand(sweepCmd, signalCmd, analyzeCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "lower bound of the r grid")
	cmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "upper bound of the r grid")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "grid resolution")
	cmd.Flags().Float64Var(&sweepSeed, "seed", config.DefaultSweepSeed, "initial state")
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iterations per grid value")
	cmd.Flags().IntVar(&keep, "keep", config.DefaultKeep, "settled states kept per grid value")
}

func addSignalFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rFocus, "r", config.DefaultFocus, "growth rate")
	cmd.Flags().Float64Var(&sigSeed, "seed", config.DefaultSignalSeed, "initial state")
	cmd.Flags().IntVar(&length, "length", config.DefaultLength, "trajectory length")
	cmd.Flags().IntVar(&window, "window", config.DefaultWindow, "sliding window size")
	cmd.Flags().Float64Var(&noise, "noise", config.DefaultNoise, "noise level (0 disables)")
	cmd.Flags().Int64Var(&noiseSeed, "noise-seed", 1, "noise generator seed")
}

// buildConfig resolves preset, config file, and flag overrides in that
// order, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flagOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, apply func()) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("r-min", func() { cfg.Sweep.RMin = rMin })
	set("r-max", func() { cfg.Sweep.RMax = rMax })
	set("steps", func() { cfg.Sweep.Steps = steps })
	set("iterations", func() { cfg.Sweep.Iterations = iterations })
	set("keep", func() { cfg.Sweep.Keep = keep })
	set("r", func() { cfg.Signal.R = rFocus })
	set("length", func() { cfg.Signal.Length = length })
	set("window", func() { cfg.Signal.Window = window })
	set("noise", func() { cfg.Signal.Noise = noise })
	set("noise-seed", func() { cfg.Signal.NoiseSeed = noiseSeed })
	set("seed", func() {
		if cmd.Name() == "sweep" {
			cfg.Sweep.Seed = sweepSeed
		} else {
			cfg.Signal.Seed = sigSeed
		}
	})
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sweepCfg := cfg.SweepConfig()

	start := time.Now()
	res := analysis.Sweep(sweepCfg)
	elapsed := time.Since(start)

	focus := rFocus
	if !cmd.Flags().Changed("focus") {
		focus = sweepCfg.RMin - 1 // outside the range, no marker
	}

	fmt.Println(viz.RenderBifurcation(res, sweepCfg, plotWidth, plotHeight, focus))
	fmt.Printf("%d points (%d grid values × %d settled states) in %v\n",
		res.Len(), sweepCfg.Steps, sweepCfg.Keep, elapsed)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep(sweepCfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runSignal(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sigCfg := cfg.SignalConfig()

	res := analysis.Signal(sigCfg)

	fmt.Printf("signal analysis @ r = %.4f (noise %.3f)\n\n", sigCfg.R, sigCfg.Noise)

	graph := asciigraph.Plot(res.Trajectory,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("trajectory"),
	)
	fmt.Println(graph)
	fmt.Println()

	if len(res.Autocorr) > 1 {
		graph = asciigraph.Plot(res.Autocorr,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("rolling lag-1 autocorrelation"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "autocorr (lag-1)\t%.4f\n", res.AutocorrLag1)
	fmt.Fprintf(w, "variance\t%.6f\n", res.TotalVariance)
	fmt.Fprintf(w, "lyapunov\t%.4f\n", analysis.Lyapunov(sigCfg.R, sigCfg.X0, 500, 2000))
	fmt.Fprintf(w, "regime\t%s\n", analysis.Classify(sigCfg.R, sigCfg.X0, 1000, 100))
	if err := w.Flush(); err != nil {
		return err
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSignal(sigCfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func analyzeRate(cmd *cobra.Command, args []string) error {
	r, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid growth rate %q: %w", args[0], err)
	}

	const (
		x0         = 0.5
		iterations = 2000
		keep       = 512
	)

	traj := analysis.SignalConfig{R: r, X0: x0, Length: iterations, Window: 50}.Trajectory()
	settled := traj[len(traj)-keep:]

	ps := analysis.PowerSpectrum(settled)
	plotData := ps
	if len(plotData) > 128 {
		plotData = plotData[:128]
	}

	fmt.Printf("analysis @ r = %.4f\n\n", r)
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if idx := analysis.DominantIndex(ps); idx > 0 {
		fmt.Fprintf(w, "dominant period\t%.1f steps\n", float64(len(ps)*2)/float64(idx))
	}
	fmt.Fprintf(w, "lyapunov\t%.4f\n", analysis.Lyapunov(r, x0, iterations-keep, keep))
	fmt.Fprintf(w, "regime\t%s\n", analysis.Classify(r, x0, iterations, keep))
	fmt.Fprintf(w, "distinct levels\t%d\n", len(analysis.Clusters(settled, analysis.ClusterTol)))
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSUMMARY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			runSummary(run),
		)
	}
	return w.Flush()
}

func runSummary(run storage.RunMetadata) string {
	switch run.Kind {
	case storage.KindSweep:
		return fmt.Sprintf("r ∈ [%.2f, %.2f], %d steps", run.Params["r_min"], run.Params["r_max"], int(run.Params["steps"]))
	case storage.KindSignal:
		return fmt.Sprintf("r = %.3f, T = %d, W = %d", run.Params["r"], int(run.Params["length"]), int(run.Params["window"]))
	}
	return ""
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nkind: %s\npoints: %d\n\n", meta.ID, meta.Kind, len(points))

	switch meta.Kind {
	case storage.KindSweep:
		res, sweepCfg := sweepFromRun(meta, points)
		fmt.Println(viz.RenderBifurcation(res, sweepCfg, plotWidth, plotHeight, sweepCfg.RMin-1))
	case storage.KindSignal:
		traj := column(points, 1)
		graph := asciigraph.Plot(traj,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("trajectory"),
		)
		fmt.Println(graph)
		fmt.Println()

		if ac := finiteValues(column(points, 2)); len(ac) > 1 {
			graph = asciigraph.Plot(ac,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption("rolling lag-1 autocorrelation"),
			)
			fmt.Println(graph)
		}
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}
	return nil
}

func sweepFromRun(meta *storage.RunMetadata, points [][]float64) (*analysis.SweepResult, analysis.SweepConfig) {
	res := &analysis.SweepResult{
		R: column(points, 0),
		X: column(points, 1),
	}
	cfg := analysis.SweepConfig{
		RMin:       meta.Params["r_min"],
		RMax:       meta.Params["r_max"],
		Steps:      int(meta.Params["steps"]),
		X0:         meta.Params["seed"],
		Iterations: int(meta.Params["iterations"]),
		Keep:       int(meta.Params["keep"]),
	}
	return res, cfg
}

func column(points [][]float64, idx int) []float64 {
	out := make([]float64, 0, len(points))
	for _, row := range points {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out
}

func finiteValues(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range points {
		rec := make([]string, len(row))
		for i, v := range row {
			if math.IsNaN(v) {
				continue // leave cell empty
			}
			rec[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	columns, points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, meta, columns, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.Kind != storage.KindSweep {
		return fmt.Errorf("export-svg requires a sweep run, got %s", meta.Kind)
	}
	_, points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	res, sweepCfg := sweepFromRun(meta, points)
	focus := rFocus
	if !cmd.Flags().Changed("focus") {
		focus = sweepCfg.RMin - 1
	}
	var svg string
	if braille {
		svg = export.BrailleBifurcationSVG(res, sweepCfg, brailleCols, brailleRows, focus, brailleScale)
	} else {
		svg = export.BifurcationSVG(res, sweepCfg, svgWidth, svgHeight, focus)
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

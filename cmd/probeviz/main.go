package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/probeviz/internal/anim"
	"github.com/san-kum/probeviz/internal/config"
	"github.com/san-kum/probeviz/internal/export"
	"github.com/san-kum/probeviz/internal/figure"
	"github.com/san-kum/probeviz/internal/iofig"
	"github.com/san-kum/probeviz/internal/logging"
	"github.com/san-kum/probeviz/internal/probe"
	"github.com/san-kum/probeviz/internal/storage"
	"github.com/san-kum/probeviz/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	dataDir    string
	showGraphs bool
	showAnim   bool
	showIO     bool
	legendPos  string
	trange     []float64
	seed       int64
	outDir     string
	format     string
	animGIF    string
	logFile    string
	theme      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "probeviz",
		Short:        "display recorded probe data",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding recordings")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append debug logs to this file")

	showCmd := &cobra.Command{
		Use:   "show [recording]",
		Short: "display a recording as graphs, animation or input/output figure",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecording,
	}
	showCmd.Flags().BoolVar(&showGraphs, "showgrph", false, "show graphs of the probe data")
	showCmd.Flags().BoolVar(&showAnim, "showanim", false, "show animation of the probe data")
	showCmd.Flags().BoolVar(&showIO, "showiofig", false, "write the input/output figure")
	showCmd.Flags().StringVar(&legendPos, "legend-pos", config.DefaultLegendPos, "legend position")
	showCmd.Flags().Float64SliceVar(&trange, "trange", nil, "time window MIN,MAX in seconds")
	showCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for spike neuron selection (default: time based)")
	showCmd.Flags().StringVar(&outDir, "out", "", "write figures to this directory instead of the terminal viewer")
	showCmd.Flags().StringVar(&format, "format", export.FormatPNG, "output format: png, svg or json")
	showCmd.Flags().StringVar(&animGIF, "anim-gif", "", "encode the animation to this GIF instead of playing it")
	showCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, fmt.Sprintf("terminal theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	layoutCmd := &cobra.Command{
		Use:   "layout [recording]",
		Short: "print the parsed graph layout of a recording's config",
		Args:  cobra.ExactArgs(1),
		RunE:  printLayout,
	}

	probesCmd := &cobra.Command{
		Use:   "probes [recording]",
		Short: "list the probes stored in a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  listProbes,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(showCmd, layoutCmd, probesCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// recordingPath resolves a recording name against the data directory.
func recordingPath(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}

// openRecording loads the companion config first, since it supplies the
// time step for recordings without a time axis.
func openRecording(name string) (*storage.Recording, *config.Config, error) {
	path := recordingPath(name)
	cfgPath := storage.ConfigPath(path)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	rec, err := storage.Open(path, storage.Options{Dt: cfg.Dt, PresentInterval: cfg.PresentInterval})
	if err != nil {
		return nil, nil, err
	}
	return rec, cfg, nil
}

func showRecording(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.Setup(logFile)
	if err != nil {
		return err
	}
	defer cleanup()

	if !(showGraphs || showAnim || showIO) {
		showGraphs = true
	}
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	viz.SetTheme(theme)

	rec, cfg, err := openRecording(args[0])
	if err != nil {
		return err
	}
	defer rec.Close()

	fmt.Printf("displaying probe data: %s\n", rec.Path)

	host := figure.NewHost()
	if showGraphs {
		if err := buildGraphs(host, rec, cfg); err != nil {
			return err
		}
	}

	if showIO {
		if err := writeIOFigure(rec, cfg); err != nil {
			return err
		}
	}

	if showAnim {
		if err := runAnimation(rec, cfg); err != nil {
			return err
		}
	}

	if !showGraphs {
		return nil
	}
	if outDir != "" {
		paths, err := export.SaveFigures(host.Figures(), outDir, format)
		if open := host.Open(); len(open) > 0 {
			host.Close(open[0])
		}
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
		return nil
	}
	return viz.Show(host, tea.WithAltScreen())
}

func buildGraphs(host *figure.Host, rec *storage.Recording, cfg *config.Config) error {
	settings, err := cfg.Settings(legendPos)
	if err != nil {
		return err
	}

	var tr *probe.TimeRange
	if len(trange) > 0 {
		if len(trange) != 2 || trange[0] > trange[1] {
			return fmt.Errorf("--trange wants MIN,MAX, got %v", trange)
		}
		tr = &probe.TimeRange{Min: trange[0], Max: trange[1]}
	}
	w, err := probe.NewWindow(rec.Trange(), tr)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(uint64(seed)))
	d := probe.NewDispatcher(rec, settings, w, rng)
	layouts := probe.ParseLayout(cfg.GraphList)
	figs, err := probe.Render(host, layouts, d)
	if err != nil {
		return err
	}
	fmt.Printf("rendered %d figures (seed %d)\n", len(figs), seed)
	return nil
}

func writeIOFigure(rec *storage.Recording, cfg *config.Config) error {
	g, err := iofig.Build(cfg.IO, rec)
	if err != nil {
		return err
	}
	plots, err := iofig.Plots(g, cfg.IO)
	if err != nil {
		return err
	}

	ext := format
	if ext == export.FormatJSON {
		ext = export.FormatPNG
	}
	dir := outDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "iofig."+ext)
	w, h := iofig.Size(g, cfg.IO)
	if err := export.SaveGrid(path, plots, w, h); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runAnimation(rec *storage.Recording, cfg *config.Config) error {
	a, err := anim.New(cfg.Animation, rec)
	if err != nil {
		return err
	}
	if animGIF != "" {
		if err := a.SaveGIF(animGIF); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", animGIF)
		return nil
	}
	return anim.Play(a, "animation.gif", tea.WithAltScreen())
}

func printLayout(cmd *cobra.Command, args []string) error {
	path := recordingPath(args[0])
	cfg, err := config.Load(storage.ConfigPath(path))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIGURE\tROW\tPROBE\tTYPE\tLEGEND\tLABEL")
	for n, l := range probe.ParseLayout(cfg.GraphList) {
		fmt.Fprintf(w, "%d\t-\t%s\t\t\t\n", n+1, l.Title())
		for r, raw := range l.Rows {
			row, err := probe.ParseRow(raw)
			if err != nil {
				return err
			}
			label := cfg.Labels[row.LabelKey()]
			if label == "" {
				label = fmt.Sprintf("%d,%d", n+1, r+1)
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%c\t%v\t%s\n", n+1, r+1, row.ProbeID, row.Options.TypeCode, row.Options.Legend, label)
		}
	}
	return w.Flush()
}

func listProbes(cmd *cobra.Command, args []string) error {
	rec, _, err := openRecording(args[0])
	if err != nil {
		return err
	}
	defer rec.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROBE\tSAMPLES\tCHANNELS")
	for _, id := range rec.ProbeIDs() {
		m, err := rec.Probe(id)
		if err != nil {
			return err
		}
		r, c := m.Dims()
		fmt.Fprintf(w, "%s\t%d\t%d\n", id, r, c)
	}
	return w.Flush()
}

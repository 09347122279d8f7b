package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/battsim/internal/config"
	"github.com/san-kum/battsim/internal/integrators"
	"github.com/san-kum/battsim/internal/report"
	"github.com/san-kum/battsim/internal/thermal"
	"github.com/san-kum/battsim/internal/viz"
)

const (
	svgWidth  = 900
	svgHeight = 540
)

type runOptions struct {
	cfg        *config.Config
	configFile string
	preset     string
	noPlot     bool
	quiet      bool
	summary    bool
	svgPath    string
	logLevel   string

	// swapped in tests
	interactive func(series thermal.Series, footer string) error
}

func newRunOptions() *runOptions {
	return &runOptions{
		cfg:         config.DefaultConfig(),
		interactive: viz.Run,
	}
}

type flagField struct {
	name  string
	apply func(dst, src *config.Config)
}

// flagFields lists each CLI flag with the config field it overrides.
var flagFields = []flagField{
	{"cells", func(d, s *config.Config) { d.Cell.Count = s.Cell.Count }},
	{"current", func(d, s *config.Config) { d.Cell.Current = s.Cell.Current }},
	{"resistance", func(d, s *config.Config) { d.Cell.Resistance = s.Cell.Resistance }},
	{"specific-heat", func(d, s *config.Config) { d.Cell.SpecificHeat = s.Cell.SpecificHeat }},
	{"mass", func(d, s *config.Config) { d.Cell.Mass = s.Cell.Mass }},
	{"area", func(d, s *config.Config) { d.Cell.Area = s.Cell.Area }},
	{"ambient", func(d, s *config.Config) { d.Environment.Ambient = s.Environment.Ambient }},
	{"emissivity", func(d, s *config.Config) { d.Environment.Emissivity = s.Environment.Emissivity }},
	{"sigma", func(d, s *config.Config) { d.Environment.StefanBoltzmann = s.Environment.StefanBoltzmann }},
	{"h-conv", func(d, s *config.Config) { d.Environment.ConvectionCoeff = s.Environment.ConvectionCoeff }},
	{"dt", func(d, s *config.Config) { d.Simulation.Dt = s.Simulation.Dt }},
	{"time", func(d, s *config.Config) { d.Simulation.Duration = s.Simulation.Duration }},
	{"integrator", func(d, s *config.Config) { d.Integrator = s.Integrator }},
}

// resolveConfig layers preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, o *runOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if o.preset != "" {
		p := config.GetPreset(o.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
		cfg = p
	}

	if o.configFile != "" {
		fileCfg, err := config.LoadInto(o.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	for _, f := range flagFields {
		if cmd.Flags().Changed(f.name) {
			f.apply(cfg, o.cfg)
		}
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, o *runOptions) error {
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}

	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return err
	}

	tc := cfg.Thermal()
	log.WithFields(log.Fields{
		"cells":      tc.NumCells,
		"current":    tc.Current,
		"ambient":    tc.Ambient,
		"dt":         tc.Dt,
		"duration":   tc.Duration,
		"integrator": integ.Name(),
	}).Info("starting thermal simulation")

	start := time.Now()
	res, err := thermal.RunWith(tc, integ)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"samples":     len(res.Series),
		"q_generated": res.Derived.QGenerated,
		"final":       res.Final,
		"elapsed":     time.Since(start),
	}).Info("simulation completed")

	out := cmd.OutOrStdout()
	line := report.FinalLine(tc.Duration, res.Final)
	fmt.Fprintln(out, line)

	if o.summary && !o.quiet {
		fmt.Fprint(out, report.Summary(tc, res))
	}

	if o.svgPath != "" {
		if err := writeSVG(o.svgPath, res.Series); err != nil {
			return err
		}
		log.WithField("path", o.svgPath).Info("wrote svg plot")
	}

	if o.quiet {
		return nil
	}
	if o.noPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.ASCIIPlot(res.Series, report.DefaultPlotOptions()))
		return nil
	}
	return o.interactive(res.Series, line)
}

func writeSVG(path string, series thermal.Series) error {
	svg := report.SVGPlot(series, svgWidth, svgHeight)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func listPresets(w io.Writer) error {
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		if _, err := fmt.Fprintf(w, "  %-12s cells=%d I=%.2fA T_amb=%.1f°C h=%.1f t=%.0fs\n",
			name, p.Cell.Count, p.Cell.Current, p.Environment.Ambient,
			p.Environment.ConvectionCoeff, p.Simulation.Duration); err != nil {
			return err
		}
	}
	return nil
}

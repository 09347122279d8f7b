package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/battsim/internal/config"
	"github.com/san-kum/battsim/internal/integrators"
)

// main is the entry point for the battsim CLI; with no subcommand it runs the
// default simulation.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("battsim failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(newRunOptions())
}

func newRootCmdWithOptions(opts *runOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "battsim",
		Short:         "lumped-mass battery pack thermal simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	bindRunFlags(rootCmd, opts)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the thermal simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}
	bindRunFlags(runCmd, opts)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd.OutOrStdout())
		},
	}

	integratorsCmd := &cobra.Command{
		Use:   "integrators",
		Short: "list available integrators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range integrators.List() {
				cmd.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, presetsCmd, integratorsCmd)
	return rootCmd
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}

func bindRunFlags(cmd *cobra.Command, o *runOptions) {
	d := config.DefaultConfig()
	f := cmd.Flags()

	f.IntVar(&o.cfg.Cell.Count, "cells", d.Cell.Count, "number of cells in the pack")
	f.Float64Var(&o.cfg.Cell.Current, "current", d.Cell.Current, "current (A)")
	f.Float64Var(&o.cfg.Cell.Resistance, "resistance", d.Cell.Resistance, "internal resistance per cell (ohm)")
	f.Float64Var(&o.cfg.Cell.SpecificHeat, "specific-heat", d.Cell.SpecificHeat, "specific heat capacity (J/(kg*C))")
	f.Float64Var(&o.cfg.Cell.Mass, "mass", d.Cell.Mass, "cell mass (kg)")
	f.Float64Var(&o.cfg.Cell.Area, "area", d.Cell.Area, "cell surface area (m^2)")
	f.Float64Var(&o.cfg.Environment.Ambient, "ambient", d.Environment.Ambient, "ambient temperature (C)")
	f.Float64Var(&o.cfg.Environment.Emissivity, "emissivity", d.Environment.Emissivity, "surface emissivity (0-1)")
	f.Float64Var(&o.cfg.Environment.StefanBoltzmann, "sigma", d.Environment.StefanBoltzmann, "Stefan-Boltzmann constant (W/(m^2*K^4))")
	f.Float64Var(&o.cfg.Environment.ConvectionCoeff, "h-conv", d.Environment.ConvectionCoeff, "convective coefficient (W/(m^2*C))")
	f.Float64Var(&o.cfg.Simulation.Dt, "dt", d.Simulation.Dt, "timestep (s)")
	f.Float64Var(&o.cfg.Simulation.Duration, "time", d.Simulation.Duration, "total duration (s)")
	f.StringVar(&o.cfg.Integrator, "integrator", d.Integrator, "integrator (euler, rk4)")

	f.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&o.preset, "preset", "", "use preset configuration")
	f.BoolVar(&o.noPlot, "no-plot", false, "print a static plot instead of the interactive viewer")
	f.BoolVar(&o.quiet, "quiet", false, "print only the final temperature")
	f.BoolVar(&o.summary, "summary", false, "print derived constants and heat balance")
	f.StringVar(&o.svgPath, "svg", "", "write the plot as SVG to this path")
}

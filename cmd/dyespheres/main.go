package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/lukaszgryglicki/dyespheres/internal/dyespheres"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	cpuProfile string

	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "dyespheres",
		Short:         "Render a shaded sphere icon for every color in a list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "Config file (yaml, json, toml)")
	f.StringVar(&cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	f.StringP("input", "i", dyespheres.InputJSON, "JSON color list")
	f.String("sqlite", "", "SQLite color database (replaces --input)")
	f.String("query", dyespheres.SQLiteQuery, "Query returning identifier and color columns")
	f.String("id-field", dyespheres.IDField, "JSON identifier key")
	f.String("color-field", dyespheres.ColorField, "JSON color key")
	f.StringP("out", "o", dyespheres.OutputDir, "Output directory")
	f.String("ext", dyespheres.OutputExt, "Output extension (.png, .tif, .tiff, .bmp)")
	f.IntSlice("sizes", nil, "Extra downscaled sizes, written as <id>@<n><ext>")
	f.IntP("workers", "w", 0, "Concurrent renders (0 = number of CPUs)")
	f.String("log-level", dyespheres.LogLevel, "Log level (trace, debug, info, warn, error)")

	bind(v, f, map[string]string{
		"input.json":        "input",
		"input.sqlite":      "sqlite",
		"input.query":       "query",
		"input.id_field":    "id-field",
		"input.color_field": "color-field",
		"output.dir":        "out",
		"output.ext":        "ext",
		"output.sizes":      "sizes",
		"workers":           "workers",
		"log_level":         "log-level",
	})
	return cmd
}

func bind(v *viper.Viper, f *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg, err := dyespheres.LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	logger := dyespheres.NewLogger("dyespheres", cfg.LogLevel, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := dyespheres.Run(ctx, cfg, dyespheres.Options{Logger: logger})
	if report != nil {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, okStyle.Render("Done! "+report.String()))
		if n := len(report.Skipped); n > 0 {
			fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("%d record(s) skipped", n)))
		}
	}
	return err
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

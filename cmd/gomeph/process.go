package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	meph "github.com/trimeph/gomeph"
	"github.com/trimeph/gomeph/internal/config"
	"github.com/trimeph/gomeph/mephplot"
	"github.com/trimeph/gomeph/parquet"
	"github.com/trimeph/gomeph/store"
)

var warnColor = color.New(color.FgYellow, color.Bold)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Compute the MSD and Mössbauer factor of each atom.",
	Long: `process computes the MSD and Mössbauer factor of each atom of the primitive cell.

With a single displacement file, the temperatures are those of the file. With one
displacement file per volume, plus volume-temperature (--vt) and energy-volume (--ev)
files, the displacements are fitted against the volume and evaluated along the
volume-temperature curve (quasi-harmonic approximation).`,
	Example: `  gomeph process --metadata phonopy.yaml --displacements thermal_displacements.yaml
  gomeph process --metadata phonopy.yaml --displacements 'td.yaml-*' --vt volume-temperature.dat --ev e-v.dat --plot`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runProcess(cmd.Context(), cfg, cmd.OutOrStdout(), log.New(cmd.ErrOrStderr(), "gomeph: ", log.LstdFlags))
	},
}

// expand replaces shell patterns (which may come quoted from a config file) with the files they match.
func expand(patterns []string) ([]string, error) {
	var ret []string
	for _, p := range patterns {
		m, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(m) == 0 {
			ret = append(ret, p)
			continue
		}
		ret = append(ret, m...)
	}
	return ret, nil
}

func runProcess(ctx context.Context, cfg *config.Config, out io.Writer, logger *log.Logger) error {
	in := cfg.Input()
	var err error
	for _, l := range []*[]string{&in.Metadata, &in.Displacements, &in.VolumeTemperature, &in.VolumeEnergy, &in.Experimental} {
		if *l, err = expand(*l); err != nil {
			return err
		}
	}
	R := meph.NewRunState(logger)
	if err := R.Process(in); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("can't create output directory: %w", err)
	}
	for i, at := range R.Atoms {
		if at.Er == 0 {
			warnColor.Fprintf(out, "Warning: no recoil energy for %s, its factors are meaningless\n", at.Label())
		}
		name := filepath.Join(cfg.Out, fmt.Sprintf("results_%s.txt", at.Label()))
		if err := meph.SaveResults(name, R.Temperatures(), R.MSD, R.Factors, i); err != nil {
			return err
		}
		logger.Printf("wrote %s", name)
	}
	if R.Removed > 0 {
		warnColor.Fprintf(out, "Warning: %d volumes below the first volume-temperature point were dropped\n", R.Removed)
	}
	if cfg.Plot {
		names, err := mephplot.SaveAll(R, cfg.Out, cfg.PlotFormat)
		if err != nil {
			return err
		}
		logger.Printf("wrote %d figures", len(names))
	}
	run, samples, err := store.NewRecord(R)
	if err != nil {
		return err
	}
	if cfg.Parquet != "" {
		rows, err := parquet.Rows(run.ID, R.Temperatures(), R.Atoms, R.MSD, R.Factors)
		if err != nil {
			return err
		}
		if err := parquet.WriteRows(rows, cfg.Parquet); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.Parquet)
	}
	if cfg.Store != string(store.NoneBackend) {
		db, err := store.Open(store.Backend(cfg.Store), cfg.DSN)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.SaveRun(ctx, run, samples); err != nil {
			return err
		}
		logger.Printf("archived run %s in %s", run.ID, db.Backend())
	}
	return printSummary(out, R, run.ID)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// printSummary prints one row per atom with the factor and z MSD at the lowest and highest temperatures.
func printSummary(out io.Writer, R *meph.RunState, runID string) error {
	fmt.Fprintf(out, "Run %s (%s, %d temperatures)\n", runID, R.Mode(), len(R.Temperatures()))
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Atom", "Mass", "Er (eV)", "T min", "T max", "f(T min)", "f(T max)", "MSD z(T max)"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	temps := R.Temperatures()
	var data [][]string
	for i, at := range R.Atoms {
		row := []string{at.Label(), fmtFloat(at.Mass), strconv.FormatFloat(at.Er, 'g', -1, 64)}
		if n := len(temps); n > 0 {
			f := R.Factors[i]
			_, _, z := R.MSD.Atom(i)
			row = append(row, fmtFloat(temps[0]), fmtFloat(temps[n-1]), fmtFloat(f[0]), fmtFloat(f[n-1]), fmtFloat(z[n-1]))
		} else {
			row = append(row, "-", "-", "-", "-", "-")
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func init() {
	f := processCmd.Flags()
	f.StringSlice("metadata", nil, "metadata files with the primitive cell (phonopy.yaml)")
	f.StringSlice("displacements", nil, "thermal displacement files, one per volume")
	f.StringSlice("vt", nil, "volume-temperature files (quasi-harmonic)")
	f.StringSlice("ev", nil, "energy-volume files (quasi-harmonic), only the first is used")
	f.StringSlice("experimental", nil, "experimental (temperature, f) files to plot with the results")
	f.String("workdir", config.DefaultWorkDir, "directory for the intermediate cleaned files")
	f.String("out", config.DefaultOutDir, "directory for the results and figures")
	f.String("strategy", config.DefaultStrategy, "single volume interpolation: bucket or linear")
	f.Bool("no-filter", false, "keep volumes smaller than the first volume-temperature one")
	f.Bool("plot", false, "write factor and MSD figures for each atom")
	f.String("plot-format", config.DefaultPlotFormat, "figure format: png, svg, pdf, eps, jpg or tif")
	f.String("parquet", "", "export the results to this Parquet file")
	f.String("store", config.DefaultStore, "archive the run in a database: none, sqlite, mysql or postgresql")
	f.String("dsn", "", "database connection string, or file for sqlite (default "+store.DefaultSQLitePath+")")
	f.String("color", config.DefaultColor, "colored output: yes, no or auto")
	_ = viper.BindPFlags(f)
}

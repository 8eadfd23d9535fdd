package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/kecap/internal/config"
	"github.com/nicobailon/kecap/internal/grid"
	"github.com/nicobailon/kecap/internal/trace"
	"github.com/nicobailon/kecap/internal/tui"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	traceOut   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "kecap",
	Short:         "Move a cursor through a large grid shown in a small, lazily loaded viewport",
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version

	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/kecap/config.yaml)")
	f.Int("preload", grid.DefaultPreload, "rows/cols materialized beyond the viewport")
	f.Int("item-rows", grid.DefaultItemRows, "grid rows")
	f.Int("item-cols", grid.DefaultItemCols, "grid columns")
	f.Int("viewport-rows", grid.DefaultViewportRows, "visible rows")
	f.Int("viewport-cols", grid.DefaultViewportCols, "visible columns")
	f.Int("gap", 0, "spacing between cells")
	f.String("strategy", "eager", "scroll strategy: eager or deferred")
	f.Int("cell-width", 12, "base cell width in terminal columns")
	f.Int("cell-height", 3, "base cell height in terminal lines")
	f.String("selected-class", "select", "selected cell style: select, focus or accent")
	f.String("debug-log", "", "write debug log to this file")

	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "also save the instructions as JSON to this file")

	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLog routes the standard logger to the debug file, or discards it so
// nothing is written over the alt screen.
func setupLog(cfg *config.Config) (func(), error) {
	if cfg.DebugLog == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.DebugLog, "kecap")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := tui.New(cfg)
	if err != nil {
		return err
	}
	return app.Run()
}

var traceCmd = &cobra.Command{
	Use:   "trace [script]",
	Short: "Replay a key script without a terminal and print the renderer instructions",
	Long: "Replay a key script without a terminal and print the renderer instructions.\n\n" +
		"A script is a list of words (up,down,left,right) or letters (U D L R),\n" +
		"for example: kecap trace RRRR or kecap trace \"down, down, right\".",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := cfg.GridOptions()
		if err != nil {
			return err
		}
		script := ""
		if len(args) == 1 {
			script = args[0]
		}
		dirs, err := trace.ParseScript(script)
		if err != nil {
			return err
		}

		labels := make([]string, opts.ItemRows*opts.ItemCols)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d,%d", i/opts.ItemCols, i%opts.ItemCols)
		}
		m, err := grid.New(opts, labels)
		if err != nil {
			return err
		}
		rec := trace.NewRecorder[string](trace.UniformExtent(cfg.CellWidth, cfg.CellHeight, opts.Gap))
		if err := m.Attach(rec, nil); err != nil {
			return err
		}
		defer m.Detach()

		if err := trace.Replay(m, rec, dirs); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := rec.WriteText(out); err != nil {
			return err
		}
		cur, view, win := m.Cursor(), m.ViewOrigin(), m.Window()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "cursor %d,%d  view %d,%d  window r%d-%d c%d-%d  materialized %d\n",
			cur.Row, cur.Col, view.Row, view.Col, win.Row0, win.Row1-1, win.Col0, win.Col1-1, len(m.Materialized()))

		if traceOut != "" {
			if err := rec.Save(traceOut); err != nil {
				return err
			}
			fmt.Fprintf(out, "saved %d instructions to %s\n", rec.Len(), traceOut)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		file := cfg.File
		if file == "" {
			file = "(none)"
		}
		rows := [][2]string{
			{"file", file},
			{"preload", fmt.Sprint(cfg.Preload)},
			{"item_rows", fmt.Sprint(cfg.ItemRows)},
			{"item_cols", fmt.Sprint(cfg.ItemCols)},
			{"viewport_rows", fmt.Sprint(cfg.ViewportRows)},
			{"viewport_cols", fmt.Sprint(cfg.ViewportCols)},
			{"gap", fmt.Sprint(cfg.Gap)},
			{"strategy", strings.ToLower(cfg.Strategy)},
			{"cell_width", fmt.Sprint(cfg.CellWidth)},
			{"cell_height", fmt.Sprint(cfg.CellHeight)},
			{"selected_class", cfg.SelectedClass},
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%-14s %s\n", r[0], r[1])
		}
		return nil
	},
}

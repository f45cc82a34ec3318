package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tv-gallery/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the resolved command-line options for one run.
type options struct {
	seed       int64
	configPath string
	windowed   bool
	exportPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Walk a first-person gallery of vintage televisions",
		Long: `gallery builds a 3D room, scatters looping televisions across its four
walls without overlap, and lets you walk it in first person.

Click to capture the mouse and look around; WASD or arrows move, E/space
and Q/shift go up and down, ESC releases the mouse. The same --seed always
hangs the same gallery.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(logger, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "layout seed (0 = time-based)")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath, "gallery config file (TOML)")
	cmd.Flags().BoolVar(&opts.windowed, "windowed", false, "run in a window instead of fullscreen")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "write the layout as glTF to this path and exit")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

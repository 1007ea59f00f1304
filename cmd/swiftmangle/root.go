package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/swiftmangle/internal/debug"
)

var (
	outputFile string
	output     io.Writer
	format     string
	asType     bool
	colorMode  string
	verbose    bool

	theLog *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "swiftmangle",
	Short: "Swift symbol decoder and encoder",
	Long: `swiftmangle decodes mangled Swift symbols into node trees and
encodes node trees back into canonical mangled symbols.

Symbols are taken from the command line, or from standard input one per
line when no symbol is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		theLog = debug.NewLogger(os.Stderr, level)
		if verbose {
			debug.SetLogger(theLog)
		}
		return setupColor()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	flags.StringVarP(&format, "format", "f", "text", "tree format (text, json, yaml)")
	flags.BoolVarP(&asType, "type", "t", false, "treat input as a bare type mangling")
	flags.StringVar(&colorMode, "color", "auto", "colorize output (auto, always, never)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log decoder and encoder traces")

	rootCmd.AddCommand(demangleCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(remangleCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(batchCmd)
}

func setupColor() error {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		f, ok := output.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	default:
		return fmt.Errorf("unknown color mode: %s", colorMode)
	}
	return nil
}

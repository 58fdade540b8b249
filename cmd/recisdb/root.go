package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"hermannm.dev/devlog"
)

var logLevel slog.LevelVar

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "recisdb",
	Short: "Descramble an ARIB-scrambled transport stream, or read one straight from a tuner",
	Long: `recisdb authenticates ARIB STD-B25 ECM/EMM sections against a
software B-CAS card emulation and descrambles an MPEG-2 transport stream
accordingly, either from a file/stdin or directly from a DVB/ISDB tuner
character device.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "print debug-level log output")
	rootCmd.PersistentFlags().String("config", "", "pathname of an optional configuration file")
}

func setupLogging(debug bool) {
	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{
		Level: &logLevel,
	})))
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kazuki0824/recisdb-rs/casemu"
	"github.com/kazuki0824/recisdb-rs/engine/enginetest"
	"github.com/kazuki0824/recisdb-rs/internal/config"
	"github.com/kazuki0824/recisdb-rs/streamadapter"
)

var decodeCmd = &cobra.Command{
	Use:   "decode source",
	Short: "Descramble an already-captured transport stream file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().String("output", "-", "output path, or - for stdout")
	decodeCmd.Flags().String("key0", "", "even working key, hex")
	decodeCmd.Flags().String("key1", "", "odd working key, hex")
	decodeCmd.Flags().Bool("no-simd", false, "disable the engine's SIMD decode path")
	decodeCmd.Flags().Bool("no-strip", false, "do not strip null TS packets")
	decodeCmd.Flags().String("card", "", "reserved for selecting among multiple software card profiles")
	decodeCmd.Flags().Bool("exit-on-card-error", true, "abort the run on the first fatal decoder error instead of switching to pass-through")
}

func runDecode(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	setupLogging(debug)

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	fileSettings, err := config.LoadFile(viper.GetString("config"))
	if err != nil {
		return err
	}
	raw := viper.AllSettings()
	for k, v := range fileSettings {
		if _, bound := raw[k]; !bound {
			raw[k] = v
		}
	}
	raw["source"] = source

	cfg, err := config.LoadDecode(raw)
	if err != nil {
		return err
	}

	src, closeSrc, err := openSource(cfg.Source)
	if err != nil {
		return err
	}
	defer closeSrc()

	sink, closeSink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}
	defer closeSink()

	registry, err := registryFromFlags(cfg.Key0, cfg.Key1)
	if err != nil {
		return err
	}

	result, err := runAdapter(src, sink, registry, cfg)
	if err != nil {
		return err
	}
	slog.Info("decode finished", "received", result.Received, "emitted", result.Emitted)
	return nil
}

// runAdapter wires a fresh session and adapter around an already-open
// source/sink pair and runs it to completion, honoring SIGINT/SIGTERM as
// a cooperative abort signal.
func runAdapter(src io.Reader, sink io.Writer, registry *casemu.KeyRegistry, cfg config.Decode) (streamadapter.Result, error) {
	eng := enginetest.New()
	session := casemu.NewSession(eng, registry, casemu.DecoderOptions{
		EnableWorkingKey: true,
		RoundCount:       4,
		StripNulls:       !cfg.NoStrip,
		EmmProc:          false,
		Simd:             !cfg.NoSimd,
	})
	defer session.Close()

	var abort atomic.Bool
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	go func() {
		if _, ok := <-stop; ok {
			abort.Store(true)
		}
	}()

	adapter := &streamadapter.Adapter{
		Source:          src,
		Sink:            sink,
		Decoder:         session,
		Abort:           &abort,
		ContinueOnError: !cfg.ExitOnCardError,
	}
	if cfg.Time > 0 {
		adapter.Deadline = time.Now().Add(cfg.Time)
	}
	return adapter.Run()
}

func openSource(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening source %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openSink(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

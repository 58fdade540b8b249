package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kazuki0824/recisdb-rs/channels"
	"github.com/kazuki0824/recisdb-rs/internal/config"
	"github.com/kazuki0824/recisdb-rs/tuner"
)

var tuneCmd = &cobra.Command{
	Use:   "tune device channel",
	Short: "Tune a channel on a DVB/ISDB device and descramble its stream",
	Args:  cobra.ExactArgs(2),
	RunE:  runTune,
}

func init() {
	rootCmd.AddCommand(tuneCmd)

	tuneCmd.Flags().String("output", "-", "output path, or - for stdout")
	tuneCmd.Flags().String("key0", "", "even working key, hex")
	tuneCmd.Flags().String("key1", "", "odd working key, hex")
	tuneCmd.Flags().Duration("time", 0, "stop after this long (0 means run until EOF or signal)")
	tuneCmd.Flags().Uint16("tsid", 0, "transport stream ID to select, if the device requires one")
	tuneCmd.Flags().Bool("no-decode", false, "pass the raw tuned stream straight through, unmodified")
	tuneCmd.Flags().Bool("no-simd", false, "disable the engine's SIMD decode path")
	tuneCmd.Flags().Bool("no-strip", false, "do not strip null TS packets")
	tuneCmd.Flags().String("card", "", "reserved for selecting among multiple software card profiles")
	tuneCmd.Flags().Bool("lnb", false, "enable LNB power for the duration of the run")
	tuneCmd.Flags().Bool("exit-on-card-error", true, "abort the run on the first fatal decoder error instead of switching to pass-through")
}

func runTune(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	setupLogging(debug)

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	devicePath, channelArg := args[0], args[1]
	ch, err := channels.Parse(channelArg)
	if err != nil {
		return fmt.Errorf("parsing channel %q: %w", channelArg, err)
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
	raw["device"] = devicePath
	raw["channel"] = channelArg

	cfg, err := config.LoadDecode(raw)
	if err != nil {
		return err
	}

	dev, err := tuner.Open(tuner.Options{
		Path:             devicePath,
		EnableLNBPower:   cfg.LNB,
		DrainerChunkSize: 0,
		DrainerQueue:     0,
	})
	if err != nil {
		return err
	}
	defer dev.Close()

	slog.Info("tuned", "device", devicePath, "channel", ch.Raw, "kind", ch.Kind, "number", ch.Number)

	if !dev.WaitForSignal(3 * time.Second) {
		slog.Warn("no data observed from tuner within timeout, continuing anyway")
	}

	sink, closeSink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}
	defer closeSink()

	registry, err := registryFromFlags(cfg.Key0, cfg.Key1)
	if err != nil {
		return err
	}

	if cfg.NoDecode {
		result, err := copyWithDeadline(dev.Source(), sink, cfg.Time)
		if err != nil {
			return err
		}
		slog.Info("tune finished (no-decode)", "bytes", result)
		return nil
	}

	result, err := runAdapter(dev.Source(), sink, registry, cfg)
	if err != nil {
		return err
	}
	slog.Info("tune finished", "received", result.Received, "emitted", result.Emitted)
	return nil
}

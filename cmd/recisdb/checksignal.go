package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kazuki0824/recisdb-rs/channels"
	"github.com/kazuki0824/recisdb-rs/tuner"
)

var checksignalCmd = &cobra.Command{
	Use:   "checksignal device channel",
	Short: "Tune a channel and report whether the device is producing a signal",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecksignal,
}

func init() {
	rootCmd.AddCommand(checksignalCmd)
	checksignalCmd.Flags().Bool("lnb", false, "enable LNB power while probing")
}

func runChecksignal(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	setupLogging(debug)

	lnb, _ := cmd.Flags().GetBool("lnb")
	devicePath, channelArg := args[0], args[1]

	ch, err := channels.Parse(channelArg)
	if err != nil {
		return fmt.Errorf("parsing channel %q: %w", channelArg, err)
	}

	dev, err := tuner.Open(tuner.Options{Path: devicePath, EnableLNBPower: lnb})
	if err != nil {
		return err
	}
	defer dev.Close()

	if dev.WaitForSignal(3 * time.Second) {
		fmt.Printf("signal present on %s channel %s\n", devicePath, ch.Raw)
		return nil
	}
	return fmt.Errorf("no signal observed on %s channel %s within timeout", devicePath, ch.Raw)
}

// Package cmd contains the cobra subcommands for one-shot camera control.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
	"github.com/allanhanan/duvc-ctl-sub002/internal/logging"
)

// initCLILogging sets up text logging for one-shot commands. Warnings
// only by default so command output stays clean.
func initCLILogging(verbose bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logging.Initialize(logging.Config{
		Level:  level,
		Format: "text",
	})
}

// resolveDeviceArg resolves a device index argument against the current
// enumeration.
func resolveDeviceArg(arg string) (duvc.Device, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return duvc.Device{}, fmt.Errorf("invalid device index %q (run 'list' to see indices)", arg)
	}

	devices, err := duvc.ListDevices()
	if err != nil {
		return duvc.Device{}, err
	}
	if index < 0 || index >= len(devices) {
		return duvc.Device{}, fmt.Errorf("device index %d out of range (%d device(s) present)", index, len(devices))
	}
	return devices[index], nil
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// CreateListCmd creates the list command.
func CreateListCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected cameras",
		Long:  `Enumerates UVC cameras currently visible to the system and prints their index, name, path, and API device ID.`,
		Run: func(_ *cobra.Command, _ []string) {
			initCLILogging(verbose)

			devices, err := duvc.ListDevices()
			if err != nil {
				exitErr(err)
			}
			if len(devices) == 0 {
				fmt.Println("No cameras found")
				return
			}

			fmt.Printf("Found %d camera(s):\n", len(devices))
			for i, dev := range devices {
				fmt.Printf("[%d] %s\n", i, dev.Name)
				if dev.Path != "" {
					fmt.Printf("    Path: %s\n", dev.Path)
				}
				fmt.Printf("    ID:   %s\n", duvc.EncodeDeviceID(dev.ID()))
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// CreateStatusCmd creates the status command.
func CreateStatusCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "status <device>",
		Short: "Check whether a camera is connected",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}

			connected, err := duvc.IsDeviceConnected(dev)
			if err != nil {
				exitErr(err)
			}

			fmt.Printf("Device:    %s\n", dev.Name)
			fmt.Printf("Connected: %v\n", connected)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// CreateMonitorCmd creates the monitor command.
func CreateMonitorCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "monitor [seconds]",
		Short: "Watch for camera connect and disconnect events",
		Long:  `Prints a line for every camera arrival or removal. Runs for the given number of seconds, or until interrupted when no duration is given.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			var duration time.Duration
			if len(args) == 1 {
				seconds, err := strconv.Atoi(args[0])
				if err != nil || seconds < 0 {
					exitErr(fmt.Errorf("invalid duration %q, expected seconds", args[0]))
				}
				duration = time.Duration(seconds) * time.Second
			}

			err := duvc.RegisterDeviceChangeCallback(func(added bool, devicePath string) {
				action := "removed"
				if added {
					action = "added"
				}
				fmt.Printf("[%s] %-7s %s\n", time.Now().Format("15:04:05"), action, devicePath)
			})
			if err != nil {
				exitErr(err)
			}
			defer duvc.UnregisterDeviceChangeCallback()

			if duration > 0 {
				fmt.Printf("Monitoring for %s (Ctrl-C to stop early)...\n", duration)
			} else {
				fmt.Println("Monitoring (Ctrl-C to stop)...")
			}

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

			if duration > 0 {
				select {
				case <-time.After(duration):
				case <-interrupt:
				}
			} else {
				<-interrupt
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

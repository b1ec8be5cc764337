package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
)

// parsePropertyArgs resolves the domain keyword (cam or vid) and the
// property name, matched case-insensitively.
func parsePropertyArgs(domain, name string) (duvc.Property, error) {
	switch strings.ToLower(domain) {
	case "cam":
		prop, err := duvc.ParseCamProp(name)
		if err != nil {
			return nil, err
		}
		return prop, nil
	case "vid":
		prop, err := duvc.ParseVidProp(name)
		if err != nil {
			return nil, err
		}
		return prop, nil
	default:
		return nil, fmt.Errorf("unknown domain %q (use cam or vid)", domain)
	}
}

func parseValueArg(arg string) (int32, error) {
	value, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q, expected a 32-bit integer", arg)
	}
	return int32(value), nil
}

// CreateGetCmd creates the get command.
func CreateGetCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "get <device> <cam|vid> <property>",
		Short: "Read a camera property",
		Long:  `Reads the current value and control mode of one property. Property names are matched case-insensitively (e.g. zoom, WhiteBalance).`,
		Args:  cobra.ExactArgs(3),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}
			prop, err := parsePropertyArgs(args[1], args[2])
			if err != nil {
				exitErr(err)
			}

			setting, err := duvc.Get(dev, prop)
			if err != nil {
				exitErr(err)
			}

			fmt.Printf("%s = %d (%s)\n", prop, setting.Value, setting.Mode)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// CreateSetCmd creates the set command.
func CreateSetCmd() *cobra.Command {
	var verbose bool
	var clamp bool

	cmd := &cobra.Command{
		Use:   "set <device> <cam|vid> <property> <value> [auto|manual]",
		Short: "Write a camera property",
		Long:  `Writes a property value. The control mode defaults to manual; pass auto as the final argument to hand control back to the device.`,
		Args:  cobra.RangeArgs(4, 5),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}
			prop, err := parsePropertyArgs(args[1], args[2])
			if err != nil {
				exitErr(err)
			}
			value, err := parseValueArg(args[3])
			if err != nil {
				exitErr(err)
			}

			mode := duvc.CamModeManual
			if len(args) == 5 {
				mode, err = duvc.ParseCamMode(args[4])
				if err != nil {
					exitErr(err)
				}
			}

			if clamp {
				r, rangeErr := duvc.GetRange(dev, prop)
				if rangeErr != nil {
					exitErr(rangeErr)
				}
				value = r.Clamp(value)
			}

			if err := duvc.Set(dev, prop, duvc.PropSetting{Value: value, Mode: mode}); err != nil {
				exitErr(err)
			}

			fmt.Printf("%s set to %d (%s)\n", prop, value, mode)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&clamp, "clamp", false, "Clamp the value into the device's supported range before writing")
	return cmd
}

// CreateRangeCmd creates the range command.
func CreateRangeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "range <device> <cam|vid> <property>",
		Short: "Show the supported range of a camera property",
		Args:  cobra.ExactArgs(3),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}
			prop, err := parsePropertyArgs(args[1], args[2])
			if err != nil {
				exitErr(err)
			}

			r, err := duvc.GetRange(dev, prop)
			if err != nil {
				exitErr(err)
			}

			fmt.Printf("%s:\n", prop)
			fmt.Printf("  Min:     %d\n", r.Min)
			fmt.Printf("  Max:     %d\n", r.Max)
			fmt.Printf("  Step:    %d\n", r.Step)
			fmt.Printf("  Default: %d (%s)\n", r.Default, r.DefaultMode)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// CreateCapabilitiesCmd creates the capabilities command.
func CreateCapabilitiesCmd() *cobra.Command {
	var verbose bool
	var showAll bool

	cmd := &cobra.Command{
		Use:   "capabilities <device>",
		Short: "Show everything a camera supports",
		Long:  `Probes every property of both families and prints the supported ones with their current value, range, and default. Pass --all to include unsupported properties.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}

			caps, err := duvc.GetDeviceCapabilities(dev)
			if err != nil {
				exitErr(err)
			}

			fmt.Printf("Device: %s\n", dev.Name)

			fmt.Println("\nCamera control:")
			for _, prop := range duvc.CamProps() {
				cap, _ := caps.Camera(prop)
				printCapability(prop.String(), cap, showAll)
			}

			fmt.Println("\nVideo processing:")
			for _, prop := range duvc.VidProps() {
				cap, _ := caps.Video(prop)
				printCapability(prop.String(), cap, showAll)
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&showAll, "all", false, "Include unsupported properties")
	return cmd
}

func printCapability(name string, cap duvc.PropertyCapability, showAll bool) {
	if !cap.Supported {
		if showAll {
			fmt.Printf("  %-24s (not supported)\n", name)
		}
		return
	}

	auto := ""
	if cap.SupportsAuto() {
		auto = ", auto"
	}
	fmt.Printf("  %-24s %6d (%s)  [%d..%d step %d, default %d%s]\n",
		name, cap.Current.Value, cap.Current.Mode,
		cap.Range.Min, cap.Range.Max, cap.Range.Step, cap.Range.Default, auto)
}

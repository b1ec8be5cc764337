package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
)

// CreateVendorCmd creates the vendor command.
func CreateVendorCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "vendor <device> <guid> <property-id> [query|get|set <hex>]",
		Short: "Access vendor-specific camera properties",
		Long: `Talks to a vendor property set identified by GUID. The default operation is query, ` +
			`which reports whether the property can be read or written. Payloads for set are raw bytes in hex.`,
		Args: cobra.RangeArgs(3, 5),
		Run: func(_ *cobra.Command, args []string) {
			initCLILogging(verbose)

			dev, err := resolveDeviceArg(args[0])
			if err != nil {
				exitErr(err)
			}
			guid, err := duvc.ParseGUID(args[1])
			if err != nil {
				exitErr(err)
			}
			id, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				exitErr(fmt.Errorf("invalid property ID %q", args[2]))
			}

			op := "query"
			if len(args) >= 4 {
				op = strings.ToLower(args[3])
			}

			accessor, err := duvc.OpenVendorAccessor(dev)
			if err != nil {
				exitErr(err)
			}
			defer accessor.Close()

			switch op {
			case "query":
				support, err := accessor.QuerySupport(guid, uint32(id))
				if err != nil {
					exitErr(err)
				}
				fmt.Printf("Property %d in %s:\n", id, guid)
				fmt.Printf("  Readable: %v\n", support.CanGet())
				fmt.Printf("  Writable: %v\n", support.CanSet())

			case "get":
				data, err := accessor.GetProperty(guid, uint32(id))
				if err != nil {
					exitErr(err)
				}
				fmt.Printf("%d byte(s): %s\n", len(data), hex.EncodeToString(data))

			case "set":
				if len(args) < 5 {
					exitErr(fmt.Errorf("set requires a hex payload argument"))
				}
				data, err := hex.DecodeString(args[4])
				if err != nil {
					exitErr(fmt.Errorf("payload is not valid hex: %w", err))
				}
				if err := accessor.SetProperty(guid, uint32(id), data); err != nil {
					exitErr(err)
				}
				fmt.Printf("Wrote %d byte(s)\n", len(data))

			default:
				exitErr(fmt.Errorf("unknown operation %q (use query, get, or set)", op))
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

package scan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/0w0mewo/firetv-cli/internal/firetv"
	"github.com/0w0mewo/firetv-cli/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	timeout int64
	asJSON  bool
)

var foundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan local network for Fire TV devices",
	Long:  "Scan local network for Fire TV devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !asJSON {
			slog.Info("Start Scanning")
		}

		var onFound func(models.Device)
		if !asJSON {
			onFound = func(dev models.Device) {
				fmt.Fprintln(os.Stdout, foundStyle.Render("Found: ")+dev.String())
			}
		}

		devices, err := firetv.Discover(time.Second*time.Duration(timeout), onFound)
		if err != nil {
			slog.Error("Fail to scan", "error", err)
			return nil
		}

		if asJSON {
			return json.NewEncoder(os.Stdout).Encode(devices)
		}

		if len(devices) == 0 {
			fmt.Fprintln(os.Stderr, "No device found")
			return nil
		}

		fmt.Fprintf(os.Stdout, "Found Devices: \n")
		for _, dev := range devices {
			fmt.Fprintf(os.Stdout, "\tName: %s, Address: %s\n", dev.Name, dev.Addr())
		}

		return nil
	},
}

func init() {
	Cmd.PersistentFlags().Int64VarP(&timeout, "timeout", "t", 5, "scan duration in seconds")
	Cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print discovered devices as JSON")
}

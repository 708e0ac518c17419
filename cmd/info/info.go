package info

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	device    string
	storePath string
	timeout   int64
	showCaps  bool
	showKbd   bool
)

var headStyle = lipgloss.NewStyle().Bold(true)

var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Show device status and properties",
	Long:  "Show device status and properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cli.ResolveSession(storePath, device)
		if err != nil {
			return err
		}
		sess.SetTimeout(time.Second * time.Duration(timeout))

		status, err := sess.Status()
		if err != nil {
			slog.Error("Fail to query status", "error", err)
			return nil
		}
		printSection("Status", status)

		props, err := sess.Properties()
		if err != nil {
			slog.Error("Fail to query properties", "error", err)
			return nil
		}

		fmt.Fprintln(os.Stdout, headStyle.Render("Properties"))
		fmt.Fprintf(os.Stdout, "\tOS Version: %s\n", props.OSVersion)
		fmt.Fprintf(os.Stdout, "\tPlatform: %s\n", props.PlatformType)
		fmt.Fprintf(os.Stdout, "\tPFM: %s\n", props.PFM)
		fmt.Fprintf(os.Stdout, "\tPower Support: %s\n", props.PowerSupport)
		fmt.Fprintf(os.Stdout, "\tVolume Support: %s\n", props.VolumeSupport)
		fmt.Fprintf(os.Stdout, "\tEPG Support: %s\n", props.EPGSupport)

		if showCaps {
			caps, err := sess.Capabilities()
			if err != nil {
				slog.Error("Fail to query capabilities", "error", err)
				return nil
			}
			printSection("Capabilities", caps)
		}

		if showKbd {
			kbd, err := sess.KeyboardState()
			if err != nil {
				slog.Error("Fail to query keyboard state", "error", err)
				return nil
			}
			printSection("Keyboard", kbd)
		}

		return nil
	},
}

func printSection(title string, fields map[string]any) {
	fmt.Fprintln(os.Stdout, headStyle.Render(title))
	b, err := json.MarshalIndent(fields, "\t", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stdout, "\t%s\n", b)
}

func init() {
	Cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "paired device name or IP")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
	Cmd.PersistentFlags().Int64VarP(&timeout, "timeout", "t", 5, "per request timeout in seconds")
	Cmd.PersistentFlags().BoolVar(&showCaps, "capabilities", false, "also query capability flags")
	Cmd.PersistentFlags().BoolVar(&showKbd, "keyboard", false, "also query keyboard state")
}

package apps

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/0w0mewo/firetv-cli/internal/firetv"
	"github.com/spf13/cobra"
)

var (
	device    string
	storePath string
	launch    string
	installed bool
)

var Cmd = &cobra.Command{
	Use:   "apps",
	Short: "List apps on the device, or launch one via DIAL",
	Long:  "List apps on the device, or launch one via DIAL",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cli.ResolveSession(storePath, device)
		if err != nil {
			return err
		}

		if launch != "" {
			ok, err := sess.LaunchApp(launch)
			if err != nil {
				slog.Error("Fail to reach DIAL endpoint", "error", err)
				return nil
			}
			if !ok {
				slog.Error("Device did not launch the app", "app", launch)
				return nil
			}
			slog.Info("Launched", "app", launch)
			return nil
		}

		list, err := sess.Apps()
		if err != nil {
			slog.Error("Fail to list apps", "error", err)
			return nil
		}

		for _, app := range list {
			if installed && !app.IsInstalled {
				continue
			}
			marker := " "
			if app.IsInstalled {
				marker = "*"
			}
			fmt.Fprintf(os.Stdout, "%s %s (%s)\n", marker, app.Name, app.AppID)
		}

		return nil
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "paired device name or IP")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
	Cmd.PersistentFlags().StringVarP(&launch, "launch", "l", "", "DIAL app name to launch instead of listing")
	Cmd.PersistentFlags().BoolVar(&installed, "installed", false, "only list installed apps")

	// bare --launch starts the companion remote app
	Cmd.PersistentFlags().Lookup("launch").NoOptDefVal = firetv.DefaultDialApp
}

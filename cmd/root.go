package cmd

import (
	"log/slog"
	"os"

	"github.com/0w0mewo/firetv-cli/cmd/apps"
	"github.com/0w0mewo/firetv-cli/cmd/info"
	"github.com/0w0mewo/firetv-cli/cmd/media"
	"github.com/0w0mewo/firetv-cli/cmd/pair"
	"github.com/0w0mewo/firetv-cli/cmd/remote"
	"github.com/0w0mewo/firetv-cli/cmd/scan"
	"github.com/0w0mewo/firetv-cli/cmd/text"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "firetv",
	Short: "Fire TV remote control CLI",
	Long:  "Fire TV remote control CLI",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("Fail to execute", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(scan.Cmd)
	rootCmd.AddCommand(pair.Cmd)
	rootCmd.AddCommand(remote.Cmd)
	rootCmd.AddCommand(apps.Cmd)
	rootCmd.AddCommand(info.Cmd)
	rootCmd.AddCommand(text.Cmd)
	rootCmd.AddCommand(media.Cmd)
}

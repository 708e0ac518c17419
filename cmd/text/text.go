package text

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/spf13/cobra"
)

var (
	device    string
	storePath string
)

var Cmd = &cobra.Command{
	Use:   "text [words]...",
	Short: "Type text into the focused input field on the device",
	Long:  "Type text into the focused input field on the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Text is required")
		}

		sess, err := cli.ResolveSession(storePath, device)
		if err != nil {
			return err
		}

		ok, err := sess.SendText(strings.Join(args, " "))
		if err != nil {
			slog.Error("Fail to send text", "error", err)
			return nil
		}
		if !ok {
			// characters already delivered stay on screen
			slog.Error("Device refused part of the text")
			return nil
		}

		slog.Info("Sent")
		return nil
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "paired device name or IP")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
}

package media

import (
	"errors"
	"log/slog"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	"github.com/spf13/cobra"
)

var (
	device    string
	storePath string
	seconds   int
	speed     int
)

var Cmd = &cobra.Command{
	Use:       "media [play|ff|rw]",
	Short:     "Media transport: play/pause and seeking",
	Long:      "Media transport: play/pause and seeking",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"play", "ff", "rw"},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cli.ResolveSession(storePath, device)
		if err != nil {
			return err
		}

		var ok bool
		switch args[0] {
		case "play":
			ok, err = sess.PlayPause()
		case "ff":
			ok, err = sess.Seek(constants.ScanForward, seconds, speed)
		case "rw":
			ok, err = sess.Seek(constants.ScanBackward, seconds, speed)
		default:
			return errors.New("Unknown media action")
		}

		if err != nil {
			slog.Error("Fail to send media action", "action", args[0], "error", err)
			return nil
		}
		if !ok {
			slog.Error("Device rejected media action", "action", args[0])
			return nil
		}

		return nil
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "paired device name or IP")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
	Cmd.PersistentFlags().IntVarP(&seconds, "seconds", "s", 10, "seconds to seek")
	Cmd.PersistentFlags().IntVar(&speed, "speed", 1, "seek speed")
}

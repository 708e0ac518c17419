package pair

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/0w0mewo/firetv-cli/internal/firetv"
	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	"github.com/0w0mewo/firetv-cli/internal/models"
	"github.com/0w0mewo/firetv-cli/internal/store"
	"github.com/0w0mewo/firetv-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	host         string
	name         string
	friendlyName string
	storePath    string
	noPin        bool
)

var Cmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair with a Fire TV via on-screen PIN",
	Long:  "Pair with a Fire TV via on-screen PIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		var sess *firetv.Session

		if host == "" {
			slog.Info("No IP given, discovering")

			devices, err := firetv.Discover(constants.DefaultTimeout, nil)
			if err != nil {
				slog.Error("Fail to discover devices", "error", err)
				return nil
			}

			dev, err := pickDevice(devices, name)
			if err != nil {
				return err
			}

			sess = firetv.NewSessionFromDevice(dev)
			host = dev.Host
			if name == "" {
				name = dev.Name
			}
		} else {
			sess = firetv.NewSession(host)
		}

		ok, err := sess.RequestPin(friendlyName)
		if err != nil {
			slog.Error("Fail to reach device", "host", host, "error", err)
			return nil
		}
		if !ok {
			slog.Error("Device refused to display a PIN", "host", host)
			return nil
		}

		fmt.Fprint(os.Stdout, "Enter PIN shown on TV: ")
		reader := bufio.NewReader(os.Stdin)
		pin, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		pin = strings.TrimSpace(pin)

		ok, err = sess.VerifyPin(pin)
		if err != nil {
			// the device was unreachable, which says nothing about the PIN
			slog.Error("Fail to verify PIN, device unreachable", "error", err)
			return nil
		}
		if !ok {
			slog.Error("PIN rejected by device, run pair again for a fresh PIN")
			return nil
		}

		dev := store.PairedDevice{
			Name:  name,
			Host:  host,
			Token: sess.Token(),
		}
		if dev.Name == "" {
			dev.Name = host
		}

		if !noPin {
			fp, err := utils.FetchFingerprint(net.JoinHostPort(host, strconv.Itoa(constants.APIPort)))
			if err != nil {
				slog.Warn("Fail to capture certificate fingerprint, not pinning", "error", err)
			} else {
				dev.Fingerprint = fp
			}
		}

		st, err := cli.OpenStore(storePath)
		if err != nil {
			return err
		}
		st.Put(dev)
		err = st.Save()
		if err != nil {
			return err
		}

		slog.Info("Paired", "device", dev.Name, "host", dev.Host)
		return nil
	},
}

// pickDevice resolves a discovery run to one device: by name when
// given, or the sole device found.
func pickDevice(devices []models.Device, wanted string) (models.Device, error) {
	if wanted != "" {
		for _, dev := range devices {
			if dev.Name == wanted {
				return dev, nil
			}
		}
		return models.Device{}, fmt.Errorf("no device named %q found", wanted)
	}

	switch len(devices) {
	case 0:
		return models.Device{}, errors.New("No device found")
	case 1:
		return devices[0], nil
	default:
		return models.Device{}, errors.New("Multiple devices found, pass --name or --ip")
	}
}

func init() {
	Cmd.PersistentFlags().StringVar(&host, "ip", "", "IP address of the Fire TV (discovered when omitted)")
	Cmd.PersistentFlags().StringVarP(&name, "name", "n", "", "name to store the device under (default: its IP)")
	Cmd.PersistentFlags().StringVar(&friendlyName, "friendly-name", "firetv-cli", "name shown on the pairing screen")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
	Cmd.PersistentFlags().BoolVar(&noPin, "no-cert-pin", false, "do not pin the device certificate")
}

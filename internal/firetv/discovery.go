package firetv

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	fterrors "github.com/0w0mewo/firetv-cli/internal/firetv/errors"
	"github.com/0w0mewo/firetv-cli/internal/models"
	"github.com/grandcat/zeroconf"
)

// Discover browses the local network for Fire TVs announcing themselves
// over mDNS. It blocks for the full timeout window, calls onFound once
// per distinct device as announcements arrive (network order), and
// returns everything collected. No devices is an empty list, not an
// error. Duplicate announcements of the same instance name are dropped.
func Discover(timeout time.Duration, onFound func(models.Device)) ([]models.Device, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	err = resolver.Browse(ctx, constants.ServiceType, constants.ServiceDomain, entries)
	if err != nil {
		return nil, err
	}

	// the resolver closes the channel once the timeout expires
	return collectDevices(entries, onFound), nil
}

// collectDevices drains announcements until the channel closes, keeping
// the first sighting of each instance name and notifying onFound once
// per name.
func collectDevices(entries <-chan *zeroconf.ServiceEntry, onFound func(models.Device)) []models.Device {
	devices := make([]models.Device, 0)
	seen := make(map[string]struct{})

	for entry := range entries {
		dev, err := deviceFromEntry(entry)
		if err != nil {
			slog.Warn("Skipping unusable announcement", "instance", entry.Instance, "error", err)
			continue
		}

		if _, dup := seen[dev.Name]; dup {
			continue
		}
		seen[dev.Name] = struct{}{}

		devices = append(devices, dev)
		if onFound != nil {
			onFound(dev)
		}
	}

	return devices
}

func deviceFromEntry(entry *zeroconf.ServiceEntry) (models.Device, error) {
	var host string
	switch {
	case len(entry.AddrIPv4) > 0:
		host = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		host = entry.AddrIPv6[0].String()
	default:
		return models.Device{}, fterrors.ErrNoAddress
	}

	return models.Device{
		Name: TrimServiceSuffix(entry.Instance),
		Host: host,
		Port: constants.APIPort,
	}, nil
}

// TrimServiceSuffix strips the service-type suffix from a fully
// qualified instance name. Names that are already bare pass through.
func TrimServiceSuffix(name string) string {
	suffix := "." + constants.ServiceType + "." + constants.ServiceDomain
	return strings.TrimSuffix(name, suffix)
}

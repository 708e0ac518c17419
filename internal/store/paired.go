package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrNoSuchDevice = errors.New("No such device")

// PairedDevice is one device the user went through the PIN handshake
// with: enough to rebuild an authenticated session without re-pairing.
type PairedDevice struct {
	Name        string `yaml:"name"`
	Host        string `yaml:"host"`
	Token       string `yaml:"token"`
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

// DeviceStore is the on-disk registry of paired devices, keyed by
// device name.
type DeviceStore struct {
	path    string
	devices map[string]PairedDevice
	mu      *sync.RWMutex
}

// DefaultPath places the registry under the user config dir.
func DefaultPath() (string, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(confDir, "firetv-cli", "devices.yaml"), nil
}

// Open loads the registry at path. A missing file is an empty registry,
// not an error.
func Open(path string) (*DeviceStore, error) {
	st := &DeviceStore{
		path:    path,
		devices: make(map[string]PairedDevice),
		mu:      &sync.RWMutex{},
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, err
	}

	var devices []PairedDevice
	err = yaml.Unmarshal(b, &devices)
	if err != nil {
		return nil, err
	}

	for _, dev := range devices {
		st.devices[dev.Name] = dev
	}

	return st, nil
}

func (st *DeviceStore) Put(dev PairedDevice) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.devices[dev.Name] = dev
}

func (st *DeviceStore) Get(name string) (PairedDevice, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	dev, ok := st.devices[name]
	if !ok {
		return PairedDevice{}, ErrNoSuchDevice
	}

	return dev, nil
}

// Lookup finds a device by name or host. With an empty query and
// exactly one paired device, that device is returned.
func (st *DeviceStore) Lookup(query string) (PairedDevice, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if query == "" {
		if len(st.devices) == 1 {
			for _, dev := range st.devices {
				return dev, nil
			}
		}
		return PairedDevice{}, ErrNoSuchDevice
	}

	for _, dev := range st.devices {
		if dev.Name == query || dev.Host == query {
			return dev, nil
		}
	}

	return PairedDevice{}, ErrNoSuchDevice
}

func (st *DeviceStore) Remove(name string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.devices, name)
}

func (st *DeviceStore) All() []PairedDevice {
	st.mu.RLock()
	defer st.mu.RUnlock()

	devices := make([]PairedDevice, 0, len(st.devices))
	for _, dev := range st.devices {
		devices = append(devices, dev)
	}

	return devices
}

// Save writes the registry back. The file holds tokens, so keep it
// owner-readable only.
func (st *DeviceStore) Save() error {
	st.mu.RLock()
	devices := make([]PairedDevice, 0, len(st.devices))
	for _, dev := range st.devices {
		devices = append(devices, dev)
	}
	st.mu.RUnlock()

	b, err := yaml.Marshal(devices)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(st.path), 0o700)
	if err != nil {
		return err
	}

	return os.WriteFile(st.path, b, 0o600)
}

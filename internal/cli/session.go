// Package cli holds the glue between cobra commands and the client:
// resolving the paired-device registry into live sessions.
package cli

import (
	"github.com/0w0mewo/firetv-cli/internal/firetv"
	"github.com/0w0mewo/firetv-cli/internal/store"
)

// OpenStore opens the registry at path, falling back to the default
// location when path is empty.
func OpenStore(path string) (*store.DeviceStore, error) {
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return store.Open(path)
}

// ResolveSession builds an authenticated session for the paired device
// matching query (name or host; empty picks the only paired device).
func ResolveSession(storePath string, query string) (*firetv.Session, error) {
	st, err := OpenStore(storePath)
	if err != nil {
		return nil, err
	}

	dev, err := st.Lookup(query)
	if err != nil {
		return nil, err
	}

	sess := firetv.NewSessionWithToken(dev.Host, dev.Token)
	if dev.Fingerprint != "" {
		sess.PinFingerprint(dev.Fingerprint)
	}

	return sess, nil
}

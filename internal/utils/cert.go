package utils

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"strings"
)

func SHA256ofCert(cert *x509.Certificate) string {
	hasher := sha256.New()
	hasher.Write(cert.Raw)

	return strings.ToUpper(hex.EncodeToString(hasher.Sum(nil)))
}

func FetchX509Cert(addr string) ([]*x509.Certificate, error) {
	conf := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", addr, conf)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.ConnectionState().PeerCertificates, nil
}

// FetchFingerprint grabs the fingerprint of the cert a device is
// currently serving, for pinning alongside a freshly acquired token.
func FetchFingerprint(addr string) (string, error) {
	certs, err := FetchX509Cert(addr)
	if err != nil {
		return "", err
	}
	if len(certs) == 0 {
		return "", errors.New("no peer certificate")
	}

	return SHA256ofCert(certs[0]), nil
}

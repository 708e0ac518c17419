package firetv

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	fterrors "github.com/0w0mewo/firetv-cli/internal/firetv/errors"
	"github.com/0w0mewo/firetv-cli/internal/models"
	"github.com/0w0mewo/firetv-cli/internal/utils"
	"github.com/google/uuid"
)

// Session is the live relationship to one Fire TV: transport config plus
// the client token once pairing succeeded. One Session talks to one
// device, and requests through it are serialized because the device keeps
// per-connection key state that reordering would desync.
type Session struct {
	host     string
	port     int
	dialPort int

	token   string
	timeout time.Duration

	hc *http.Client
	mu sync.Mutex
}

// NewSession creates an unpaired session for the given host. The remote
// API serves a self-signed certificate, so verification is off; call
// PinFingerprint to at least pin the cert seen at pairing time.
func NewSession(host string) *Session {
	s := &Session{
		host:     host,
		port:     constants.APIPort,
		dialPort: constants.DialPort,
		timeout:  constants.DefaultTimeout,
	}

	s.hc = &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}

	return s
}

// NewSessionWithToken restores a session from a previously stored token,
// skipping the PIN handshake.
func NewSessionWithToken(host string, token string) *Session {
	s := NewSession(host)
	s.token = token
	return s
}

// NewSessionFromDevice creates a session for a discovered device.
func NewSessionFromDevice(dev models.Device) *Session {
	s := NewSession(dev.Host)
	if dev.Port != 0 {
		s.port = dev.Port
	}
	return s
}

func (s *Session) Host() string {
	return s.host
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

func (s *Session) IsPaired() bool {
	return s.Token() != ""
}

func (s *Session) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timeout = d
}

// PinFingerprint restricts the session to a device presenting the given
// certificate fingerprint (uppercase hex SHA256 of the leaf cert, see
// utils.SHA256ofCert). Verification stays off otherwise: the device cert
// is not CA-signed and never will be.
func (s *Session) PinFingerprint(fingerprint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hc.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
			VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
				if len(rawCerts) == 0 {
					return fmt.Errorf("no peer certificate")
				}
				cert, err := x509.ParseCertificate(rawCerts[0])
				if err != nil {
					return err
				}
				if utils.SHA256ofCert(cert) != fingerprint {
					return fmt.Errorf("certificate fingerprint mismatch")
				}
				return nil
			},
		},
	}
}

func (s *Session) baseURL() string {
	return fmt.Sprintf("https://%s", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
}

// request is the single funnel every remote API call goes through. It
// holds the session lock for the whole round trip, so one request is in
// flight per session at any time.
func (s *Session) request(method, path string, authenticated bool, body any, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		buf := bytes.NewBuffer(nil)
		err := json.NewEncoder(buf).Encode(body)
		if err != nil {
			return err
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL()+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("x-api-key", constants.APIKey)
	req.Header.Set("User-Agent", constants.UserAgent)
	req.Header.Set("x-amzn-request-id", uuid.NewString())

	if authenticated && s.token != "" {
		req.Header.Set("x-client-token", s.token)
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return &fterrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &fterrors.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &fterrors.TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out != nil && len(respBody) > 0 {
		err = json.Unmarshal(respBody, out)
		if err != nil {
			return &fterrors.ProtocolError{Path: path, Err: err}
		}
	}

	return nil
}

// requireToken guards every authenticated operation. Sending without a
// token would get an ambiguous rejection from the device, so fail here.
func (s *Session) requireToken() error {
	if !s.IsPaired() {
		return fterrors.ErrNotPaired
	}
	return nil
}

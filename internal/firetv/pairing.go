package firetv

import (
	"net/http"

	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	"github.com/0w0mewo/firetv-cli/internal/models"
)

// Pairing is a two step handshake: ask the device to put a PIN on
// screen, then prove a human read it. Both calls run unauthenticated;
// the verify answer carries the long-lived client token.

// RequestPin asks the device to display a pairing PIN, identified to the
// user by friendlyName. True means the device accepted and the PIN is on
// screen. Session state is untouched either way.
func (s *Session) RequestPin(friendlyName string) (bool, error) {
	var res models.APIResult
	err := s.request(http.MethodPost, constants.PinDisplayPath, false,
		models.PinDisplayReq{FriendlyName: friendlyName}, &res)
	if err != nil {
		return false, err
	}

	return res.Description == constants.StatusOK, nil
}

// VerifyPin submits the PIN read off the screen. On success the device
// answers with the token in the description field; it is stored on the
// session and true is returned. False means the device rejected the PIN,
// which is retryable with a fresh RequestPin. A transport error is
// neither: the device was never reached, so the PIN may still be valid.
//
// The PIN is passed through as-is. Observed devices use 4 digits, but
// the device is the authority on format.
func (s *Session) VerifyPin(pin string) (bool, error) {
	var res models.APIResult
	err := s.request(http.MethodPost, constants.PinVerifyPath, false,
		models.PinVerifyReq{PIN: pin}, &res)
	if err != nil {
		return false, err
	}

	if res.Description == "" {
		return false, nil
	}

	s.mu.Lock()
	s.token = res.Description
	s.mu.Unlock()

	return true, nil
}

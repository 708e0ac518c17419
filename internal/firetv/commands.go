package firetv

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/0w0mewo/firetv-cli/internal/firetv/constants"
	"github.com/0w0mewo/firetv-cli/internal/models"
)

// sendAction posts a key/nav action, optionally tagged with the press
// phase. The device answers OK in the description on success.
func (s *Session) sendAction(action string, keyAction constants.KeyAction) (bool, error) {
	var body any
	if keyAction != "" {
		body = models.KeyActionReq{KeyActionType: string(keyAction)}
	}

	path := constants.ActionPath + "?action=" + url.QueryEscape(action)

	var res models.APIResult
	err := s.request(http.MethodPost, path, true, body, &res)
	if err != nil {
		return false, err
	}

	return res.Description == constants.StatusOK, nil
}

// sendKey performs one logical button press as keyDown then keyUp. The
// keyUp is sent even when the keyDown fails, otherwise the device is
// left holding the key; the press stands or falls with the keyUp.
func (s *Session) sendKey(action string) (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}

	_, err := s.sendAction(action, constants.KeyDown)
	if err != nil {
		slog.Warn("Key down not delivered", "action", action, "error", err)
	}

	return s.sendAction(action, constants.KeyUp)
}

func (s *Session) Up() (bool, error) {
	return s.sendKey(constants.ActionDpadUp)
}

func (s *Session) Down() (bool, error) {
	return s.sendKey(constants.ActionDpadDown)
}

func (s *Session) Left() (bool, error) {
	return s.sendKey(constants.ActionDpadLeft)
}

func (s *Session) Right() (bool, error) {
	return s.sendKey(constants.ActionDpadRight)
}

func (s *Session) Select() (bool, error) {
	return s.sendKey(constants.ActionSelect)
}

func (s *Session) Back() (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}
	return s.sendAction(constants.ActionBack, "")
}

func (s *Session) Home() (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}
	return s.sendAction(constants.ActionHome, "")
}

func (s *Session) Menu() (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}
	return s.sendAction(constants.ActionMenu, "")
}

// SendChar injects a single character into the focused input field.
func (s *Session) SendChar(char string) (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}

	var res models.APIResult
	err := s.request(http.MethodPost, constants.TextPath, true,
		models.TextReq{Text: char}, &res)
	if err != nil {
		return false, err
	}

	return res.Description == constants.StatusOK, nil
}

// SendText transmits text one character at a time, in order, stopping at
// the first character the device refuses. Characters already delivered
// stay on the device; there is no rollback.
func (s *Session) SendText(text string) (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}

	for _, char := range text {
		ok, err := s.SendChar(string(char))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// PlayPause toggles media playback.
func (s *Session) PlayPause() (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}

	var res models.APIResult
	err := s.request(http.MethodPost, constants.MediaPath+"?action="+constants.ActionPlay, true, nil, &res)
	if err != nil {
		return false, err
	}

	return res.Description == constants.StatusOK, nil
}

// Seek scans through the playing media. Duration and speed travel as
// strings on the wire.
func (s *Session) Seek(direction constants.ScanDirection, seconds int, speed int) (bool, error) {
	if err := s.requireToken(); err != nil {
		return false, err
	}

	var res models.APIResult
	err := s.request(http.MethodPost, constants.MediaPath+"?action="+constants.ActionScan, true,
		models.ScanReq{
			Direction:         string(direction),
			DurationInSeconds: strconv.Itoa(seconds),
			Speed:             strconv.Itoa(speed),
		}, &res)
	if err != nil {
		return false, err
	}

	return res.Description == constants.StatusOK, nil
}

func (s *Session) FastForward(seconds int) (bool, error) {
	return s.Seek(constants.ScanForward, seconds, 1)
}

func (s *Session) Rewind(seconds int) (bool, error) {
	return s.Seek(constants.ScanBackward, seconds, 1)
}

// Status returns the basic device status as reported. The shape varies
// across firmware, so it stays a raw map.
func (s *Session) Status() (map[string]any, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	res := make(map[string]any)
	err := s.request(http.MethodGet, constants.StatusPath, true, nil, &res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Properties returns the device property snapshot. Fields the firmware
// does not report stay empty rather than failing the call.
func (s *Session) Properties() (models.DeviceProperties, error) {
	if err := s.requireToken(); err != nil {
		return models.DeviceProperties{}, err
	}

	var props models.DeviceProperties
	err := s.request(http.MethodGet, constants.PropertiesPath, true, nil, &props)
	if err != nil {
		return models.DeviceProperties{}, err
	}

	return props, nil
}

// Capabilities returns the raw capability flags.
func (s *Session) Capabilities() (map[string]any, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	res := make(map[string]any)
	err := s.request(http.MethodGet, constants.CapabilitiesPath, true, nil, &res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// KeyboardState reports whether an on-screen input field has focus.
func (s *Session) KeyboardState() (map[string]any, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	res := make(map[string]any)
	err := s.request(http.MethodGet, constants.KeyboardPath, true, nil, &res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Apps returns the device app list. Entries with missing fields come
// back zero-valued.
func (s *Session) Apps() ([]models.App, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	var apps []models.App
	err := s.request(http.MethodGet, constants.AppsPath, true, nil, &apps)
	if err != nil {
		return nil, err
	}

	return apps, nil
}

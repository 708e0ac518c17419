package constants

import "time"

const (
	// Fire TV remote API, served over https with a self-signed cert.
	APIPort = 8080

	// DIAL app launch endpoint, plain http.
	DialPort = 8009

	// Static key expected by every remote API endpoint.
	APIKey = "0987654321"

	UserAgent = "FireTV-Go/1.0"

	ServiceType   = "_amzn-fireTv._tcp"
	ServiceDomain = "local."

	DefaultTimeout = 5 * time.Second
)

const (
	PinDisplayPath   = "/v1/FireTV/pin/display"
	PinVerifyPath    = "/v1/FireTV/pin/verify"
	StatusPath       = "/v1/FireTV/status"
	PropertiesPath   = "/v1/FireTV/properties"
	CapabilitiesPath = "/v1/FireTV2"
	AppsPath         = "/v1/FireTV/appsV2"
	ActionPath       = "/v1/FireTV"
	TextPath         = "/v1/FireTV/text"
	KeyboardPath     = "/v1/FireTV/keyboard"
	MediaPath        = "/v1/media"
)

// StatusOK is the success marker the device puts in the description
// field of action responses.
const StatusOK = "OK"

package models

// Request and response bodies of the remote API. The device answers most
// POSTs with an APIResult whose description is either "OK" or, for
// pin/verify, the client token.

type PinDisplayReq struct {
	FriendlyName string `json:"friendlyName"`
}

type PinVerifyReq struct {
	PIN string `json:"pin"`
}

type KeyActionReq struct {
	KeyActionType string `json:"keyActionType"`
}

type TextReq struct {
	Text string `json:"text"`
}

// ScanReq fields are stringified numbers on the wire, quirk of the
// device firmware.
type ScanReq struct {
	Direction         string `json:"direction"`
	DurationInSeconds string `json:"durationInSeconds"`
	Speed             string `json:"speed"`
}

type APIResult struct {
	Description string `json:"description"`
}

package models

import "fmt"

// Device is one discovered Fire TV, identified by its advertised
// instance name with the service-type suffix stripped.
type Device struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Host)
}

func (d Device) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// DeviceProperties is the read-only snapshot reported by
// /v1/FireTV/properties. Fields the device omits stay empty.
type DeviceProperties struct {
	OSVersion        string `json:"osVersion"`
	PlatformType     string `json:"platformType"`
	TurnstileVersion string `json:"turnstileVersion"`
	EPGSupport       string `json:"epgSupport"`
	PowerSupport     string `json:"powerSupport"`
	VolumeSupport    string `json:"volumeSupport"`
	PFM              string `json:"pfm"`
}

// App is one entry of the device app list.
type App struct {
	AppID        string `json:"appId"`
	Name         string `json:"name"`
	IsInstalled  bool   `json:"isInstalled"`
	IsShortcut   bool   `json:"isShortcutApp"`
	IconURL      string `json:"tvIconArt"`
	LaunchIntent string `json:"appShortcutLaunchIntent"`
}

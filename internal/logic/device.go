package logic

import "github.com/avct/uasurfer"

// ResolveDeviceType classifies a raw User-Agent string into the device
// classes used by display conditions. An empty or unrecognized UA yields an
// empty string, which disables device filtering for the request.
func ResolveDeviceType(uaString string) string {
	if uaString == "" {
		return ""
	}

	u := uasurfer.Parse(uaString)
	switch u.DeviceType {
	case uasurfer.DeviceComputer:
		return "desktop"
	case uasurfer.DevicePhone:
		return "mobile"
	case uasurfer.DeviceTablet:
		return "tablet"
	default:
		return ""
	}
}

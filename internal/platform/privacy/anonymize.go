// Package privacy redacts personally identifiable values before they reach logs.
package privacy

import (
	"fmt"
	"net"
	"strings"
)

// AnonymizeIP truncates an IP address to remove the host-identifying portion.
//
// For IPv4 addresses, the last octet is zeroed (e.g., "192.168.1.47" -> "192.168.1.0").
// For IPv6 addresses, only the /48 prefix is kept.
//
// Returns "invalid" for unparseable IP addresses, and "unknown" for empty strings.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// MaskValue keeps the last four characters of an identifier and masks the rest,
// e.g. "123456789012" -> "********9012". Values of four characters or fewer are
// fully masked.
func MaskValue(v string) string {
	const visible = 4
	if len(v) <= visible {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-visible) + v[len(v)-visible:]
}

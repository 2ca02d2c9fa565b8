// Package util provides shared helpers for srv6ctl: address validation
// and logging.
package util

import (
	"net"
	"strconv"
	"strings"
)

// IsValidIPv6 checks if a string is a valid IPv6 address.
// IPv4 and IPv4-mapped addresses are rejected; SRv6 locators and
// source addresses are always native IPv6.
func IsValidIPv6(addr string) bool {
	if !strings.Contains(addr, ":") {
		return false
	}
	ip := net.ParseIP(addr)
	return ip != nil && ip.To4() == nil
}

// IsValidIPv6Prefix checks if a string is a valid IPv6 CIDR prefix,
// i.e. <ipv6-address>/<0-128>. It is a pure judgment: malformed input
// (missing mask, out-of-range mask, bad address, IPv4, trailing garbage,
// surrounding whitespace) yields false, never an error.
func IsValidIPv6Prefix(cidr string) bool {
	ip, _, err := net.ParseCIDR(cidr)
	if err != nil {
		return false
	}
	// Ensure it's IPv6, not IPv4 or an IPv4-mapped form
	return ip.To4() == nil
}

// SplitPrefix splits CIDR notation into address and mask length.
// Returns the input unchanged with mask -1 when no valid mask is present.
func SplitPrefix(cidr string) (string, int) {
	parts := strings.SplitN(cidr, "/", 2)
	if len(parts) != 2 {
		return cidr, -1
	}
	maskLen, err := strconv.Atoi(parts[1])
	if err != nil {
		return parts[0], -1
	}
	return parts[0], maskLen
}

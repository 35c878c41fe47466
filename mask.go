package sfdl

import (
	"net"
	"strings"
)

// MaskType represents a kind of connection value with masking rules.
type MaskType string

const (
	MaskSecret MaskType = "secret" // hunter2 -> ********
	MaskName   MaskType = "name"   // anonymous -> a********
	MaskHost   MaskType = "host"   // ftp.example.com -> ***.example.com
	MaskIP     MaskType = "ip"     // 192.168.1.100 -> 192.168.xxx.xxx
)

// secretMask replaces secrets without revealing their length.
const secretMask = "********"

// Masker applies content-aware masking.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

type secretMasker struct{}

// SecretMasker returns a masker that hides the whole value.
// Empty values stay empty so a missing password is still visible.
func SecretMasker() Masker {
	return &secretMasker{}
}

func (m *secretMasker) Mask(value string) string {
	if value == "" {
		return ""
	}
	return secretMask
}

type nameMasker struct{}

// NameMasker returns a masker for account names.
// Preserves the first letter, masks the rest.
func NameMasker() Masker {
	return &nameMasker{}
}

func (m *nameMasker) Mask(value string) string {
	runes := []rune(value)
	if len(runes) < 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

type hostMasker struct{}

// HostMasker returns a masker for server addresses.
// IP addresses are masked with IPMasker. Host names keep their last two
// labels and mask the rest; shorter names get the fixed secret mask.
func HostMasker() Masker {
	return &hostMasker{}
}

func (m *hostMasker) Mask(value string) string {
	if net.ParseIP(value) != nil {
		return IPMasker().Mask(value)
	}

	if value == "" {
		return ""
	}
	labels := strings.Split(value, ".")
	if len(labels) < 3 {
		return secretMask
	}
	for i := 0; i < len(labels)-2; i++ {
		labels[i] = "***"
	}
	return strings.Join(labels, ".")
}

// ipMasker masks IP addresses.
// IPv4: 192.168.1.100 -> 192.168.xxx.xxx
// IPv6: 2001:db8:85a3::8a2e:370:7334 -> 2001:0db8:85a3:0000:xxxx:xxxx:xxxx:xxxx
type ipMasker struct{}

// IPMasker returns a masker for IP addresses.
// IPv4: Preserves first two octets (network), masks last two (host).
// IPv6: Preserves first four groups (network prefix), masks last four (interface ID).
func IPMasker() Masker {
	return &ipMasker{}
}

func (m *ipMasker) Mask(value string) string {
	ip := net.ParseIP(value)
	if ip == nil {
		return secretMask
	}

	if v4 := ip.To4(); v4 != nil && !strings.Contains(value, ":") {
		parts := strings.Split(value, ".")
		return parts[0] + "." + parts[1] + ".xxx.xxx"
	}

	groups := make([]string, 4)
	for i := range groups {
		groups[i] = hex4(ip[2*i], ip[2*i+1])
	}
	return strings.Join(groups, ":") + ":xxxx:xxxx:xxxx:xxxx"
}

func hex4(hi, lo byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[hi>>4], digits[hi&0x0f], digits[lo>>4], digits[lo&0x0f]})
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskSecret: SecretMasker(),
		MaskName:   NameMasker(),
		MaskHost:   HostMasker(),
		MaskIP:     IPMasker(),
	}
}

// connectionMasks assigns a mask to each credential of ConnectionInfo.
var connectionMasks = []struct {
	mask MaskType
	get  func(c *ConnectionInfo) *string
}{
	{MaskHost, func(c *ConnectionInfo) *string { return &c.Host }},
	{MaskName, func(c *ConnectionInfo) *string { return &c.Username }},
	{MaskSecret, func(c *ConnectionInfo) *string { return &c.Password }},
}

// Masked returns a copy of f with the connection credentials masked for
// display. Encrypted descriptors only have their password masked, since the
// other values are ciphertext. The receiver is not modified.
func (f *File) Masked() *File {
	clone := f.Clone()
	maskers := builtinMaskers()
	for _, cm := range connectionMasks {
		if f.Encrypted && cm.mask != MaskSecret {
			continue
		}
		v := cm.get(&clone.ConnectionInfo)
		*v = maskers[cm.mask].Mask(*v)
	}
	return clone
}

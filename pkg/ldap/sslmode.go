package ldap

import (
	"fmt"
	"strings"
)

// SSLMode represents how the LDAP connection is secured (off, start_tls or on)
type SSLMode string

const (
	// SSLOff means the connection is not secured
	SSLOff SSLMode = "off"
	// SSLStartTLS means the connection is upgraded in place with StartTLS
	SSLStartTLS SSLMode = "start_tls"
	// SSLOn means the connection runs over the dedicated TLS port
	SSLOn SSLMode = "on"
)

var toSSLMode = map[string]SSLMode{
	"off":       SSLOff,
	"start_tls": SSLStartTLS,
	"on":        SSLOn,
	"":          SSLOff,
}

// ParseSSLMode converts a string (as stored in the datastore) to an SSLMode
func ParseSSLMode(value string) (mode SSLMode, err error) {
	if mode, exists := toSSLMode[strings.ToLower(value)]; exists {
		return mode, nil
	}
	return SSLOff, fmt.Errorf("invalid ssl mode %s (should be off, start_tls or on)", value)
}

func (m SSLMode) String() string {
	return string(m)
}

// Secure tells if TLS is in play, be it start_tls or on
func (m SSLMode) Secure() bool {
	return m == SSLStartTLS || m == SSLOn
}

// URIScheme returns the URI scheme that matches this mode.
// Only SSLOn changes the port, so only SSLOn maps to ldaps.
func (m SSLMode) URIScheme() string {
	if m == SSLOn {
		return "ldaps"
	}
	return "ldap"
}

// MarshalYAML marshals the enum as a quoted yaml string
func (m SSLMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML converts a yaml string to the enum value
func (m *SSLMode) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	mode, err := ParseSSLMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

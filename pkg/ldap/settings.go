// Package ldap models the directory-service settings snapshots and renders
// the LDAP client configuration files from them.
package ldap

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// DomainTypeActiveDirectory is the idmap domain type that backs the unified
// ldap.conf when Active Directory is the selected source.
const DomainTypeActiveDirectory = "ACTIVEDIRECTORY"

// Idmap backends that resolve ids through an LDAP directory. Only these
// qualify Active Directory as a source for the unified ldap.conf.
const (
	BackendLdap    = "ldap"
	BackendRfc2307 = "rfc2307"
)

// ClientSettings is the plain LDAP directory-service settings snapshot.
type ClientSettings struct {
	Enabled           bool
	Hostnames         []string
	BaseDN            string
	SSLMode           SSLMode
	CertificateID     *int64
	BindDN            string
	BindPassword      string
	DisableCache      bool
	KerberosPrincipal string
	KerberosRealm     string
	Timeout           int
	DNSTimeout        int
	AuxiliaryParams   string
}

// ADSettings is the Active Directory directory-service settings snapshot.
type ADSettings struct {
	Enabled      bool
	IdmapBackend string
	Timeout      int
	DNSTimeout   int
}

// IdmapSettings is the idmap settings snapshot for one domain type.
type IdmapSettings struct {
	BaseDN        string
	URL           string
	SSLMode       SSLMode
	CertificateID *int64
}

// Certificate is a stored certificate record with its on-disk path.
type Certificate struct {
	ID   int64
	Path string
}

// Store gives access to the directory-service settings snapshots.
// Absent ldap or activedirectory settings are returned as a nil pointer,
// and an unknown certificate id as (nil, nil), not as an error.
type Store interface {
	GetLdapConfig() (*ClientSettings, error)
	GetActiveDirectoryConfig() (*ADSettings, error)
	GetOrCreateIdmap(domainType string) (IdmapSettings, error)
	FindCertificate(id int64) (*Certificate, error)
}

// Validate checks that enabled settings can produce a usable client config.
// Disabled settings are always valid (they render to nothing).
func (cs ClientSettings) Validate() (err error) {
	if !cs.Enabled {
		return nil
	}
	if len(cs.Hostnames) == 0 {
		return fmt.Errorf("ldap is enabled but no hostnames are configured")
	}
	if !validDN(cs.BaseDN) {
		return fmt.Errorf("ldap is enabled but basedn %q is not a valid DN", cs.BaseDN)
	}
	return nil
}

// QualifiesForLdap tells if Active Directory takes precedence as the source
// of the unified ldap.conf, which it does when it is enabled with an
// ldap-backed idmap backend.
func (as ADSettings) QualifiesForLdap() bool {
	if !as.Enabled {
		return false
	}
	switch as.IdmapBackend {
	case BackendLdap, BackendRfc2307:
		return true
	}
	return false
}

func validDN(dn string) bool {
	if dn == "" {
		return false
	}
	_, err := ldap.ParseDN(dn)
	return err == nil
}

package ldap

import (
	"fmt"
	"strings"
)

const ldapConfHeader = "# This file is generated by dsconf. Manual changes will be overwritten."

// ldapConfSource is the source the unified ldap.conf is rendered from,
// after precedence between Active Directory and plain LDAP is decided.
type ldapConfSource struct {
	uri            string
	base           string
	timeout        int
	networkTimeout int
	secure         bool
	certPath       string
}

// LdapConf renders the unified ldap.conf, which is shared by every LDAP
// consumer on the system. Active Directory (with an ldap-backed idmap
// backend) takes precedence over plain LDAP; with neither enabled the
// config renders empty.
func (r Renderer) LdapConf() (content string, err error) {
	src, err := r.ldapConfSource()
	if err != nil {
		return "", err
	}
	if src == nil {
		log.Debugf("no directory service is enabled, rendering empty ldap.conf")
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintln(&b, ldapConfHeader)
	fmt.Fprintf(&b, "URI %s\n", src.uri)
	fmt.Fprintf(&b, "BASE %s\n", src.base)
	fmt.Fprintf(&b, "NETWORK_TIMEOUT %d\n", src.networkTimeout)
	fmt.Fprintf(&b, "TIMEOUT %d\n", src.timeout)
	if src.secure {
		if src.certPath != "" {
			fmt.Fprintf(&b, "TLS_CACERT %s\n", src.certPath)
		}
		fmt.Fprintln(&b, "TLS_REQCERT allow")
	}
	return b.String(), nil
}

func (r Renderer) ldapConfSource() (src *ldapConfSource, err error) {
	adCnf, err := r.store.GetActiveDirectoryConfig()
	if err != nil {
		return nil, err
	}
	if adCnf != nil && adCnf.QualifiesForLdap() {
		return r.activeDirectorySource(*adCnf)
	}
	ldapCnf, err := r.store.GetLdapConfig()
	if err != nil {
		return nil, err
	}
	if ldapCnf == nil || !ldapCnf.Enabled {
		return nil, nil
	}
	return r.plainLdapSource(*ldapCnf)
}

// activeDirectorySource derives the source from the ACTIVEDIRECTORY idmap
// settings, creating them with defaults if they do not exist yet. Timeouts
// come from the Active Directory settings, not from the idmap.
// A failing idmap fetch fails the render: an absent row would have been
// created, so failure means the datastore itself is broken and falling back
// to plain LDAP would flip the rendered source between runs.
func (r Renderer) activeDirectorySource(adCnf ADSettings) (src *ldapConfSource, err error) {
	idmap, err := r.store.GetOrCreateIdmap(DomainTypeActiveDirectory)
	if err != nil {
		return nil, err
	}
	src = &ldapConfSource{
		uri:            fmt.Sprintf("%s://%s", idmap.SSLMode.URIScheme(), stripScheme(idmap.URL)),
		base:           idmap.BaseDN,
		timeout:        adCnf.Timeout,
		networkTimeout: adCnf.DNSTimeout,
	}
	if idmap.SSLMode.Secure() {
		src.secure = true
		src.certPath = resolveCertPath(r.store, idmap.CertificateID)
	}
	return src, nil
}

func (r Renderer) plainLdapSource(ldapCnf ClientSettings) (src *ldapConfSource, err error) {
	if err = ldapCnf.Validate(); err != nil {
		return nil, err
	}
	src = &ldapConfSource{
		uri:            uris(ldapCnf.SSLMode, ldapCnf.Hostnames),
		base:           ldapCnf.BaseDN,
		timeout:        ldapCnf.Timeout,
		networkTimeout: ldapCnf.DNSTimeout,
	}
	if ldapCnf.SSLMode.Secure() {
		src.secure = true
		src.certPath = resolveCertPath(r.store, ldapCnf.CertificateID)
	}
	return src, nil
}

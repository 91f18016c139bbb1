package ldap

import (
	"fmt"
	"strings"
)

// Nslcd renders nslcd.conf from the plain LDAP settings.
// Absent or disabled settings render to an empty config, which is valid.
// The consumer parses the file line by line, so the line order is fixed.
func (r Renderer) Nslcd() (content string, err error) {
	cnf, err := r.store.GetLdapConfig()
	if err != nil {
		return "", err
	}
	if cnf == nil || !cnf.Enabled {
		log.Debugf("ldap is disabled, rendering empty nslcd.conf")
		return "", nil
	}
	if err = cnf.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "uri %s\n", uris(cnf.SSLMode, cnf.Hostnames))
	fmt.Fprintf(&b, "base %s\n", cnf.BaseDN)
	if cnf.SSLMode.Secure() {
		fmt.Fprintf(&b, "ssl %s\n", cnf.SSLMode)
		if certPath := resolveCertPath(r.store, cnf.CertificateID); certPath != "" {
			fmt.Fprintf(&b, "tls_cacert %s\n", certPath)
		}
		fmt.Fprintln(&b, "tls_reqcert allow")
	}
	if cnf.BindDN != "" && cnf.BindPassword != "" {
		fmt.Fprintf(&b, "binddn %s\n", cnf.BindDN)
		fmt.Fprintf(&b, "bindpw %s\n", cnf.BindPassword)
	}
	if cnf.DisableCache {
		fmt.Fprintln(&b, "nss_disable_enumeration yes")
	}
	if cnf.KerberosPrincipal != "" && cnf.KerberosRealm != "" {
		fmt.Fprintln(&b, "sasl_mech GSSAPI")
		fmt.Fprintf(&b, "sasl_realm %s\n", cnf.KerberosRealm)
	}
	fmt.Fprintln(&b, "scope sub")
	fmt.Fprintf(&b, "timelimit %d\n", cnf.Timeout)
	fmt.Fprintf(&b, "bind_timelimit %d\n", cnf.DNSTimeout)
	fmt.Fprintln(&b, "map passwd loginShell /bin/sh")
	if cnf.AuxiliaryParams != "" {
		fmt.Fprintln(&b, cnf.AuxiliaryParams)
	}
	return b.String(), nil
}

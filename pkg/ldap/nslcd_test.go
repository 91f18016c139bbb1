package ldap_test

import (
	"strings"
	"testing"

	"github.com/nasvillage-tools/dsconf/pkg/ldap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNslcdEmptyWhenAbsentOrDisabled(t *testing.T) {
	for _, cnf := range []*ldap.ClientSettings{
		nil,
		{Enabled: false, Hostnames: []string{"ldap1.example.com"}, BaseDN: "dc=example,dc=com"},
	} {
		renderer := ldap.NewRenderer(&fakeStore{ldapCnf: cnf})
		content, err := renderer.Nslcd()
		assert.NoError(t, err)
		assert.Empty(t, content)
	}
}

func TestNslcdPlain(t *testing.T) {
	renderer := ldap.NewRenderer(&fakeStore{
		ldapCnf: &ldap.ClientSettings{
			Enabled:      true,
			Hostnames:    []string{"ldap1.example.com", "ldap2.example.com"},
			BaseDN:       "dc=example,dc=com",
			SSLMode:      ldap.SSLOff,
			BindDN:       "cn=admin,dc=example,dc=com",
			BindPassword: "secret",
			Timeout:      10,
			DNSTimeout:   4,
		},
	})
	content, err := renderer.Nslcd()
	require.NoError(t, err)
	expected := `uri ldap://ldap1.example.com ldap://ldap2.example.com
base dc=example,dc=com
binddn cn=admin,dc=example,dc=com
bindpw secret
scope sub
timelimit 10
bind_timelimit 4
map passwd loginShell /bin/sh
`
	assert.Equal(t, expected, content)
	assert.NotContains(t, content, "ssl ")
	assert.NotContains(t, content, "tls_cacert")
	assert.NotContains(t, content, "tls_reqcert")
}

func TestNslcdFull(t *testing.T) {
	renderer := ldap.NewRenderer(&fakeStore{
		ldapCnf: &ldap.ClientSettings{
			Enabled:           true,
			Hostnames:         []string{"dc1.example.com"},
			BaseDN:            "dc=example,dc=com",
			SSLMode:           ldap.SSLOn,
			CertificateID:     certRef(7),
			BindDN:            "cn=admin,dc=example,dc=com",
			BindPassword:      "secret",
			DisableCache:      true,
			KerberosPrincipal: "admin@EXAMPLE.COM",
			KerberosRealm:     "EXAMPLE.COM",
			Timeout:           30,
			DNSTimeout:        5,
			AuxiliaryParams:   "ldap_version 3",
		},
		certs: map[int64]string{7: "/etc/certificates/ldap.crt"},
	})
	content, err := renderer.Nslcd()
	require.NoError(t, err)
	expected := `uri ldaps://dc1.example.com
base dc=example,dc=com
ssl on
tls_cacert /etc/certificates/ldap.crt
tls_reqcert allow
binddn cn=admin,dc=example,dc=com
bindpw secret
nss_disable_enumeration yes
sasl_mech GSSAPI
sasl_realm EXAMPLE.COM
scope sub
timelimit 30
bind_timelimit 5
map passwd loginShell /bin/sh
ldap_version 3
`
	assert.Equal(t, expected, content)
}

func TestNslcdSchemePerSslMode(t *testing.T) {
	for _, test := range []struct {
		mode   ldap.SSLMode
		scheme string
	}{
		{mode: ldap.SSLOff, scheme: "ldap://"},
		{mode: ldap.SSLStartTLS, scheme: "ldap://"},
		{mode: ldap.SSLOn, scheme: "ldaps://"},
	} {
		renderer := ldap.NewRenderer(&fakeStore{
			ldapCnf: &ldap.ClientSettings{
				Enabled:   true,
				Hostnames: []string{"ldap1.example.com", "ldap2.example.com", "ldap3.example.com"},
				BaseDN:    "dc=example,dc=com",
				SSLMode:   test.mode,
			},
		})
		content, err := renderer.Nslcd()
		require.NoError(t, err)
		uriLine := strings.SplitN(content, "\n", 2)[0]
		assert.Equal(t, "uri "+test.scheme+"ldap1.example.com "+
			test.scheme+"ldap2.example.com "+
			test.scheme+"ldap3.example.com", uriLine)
	}
}

func TestNslcdCertResolutionIsBestEffort(t *testing.T) {
	for _, store := range []*fakeStore{
		// reference without a matching certificate record
		{certs: map[int64]string{}},
		// certificate lookup fails altogether
		{certErr: errStoreBroken},
	} {
		store.ldapCnf = &ldap.ClientSettings{
			Enabled:       true,
			Hostnames:     []string{"ldap1.example.com"},
			BaseDN:        "dc=example,dc=com",
			SSLMode:       ldap.SSLStartTLS,
			CertificateID: certRef(42),
		}
		renderer := ldap.NewRenderer(store)
		content, err := renderer.Nslcd()
		require.NoError(t, err)
		assert.NotContains(t, content, "tls_cacert")
		assert.Contains(t, content, "ssl start_tls\n")
		assert.Equal(t, 1, strings.Count(content, "tls_reqcert allow\n"))
	}
}

func TestNslcdValidation(t *testing.T) {
	for _, cnf := range []*ldap.ClientSettings{
		{Enabled: true, BaseDN: "dc=example,dc=com"},
		{Enabled: true, Hostnames: []string{"ldap1.example.com"}, BaseDN: "not a dn"},
		{Enabled: true, Hostnames: []string{"ldap1.example.com"}},
	} {
		renderer := ldap.NewRenderer(&fakeStore{ldapCnf: cnf})
		_, err := renderer.Nslcd()
		assert.Error(t, err)
	}
}

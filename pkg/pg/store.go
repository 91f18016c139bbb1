package pg

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"

	"github.com/nasvillage-tools/dsconf/pkg/ldap"
)

// Queries against the settings tables. The ldap and activedirectory tables
// hold at most one row; the idmap table holds one row per domain type.
const (
	queryLdapConfig = `SELECT enabled, hostname, basedn, ssl, certificate_id, binddn, bindpw,
		disable_cache, kerberos_principal, kerberos_realm, timeout, dns_timeout, auxiliary_parameters
		FROM directoryservice_ldap ORDER BY id LIMIT 1`
	queryADConfig = `SELECT enabled, idmap_backend, timeout, dns_timeout
		FROM directoryservice_activedirectory ORDER BY id LIMIT 1`
	queryIdmap = `SELECT basedn, url, ssl, certificate_id
		FROM directoryservice_idmap WHERE domain_type = $1`
	queryIdmapInsert = `INSERT INTO directoryservice_idmap (domain_type, basedn, url, ssl)
		VALUES ($1, '', '', 'off') RETURNING basedn, url, ssl, certificate_id`
	queryCertificate = `SELECT id, path FROM system_certificate WHERE id = $1`
)

// Store reads the directory-service settings snapshots from the
// configuration database. It implements ldap.Store.
type Store struct {
	conn *Conn
}

// NewStore can be used to instantiate a new Store with connection parameters set
func NewStore(connParams ConnParams) (s *Store) {
	return &Store{
		conn: NewConn(connParams),
	}
}

// GetLdapConfig returns the plain LDAP settings snapshot, or nil when no
// settings row exists (which means the service was never configured).
func (s *Store) GetLdapConfig() (cnf *ldap.ClientSettings, err error) {
	var cs ldap.ClientSettings
	var hostnames, sslMode string
	err = s.conn.runQueryRow(queryLdapConfig, nil,
		&cs.Enabled, &hostnames, &cs.BaseDN, &sslMode, &cs.CertificateID, &cs.BindDN, &cs.BindPassword,
		&cs.DisableCache, &cs.KerberosPrincipal, &cs.KerberosRealm, &cs.Timeout, &cs.DNSTimeout,
		&cs.AuxiliaryParams)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ldap settings: %w", err)
	}
	// The hostname column is one whitespace separated list; order matters to
	// the consumer and is preserved.
	cs.Hostnames = strings.Fields(hostnames)
	if cs.SSLMode, err = ldap.ParseSSLMode(sslMode); err != nil {
		return nil, fmt.Errorf("could not read ldap settings: %w", err)
	}
	return &cs, nil
}

// GetActiveDirectoryConfig returns the Active Directory settings snapshot,
// or nil when no settings row exists.
func (s *Store) GetActiveDirectoryConfig() (cnf *ldap.ADSettings, err error) {
	var as ldap.ADSettings
	err = s.conn.runQueryRow(queryADConfig, nil,
		&as.Enabled, &as.IdmapBackend, &as.Timeout, &as.DNSTimeout)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read activedirectory settings: %w", err)
	}
	return &as, nil
}

// GetOrCreateIdmap returns the idmap settings for a domain type, inserting a
// row with empty defaults first if the domain type has none yet.
func (s *Store) GetOrCreateIdmap(domainType string) (idmap ldap.IdmapSettings, err error) {
	var sslMode string
	err = s.conn.runQueryRow(queryIdmap, []any{domainType},
		&idmap.BaseDN, &idmap.URL, &sslMode, &idmap.CertificateID)
	if err == pgx.ErrNoRows {
		log.Infof("no idmap settings for domain type %s yet, creating defaults", domainType)
		err = s.conn.runQueryRow(queryIdmapInsert, []any{domainType},
			&idmap.BaseDN, &idmap.URL, &sslMode, &idmap.CertificateID)
	}
	if err != nil {
		return idmap, fmt.Errorf("could not get or create idmap settings for %s: %w", domainType, err)
	}
	if idmap.SSLMode, err = ldap.ParseSSLMode(sslMode); err != nil {
		return idmap, fmt.Errorf("could not get or create idmap settings for %s: %w", domainType, err)
	}
	return idmap, nil
}

// FindCertificate returns the certificate record with the given id, or nil
// when no such record exists. Absence is not an error.
func (s *Store) FindCertificate(id int64) (cert *ldap.Certificate, err error) {
	var c ldap.Certificate
	err = s.conn.runQueryRow(queryCertificate, []any{id}, &c.ID, &c.Path)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not look up certificate %d: %w", id, err)
	}
	return &c, nil
}

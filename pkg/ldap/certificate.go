package ldap

// resolveCertPath resolves a certificate reference to its on-disk path.
// Resolution is best effort: an unset reference, a reference without a
// matching record and a failing lookup all degrade to "" (no CA certificate).
func resolveCertPath(store Store, certID *int64) (path string) {
	if certID == nil {
		return ""
	}
	cert, err := store.FindCertificate(*certID)
	if err != nil {
		log.Warnf("could not look up certificate %d, rendering without tls ca certificate: %v", *certID, err)
		return ""
	}
	if cert == nil {
		log.Debugf("certificate %d does not exist, rendering without tls ca certificate", *certID)
		return ""
	}
	return cert.Path
}

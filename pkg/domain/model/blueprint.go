package model

// Blueprint describes a Git repository checkout for Xcode Server: the remote,
// the SSH credentials to reach it and the branch a bot tracks.
//
// A Blueprint is a value object. Pass it by value; the only field expected to
// change after construction is CertificateFingerprint, which has a single
// writer (normally the preflight step right after decoding).
type Blueprint struct {
	Branch               string `json:"branch" toml:"branch"`
	ProjectWCCIdentifier string `json:"project_wcc_identifier" toml:"project_wcc_identifier"`
	WCCName              string `json:"wcc_name" toml:"wcc_name"`
	ProjectName          string `json:"project_name" toml:"project_name"`
	ProjectURL           string `json:"project_url" toml:"project_url"`
	ProjectPath          string `json:"project_path" toml:"project_path"`

	// CommitSHA is only set on decoded blueprints
	CommitSHA *string `json:"commit_sha,omitempty" toml:"-"`

	PublicSSHKey           *string `json:"public_ssh_key,omitempty" toml:"public_ssh_key" masq:"secret"`
	PrivateSSHKey          *string `json:"private_ssh_key,omitempty" toml:"private_ssh_key" masq:"secret"`
	SSHPassphrase          *string `json:"ssh_passphrase,omitempty" toml:"ssh_passphrase" masq:"secret"`
	CertificateFingerprint *string `json:"certificate_fingerprint,omitempty" toml:"certificate_fingerprint"`
}

// NewCredentialBlueprint builds a blueprint that only carries what a
// credential preflight check needs. All other string fields are empty.
func NewCredentialBlueprint(projectURL string, publicSSHKey, privateSSHKey, sshPassphrase *string) Blueprint {
	return Blueprint{
		ProjectURL:    projectURL,
		PublicSSHKey:  publicSSHKey,
		PrivateSSHKey: privateSSHKey,
		SSHPassphrase: sshPassphrase,
	}
}

// WithCertificateFingerprint returns a copy of the blueprint with the given fingerprint
func (b Blueprint) WithCertificateFingerprint(fingerprint string) Blueprint {
	b.CertificateFingerprint = &fingerprint
	return b
}

// SetCertificateFingerprint updates the fingerprint in place. Callers sharing a
// *Blueprint across goroutines must synchronize this write themselves.
func (b *Blueprint) SetCertificateFingerprint(fingerprint string) {
	b.CertificateFingerprint = &fingerprint
}

// StringPtr is a helper for filling optional Blueprint fields
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed string, or "" if p is nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

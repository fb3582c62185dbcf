package model

// RemoteRepository identifies the remote a blueprint checks out
type RemoteRepository struct {
	URL                    string `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryURLKey"`
	System                 string `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositorySystemKey"`
	Identifier             string `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryIdentifierKey"`
	CertificateFingerprint string `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryCertFingerprintKey"`
	TrustSelfSignedCert    bool   `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryTrustSelfSignedCertKey"`
}

// AuthenticationStrategy carries base64 encoded SSH credentials of a repository
type AuthenticationStrategy struct {
	Type           string `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryAuthenticationTypeKey"`
	Username       string `json:"DVTSourceControlUsername"`
	Password       string `json:"DVTSourceControlPassword"`
	PrivateKeyData string `json:"DVTSourceControlPrivateKeyDataKey"`
	PublicKeyData  string `json:"DVTSourceControlPublicKeyDataKey"`
}

// CredentialPayload is the minimal blueprint accepted by the credential and
// fingerprint preflight check
type CredentialPayload struct {
	RemoteRepositories       []RemoteRepository                `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoriesKey"`
	PrimaryRemoteRepository  string                            `json:"DVTSourceControlWorkspaceBlueprintPrimaryRemoteRepositoryKey"`
	AuthenticationStrategies map[string]AuthenticationStrategy `json:"DVTSourceControlWorkspaceBlueprintRemoteRepositoryAuthenticationStrategiesKey"`
}

// Location tells the bot which branch to track
type Location struct {
	Branch  string `json:"DVTSourceControlBranchIdentifierKey"`
	Options int    `json:"DVTSourceControlBranchOptionsKey"`
	Type    string `json:"DVTSourceControlWorkspaceBlueprintLocationTypeKey"`
}

// BotCreationPayload is the full blueprint sent when creating a bot
type BotCreationPayload struct {
	CredentialPayload

	Locations             map[string]Location `json:"DVTSourceControlWorkspaceBlueprintLocationsKey"`
	WorkingCopyPaths      map[string]string   `json:"DVTSourceControlWorkspaceBlueprintWorkingCopyPathsKey"`
	RelativePathToProject string              `json:"DVTSourceControlWorkspaceBlueprintRelativePathToProjectKey"`
	Name                  string              `json:"DVTSourceControlWorkspaceBlueprintNameKey"`
	WorkingCopyStates     map[string]int      `json:"DVTSourceControlWorkspaceBlueprintWorkingCopyStatesKey"`
	Version               int                 `json:"DVTSourceControlWorkspaceBlueprintVersion"`
	Identifier            string              `json:"DVTSourceControlWorkspaceBlueprintIdentifierKey"`
}

// PayloadMode selects which blueprint payload to encode
type PayloadMode string

const (
	PayloadPreflight   PayloadMode = "preflight"
	PayloadBotCreation PayloadMode = "bot"
)

package types

// Blueprint document keys used by Xcode Server. The server rejects documents
// with misspelled keys, so these must stay byte-exact.
const (
	BlueprintNameKey                     = "DVTSourceControlWorkspaceBlueprintNameKey"
	BlueprintIdentifierKey               = "DVTSourceControlWorkspaceBlueprintIdentifierKey"
	BlueprintVersionKey                  = "DVTSourceControlWorkspaceBlueprintVersion"
	BlueprintPrimaryRemoteRepositoryKey  = "DVTSourceControlWorkspaceBlueprintPrimaryRemoteRepositoryKey"
	BlueprintRemoteRepositoriesKey       = "DVTSourceControlWorkspaceBlueprintRemoteRepositoriesKey"
	BlueprintWorkingCopyPathsKey         = "DVTSourceControlWorkspaceBlueprintWorkingCopyPathsKey"
	BlueprintWorkingCopyStatesKey        = "DVTSourceControlWorkspaceBlueprintWorkingCopyStatesKey"
	BlueprintRelativePathToProjectKey    = "DVTSourceControlWorkspaceBlueprintRelativePathToProjectKey"
	BlueprintLocationsKey                = "DVTSourceControlWorkspaceBlueprintLocationsKey"
	BlueprintLocationTypeKey             = "DVTSourceControlWorkspaceBlueprintLocationTypeKey"
	BlueprintAuthenticationStrategiesKey = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryAuthenticationStrategiesKey"

	RemoteRepositoryIdentifierKey      = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryIdentifierKey"
	RemoteRepositoryURLKey             = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryURLKey"
	RemoteRepositorySystemKey          = "DVTSourceControlWorkspaceBlueprintRemoteRepositorySystemKey"
	RemoteRepositoryCertFingerprintKey = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryCertFingerprintKey"
	RemoteRepositoryTrustSelfSignedKey = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryTrustSelfSignedCertKey"

	BranchIdentifierKey = "DVTSourceControlBranchIdentifierKey"
	BranchOptionsKey    = "DVTSourceControlBranchOptionsKey"
	LocationRevisionKey = "DVTSourceControlLocationRevisionKey"

	AuthenticationTypeKey = "DVTSourceControlWorkspaceBlueprintRemoteRepositoryAuthenticationTypeKey"
	AuthUsernameKey       = "DVTSourceControlUsername"
	AuthPasswordKey       = "DVTSourceControlPassword"
	AuthPrivateKeyDataKey = "DVTSourceControlPrivateKeyDataKey"
	AuthPublicKeyDataKey  = "DVTSourceControlPublicKeyDataKey"
)

// Literal wire values required by the bot creation endpoint.
const (
	BlueprintVersion           = 203
	SourceControlSystemGit     = "com.apple.dt.Xcode.sourcecontrol.Git"
	TrustSelfSignedCert        = true
	SSHKeysAuthenticationType  = "DVTSourceControlSSHKeysAuthenticationStrategy"
	GitUsername                = "git"
	BranchLocationType         = "DVTSourceControlBranch"
	BranchOptions              = 156
	WorkingCopyStateUnmodified = 0
)

// TestAggregateKey marks the precomputed per-device summary inside a test
// hierarchy. It never names a real class or method.
const TestAggregateKey = "_xcsAggrDeviceStatus"

// Trigger condition keys
const (
	TriggerStatusKey             = "status"
	TriggerOnAnalyzerWarningsKey = "onAnalyzerWarnings"
	TriggerOnBuildErrorsKey      = "onBuildErrors"
	TriggerOnFailingTestsKey     = "onFailingTests"
	TriggerOnInternalErrorsKey   = "onInternalErrors"
	TriggerOnSuccessKey          = "onSuccess"
	TriggerOnWarningsKey         = "onWarnings"

	DefaultTriggerStatus = 2
)

package codec

import (
	"encoding/base64"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
	"github.com/m-mizutani/xcsbridge/pkg/utils/jsonfield"
)

// DecodeBlueprint decodes a blueprint exported by Xcode Server. Decoding stops
// at the first missing or malformed required field.
func DecodeBlueprint(doc jsonfield.Object) (model.Blueprint, error) {
	var bp model.Blueprint

	name, err := doc.String(types.BlueprintNameKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read blueprint name")
	}
	bp.WCCName = name

	primaryID, err := doc.String(types.BlueprintPrimaryRemoteRepositoryKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read primary remote repository")
	}
	bp.ProjectWCCIdentifier = primaryID

	workingCopyPaths, err := doc.Object(types.BlueprintWorkingCopyPathsKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read working copy paths")
	}
	projectName, err := workingCopyPaths.String(primaryID)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "primary repository has no working copy path", goerr.V("id", primaryID))
	}
	bp.ProjectName = projectName

	repo, err := findPrimaryRepository(doc, primaryID)
	if err != nil {
		return model.Blueprint{}, err
	}
	projectURL, err := repo.String(types.RemoteRepositoryURLKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read primary repository URL", goerr.V("id", primaryID))
	}
	bp.ProjectURL = projectURL
	if fp, ok := repo.OptionalString(types.RemoteRepositoryCertFingerprintKey); ok {
		bp.CertificateFingerprint = &fp
	}

	projectPath, err := doc.String(types.BlueprintRelativePathToProjectKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read relative path to project")
	}
	bp.ProjectPath = projectPath

	locations, err := doc.Object(types.BlueprintLocationsKey)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "failed to read locations")
	}
	location, err := locations.Object(primaryID)
	if err != nil {
		return model.Blueprint{}, goerr.Wrap(err, "primary repository has no location", goerr.V("id", primaryID))
	}
	bp.Branch, _ = location.OptionalString(types.BranchIdentifierKey)
	if rev, ok := location.OptionalString(types.LocationRevisionKey); ok {
		bp.CommitSHA = &rev
	}

	if strategies, ok := doc.OptionalObject(types.BlueprintAuthenticationStrategiesKey); ok {
		if auth, ok := strategies.OptionalObject(primaryID); ok {
			bp.PrivateSSHKey = optionalString(auth, types.AuthPrivateKeyDataKey)
			bp.PublicSSHKey = optionalString(auth, types.AuthPublicKeyDataKey)
			bp.SSHPassphrase = optionalString(auth, types.AuthPasswordKey)
		}
	}

	return bp, nil
}

func findPrimaryRepository(doc jsonfield.Object, primaryID string) (jsonfield.Object, error) {
	repos, err := doc.Objects(types.BlueprintRemoteRepositoriesKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read remote repositories")
	}

	var matched []jsonfield.Object
	for _, repo := range repos {
		id, err := repo.String(types.RemoteRepositoryIdentifierKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read remote repository identifier")
		}
		if id == primaryID {
			matched = append(matched, repo)
		}
	}

	if len(matched) != 1 {
		return nil, goerr.Wrap(&model.NoPrimaryRepositoryError{ID: primaryID, Matches: len(matched)},
			"primary repository lookup failed",
			goerr.V("id", primaryID),
			goerr.V("matches", len(matched)),
			goerr.V("repositories", len(repos)),
		)
	}
	return matched[0], nil
}

func optionalString(obj jsonfield.Object, key string) *string {
	if s, ok := obj.OptionalString(key); ok {
		return &s
	}
	return nil
}

// EncodeCredentialSubset builds the preflight payload. Missing keys and
// passphrase are sent as empty strings.
func EncodeCredentialSubset(bp model.Blueprint) *model.CredentialPayload {
	repoID := bp.ProjectWCCIdentifier

	return &model.CredentialPayload{
		RemoteRepositories: []model.RemoteRepository{
			{
				URL:                    bp.ProjectURL,
				System:                 types.SourceControlSystemGit,
				Identifier:             repoID,
				CertificateFingerprint: model.Deref(bp.CertificateFingerprint),
				TrustSelfSignedCert:    types.TrustSelfSignedCert,
			},
		},
		PrimaryRemoteRepository: repoID,
		AuthenticationStrategies: map[string]model.AuthenticationStrategy{
			repoID: {
				Type:           types.SSHKeysAuthenticationType,
				Username:       types.GitUsername,
				Password:       encodeBase64(bp.SSHPassphrase),
				PrivateKeyData: encodeBase64(bp.PrivateSSHKey),
				PublicKeyData:  encodeBase64(bp.PublicSSHKey),
			},
		},
	}
}

// BlueprintEncoder builds bot creation payloads. Each payload gets a fresh
// identifier from the configured generator.
type BlueprintEncoder struct {
	idGen interfaces.IDGenerator
}

// NewBlueprintEncoder creates a BlueprintEncoder
func NewBlueprintEncoder(idGen interfaces.IDGenerator) *BlueprintEncoder {
	return &BlueprintEncoder{idGen: idGen}
}

// EncodeCredentialSubset builds the preflight payload
func (e *BlueprintEncoder) EncodeCredentialSubset(bp model.Blueprint) *model.CredentialPayload {
	return EncodeCredentialSubset(bp)
}

// EncodeBotCreationPayload builds the bot creation payload on top of the credential subset
func (e *BlueprintEncoder) EncodeBotCreationPayload(bp model.Blueprint) *model.BotCreationPayload {
	repoID := bp.ProjectWCCIdentifier

	return &model.BotCreationPayload{
		CredentialPayload: *EncodeCredentialSubset(bp),
		Locations: map[string]model.Location{
			repoID: {
				Branch:  bp.Branch,
				Options: types.BranchOptions,
				Type:    types.BranchLocationType,
			},
		},
		WorkingCopyPaths: map[string]string{
			repoID: workingCopyPath(bp.ProjectName),
		},
		RelativePathToProject: bp.ProjectPath,
		Name:                  bp.WCCName,
		WorkingCopyStates: map[string]int{
			repoID: types.WorkingCopyStateUnmodified,
		},
		Version:    types.BlueprintVersion,
		Identifier: e.idGen.NewID(),
	}
}

func workingCopyPath(name string) string {
	if strings.HasSuffix(name, "/") {
		return name
	}
	return name + "/"
}

func encodeBase64(s *string) string {
	if s == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(*s))
}

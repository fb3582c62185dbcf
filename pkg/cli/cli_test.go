package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
)

const exportedBlueprint = `{
	"DVTSourceControlWorkspaceBlueprintNameKey": "App",
	"DVTSourceControlWorkspaceBlueprintPrimaryRemoteRepositoryKey": "REPO-1",
	"DVTSourceControlWorkspaceBlueprintWorkingCopyPathsKey": {"REPO-1": "App"},
	"DVTSourceControlWorkspaceBlueprintRemoteRepositoriesKey": [
		{
			"DVTSourceControlWorkspaceBlueprintRemoteRepositoryIdentifierKey": "REPO-1",
			"DVTSourceControlWorkspaceBlueprintRemoteRepositoryURLKey": "git@example.com:app.git"
		}
	],
	"DVTSourceControlWorkspaceBlueprintRelativePathToProjectKey": "App.xcodeproj",
	"DVTSourceControlWorkspaceBlueprintLocationsKey": {"REPO-1": {"DVTSourceControlBranchIdentifierKey": "main"}}
}`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	err := run(context.Background(), append([]string{"xcsbridge", "--log-level", "error"}, args...), strings.NewReader(stdin), &stdout)
	return stdout.String(), err
}

func TestBlueprintEncode_TOML(t *testing.T) {
	input := `
branch = "main"
project_wcc_identifier = "REPO-1"
wcc_name = "App"
project_name = "App"
project_url = "git@example.com:app.git"
project_path = "App.xcodeproj"
private_ssh_key = "key"
`
	out, err := runCLI(t, input, "blueprint", "encode", "--format", "toml", "--id", "FIXED", "--fingerprint", "AA:BB")
	gt.NoError(t, err)

	var payload map[string]any
	gt.NoError(t, json.Unmarshal([]byte(out), &payload))
	gt.V(t, payload[types.BlueprintIdentifierKey]).Equal(any("FIXED"))
	gt.V(t, payload[types.BlueprintWorkingCopyPathsKey]).Equal(any(map[string]any{"REPO-1": "App/"}))

	auth := payload[types.BlueprintAuthenticationStrategiesKey].(map[string]any)["REPO-1"].(map[string]any)
	gt.V(t, auth[types.AuthPrivateKeyDataKey]).Equal(any("a2V5"))
	gt.V(t, auth[types.AuthPublicKeyDataKey]).Equal(any(""))

	repo := payload[types.BlueprintRemoteRepositoriesKey].([]any)[0].(map[string]any)
	gt.V(t, repo[types.RemoteRepositoryCertFingerprintKey]).Equal(any("AA:BB"))
}

func TestBlueprintEncode_PreflightFromExport(t *testing.T) {
	out, err := runCLI(t, exportedBlueprint, "blueprint", "encode", "--format", "export", "--mode", "preflight")
	gt.NoError(t, err)

	var payload map[string]any
	gt.NoError(t, json.Unmarshal([]byte(out), &payload))
	gt.V(t, len(payload)).Equal(3)
	gt.V(t, payload[types.BlueprintPrimaryRemoteRepositoryKey]).Equal(any("REPO-1"))
}

func TestBlueprintEncode_Errors(t *testing.T) {
	_, err := runCLI(t, `{}`, "blueprint", "encode", "--format", "yaml")
	gt.Error(t, err)

	_, err = runCLI(t, `{}`, "blueprint", "encode", "--mode", "create")
	gt.Error(t, err)
}

func TestBlueprintDecode(t *testing.T) {
	out, err := runCLI(t, exportedBlueprint, "blueprint", "decode")
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out, `"project_url": "git@example.com:app.git"`))
	gt.True(t, strings.Contains(out, `"branch": "main"`))

	_, err = runCLI(t, `{"DVTSourceControlWorkspaceBlueprintNameKey": "App"}`, "blueprint", "decode")
	gt.Error(t, err)
}

func TestTests(t *testing.T) {
	input := `{"T": {"C": {"a()": {"d1": 1, "d2": 1}, "b()": {"d1": 1, "d2": 0}, "_xcsAggrDeviceStatus": {"d1": 1, "d2": 0}}}}`

	out, err := runCLI(t, input, "tests", "--no-color")
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out, "✓ a()"))
	gt.True(t, strings.Contains(out, "✗ b() (d2)"))
	gt.True(t, strings.Contains(out, "2 tests, 1 passed, 1 failed"))
	gt.False(t, strings.Contains(out, types.TestAggregateKey))

	_, err = runCLI(t, input, "tests", "--no-color", "--fail-on-failure")
	gt.Error(t, err)

	out, err = runCLI(t, input, "tests", "--json")
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out, types.TestAggregateKey))
}

func TestTriggers(t *testing.T) {
	out, err := runCLI(t, `{"onAnalyzerWarnings": true, "onBuildErrors": true, "onFailingTests": true, "onSuccess": true, "onWarnings": true}`, "triggers")
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out, `"status": 2`))
	gt.True(t, strings.Contains(out, `"onInternalErrors": false`))
}

func TestInvalidLogLevel(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"xcsbridge", "--log-level", "loud", "triggers"}, strings.NewReader(`{}`), &stdout)
	gt.Error(t, err)
}

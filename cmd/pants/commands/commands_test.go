package commands_test

import (
	"context"
	"testing"

	"github.com/0xg0nz0/pants/cmd/pants/commands"
	"github.com/0xg0nz0/pants/internal/adapters/telemetry"
	"github.com/0xg0nz0/pants/internal/app"
	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports/mocks"
	"github.com/0xg0nz0/pants/internal/engine/cgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockAnalysisLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)

	configLoader := mocks.NewMockConfigLoader(ctrl)
	analysisLoader := mocks.NewMockAnalysisLoader(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	compiler := cgo.NewCompiler(
		mocks.NewMockProcessExecutor(ctrl),
		mocks.NewMockCgoPreprocessor(ctrl),
		mocks.NewMockGoCompiler(ctrl),
		mocks.NewMockArchiver(ctrl),
		store,
		mocks.NewMockToolchainLocator(ctrl),
		log,
		telemetry.NewNoOp(),
	)

	a := app.New(configLoader, analysisLoader, store, compiler, log)
	return commands.New(a), configLoader, analysisLoader
}

func TestCompile_LoadFailurePropagates(t *testing.T) {
	cli, configLoader, _ := newCLI(t)

	configLoader.EXPECT().
		Load("pants.yaml").
		Return(nil, zerr.New("no such file"))

	cli.SetArgs([]string{"compile", "analysis.yaml"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestCompile_ConfigFlagOverridesDefault(t *testing.T) {
	cli, configLoader, analysisLoader := newCLI(t)

	configLoader.EXPECT().
		Load("custom.yaml").
		Return(&domain.BuildConfig{}, nil)
	analysisLoader.EXPECT().
		LoadAnalysis("analysis.yaml").
		Return(nil, zerr.New("broken manifest"))

	cli.SetArgs([]string{"compile", "-c", "custom.yaml", "analysis.yaml"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load package analysis")
}

func TestCompile_RequiresManifestArg(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"compile"})
	assert.Error(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"version"})
	assert.NoError(t, cli.Execute(context.Background()))
}

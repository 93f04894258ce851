package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundler/internal/adapters/config"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_DefaultsWithoutProjectFile(t *testing.T) {
	t.Chdir(t.TempDir())

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProject(), project)
}

func TestLoader_Load_DiscoversProjectFile(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ProjectFileName, "version: \"1\"\nname: Blink\n")
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Blink", project.Name)
	assert.Equal(t, "src/eyemouse/app.py", project.Entry)
}

func TestLoader_Load_FullFile(t *testing.T) {
	content := `
version: "1"
name: Blink
entry: app/main.py
tool: pyinstaller-6
dist: out
data:
  - source: app
    dest: app
  - source: models/face.dat
    dest: models
icons:
  windows: art/blink.ico
  macos: ""
`
	path := createFile(t, t.TempDir(), "custom.yaml", content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Blink", project.Name)
	assert.Equal(t, "app/main.py", project.Entry)
	assert.Equal(t, "pyinstaller-6", project.Tool)
	assert.Equal(t, "out", project.DistDir)
	assert.Equal(t, []domain.DataMapping{
		{Source: "app", Dest: "app"},
		{Source: "models/face.dat", Dest: "models"},
	}, project.Data)

	icon, ok := project.Icon(domain.TargetWindows)
	assert.True(t, ok)
	assert.Equal(t, "art/blink.ico", icon)

	_, ok = project.Icon(domain.TargetMacOS)
	assert.False(t, ok, "an empty icon disables it")

	assert.Equal(t, "out/blink", project.ArtifactPath(domain.TargetLinux))
}

func TestLoader_Load_EmptyDataReplacesDefaults(t *testing.T) {
	path := createFile(t, t.TempDir(), domain.ProjectFileName, "data: []\n")

	ctrl := gomock.NewController(t)
	project, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)
	assert.Empty(t, project.Data)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := createFile(t, t.TempDir(), domain.ProjectFileName, "")

	ctrl := gomock.NewController(t)
	project, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProject(), project)
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	path := createFile(t, t.TempDir(), domain.ProjectFileName, "version: \"2\"\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown field", content: "nmae: Blink\n", wantErr: domain.ErrConfigParseFailed},
		{name: "malformed", content: "name: [\n", wantErr: domain.ErrConfigParseFailed},
		{name: "invalid name", content: "name: Eye Mouse\n", wantErr: domain.ErrInvalidProjectName},
		{name: "path in name", content: "name: ../EyeMouse\n", wantErr: domain.ErrInvalidProjectName},
		{name: "data without dest", content: "data:\n  - source: src\n", wantErr: domain.ErrInvalidDataMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), domain.ProjectFileName, tt.content)

			ctrl := gomock.NewController(t)
			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

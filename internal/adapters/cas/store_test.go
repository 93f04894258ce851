package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundler/internal/adapters/cas"
	"go.trai.ch/bundler/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), domain.StateDir, cas.DefaultFileName))

	got, err := store.Get("Linux")
	require.NoError(t, err)
	assert.Nil(t, got)

	record := domain.BuildRecord{
		Target:    "Linux",
		Command:   []string{"pyinstaller", "--onefile"},
		Artifact:  "dist/eyemouse",
		Digest:    "00000000000000ff",
		Size:      10,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Put(record))

	got, err = store.Get("Linux")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.StateDir, cas.DefaultFileName)

	store1 := cas.NewStore(path)
	require.NoError(t, store1.Put(domain.BuildRecord{Target: "Windows", Digest: "aa"}))
	require.NoError(t, store1.Put(domain.BuildRecord{Target: "Windows", Digest: "bb"}))

	got, err := cas.NewStore(path).Get("Windows")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bb", got.Digest)
}

func TestStore_EmptyFiles(t *testing.T) {
	for name, content := range map[string]string{
		"empty": "",
		"null":  "null",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), cas.DefaultFileName)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			store := cas.NewStore(path)

			got, err := store.Get("Linux")
			require.NoError(t, err)
			assert.Nil(t, got)

			require.NotPanics(t, func() {
				require.NoError(t, store.Put(domain.BuildRecord{Target: "Linux"}))
			})

			// Put also works without a preceding Get.
			require.NotPanics(t, func() {
				require.NoError(t, cas.NewStore(path).Put(domain.BuildRecord{Target: "macOS"}))
			})
		})
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), cas.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// Construction never reads the file.
	store := cas.NewStore(path)

	_, err := store.Get("Linux")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal build record store")

	err = store.Put(domain.BuildRecord{Target: "Linux"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal build record store")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "corrupt store must not be overwritten")
}

func TestStore_ReadError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o600))

	// The parent of the store path is a regular file.
	_, err := cas.NewStore(filepath.Join(blocker, cas.DefaultFileName)).Get("Linux")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read build record store")
}

func TestStore_WriteError(t *testing.T) {
	dir := t.TempDir()
	stateDir := filepath.Join(dir, domain.StateDir)
	store := cas.NewStore(filepath.Join(stateDir, cas.DefaultFileName))

	got, err := store.Get("Linux")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The state directory is replaced by a regular file after the store loaded.
	require.NoError(t, os.WriteFile(stateDir, []byte("file"), 0o600))

	err = store.Put(domain.BuildRecord{Target: "Linux"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create directory for build record store")
}

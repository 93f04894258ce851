package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundler/internal/adapters/prompt"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "y\n", want: true},
		{line: "Y\n", want: true},
		{line: "y\r\n", want: true},
		{line: "y", want: true},
		{line: "yes\n", want: false},
		{line: " y\n", want: false},
		{line: "y \n", want: false},
		{line: "n\n", want: false},
		{line: "\n", want: false},
		{line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, prompt.IsAffirmative(tt.line))
		})
	}
}

func TestPrompter_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	p := prompt.New(strings.NewReader("y\nn\n"), &out, mocks.NewMockLogger(ctrl))

	ok, err := p.Confirm(context.Background(), "Continue? (y/n): ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm(context.Background(), "Again? ")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "Continue? (y/n): Again? ", out.String())
}

func TestPrompter_Confirm_EOFDeclines(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := prompt.New(strings.NewReader(""), io.Discard, mocks.NewMockLogger(ctrl))

	ok, err := p.Confirm(context.Background(), "Continue? (y/n): ")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestPrompter_Confirm_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := prompt.New(failingReader{}, io.Discard, mocks.NewMockLogger(ctrl))

	ok, err := p.Confirm(context.Background(), "Continue? (y/n): ")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPromptFailed.Error())
	assert.False(t, ok)
}

func TestPrompter_Confirm_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, w := io.Pipe()
	defer w.Close() //nolint:errcheck // test cleanup

	p := prompt.New(r, io.Discard, mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := p.Confirm(ctx, "Continue? (y/n): ")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestPrompter_Confirm_WarnsOnPipedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(path, []byte("Y\n"), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	p := prompt.New(f, io.Discard, mockLogger)

	ok, err := p.Confirm(context.Background(), "Continue? (y/n): ")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Confirm(context.Background(), "Again? ")
	require.NoError(t, err)
}

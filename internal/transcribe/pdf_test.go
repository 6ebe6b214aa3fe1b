package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// fakeRenderer pretends to be pdftoppm: it writes n page files next to
// the output prefix instead of running anything.
type fakeRenderer struct {
	pages     int
	err       error
	gotPrefix *string
}

func (f fakeRenderer) Run(_ context.Context, _ string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	if f.err != nil {
		return nil, []byte("render failed"), f.err
	}
	prefix := args[len(args)-1]
	if f.gotPrefix != nil {
		*f.gotPrefix = prefix
	}
	for i := 1; i <= f.pages; i++ {
		if err := os.WriteFile(fmt.Sprintf("%s-%02d.png", prefix, i), []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

type fakeImage struct {
	failOn map[string]bool
}

func (f fakeImage) Transcribe(_ context.Context, path string, _ string) (entity.Transcription, error) {
	base := filepath.Base(path)
	if f.failOn[base] {
		return entity.Transcription{}, errors.New("api status 500: boom")
	}
	return entity.Transcription{Text: "page " + base, Confidence: 90}, nil
}

func TestPDFTranscribe(t *testing.T) {
	tr := NewPDFTranscriber(fakeImage{}, fakeRenderer{pages: 3}, "pdftoppm", "", 200, 10, nil)
	got, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Pages)
	assert.Equal(t, float32(90), got.Confidence)
	assert.Contains(t, got.Text, "--- ページ 1 ---")
	assert.Contains(t, got.Text, "--- ページ 3 ---")
}

func TestPDFTranscribeCapsPages(t *testing.T) {
	tr := NewPDFTranscriber(fakeImage{}, fakeRenderer{pages: 5}, "pdftoppm", "", 200, 2, nil)
	got, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Pages)
	assert.NotContains(t, got.Text, "ページ 3")
}

func TestPDFTranscribeToleratesPageFailure(t *testing.T) {
	tr := NewPDFTranscriber(
		fakeImage{failOn: map[string]bool{"page-02.png": true}},
		fakeRenderer{pages: 3}, "pdftoppm", "", 200, 10, nil)
	got, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Pages)
	assert.Equal(t, 2, strings.Count(got.Text, "--- ページ"))
}

func TestPDFTranscribeUsesCacheDir(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "scratch")
	var prefix string
	tr := NewPDFTranscriber(fakeImage{}, fakeRenderer{pages: 1, gotPrefix: &prefix}, "pdftoppm", cache, 200, 10, nil)
	_, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prefix, cache+string(filepath.Separator)),
		"render prefix %q not under cache dir %q", prefix, cache)
	_, err = os.Stat(cache)
	require.NoError(t, err)
}

func TestPDFTranscribeRenderFailure(t *testing.T) {
	tr := NewPDFTranscriber(fakeImage{}, fakeRenderer{err: errors.New("exit status 1")}, "pdftoppm", "", 200, 10, nil)
	_, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render pdf")
}

func TestPDFTranscribeAllPagesFail(t *testing.T) {
	tr := NewPDFTranscriber(
		fakeImage{failOn: map[string]bool{"page-01.png": true, "page-02.png": true}},
		fakeRenderer{pages: 2}, "pdftoppm", "", 200, 10, nil)
	_, err := tr.Transcribe(context.Background(), "catalog.pdf", "ja")
	assert.Error(t, err)
}

func TestRouterUnsupportedExtension(t *testing.T) {
	r := NewRouter(fakeImage{}, NewExcelTranscriber(nil), nil)
	_, err := r.Transcribe(context.Background(), "notes.txt", "ja")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRouterDispatchesImage(t *testing.T) {
	r := NewRouter(fakeImage{}, nil, nil)
	got, err := r.Transcribe(context.Background(), "sheet.jpg", "ja")
	require.NoError(t, err)
	assert.Equal(t, "page sheet.jpg", got.Text)
}

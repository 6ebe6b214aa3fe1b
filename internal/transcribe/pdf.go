package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// PDFTranscriber rasterizes PDF pages with pdftoppm and feeds each page
// to the image transcriber.
type PDFTranscriber struct {
	image    Transcriber
	runner   Runner
	renderer string
	cacheDir string
	dpi      int
	maxPages int
	log      *slog.Logger
}

// cacheDir is the scratch root for rendered pages; empty means the
// system temp dir.
func NewPDFTranscriber(image Transcriber, runner Runner, renderer, cacheDir string, dpi, maxPages int, logger *slog.Logger) *PDFTranscriber {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if renderer == "" {
		renderer = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 200
	}
	if maxPages <= 0 {
		maxPages = 10
	}
	return &PDFTranscriber{
		image:    image,
		runner:   runner,
		renderer: renderer,
		cacheDir: cacheDir,
		dpi:      dpi,
		maxPages: maxPages,
		log:      logger,
	}
}

func (t *PDFTranscriber) Transcribe(ctx context.Context, path string, language string) (entity.Transcription, error) {
	if t.cacheDir != "" {
		if err := os.MkdirAll(t.cacheDir, 0o755); err != nil {
			return entity.Transcription{}, fmt.Errorf("create cache dir: %w", err)
		}
	}
	tmpDir, err := os.MkdirTemp(t.cacheDir, "catalog-pdf-*")
	if err != nil {
		return entity.Transcription{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	_, stderr, err := t.runner.Run(ctx, t.renderer, t.log,
		"-r", strconv.Itoa(t.dpi), "-png", path, prefix)
	if err != nil {
		return entity.Transcription{}, fmt.Errorf("render pdf: %w: %s", err, truncate(string(stderr), 512))
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return entity.Transcription{}, fmt.Errorf("glob pages: %w", err)
	}
	if len(pages) == 0 {
		return entity.Transcription{}, fmt.Errorf("no pages rendered from %s", path)
	}
	sort.Strings(pages)
	if len(pages) > t.maxPages {
		t.log.Warn("pdf.pages_capped", "file", path, "rendered", len(pages), "cap", t.maxPages)
		pages = pages[:t.maxPages]
	}

	var (
		parts    []string
		products []entity.RecordFields
		confSum  float32
		okPages  int
	)
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return entity.Transcription{}, err
		}
		tr, err := t.image.Transcribe(ctx, page, language)
		if err != nil {
			// a bad page should not sink the rest of the document
			t.log.Warn("pdf.page_failed", "file", path, "page", i+1, "error", err)
			continue
		}
		parts = append(parts, fmt.Sprintf("--- ページ %d ---\n%s", i+1, tr.Text))
		products = append(products, tr.Products...)
		confSum += tr.Confidence
		okPages++
	}
	if okPages == 0 {
		return entity.Transcription{}, fmt.Errorf("all %d pages failed to transcribe", len(pages))
	}

	return entity.Transcription{
		Text:       strings.Join(parts, "\n\n"),
		Confidence: confSum / float32(okPages),
		Language:   language,
		Pages:      okPages,
		Method:     "pdf_vision",
		Products:   products,
	}, nil
}

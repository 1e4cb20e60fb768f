package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/internal/common"
)

// TextThreshold is the minimum stripped character count for a PDF to be
// treated as text-native. Below it the document is assumed to be a scanned
// image masquerading as a PDF and is routed to the vision model.
const TextThreshold = 50

type Config struct {
	Pdftotext     string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm      string // binary name or absolute path; if empty -> "pdftoppm"
	HeicConverter string // "heif-convert" | "magick" | "sips"

	DPI           int   // rasterization DPI for scanned PDFs, default 200
	MaxPages      int   // 0 = no limit
	MaxImageBytes int64 // vision payload size gate, default 10 MiB
}

// Extractor decides between direct text extraction and vision-model routing
// and produces one Unit per page or image. Deterministic given file bytes.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 10 << 20
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) ([]Unit, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToKind(ext) {
	case constants.PDF:
		return e.extractPDF(ctx, path)
	case constants.IMAGE:
		return e.extractImage(ctx, path, ext)
	default:
		return nil, &common.ExtractionError{Key: path, Cause: fmt.Errorf("unsupported extension: %q", ext)}
	}
}

// extractPDF attempts direct text extraction first. If the stripped character
// count exceeds TextThreshold the PDF has a real text layer and no model call
// is needed; otherwise every page is rasterized for the vision model.
func (e *Extractor) extractPDF(ctx context.Context, path string) ([]Unit, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, &common.ExtractionError{Key: path, Cause: fmt.Errorf("probe pdf: %w", err)}
	}
	if pages == 0 {
		return nil, &common.ExtractionError{Key: path, Cause: fmt.Errorf("pdf has zero pages")}
	}

	text, terr := e.pdfToText(ctx, path)
	stripped := len(strings.Join(strings.Fields(text), ""))
	if terr == nil && stripped > TextThreshold {
		e.logger.Debug("extract.pdf.text_native", "path", path, "pages", pages, "chars", stripped)
		return splitTextPages(text), nil
	}
	if terr != nil {
		e.logger.Warn("extract.pdf.pdftotext_failed", "path", path, "error", terr)
	}

	e.logger.Debug("extract.pdf.model_routed", "path", path, "pages", pages, "chars", stripped)
	return e.rasterizePDF(ctx, path)
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %s: %w", errb, err)
	}
	return string(out), nil
}

// splitTextPages turns pdftotext output into one TextNative unit per page.
// A form-feed \f is the page separator; blank pages are dropped.
func splitTextPages(text string) []Unit {
	var units []Unit
	for i, page := range strings.Split(text, "\f") {
		if strings.TrimSpace(page) == "" {
			continue
		}
		units = append(units, Unit{Page: i, Kind: TextNative, Text: page})
	}
	return units
}

func (e *Extractor) rasterizePDF(ctx context.Context, path string) ([]Unit, error) {
	tmpDir, err := os.MkdirTemp("", "ski-pp-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("extract.pdf.tmp_cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, &common.ExtractionError{Key: path, Cause: fmt.Errorf("pdftoppm: %s: %w", errb, err)}
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, &common.ExtractionError{Key: path, Cause: fmt.Errorf("pdftoppm produced no images")}
	}

	units := make([]Unit, 0, len(matches))
	for i, img := range matches {
		b, rerr := os.ReadFile(img)
		if rerr != nil {
			return nil, &common.ExtractionError{Key: path, Cause: rerr}
		}
		if err := e.gateImageSize(int64(len(b))); err != nil {
			return nil, err
		}
		units = append(units, Unit{Page: i, Kind: ModelRouted, Image: b, MediaType: "image/png"})
	}
	return units, nil
}

// extractImage routes a raw image straight to the vision model, converting
// HEIC first since the model cannot accept that container.
func (e *Extractor) extractImage(ctx context.Context, path, ext string) ([]Unit, error) {
	mediaType := constants.MediaTypes[ext]
	if constants.IsHEICExt(ext) {
		out, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
		if cleanup != nil {
			defer cleanup()
		}
		if err != nil {
			return nil, &common.ModelInvocationError{Transient: false, Cause: fmt.Errorf("heic conversion: %w", err)}
		}
		path = out
		mediaType = "image/png"
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &common.ExtractionError{Key: path, Cause: err}
	}
	if err := e.gateImageSize(int64(len(b))); err != nil {
		return nil, err
	}
	return []Unit{{Page: 0, Kind: ModelRouted, Image: b, MediaType: mediaType}}, nil
}

// gateImageSize flags oversized images for resizing instead of submitting a
// payload destined to be rejected.
func (e *Extractor) gateImageSize(n int64) error {
	if n <= e.cfg.MaxImageBytes {
		return nil
	}
	return &common.ModelInvocationError{
		Transient: true,
		Cause:     fmt.Errorf("image is %d bytes, exceeds %d byte vision payload limit", n, e.cfg.MaxImageBytes),
	}
}

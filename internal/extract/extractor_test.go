package extract

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsun/ski-results/internal/common"
)

// stubRunner fakes external binaries. For converter invocations it writes
// fake output to the path the converter was asked to produce.
type stubRunner struct {
	calls   [][]string
	fail    bool
	outData []byte
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.fail {
		return nil, []byte("boom"), errors.New("exit status 1")
	}
	if len(s.outData) > 0 && len(args) > 0 {
		out := args[len(args)-1]
		if err := os.WriteFile(out, s.outData, 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	path := writeTempFile(t, "sheet.docx", []byte("not a sheet"))

	_, err := e.Extract(context.Background(), path)

	var ee *common.ExtractionError
	require.True(t, errors.As(err, &ee))
}

func TestExtractImageRoutesToModel(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	data := bytes.Repeat([]byte{0xAB}, 128)
	path := writeTempFile(t, "photo.jpg", data)

	units, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, units, 1)
	assert.Equal(t, ModelRouted, units[0].Kind)
	assert.Equal(t, "image/jpeg", units[0].MediaType)
	assert.Equal(t, data, units[0].Image)
	assert.Equal(t, 0, units[0].Page)
}

func TestExtractImageSizeGate(t *testing.T) {
	e := NewExtractor(Config{MaxImageBytes: 64}, nil)
	path := writeTempFile(t, "huge.png", bytes.Repeat([]byte{0x01}, 65))

	_, err := e.Extract(context.Background(), path)

	var mie *common.ModelInvocationError
	require.True(t, errors.As(err, &mie))
	assert.True(t, mie.Transient, "oversized image should be retry-eligible after resizing")
	assert.True(t, common.IsTransient(err))
}

func TestExtractHEICConversion(t *testing.T) {
	stub := &stubRunner{outData: []byte("png-bytes")}
	e := NewExtractor(Config{HeicConverter: "magick"}, nil)
	e.runner = stub
	path := writeTempFile(t, "photo.heic", []byte("heic-container"))

	units, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, units, 1)
	assert.Equal(t, ModelRouted, units[0].Kind)
	assert.Equal(t, "image/png", units[0].MediaType, "converted output replaces the heic container")
	assert.Equal(t, []byte("png-bytes"), units[0].Image)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, "magick", stub.calls[0][0])
	assert.Equal(t, path, stub.calls[0][1])
}

func TestExtractHEICConversionFailureIsPermanent(t *testing.T) {
	stub := &stubRunner{fail: true}
	e := NewExtractor(Config{HeicConverter: "magick"}, nil)
	e.runner = stub
	path := writeTempFile(t, "photo.heic", []byte("heic-container"))

	_, err := e.Extract(context.Background(), path)

	var mie *common.ModelInvocationError
	require.True(t, errors.As(err, &mie))
	assert.False(t, mie.Transient, "a broken container never converts, retrying is pointless")
}

func TestSplitTextPages(t *testing.T) {
	text := "page one content\fpage two content\f   \fpage four content"

	units := splitTextPages(text)

	require.Len(t, units, 3)
	for _, u := range units {
		assert.Equal(t, TextNative, u.Kind)
	}
	assert.Equal(t, 0, units[0].Page)
	assert.Equal(t, 1, units[1].Page)
	assert.Equal(t, 3, units[2].Page, "blank page dropped but indices preserved")
	assert.Equal(t, "page four content", units[2].Text)
}

func TestUnitKindString(t *testing.T) {
	assert.Equal(t, "text-native", TextNative.String())
	assert.Equal(t, "model-routed", ModelRouted.String())
}

package utils

import (
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldDownloadFile(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		png.Encode(w, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL + "/logo.png")
	assert.NoError(err)
	defer os.Remove(f.Name())
	defer f.Close()

	assert.Equal(".png", filepath.Ext(f.Name()))

	ctype, err := DetectContentType(f.Name())
	assert.NoError(err)
	assert.True(IsImage(ctype))
}

func TestUtils_DownloadShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := DownloadFile(srv.URL + "/missing.ttf")
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidUrl("https://github.com/fpv-wtf/msp-osd"))
	assert.False(IsValidUrl("fonts/BebasNeue-Regular.ttf"))
	assert.False(IsValidUrl("-"))
}

func TestUtils_ShouldDetectTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("icons: []\n"), 0o644))

	ctype, err := DetectContentType(path)
	assert.NoError(t, err)
	assert.False(t, IsImage(ctype))
	assert.False(t, IsFont(ctype))
}

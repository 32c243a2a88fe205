package verify

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const albumHTML = `<!doctype html>
<html>
<head><title>My Quiz Gallery — Postimage.org</title></head>
<body>
<div class="gallery">
  <a href="https://postimg.cc/one"><img src="https://i.postimg.cc/abc/one.avif"></a>
  <a href="https://postimg.cc/two"><img src="https://i.postimg.cc/def/two.avif"></a>
  <a href="https://postimg.cc/two"><img src="https://i.postimg.cc/def/two.avif"></a>
  <img src="/static/logo.png">
</div>
</body>
</html>`

func TestInspectAlbumPage(t *testing.T) {
	report, err := inspect(strings.NewReader(albumHTML), "https://postimg.cc/a/Xy12Zz")
	require.NoError(t, err)

	assert.True(t, report.IsAlbum)
	assert.Equal(t, 2, report.ImageCount)
	assert.Equal(t, "My Quiz Gallery — Postimage.org", report.Title)
}

func TestInspectImagePage(t *testing.T) {
	html := `<html><head><title>pic</title></head><body><img src="https://i.postimg.cc/abc/pic.avif"></body></html>`

	report, err := inspect(strings.NewReader(html), "https://postimg.cc/xyz123")
	require.NoError(t, err)

	assert.False(t, report.IsAlbum)
	assert.Equal(t, 1, report.ImageCount)
}

func TestSummaryDeadLink(t *testing.T) {
	r := &Report{URL: "https://postimg.cc/gone", StatusCode: http.StatusNotFound}
	assert.Contains(t, r.Summary(), "HTTP 404")
}

func TestSummaryAlbum(t *testing.T) {
	r := &Report{
		URL:        "https://postimg.cc/a/Xy12Zz",
		StatusCode: http.StatusOK,
		IsAlbum:    true,
		ImageCount: 3,
		Title:      "gallery",
	}

	s := r.Summary()
	assert.Contains(t, s, "album")
	assert.Contains(t, s, "3 hosted image(s)")
}

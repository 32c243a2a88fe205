package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsResult(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"https://postimages.org/gallery/abc", true},
		{"https://postimg.cc/xyz123", true},
		{"https://i.postimg.cc/abc/pic.avif", true},
		{"https://example.com/postim", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsResult(tt.href), tt.href)
	}
}

func TestIsAlbum(t *testing.T) {
	assert.True(t, IsAlbum("https://postimg.cc/a/Xy12Zz"))
	assert.True(t, IsAlbum("https://postimages.org/album/f00ba4"))
	assert.False(t, IsAlbum("https://postimg.cc/xyz123"))
}

func TestSetDedupePreservesOrder(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add("https://postimg.cc/one"))
	assert.True(t, s.Add("https://postimg.cc/two"))
	assert.False(t, s.Add("https://postimg.cc/one"))
	assert.False(t, s.Add("  "))
	assert.True(t, s.Add("https://postimg.cc/three"))

	assert.Equal(t, []string{
		"https://postimg.cc/one",
		"https://postimg.cc/two",
		"https://postimg.cc/three",
	}, s.URLs())
	assert.Equal(t, 3, s.Len())
}

func TestURLsReturnsCopy(t *testing.T) {
	s := NewSet()
	s.AddAll("https://postimg.cc/one", "https://postimg.cc/two")

	got := s.URLs()
	got[0] = "mutated"

	assert.Equal(t, "https://postimg.cc/one", s.URLs()[0])
}

func TestAlbumFirst(t *testing.T) {
	in := []string{
		"https://postimg.cc/img1",
		"https://postimg.cc/a/album1",
		"https://postimg.cc/img2",
		"https://postimages.org/album/album2",
	}

	assert.Equal(t, []string{
		"https://postimg.cc/a/album1",
		"https://postimages.org/album/album2",
		"https://postimg.cc/img1",
		"https://postimg.cc/img2",
	}, AlbumFirst(in))
}

func TestDedupe(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe(in))
}

// Package links tracks result URLs scraped from the upload page.
package links

import "strings"

const (
	hostMain  = "postimages.org"
	hostShort = "postimg.cc"
)

// IsResult reports whether href points at one of the hosting domains.
func IsResult(href string) bool {
	return strings.Contains(href, hostMain) || strings.Contains(href, hostShort)
}

// IsAlbum reports whether href looks like a gallery/album link rather
// than a single image page.
func IsAlbum(href string) bool {
	return strings.Contains(href, "/album/") || strings.Contains(href, "/a/")
}

// Set collects URLs, deduplicated while preserving first-seen order.
type Set struct {
	seen map[string]bool
	urls []string
}

func NewSet() *Set {
	return &Set{seen: map[string]bool{}}
}

// Add records href and reports whether it was new.
func (s *Set) Add(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || s.seen[href] {
		return false
	}

	s.seen[href] = true
	s.urls = append(s.urls, href)
	return true
}

func (s *Set) AddAll(hrefs ...string) {
	for _, h := range hrefs {
		s.Add(h)
	}
}

func (s *Set) Len() int {
	return len(s.urls)
}

// URLs returns the collected links in first-seen order.
func (s *Set) URLs() []string {
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// AlbumFirst reorders urls so album links come before single-image
// links. Relative order within each group is preserved.
func AlbumFirst(urls []string) []string {
	albums := make([]string, 0, len(urls))
	rest := make([]string, 0, len(urls))

	for _, u := range urls {
		if IsAlbum(u) {
			albums = append(albums, u)
		} else {
			rest = append(rest, u)
		}
	}

	return append(albums, rest...)
}

// Dedupe removes repeated URLs while preserving first-seen order.
func Dedupe(urls []string) []string {
	s := NewSet()
	s.AddAll(urls...)
	return s.URLs()
}

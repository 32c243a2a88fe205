package postimages

const UploadURL = "https://postimages.org/"

// PageLocators lists candidate selectors for the upload form. The site
// markup is not under our control, so each element has a probe list and
// the first selector that matches wins.
type PageLocators struct {
	FileInput    []string
	AlbumInput   []string
	UploadButton []string

	ResultAnchors string
	AlbumAnchor   string
}

var Locators = PageLocators{
	FileInput: []string{
		`input[type="file"]`,
		`input[name="upload[]"]`,
		`input#uploadFiles`,
		`input[name="files[]"]`,
	},
	AlbumInput: []string{
		`input[name="album_title"]`,
		`input#album-title`,
		`input[placeholder*="Album"]`,
		`input[placeholder*="album"]`,
	},
	UploadButton: []string{
		`button:has-text("Upload")`,
		`button:has-text("Start upload")`,
		`button[type="submit"]`,
	},

	ResultAnchors: `a[href*="postimages.org"], a[href*="postimg.cc"], div.result a, div.links a, div#links a`,
	AlbumAnchor:   `a[href*="/album/"], a[href*="/a/"]`,
}

func GetLocators() *PageLocators {
	return &Locators
}

package signalwall

// Lang tags a post with one of the two listing regions.
type Lang string

const (
	LangEnglish Lang = "en"
	LangSinhala Lang = "si"
)

// Post is one entry of the post index (posts/posts.json). It is loaded once
// and never mutated afterwards.
type Post struct {
	ID      string `json:"id"`
	Lang    Lang   `json:"lang"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date,omitempty"`
	File    string `json:"file"`
}

// Link returns the site-relative deep link for the post.
func (p Post) Link() string {
	return "/post/" + PathEscape(p.ID) + "/"
}

// Permalink returns the absolute deep link for the post under base.
func (p Post) Permalink(base string) string {
	return BuildURL(base, "post", p.ID)
}

// Screen names.
const (
	ScreenGateway = "gateway"
	ScreenWall    = "wall"
	ScreenPawaura = "pawaura"
	ScreenWire    = "wire"
)

// Screen is a named, mutually exclusive region of the page. Nav reports
// whether a navigation button targets it.
type Screen struct {
	Name string
	Nav  bool
}

// DefaultScreens is the screen set rendered by the default views.
var DefaultScreens = []Screen{
	{Name: ScreenGateway},
	{Name: ScreenWall, Nav: true},
	{Name: ScreenPawaura, Nav: true},
	{Name: ScreenWire, Nav: true},
}

// ScreenForLang returns the listing screen that shows posts of lang.
func ScreenForLang(lang Lang) string {
	switch lang {
	case LangEnglish:
		return ScreenWall
	case LangSinhala:
		return ScreenPawaura
	}
	return ScreenGateway
}

// ViewState is what the router decided the page should look like.
type ViewState struct {
	Screen    string // empty when the underlying screen is left alone
	ActiveNav string
	ModalOpen bool
	Post      *Post
	Changed   bool
}

// PageData carries everything a full page or the stage fragment renders.
type PageData struct {
	Site    SiteConfig
	State   ViewState
	Screens []Screen
	Wall    []Post
	Pawaura []Post
	Reader  *ReaderView
	Reading bool
	CSRF    string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

package inkpress

// Post is the persisted unit of content, shaped exactly as the backend
// collection stores and returns it. IDs are assigned by the backend on
// create and never change; CreatedAt is stamped once, UpdatedAt on every
// full replace.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// AuthorName returns the author field for aggregation.
func (p Post) AuthorName() string { return p.Author }

// ImageSource selects which input path feeds a draft's image.
type ImageSource string

const (
	// SourceURL means the image value is a user-pasted URL, passed through untouched.
	SourceURL ImageSource = "url"
	// SourceFile means the image value is an uploaded file, compressed client-side.
	SourceFile ImageSource = "file"
)

// Draft is the transient form state preceding a Post. It exists only for
// the lifetime of the authoring view and is never persisted as-is.
type Draft struct {
	Title       string
	Author      string
	Description string
	ImageURL    string // raw value when Source is SourceURL
	ImageData   string // data-URI preview when Source is SourceFile
	Source      ImageSource
}

// ImageValue returns the raw image input selected by the draft's source tab.
func (d Draft) ImageValue() string {
	if d.Source == SourceFile {
		return d.ImageData
	}
	return d.ImageURL
}

// DraftFromPost rebuilds editable form state from a stored post. An image
// that looks like a URL lands on the URL tab; anything else (a data-URI
// from an earlier upload) lands on the file tab as the current preview.
func DraftFromPost(p Post) Draft {
	d := Draft{
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Source:      SourceFile,
		ImageData:   p.Image,
	}
	if isHTTPURL(p.Image) {
		d.Source = SourceURL
		d.ImageURL = p.Image
		d.ImageData = ""
	}
	return d
}

// ReturnTo is the navigation intent carried alongside a draft: where the
// editor sends the user after a successful submit, cancel, or a missing
// record. Carried explicitly instead of being inferred from history.
type ReturnTo int

const (
	ReturnDashboard ReturnTo = iota
	ReturnAnalytics
)

// Path returns the route the intent resolves to.
func (r ReturnTo) Path() string {
	if r == ReturnAnalytics {
		return "/analytics/"
	}
	return "/dashboard/"
}

// ParseReturnTo maps the "from" form/query value to an intent.
// Unknown values fall back to the dashboard.
func ParseReturnTo(s string) ReturnTo {
	if s == "analytics" {
		return ReturnAnalytics
	}
	return ReturnDashboard
}

func (r ReturnTo) String() string {
	if r == ReturnAnalytics {
		return "analytics"
	}
	return "dashboard"
}

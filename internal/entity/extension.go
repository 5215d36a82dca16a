package entity

// Source is one network endpoint of an extension.
type Source struct {
	Name    string `json:"name"`
	Lang    string `json:"lang"`
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl"`
}

// Extension is a single catalog entry. The catalog itself is []Extension.
type Extension struct {
	Name    string   `json:"name"`
	Pkg     string   `json:"pkg"`
	Apk     string   `json:"apk"`
	Lang    string   `json:"lang"`
	Code    int32    `json:"code"`
	Version string   `json:"version"`
	NSFW    int32    `json:"nsfw"` // 0 or 1
	Sources []Source `json:"sources"`
}

// BaseURLs returns the sources base urls in listed order.
func (e *Extension) BaseURLs() []string {
	urls := make([]string, 0, len(e.Sources))
	for _, src := range e.Sources {
		urls = append(urls, src.BaseURL)
	}

	return urls
}

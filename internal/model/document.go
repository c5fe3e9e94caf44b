package model

// Document is the descriptive text of a site and the URL it was taken from.
type Document struct {
	SiteID       string `json:"site_id"`
	SiteMarkdown string `json:"site_markdown"`
	URL          string `json:"url"`
}

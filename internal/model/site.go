package model

// SiteName is the naming record of a hunting site.
type SiteName struct {
	SiteID          string `json:"site_id"`
	FullName        string `json:"full_name"`
	AbbreviatedName string `json:"abbreviated_name"`
	SiteType        string `json:"site_type"`
}

// SiteDetail is a site together with every record that references it.
// Document and Geography are nil when the site has none.
type SiteDetail struct {
	SiteName
	Huntable  []HuntableSpecies `json:"huntable"`
	Document  *Document         `json:"document"`
	Geography *Geography        `json:"geography"`
	Harvest   []Harvest         `json:"harvest"`
}

package model

// Geography holds the physical location attributes of a site.
type Geography struct {
	SiteID        string  `json:"site_id"`
	Region        string  `json:"region"`
	County        string  `json:"county"`
	HuntableAcres int     `json:"huntable_acres"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

package model

// Harvest is a reported count of animals taken. IsCounty separates county
// level aggregates from site level ones.
type Harvest struct {
	RecordID     int    `json:"record_id"`
	SiteID       string `json:"site_id"`
	Site         string `json:"site"`
	IsCounty     bool   `json:"is_county"`
	Year         int    `json:"year"`
	Species      string `json:"species"`
	Season       string `json:"season"`
	Subcategory  string `json:"subcategory"`
	HarvestCount int    `json:"harvest_count"`
}

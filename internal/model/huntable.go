package model

// DefaultSeason is stored when a species has no site specific season.
const DefaultSeason = "Statewide"

// HuntableSpecies states that a species may be hunted at a site.
type HuntableSpecies struct {
	SiteID      string `json:"site_id"`
	Species     string `json:"species"`
	Season      string `json:"season"`
	Stipulation string `json:"stipulation"`
}

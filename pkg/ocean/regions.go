package ocean

const regionsSegment = "regions"

// Region is a datacenter location.
type Region struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Sizes     []string `json:"sizes"`
	Features  []string `json:"features"`
	Available bool     `json:"available"`
}

func (Region) responseKey() string { return "region" }

// Regions is a collection of regions.
type Regions []Region

func (Regions) responseKey() string { return "regions" }

// ListRegions builds a request for all available regions.
func ListRegions() *Request[List, Regions] {
	return newRequest[List, Regions](regionsSegment)
}

package ocean

const sizesSegment = "sizes"

// Size is a droplet size slug with its resources and pricing.
type Size struct {
	Slug         string   `json:"slug"`
	Memory       int      `json:"memory"`
	VCPUs        int      `json:"vcpus"`
	Disk         int      `json:"disk"`
	Transfer     float64  `json:"transfer"`
	PriceMonthly float64  `json:"price_monthly"`
	PriceHourly  float64  `json:"price_hourly"`
	Regions      []string `json:"regions"`
	Available    bool     `json:"available"`
}

func (Size) responseKey() string { return "size" }

// Sizes is a collection of droplet sizes.
type Sizes []Size

func (Sizes) responseKey() string { return "sizes" }

// ListSizes builds a request for all droplet sizes.
func ListSizes() *Request[List, Sizes] {
	return newRequest[List, Sizes](sizesSegment)
}

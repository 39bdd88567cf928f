package ocean

const domainsSegment = "domains"

// Domain is a DNS zone managed by the provider.
type Domain struct {
	Name     string `json:"name"`
	TTL      int    `json:"ttl"`
	ZoneFile string `json:"zone_file"`
}

func (Domain) responseKey() string { return "domain" }

// Domains is a collection of DNS zones.
type Domains []Domain

func (Domains) responseKey() string { return "domains" }

// ListDomains builds a request for all domains on the account.
func ListDomains() *Request[List, Domains] {
	return newRequest[List, Domains](domainsSegment)
}

// CreateDomain builds a request adding a domain pointing at the given IP
// address.
func CreateDomain(name, ipAddress string) *Request[Create, Domain] {
	req := newRequest[Create, Domain](domainsSegment)
	req.SetBody(map[string]interface{}{
		"name":       name,
		"ip_address": ipAddress,
	})

	return req
}

// GetDomain identifies a single domain by name, unlocking the operations
// that apply to one domain.
func GetDomain(name string) DomainRequest {
	return DomainRequest{req: newRequest[Get, Domain](domainsSegment, name)}
}

// DomainRequest is an identified-domain request.
type DomainRequest struct {
	req *Request[Get, Domain]
}

// Req returns the underlying fetch request for the identified domain.
func (d DomainRequest) Req() *Request[Get, Domain] {
	return d.req
}

// Delete builds a request removing this domain and all its records.
func (d DomainRequest) Delete() *Request[Delete, Empty] {
	return transmute[Delete, Empty](d.req)
}

// Records narrows this domain into its DNS record collection.
func (d DomainRequest) Records() DomainRecordsRequest {
	req := transmute[List, DomainRecords](d.req)
	req.push(domainRecordsSegment)

	return DomainRecordsRequest{req: req}
}

package ocean

import "strconv"

const domainRecordsSegment = "records"

// DomainRecord is one DNS record within a domain.
type DomainRecord struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Data     string `json:"data"`
	Priority int    `json:"priority,omitempty"`
	Port     int    `json:"port,omitempty"`
	TTL      int    `json:"ttl,omitempty"`
	Weight   int    `json:"weight,omitempty"`
}

func (DomainRecord) responseKey() string { return "domain_record" }

// DomainRecords is a collection of DNS records.
type DomainRecords []DomainRecord

func (DomainRecords) responseKey() string { return "domain_records" }

// DomainRecordUpdateRequest is the payload for creating or updating a DNS
// record. Zero-valued optional fields are omitted.
type DomainRecordUpdateRequest struct {
	Type     string `json:"type,omitempty"`
	Name     string `json:"name,omitempty"`
	Data     string `json:"data,omitempty"`
	Priority int    `json:"priority,omitempty"`
	Port     int    `json:"port,omitempty"`
	TTL      int    `json:"ttl,omitempty"`
	Weight   int    `json:"weight,omitempty"`
}

// DomainRecordsRequest is a domain's record collection. Executing Req lists
// the records; the other methods narrow into per-record operations.
type DomainRecordsRequest struct {
	req *Request[List, DomainRecords]
}

// Req returns the underlying list request for the record collection.
func (d DomainRecordsRequest) Req() *Request[List, DomainRecords] {
	return d.req
}

// Create builds a request adding a record to this domain.
func (d DomainRecordsRequest) Create(create DomainRecordUpdateRequest) *Request[Create, DomainRecord] {
	req := transmute[Create, DomainRecord](d.req)
	req.SetBody(create)

	return req
}

// Get builds a request fetching one record by id.
func (d DomainRecordsRequest) Get(id int) *Request[Get, DomainRecord] {
	req := transmute[Get, DomainRecord](d.req)
	req.push(strconv.Itoa(id))

	return req
}

// Update builds a request replacing the mutable fields of a record.
func (d DomainRecordsRequest) Update(id int, update DomainRecordUpdateRequest) *Request[Update, DomainRecord] {
	req := transmute[Update, DomainRecord](d.req)
	req.push(strconv.Itoa(id))
	req.SetBody(update)

	return req
}

// Delete builds a request removing one record by id.
func (d DomainRecordsRequest) Delete(id int) *Request[Delete, Empty] {
	req := transmute[Delete, Empty](d.req)
	req.push(strconv.Itoa(id))

	return req
}

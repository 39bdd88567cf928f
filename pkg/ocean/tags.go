package ocean

const tagsSegment = "tags"

// Tag is a label applied to resources, reported with counts of what it is
// applied to.
type Tag struct {
	Name      string       `json:"name"`
	Resources TagResources `json:"resources"`
}

func (Tag) responseKey() string { return "tag" }

// Tags is a collection of tags.
type Tags []Tag

func (Tags) responseKey() string { return "tags" }

// TagResources summarizes the resources a tag is applied to.
type TagResources struct {
	Count    int             `json:"count"`
	Droplets TagResourceInfo `json:"droplets"`
	Volumes  TagResourceInfo `json:"volumes"`
}

// TagResourceInfo is the per-resource-type count for a tag.
type TagResourceInfo struct {
	Count int `json:"count"`
}

// ListTags builds a request for all tags on the account.
func ListTags() *Request[List, Tags] {
	return newRequest[List, Tags](tagsSegment)
}

// GetTag builds a request fetching one tag by name.
func GetTag(name string) *Request[Get, Tag] {
	return newRequest[Get, Tag](tagsSegment, name)
}

// CreateTag builds a request creating a tag.
func CreateTag(name string) *Request[Create, Tag] {
	req := newRequest[Create, Tag](tagsSegment)
	req.SetBody(map[string]interface{}{"name": name})

	return req
}

// DeleteTag builds a request removing a tag from every resource and from
// the account.
func DeleteTag(name string) *Request[Delete, Empty] {
	return newRequest[Delete, Empty](tagsSegment, name)
}

package ocean

import (
	"strconv"
	"time"
)

const imagesSegment = "images"

// Image is a base distribution, application image, snapshot, or backup.
type Image struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Distribution  string    `json:"distribution"`
	Slug          string    `json:"slug,omitempty"`
	Public        bool      `json:"public"`
	Regions       []string  `json:"regions"`
	MinDiskSize   int       `json:"min_disk_size"`
	SizeGigabytes float64   `json:"size_gigabytes"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Image) responseKey() string { return "image" }

// Images is a collection of images.
type Images []Image

func (Images) responseKey() string { return "images" }

// Backups is a collection of backup images. Backups are images, but the
// API wraps them in their own envelope.
type Backups []Image

func (Backups) responseKey() string { return "backups" }

// ListImages builds a request for all images visible to the account.
func ListImages() *Request[List, Images] {
	return newRequest[List, Images](imagesSegment)
}

// GetImage identifies a single image by id.
func GetImage(id int) ImageRequest {
	return ImageRequest{req: newRequest[Get, Image](imagesSegment, strconv.Itoa(id))}
}

// GetImageBySlug identifies a public image by its slug.
func GetImageBySlug(slug string) ImageRequest {
	return ImageRequest{req: newRequest[Get, Image](imagesSegment, slug)}
}

// ImageRequest is an identified-image request.
type ImageRequest struct {
	req *Request[Get, Image]
}

// Req returns the underlying fetch request for the identified image.
func (i ImageRequest) Req() *Request[Get, Image] {
	return i.req
}

// Update builds a request renaming this image.
func (i ImageRequest) Update(name string) *Request[Update, Image] {
	req := transmute[Update, Image](i.req)
	req.SetBody(map[string]interface{}{"name": name})

	return req
}

// Delete builds a request removing this image.
func (i ImageRequest) Delete() *Request[Delete, Empty] {
	return transmute[Delete, Empty](i.req)
}

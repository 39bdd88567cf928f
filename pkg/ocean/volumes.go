package ocean

import "time"

const (
	volumesSegment       = "volumes"
	volumeActionsSegment = "actions"
)

// Volume is a block storage volume.
type Volume struct {
	ID            string    `json:"id"`
	Region        Region    `json:"region"`
	DropletIDs    []int     `json:"droplet_ids"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SizeGigabytes int       `json:"size_gigabytes"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Volume) responseKey() string { return "volume" }

// Volumes is a collection of block storage volumes.
type Volumes []Volume

func (Volumes) responseKey() string { return "volumes" }

// VolumeCreateRequest is the payload for creating a block storage volume.
type VolumeCreateRequest struct {
	Name            string   `json:"name"`
	SizeGigabytes   int      `json:"size_gigabytes"`
	Region          string   `json:"region,omitempty"`
	Description     string   `json:"description,omitempty"`
	SnapshotID      string   `json:"snapshot_id,omitempty"`
	FilesystemType  string   `json:"filesystem_type,omitempty"`
	FilesystemLabel string   `json:"filesystem_label,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// ListVolumes builds a request for all block storage volumes.
func ListVolumes() *Request[List, Volumes] {
	return newRequest[List, Volumes](volumesSegment)
}

// CreateVolume builds a request creating a new block storage volume.
func CreateVolume(create VolumeCreateRequest) *Request[Create, Volume] {
	req := newRequest[Create, Volume](volumesSegment)
	req.SetBody(create)

	return req
}

// GetVolume identifies a single volume by id, unlocking the operations
// that apply to one volume.
func GetVolume(id string) VolumeRequest {
	return VolumeRequest{req: newRequest[Get, Volume](volumesSegment, id)}
}

// DeleteVolume builds a request removing a volume.
func DeleteVolume(id string) *Request[Delete, Empty] {
	return newRequest[Delete, Empty](volumesSegment, id)
}

// VolumeRequest is an identified-volume request. Executing Req fetches the
// volume; the other methods narrow it into action requests on that volume.
type VolumeRequest struct {
	req *Request[Get, Volume]
}

// Req returns the underlying fetch request for the identified volume.
func (v VolumeRequest) Req() *Request[Get, Volume] {
	return v.req
}

package ocean

import (
	"strconv"
	"time"
)

const dropletsSegment = "droplets"

// Droplet is a virtual machine.
type Droplet struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Memory      int       `json:"memory"`
	VCPUs       int       `json:"vcpus"`
	Disk        int       `json:"disk"`
	Locked      bool      `json:"locked"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
	BackupIDs   []int     `json:"backup_ids"`
	SnapshotIDs []int     `json:"snapshot_ids"`
	Features    []string  `json:"features"`
	Region      Region    `json:"region"`
	Image       Image     `json:"image"`
	Size        Size      `json:"size"`
	SizeSlug    string    `json:"size_slug"`
	Networks    Networks  `json:"networks"`
	Kernel      *Kernel   `json:"kernel,omitempty"`
	VolumeIDs   []string  `json:"volume_ids"`
	Tags        []string  `json:"tags"`
}

func (Droplet) responseKey() string { return "droplet" }

// Droplets is a collection of droplets.
type Droplets []Droplet

func (Droplets) responseKey() string { return "droplets" }

// Kernel is a bootable kernel available to a droplet.
type Kernel struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (Kernel) responseKey() string { return "kernel" }

// Kernels is a collection of kernels.
type Kernels []Kernel

func (Kernels) responseKey() string { return "kernels" }

// Networks holds a droplet's network interfaces.
type Networks struct {
	V4 []NetworkV4 `json:"v4"`
	V6 []NetworkV6 `json:"v6"`
}

// NetworkV4 is an IPv4 interface.
type NetworkV4 struct {
	IPAddress string `json:"ip_address"`
	Netmask   string `json:"netmask"`
	Gateway   string `json:"gateway"`
	Type      string `json:"type"`
}

// NetworkV6 is an IPv6 interface.
type NetworkV6 struct {
	IPAddress string `json:"ip_address"`
	Netmask   int    `json:"netmask"`
	Gateway   string `json:"gateway"`
	Type      string `json:"type"`
}

// DropletCreateRequest is the payload for creating a droplet.
type DropletCreateRequest struct {
	Name              string   `json:"name"`
	Region            string   `json:"region"`
	Size              string   `json:"size"`
	Image             string   `json:"image"`
	SSHKeys           []string `json:"ssh_keys,omitempty"`
	Backups           bool     `json:"backups,omitempty"`
	IPv6              bool     `json:"ipv6,omitempty"`
	PrivateNetworking bool     `json:"private_networking,omitempty"`
	Monitoring        bool     `json:"monitoring,omitempty"`
	UserData          string   `json:"user_data,omitempty"`
	Volumes           []string `json:"volumes,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// ListDroplets builds a request for all droplets on the account.
func ListDroplets() *Request[List, Droplets] {
	return newRequest[List, Droplets](dropletsSegment)
}

// CreateDroplet builds a request creating a new droplet.
func CreateDroplet(create DropletCreateRequest) *Request[Create, Droplet] {
	req := newRequest[Create, Droplet](dropletsSegment)
	req.SetBody(create)

	return req
}

// GetDroplet identifies a single droplet by id, unlocking the operations
// that apply to one droplet.
func GetDroplet(id int) DropletRequest {
	return DropletRequest{req: newRequest[Get, Droplet](dropletsSegment, strconv.Itoa(id))}
}

// DropletRequest is an identified-droplet request. Executing Req fetches
// the droplet; the other methods narrow it into sub-resource or action
// requests on that droplet.
type DropletRequest struct {
	req *Request[Get, Droplet]
}

// Req returns the underlying fetch request for the identified droplet.
func (d DropletRequest) Req() *Request[Get, Droplet] {
	return d.req
}

// Delete builds a request destroying this droplet.
func (d DropletRequest) Delete() *Request[Delete, Empty] {
	return transmute[Delete, Empty](d.req)
}

// Kernels builds a request listing the kernels available to this droplet.
func (d DropletRequest) Kernels() *Request[List, Kernels] {
	req := transmute[List, Kernels](d.req)
	req.push("kernels")

	return req
}

// Snapshots builds a request listing this droplet's snapshot images.
func (d DropletRequest) Snapshots() *Request[List, Snapshots] {
	req := transmute[List, Snapshots](d.req)
	req.push("snapshots")

	return req
}

// Backups builds a request listing this droplet's backup images.
func (d DropletRequest) Backups() *Request[List, Backups] {
	req := transmute[List, Backups](d.req)
	req.push("backups")

	return req
}

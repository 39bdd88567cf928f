package ocean

import "time"

const snapshotsSegment = "snapshots"

// Snapshot is a saved copy of a droplet or volume at a point in time.
type Snapshot struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ResourceID    string    `json:"resource_id"`
	ResourceType  string    `json:"resource_type"`
	Regions       []string  `json:"regions"`
	MinDiskSize   int       `json:"min_disk_size"`
	SizeGigabytes float64   `json:"size_gigabytes"`
	CreatedAt     time.Time `json:"created_at"`
	Tags          []string  `json:"tags"`
}

func (Snapshot) responseKey() string { return "snapshot" }

// Snapshots is a collection of snapshots.
type Snapshots []Snapshot

func (Snapshots) responseKey() string { return "snapshots" }

// ListSnapshots builds a request for all snapshots on the account.
func ListSnapshots() *Request[List, Snapshots] {
	return newRequest[List, Snapshots](snapshotsSegment)
}

// GetSnapshot builds a request fetching one snapshot by id.
func GetSnapshot(id string) *Request[Get, Snapshot] {
	return newRequest[Get, Snapshot](snapshotsSegment, id)
}

// DeleteSnapshot builds a request removing a snapshot.
func DeleteSnapshot(id string) *Request[Delete, Empty] {
	return newRequest[Delete, Empty](snapshotsSegment, id)
}

package ocean

import "strconv"

// AttachVolume builds a request attaching a volume, addressed by name, to a
// droplet. The API routes name-addressed volume actions through the
// collection endpoint rather than a per-volume path.
func AttachVolume(volumeName string, dropletID int) *Request[Create, Action] {
	req := newRequest[Create, Action](volumesSegment)
	req.SetBody(map[string]interface{}{
		"type":        "attach",
		"volume_name": volumeName,
		"droplet_id":  dropletID,
	})

	return req
}

// DetachVolume builds a request detaching a volume, addressed by name, from
// a droplet.
func DetachVolume(volumeName string, dropletID int) *Request[Create, Action] {
	req := newRequest[Create, Action](volumesSegment)
	req.SetBody(map[string]interface{}{
		"type":        "detach",
		"volume_name": volumeName,
		"droplet_id":  dropletID,
	})

	return req
}

// Attach builds a request attaching this volume to a droplet. The result is
// the asynchronous action the API starts.
func (v VolumeRequest) Attach(dropletID int) *Request[Create, Action] {
	req := transmute[Create, Action](v.req)
	req.push(volumeActionsSegment)
	req.SetBody(map[string]interface{}{
		"type":       "attach",
		"droplet_id": dropletID,
	})

	return req
}

// Detach builds a request detaching this volume from a droplet.
func (v VolumeRequest) Detach(dropletID int) *Request[Create, Action] {
	req := transmute[Create, Action](v.req)
	req.push(volumeActionsSegment)
	req.SetBody(map[string]interface{}{
		"type":       "detach",
		"droplet_id": dropletID,
	})

	return req
}

// Resize builds a request growing this volume to the given size. Volumes
// can only grow.
func (v VolumeRequest) Resize(sizeGigabytes int) *Request[Create, Action] {
	req := transmute[Create, Action](v.req)
	req.push(volumeActionsSegment)
	req.SetBody(map[string]interface{}{
		"type":           "resize",
		"size_gigabytes": sizeGigabytes,
	})

	return req
}

// Actions builds a request listing the actions taken on this volume.
func (v VolumeRequest) Actions() *Request[List, Actions] {
	req := transmute[List, Actions](v.req)
	req.push(volumeActionsSegment)

	return req
}

// Action builds a request fetching one action taken on this volume.
func (v VolumeRequest) Action(id int) *Request[Get, Action] {
	req := transmute[Get, Action](v.req)
	req.push(volumeActionsSegment, strconv.Itoa(id))

	return req
}

package ocean

import "strconv"

const dropletActionsSegment = "actions"

// doAction narrows an identified droplet into the named action request.
func (d DropletRequest) doAction(body map[string]interface{}) *Request[Create, Action] {
	req := transmute[Create, Action](d.req)
	req.push(dropletActionsSegment)
	req.SetBody(body)

	return req
}

// Reboot builds a request rebooting this droplet gracefully.
func (d DropletRequest) Reboot() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "reboot"})
}

// PowerCycle builds a request power cycling this droplet. This is a hard
// reset; prefer Reboot when the guest is responsive.
func (d DropletRequest) PowerCycle() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "power_cycle"})
}

// PowerOn builds a request powering this droplet on.
func (d DropletRequest) PowerOn() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "power_on"})
}

// PowerOff builds a request powering this droplet off. This is a hard
// shutdown.
func (d DropletRequest) PowerOff() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "power_off"})
}

// Shutdown builds a request shutting this droplet down gracefully.
func (d DropletRequest) Shutdown() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "shutdown"})
}

// Restore builds a request restoring this droplet from a backup image.
func (d DropletRequest) Restore(imageID int) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "restore", "image": imageID})
}

// PasswordReset builds a request resetting this droplet's root password.
func (d DropletRequest) PasswordReset() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "password_reset"})
}

// Resize builds a request resizing this droplet to the given size slug.
// When disk is true the resize is permanent and includes the disk.
func (d DropletRequest) Resize(size string, disk bool) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "resize", "size": size, "disk": disk})
}

// Rebuild builds a request rebuilding this droplet from an image slug or
// id.
func (d DropletRequest) Rebuild(image string) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "rebuild", "image": image})
}

// Rename builds a request renaming this droplet.
func (d DropletRequest) Rename(name string) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "rename", "name": name})
}

// ChangeKernel builds a request changing this droplet's kernel.
func (d DropletRequest) ChangeKernel(kernelID int) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "change_kernel", "kernel": kernelID})
}

// EnableIPv6 builds a request enabling IPv6 networking on this droplet.
func (d DropletRequest) EnableIPv6() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "enable_ipv6"})
}

// EnableBackups builds a request enabling automatic backups on this
// droplet.
func (d DropletRequest) EnableBackups() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "enable_backups"})
}

// DisableBackups builds a request disabling automatic backups on this
// droplet.
func (d DropletRequest) DisableBackups() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "disable_backups"})
}

// EnablePrivateNetworking builds a request enabling private networking on
// this droplet.
func (d DropletRequest) EnablePrivateNetworking() *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "enable_private_networking"})
}

// Snapshot builds a request snapshotting this droplet under the given
// name.
func (d DropletRequest) Snapshot(name string) *Request[Create, Action] {
	return d.doAction(map[string]interface{}{"type": "snapshot", "name": name})
}

// Actions builds a request listing the actions taken on this droplet.
func (d DropletRequest) Actions() *Request[List, Actions] {
	req := transmute[List, Actions](d.req)
	req.push(dropletActionsSegment)

	return req
}

// Action builds a request fetching one action taken on this droplet.
func (d DropletRequest) Action(id int) *Request[Get, Action] {
	req := transmute[Get, Action](d.req)
	req.push(dropletActionsSegment, strconv.Itoa(id))

	return req
}

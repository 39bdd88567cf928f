package ocean_test

import (
	"testing"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestVolumeActionRequests(t *testing.T) {
	t.Parallel()

	t.Run("attach by name targets the collection", func(t *testing.T) {
		t.Parallel()

		req := ocean.AttachVolume("data-volume", 42)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes", req.URL())
		assert.Equal(t, map[string]interface{}{
			"type":        "attach",
			"volume_name": "data-volume",
			"droplet_id":  42,
		}, req.Body())
	})

	t.Run("detach by name targets the collection", func(t *testing.T) {
		t.Parallel()

		req := ocean.DetachVolume("data-volume", 42)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes", req.URL())
		assert.Equal(t, map[string]interface{}{
			"type":        "detach",
			"volume_name": "data-volume",
			"droplet_id":  42,
		}, req.Body())
	})

	t.Run("attach on identified volume targets its actions", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetVolume("abc123").Attach(42)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", req.URL())
		assert.Equal(t, map[string]interface{}{
			"type":       "attach",
			"droplet_id": 42,
		}, req.Body())
	})

	t.Run("detach on identified volume targets its actions", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetVolume("abc123").Detach(42)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", req.URL())
		assert.Equal(t, map[string]interface{}{
			"type":       "detach",
			"droplet_id": 42,
		}, req.Body())
	})

	t.Run("actions list has no body", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetVolume("abc123").Actions()
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", req.URL())
		assert.Nil(t, req.Body())
	})

	t.Run("single action has no body", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetVolume("abc123").Action(7)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions/7", req.URL())
		assert.Nil(t, req.Body())
	})
}

func TestDropletActionRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *ocean.Request[ocean.Create, ocean.Action]
		body map[string]interface{}
	}{
		{
			name: "reboot",
			req:  ocean.GetDroplet(42).Reboot(),
			body: map[string]interface{}{"type": "reboot"},
		},
		{
			name: "power cycle",
			req:  ocean.GetDroplet(42).PowerCycle(),
			body: map[string]interface{}{"type": "power_cycle"},
		},
		{
			name: "shutdown",
			req:  ocean.GetDroplet(42).Shutdown(),
			body: map[string]interface{}{"type": "shutdown"},
		},
		{
			name: "rename",
			req:  ocean.GetDroplet(42).Rename("web-2"),
			body: map[string]interface{}{"type": "rename", "name": "web-2"},
		},
		{
			name: "resize with disk",
			req:  ocean.GetDroplet(42).Resize("s-2vcpu-4gb", true),
			body: map[string]interface{}{"type": "resize", "size": "s-2vcpu-4gb", "disk": true},
		},
		{
			name: "snapshot",
			req:  ocean.GetDroplet(42).Snapshot("before-upgrade"),
			body: map[string]interface{}{"type": "snapshot", "name": "before-upgrade"},
		},
		{
			name: "restore",
			req:  ocean.GetDroplet(42).Restore(12345),
			body: map[string]interface{}{"type": "restore", "image": 12345},
		},
		{
			name: "enable backups",
			req:  ocean.GetDroplet(42).EnableBackups(),
			body: map[string]interface{}{"type": "enable_backups"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "https://api.digitalocean.com/v2/droplets/42/actions", testCase.req.URL())
			assert.Equal(t, testCase.body, testCase.req.Body())
		})
	}
}

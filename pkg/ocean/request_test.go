package ocean_test

import (
	"testing"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/stretchr/testify/assert"
)

func TestRequestPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "list volumes",
			url:  ocean.ListVolumes().URL(),
			want: "https://api.digitalocean.com/v2/volumes",
		},
		{
			name: "get volume",
			url:  ocean.GetVolume("abc123").Req().URL(),
			want: "https://api.digitalocean.com/v2/volumes/abc123",
		},
		{
			name: "volume action by id",
			url:  ocean.GetVolume("abc123").Action(7).URL(),
			want: "https://api.digitalocean.com/v2/volumes/abc123/actions/7",
		},
		{
			name: "volume actions list",
			url:  ocean.GetVolume("abc123").Actions().URL(),
			want: "https://api.digitalocean.com/v2/volumes/abc123/actions",
		},
		{
			name: "delete volume",
			url:  ocean.DeleteVolume("abc123").URL(),
			want: "https://api.digitalocean.com/v2/volumes/abc123",
		},
		{
			name: "account",
			url:  ocean.GetAccount().URL(),
			want: "https://api.digitalocean.com/v2/account",
		},
		{
			name: "droplet kernels",
			url:  ocean.GetDroplet(42).Kernels().URL(),
			want: "https://api.digitalocean.com/v2/droplets/42/kernels",
		},
		{
			name: "droplet action by id",
			url:  ocean.GetDroplet(42).Action(9).URL(),
			want: "https://api.digitalocean.com/v2/droplets/42/actions/9",
		},
		{
			name: "domain records",
			url:  ocean.GetDomain("example.com").Records().Req().URL(),
			want: "https://api.digitalocean.com/v2/domains/example.com/records",
		},
		{
			name: "domain record by id",
			url:  ocean.GetDomain("example.com").Records().Get(1234).URL(),
			want: "https://api.digitalocean.com/v2/domains/example.com/records/1234",
		},
		{
			name: "ssh keys under account",
			url:  ocean.ListSSHKeys().URL(),
			want: "https://api.digitalocean.com/v2/account/keys",
		},
		{
			name: "image by slug",
			url:  ocean.GetImageBySlug("ubuntu-24-04-x64").Req().URL(),
			want: "https://api.digitalocean.com/v2/images/ubuntu-24-04-x64",
		},
		{
			name: "snapshot by id",
			url:  ocean.GetSnapshot("snap-1").URL(),
			want: "https://api.digitalocean.com/v2/snapshots/snap-1",
		},
		{
			name: "tag by name",
			url:  ocean.GetTag("production").URL(),
			want: "https://api.digitalocean.com/v2/tags/production",
		},
		{
			name: "regions",
			url:  ocean.ListRegions().URL(),
			want: "https://api.digitalocean.com/v2/regions",
		},
		{
			name: "sizes",
			url:  ocean.ListSizes().URL(),
			want: "https://api.digitalocean.com/v2/sizes",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.url)
		})
	}
}

func TestRequestTransitionsPreserveState(t *testing.T) {
	t.Parallel()

	t.Run("delete keeps the identified URL", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetDroplet(42).Delete()
		assert.Equal(t, "https://api.digitalocean.com/v2/droplets/42", req.URL())
		assert.Nil(t, req.Body())
	})

	t.Run("resize carries URL extension and body together", func(t *testing.T) {
		t.Parallel()

		req := ocean.GetVolume("abc123").Resize(100)
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", req.URL())
		assert.Equal(t, map[string]interface{}{
			"type":           "resize",
			"size_gigabytes": 100,
		}, req.Body())
	})
}

func TestRequestTransitionsBranchIndependently(t *testing.T) {
	t.Parallel()

	t.Run("volume state survives multiple transitions", func(t *testing.T) {
		t.Parallel()

		volume := ocean.GetVolume("abc123")

		list := volume.Actions()
		one := volume.Action(7)
		resize := volume.Resize(100)

		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", list.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions/7", one.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123/actions", resize.URL())

		// Bodies stay with the request that set them.
		assert.Nil(t, list.Body())
		assert.Nil(t, one.Body())
		assert.NotNil(t, resize.Body())
		assert.Equal(t, "https://api.digitalocean.com/v2/volumes/abc123", volume.Req().URL())
	})

	t.Run("droplet state survives multiple transitions", func(t *testing.T) {
		t.Parallel()

		droplet := ocean.GetDroplet(42)

		kernels := droplet.Kernels()
		reboot := droplet.Reboot()

		assert.Equal(t, "https://api.digitalocean.com/v2/droplets/42/kernels", kernels.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/droplets/42/actions", reboot.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/droplets/42", droplet.Req().URL())
	})

	t.Run("record collection survives multiple transitions", func(t *testing.T) {
		t.Parallel()

		records := ocean.GetDomain("example.com").Records()

		created := records.Create(ocean.DomainRecordUpdateRequest{Type: "A", Name: "www", Data: "10.0.0.1"})
		fetched := records.Get(1234)
		removed := records.Delete(5678)

		assert.Equal(t, "https://api.digitalocean.com/v2/domains/example.com/records", created.URL())
		assert.Equal(t, ocean.DomainRecordUpdateRequest{Type: "A", Name: "www", Data: "10.0.0.1"}, created.Body())
		assert.Equal(t, "https://api.digitalocean.com/v2/domains/example.com/records/1234", fetched.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/domains/example.com/records/5678", removed.URL())
		assert.Equal(t, "https://api.digitalocean.com/v2/domains/example.com/records", records.Req().URL())
	})
}

func TestRequestSetBody(t *testing.T) {
	t.Parallel()

	req := ocean.ListVolumes()
	assert.Nil(t, req.Body())

	req.SetBody(map[string]interface{}{"first": true})
	req.SetBody(map[string]interface{}{"second": true})

	// Last write wins, bodies are never merged.
	assert.Equal(t, map[string]interface{}{"second": true}, req.Body())
}

func TestRequestInvalidSegmentPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func()
	}{
		{
			name:  "slash in id",
			build: func() { ocean.GetVolume("abc/123") },
		},
		{
			name:  "query metacharacter in id",
			build: func() { ocean.GetVolume("abc?x=1") },
		},
		{
			name:  "fragment in domain name",
			build: func() { ocean.GetDomain("example.com#frag") },
		},
		{
			name:  "empty id",
			build: func() { ocean.GetVolume("") },
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Panics(t, testCase.build)
		})
	}
}

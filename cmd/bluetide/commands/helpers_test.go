package commands

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeRows(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	volumes := ocean.Volumes{
		{
			ID:            "vol-1",
			Name:          "data",
			SizeGigabytes: 100,
			Region:        ocean.Region{Slug: "nyc3"},
			DropletIDs:    []int{42, 7},
			CreatedAt:     created,
		},
		{
			ID:            "vol-2",
			Name:          "logs",
			SizeGigabytes: 10,
			Region:        ocean.Region{Slug: "ams3"},
		},
	}

	rows := volumeRows(volumes)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"vol-1", "data", "100 GiB", "nyc3", "42, 7", "2026-08-01T12:00:00Z"}, rows[0])

	// Unattached volumes and zero timestamps render as N/A.
	assert.Equal(t, []string{"vol-2", "logs", "10 GiB", "ams3", NotAvailable, NotAvailable}, rows[1])
}

func TestActionRows(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	actions := ocean.Actions{
		{
			ID:        7,
			Type:      "resize",
			Status:    "in-progress",
			StartedAt: started,
			// CompletedAt left zero: still running.
		},
	}

	rows := actionRows(actions)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"7", "resize", "in-progress", "2026-08-01T12:00:00Z", NotAvailable}, rows[0])
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NotAvailable, formatTime(time.Time{}))
	assert.Equal(t, "2026-08-01T12:00:00Z", formatTime(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))
}

func TestRenderTable(t *testing.T) {
	// Captures stdout, so no t.Parallel.
	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdout
	os.Stdout = writer

	renderErr := renderTable(
		[]string{"ID", "Name"},
		[][]string{
			{"vol-1", "data"},
			{"vol-2", "logs"},
		},
	)

	os.Stdout = original

	require.NoError(t, writer.Close())
	require.NoError(t, renderErr)

	output, err := io.ReadAll(reader)
	require.NoError(t, err)

	// Header casing is the table writer's business; compare case-folded.
	rendered := strings.ToUpper(string(output))
	assert.Contains(t, rendered, "ID")
	assert.Contains(t, rendered, "NAME")
	assert.Contains(t, rendered, "VOL-1")
	assert.Contains(t, rendered, "LOGS")
}

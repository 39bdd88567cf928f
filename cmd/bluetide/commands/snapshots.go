package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewSnapshotsCommand creates the snapshots command group
func NewSnapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshots",
		Aliases: []string{"snapshot"},
		Short:   "Manage snapshots",
		Long:    "List and manage droplet and volume snapshots",
	}

	cmd.AddCommand(newSnapshotsListCommand())
	cmd.AddCommand(newSnapshotsGetCommand())
	cmd.AddCommand(newSnapshotsDeleteCommand())

	return cmd
}

func snapshotRows(snapshots ocean.Snapshots) [][]string {
	rows := make([][]string, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, []string{
			snapshot.ID,
			snapshot.Name,
			snapshot.ResourceType,
			strconv.FormatFloat(snapshot.SizeGigabytes, 'f', -1, 64) + " GiB",
			formatTime(snapshot.CreatedAt),
		})
	}

	return rows
}

func newSnapshotsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			snapshots, err := ocean.Execute(context.Background(), client, ocean.ListSnapshots())
			if err != nil {
				return err
			}

			if done, err := renderStructured(snapshots); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Resource", "Size", "Created"},
				snapshotRows(snapshots),
			)
		},
	}
}

func newSnapshotsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SNAPSHOT_ID",
		Short: "Show one snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			snapshot, err := ocean.Execute(context.Background(), client, ocean.GetSnapshot(args[0]))
			if err != nil {
				return err
			}

			if done, err := renderStructured(snapshot); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Resource", "Size", "Created"},
				snapshotRows(ocean.Snapshots{snapshot}),
			)
		},
	}
}

func newSnapshotsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SNAPSHOT_ID",
		Short: "Remove a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.DeleteSnapshot(args[0]))
			if err != nil {
				return err
			}

			fmt.Printf("Deleted snapshot %s\n", args[0])

			return nil
		},
	}
}

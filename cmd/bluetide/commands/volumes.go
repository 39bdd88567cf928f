package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewVolumesCommand creates the volumes command group
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume", "vol"},
		Short:   "Manage block storage volumes",
		Long:    "List, create, attach, and manage block storage volumes",
	}

	cmd.AddCommand(newVolumesListCommand())
	cmd.AddCommand(newVolumesGetCommand())
	cmd.AddCommand(newVolumesCreateCommand())
	cmd.AddCommand(newVolumesDeleteCommand())
	cmd.AddCommand(newVolumesAttachCommand())
	cmd.AddCommand(newVolumesDetachCommand())
	cmd.AddCommand(newVolumesResizeCommand())
	cmd.AddCommand(newVolumesActionsCommand())

	return cmd
}

func volumeRows(volumes ocean.Volumes) [][]string {
	rows := make([][]string, 0, len(volumes))
	for _, volume := range volumes {
		droplets := make([]string, 0, len(volume.DropletIDs))
		for _, id := range volume.DropletIDs {
			droplets = append(droplets, strconv.Itoa(id))
		}

		attached := strings.Join(droplets, ", ")
		if attached == "" {
			attached = NotAvailable
		}

		rows = append(rows, []string{
			volume.ID,
			volume.Name,
			strconv.Itoa(volume.SizeGigabytes) + " GiB",
			volume.Region.Slug,
			attached,
			formatTime(volume.CreatedAt),
		})
	}

	return rows
}

func newVolumesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			volumes, err := ocean.Execute(context.Background(), client, ocean.ListVolumes())
			if err != nil {
				return err
			}

			if done, err := renderStructured(volumes); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Size", "Region", "Droplets", "Created"},
				volumeRows(volumes),
			)
		},
	}
}

func newVolumesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VOLUME_ID",
		Short: "Show one volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			volume, err := ocean.Execute(context.Background(), client, ocean.GetVolume(args[0]).Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(volume); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Size", "Region", "Droplets", "Created"},
				volumeRows(ocean.Volumes{volume}),
			)
		},
	}
}

func newVolumesCreateCommand() *cobra.Command {
	var (
		name        string
		size        int
		region      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrVolumeNameRequired
			}

			if size <= 0 {
				return ErrSizeRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			volume, err := ocean.Execute(context.Background(), client, ocean.CreateVolume(ocean.VolumeCreateRequest{
				Name:          name,
				SizeGigabytes: size,
				Region:        region,
				Description:   description,
			}))
			if err != nil {
				return err
			}

			if done, err := renderStructured(volume); done {
				return err
			}

			fmt.Printf("Created volume %s (%s)\n", volume.Name, volume.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "volume name")
	cmd.Flags().IntVar(&size, "size", 0, "size in gigabytes")
	cmd.Flags().StringVar(&region, "region", "", "region slug")
	cmd.Flags().StringVar(&description, "description", "", "volume description")

	return cmd
}

func newVolumesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VOLUME_ID",
		Short: "Delete a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.DeleteVolume(args[0]))
			if err != nil {
				return err
			}

			fmt.Printf("Deleted volume %s\n", args[0])

			return nil
		},
	}
}

func newVolumesAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach VOLUME_ID DROPLET_ID",
		Short: "Attach a volume to a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetVolume(args[0]).Attach(dropletID))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

func newVolumesDetachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach VOLUME_ID DROPLET_ID",
		Short: "Detach a volume from a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetVolume(args[0]).Detach(dropletID))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

func newVolumesResizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resize VOLUME_ID SIZE_GIB",
		Short: "Grow a volume",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil || size <= 0 {
				return ErrSizeRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetVolume(args[0]).Resize(size))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

func newVolumesActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions VOLUME_ID",
		Short: "List the actions taken on a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			actions, err := ocean.Execute(context.Background(), client, ocean.GetVolume(args[0]).Actions())
			if err != nil {
				return err
			}

			if done, err := renderStructured(actions); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Type", "Status", "Started", "Completed"},
				actionRows(actions),
			)
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewDropletsCommand creates the droplets command group
func NewDropletsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "droplets",
		Aliases: []string{"droplet"},
		Short:   "Manage droplets",
		Long:    "List, create, and manage droplets and their lifecycle actions",
	}

	cmd.AddCommand(newDropletsListCommand())
	cmd.AddCommand(newDropletsGetCommand())
	cmd.AddCommand(newDropletsCreateCommand())
	cmd.AddCommand(newDropletsDeleteCommand())
	cmd.AddCommand(newDropletsActionsCommand())

	// Lifecycle actions share a builder since they differ only in name.
	cmd.AddCommand(newDropletActionCommand("reboot", "Reboot a droplet gracefully", ocean.DropletRequest.Reboot))
	cmd.AddCommand(newDropletActionCommand("power-cycle", "Hard reset a droplet", ocean.DropletRequest.PowerCycle))
	cmd.AddCommand(newDropletActionCommand("power-on", "Power a droplet on", ocean.DropletRequest.PowerOn))
	cmd.AddCommand(newDropletActionCommand("power-off", "Hard power a droplet off", ocean.DropletRequest.PowerOff))
	cmd.AddCommand(newDropletActionCommand("shutdown", "Shut a droplet down gracefully", ocean.DropletRequest.Shutdown))
	cmd.AddCommand(newDropletActionCommand("password-reset", "Reset a droplet's root password", ocean.DropletRequest.PasswordReset))
	cmd.AddCommand(newDropletActionCommand("enable-ipv6", "Enable IPv6 on a droplet", ocean.DropletRequest.EnableIPv6))
	cmd.AddCommand(newDropletActionCommand("enable-backups", "Enable automatic backups", ocean.DropletRequest.EnableBackups))
	cmd.AddCommand(newDropletActionCommand("disable-backups", "Disable automatic backups", ocean.DropletRequest.DisableBackups))

	cmd.AddCommand(newDropletsRenameCommand())
	cmd.AddCommand(newDropletsResizeCommand())
	cmd.AddCommand(newDropletsSnapshotCommand())

	return cmd
}

func dropletRows(droplets ocean.Droplets) [][]string {
	rows := make([][]string, 0, len(droplets))
	for _, droplet := range droplets {
		publicIP := NotAvailable

		for _, network := range droplet.Networks.V4 {
			if network.Type == "public" {
				publicIP = network.IPAddress

				break
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(droplet.ID),
			droplet.Name,
			publicIP,
			droplet.Status,
			droplet.SizeSlug,
			droplet.Region.Slug,
			formatTime(droplet.CreatedAt),
		})
	}

	return rows
}

func newDropletsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List droplets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			droplets, err := ocean.Execute(context.Background(), client, ocean.ListDroplets())
			if err != nil {
				return err
			}

			if done, err := renderStructured(droplets); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Public IP", "Status", "Size", "Region", "Created"},
				dropletRows(droplets),
			)
		},
	}
}

func newDropletsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DROPLET_ID",
		Short: "Show one droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			droplet, err := ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(droplet); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Public IP", "Status", "Size", "Region", "Created"},
				dropletRows(ocean.Droplets{droplet}),
			)
		},
	}
}

func newDropletsCreateCommand() *cobra.Command {
	var create ocean.DropletCreateRequest

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create.Name = args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			droplet, err := ocean.Execute(context.Background(), client, ocean.CreateDroplet(create))
			if err != nil {
				return err
			}

			if done, err := renderStructured(droplet); done {
				return err
			}

			fmt.Printf("Created droplet %s (%d)\n", droplet.Name, droplet.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&create.Region, "region", "", "region slug")
	cmd.Flags().StringVar(&create.Size, "size", "", "size slug")
	cmd.Flags().StringVar(&create.Image, "image", "", "image slug or id")
	cmd.Flags().StringSliceVar(&create.SSHKeys, "ssh-keys", nil, "ssh key ids or fingerprints")
	cmd.Flags().BoolVar(&create.Backups, "backups", false, "enable automatic backups")
	cmd.Flags().BoolVar(&create.IPv6, "ipv6", false, "enable IPv6")
	cmd.Flags().BoolVar(&create.Monitoring, "monitoring", false, "enable monitoring")
	cmd.Flags().StringVar(&create.UserData, "user-data", "", "cloud-init user data")
	cmd.Flags().StringSliceVar(&create.Tags, "tags", nil, "tags to apply")

	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newDropletsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DROPLET_ID",
		Short: "Destroy a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Delete())
			if err != nil {
				return err
			}

			fmt.Printf("Deleted droplet %d\n", id)

			return nil
		},
	}
}

func newDropletsActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions DROPLET_ID",
		Short: "List the actions taken on a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			actions, err := ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Actions())
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

// newDropletActionCommand builds a command for a bodiless lifecycle action.
func newDropletActionCommand(
	use, short string,
	build func(ocean.DropletRequest) *ocean.Request[ocean.Create, ocean.Action],
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DROPLET_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, build(ocean.GetDroplet(id)))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

func newDropletsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename DROPLET_ID NAME",
		Short: "Rename a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Rename(args[1]))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

func newDropletsResizeCommand() *cobra.Command {
	var disk bool

	cmd := &cobra.Command{
		Use:   "resize DROPLET_ID SIZE_SLUG",
		Short: "Resize a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Resize(args[1], disk))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}

	cmd.Flags().BoolVar(&disk, "disk", false, "also resize the disk (permanent)")

	return cmd
}

func newDropletsSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot DROPLET_ID NAME",
		Short: "Snapshot a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrDropletIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := ocean.Execute(context.Background(), client, ocean.GetDroplet(id).Snapshot(args[1]))
			if err != nil {
				return err
			}

			return printAction(action)
		},
	}
}

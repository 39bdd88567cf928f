package commands

import (
	"context"
	"strings"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewRegionsCommand creates the regions command
func NewRegionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "regions",
		Aliases: []string{"region"},
		Short:   "List datacenter regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			regions, err := ocean.Execute(context.Background(), client, ocean.ListRegions())
			if err != nil {
				return err
			}

			if done, err := renderStructured(regions); done {
				return err
			}

			rows := make([][]string, 0, len(regions))
			for _, region := range regions {
				rows = append(rows, []string{
					region.Slug,
					region.Name,
					formatBool(region.Available),
					strings.Join(region.Features, ", "),
				})
			}

			return renderTable([]string{"Slug", "Name", "Available", "Features"}, rows)
		},
	}
}

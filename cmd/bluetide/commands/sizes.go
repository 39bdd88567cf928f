package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewSizesCommand creates the sizes command
func NewSizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sizes",
		Aliases: []string{"size"},
		Short:   "List droplet sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			sizes, err := ocean.Execute(context.Background(), client, ocean.ListSizes())
			if err != nil {
				return err
			}

			if done, err := renderStructured(sizes); done {
				return err
			}

			rows := make([][]string, 0, len(sizes))
			for _, size := range sizes {
				rows = append(rows, []string{
					size.Slug,
					strconv.Itoa(size.Memory) + " MB",
					strconv.Itoa(size.VCPUs),
					strconv.Itoa(size.Disk) + " GB",
					fmt.Sprintf("$%.2f", size.PriceMonthly),
					formatBool(size.Available),
				})
			}

			return renderTable([]string{"Slug", "Memory", "VCPUs", "Disk", "Price/mo", "Available"}, rows)
		},
	}
}

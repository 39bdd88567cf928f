package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List and manage the tags applied to account resources",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsGetCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func tagRows(tags ocean.Tags) [][]string {
	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{
			tag.Name,
			strconv.Itoa(tag.Resources.Count),
			strconv.Itoa(tag.Resources.Droplets.Count),
			strconv.Itoa(tag.Resources.Volumes.Count),
		})
	}

	return rows
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := ocean.Execute(context.Background(), client, ocean.ListTags())
			if err != nil {
				return err
			}

			if done, err := renderStructured(tags); done {
				return err
			}

			return renderTable(
				[]string{"Name", "Resources", "Droplets", "Volumes"},
				tagRows(tags),
			)
		},
	}
}

func newTagsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TAG_NAME",
		Short: "Show one tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := ocean.Execute(context.Background(), client, ocean.GetTag(args[0]))
			if err != nil {
				return err
			}

			if done, err := renderStructured(tag); done {
				return err
			}

			return renderTable(
				[]string{"Name", "Resources", "Droplets", "Volumes"},
				tagRows(ocean.Tags{tag}),
			)
		},
	}
}

func newTagsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create TAG_NAME",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrTagNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := ocean.Execute(context.Background(), client, ocean.CreateTag(args[0]))
			if err != nil {
				return err
			}

			if done, err := renderStructured(tag); done {
				return err
			}

			fmt.Printf("Created tag %s\n", tag.Name)

			return nil
		},
	}
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TAG_NAME",
		Short: "Remove a tag from every resource and the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.DeleteTag(args[0]))
			if err != nil {
				return err
			}

			fmt.Printf("Deleted tag %s\n", args[0])

			return nil
		},
	}
}

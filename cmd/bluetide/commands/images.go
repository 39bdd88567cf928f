package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewImagesCommand creates the images command group
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List and manage distribution images, application images, and custom snapshots",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesGetCommand())
	cmd.AddCommand(newImagesRenameCommand())
	cmd.AddCommand(newImagesDeleteCommand())

	return cmd
}

func imageRows(images ocean.Images) [][]string {
	rows := make([][]string, 0, len(images))
	for _, image := range images {
		slug := image.Slug
		if slug == "" {
			slug = NotAvailable
		}

		rows = append(rows, []string{
			strconv.Itoa(image.ID),
			image.Name,
			image.Type,
			image.Distribution,
			slug,
			formatBool(image.Public),
		})
	}

	return rows
}

func newImagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			images, err := ocean.Execute(context.Background(), client, ocean.ListImages())
			if err != nil {
				return err
			}

			if done, err := renderStructured(images); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Type", "Distribution", "Slug", "Public"},
				imageRows(images),
			)
		},
	}
}

func newImagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IMAGE_ID_OR_SLUG",
		Short: "Show one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Numeric arguments address private images, slugs address
			// public ones.
			var request ocean.ImageRequest
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				request = ocean.GetImage(id)
			} else {
				request = ocean.GetImageBySlug(args[0])
			}

			image, err := ocean.Execute(context.Background(), client, request.Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(image); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Name", "Type", "Distribution", "Slug", "Public"},
				imageRows(ocean.Images{image}),
			)
		},
	}
}

func newImagesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename IMAGE_ID NAME",
		Short: "Rename an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			image, err := ocean.Execute(context.Background(), client, ocean.GetImage(id).Update(args[1]))
			if err != nil {
				return err
			}

			if done, err := renderStructured(image); done {
				return err
			}

			fmt.Printf("Renamed image %d to %s\n", image.ID, image.Name)

			return nil
		},
	}
}

func newImagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete IMAGE_ID",
		Short: "Remove an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.GetImage(id).Delete())
			if err != nil {
				return err
			}

			fmt.Printf("Deleted image %d\n", id)

			return nil
		},
	}
}

package commands

import (
	"context"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewActionsCommand creates the actions command group
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Inspect account actions",
		Long:    "List and inspect the actions taken on account resources",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())

	return cmd
}

func actionRows(actions ocean.Actions) [][]string {
	rows := make([][]string, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, []string{
			strconv.Itoa(action.ID),
			action.Type,
			action.Status,
			formatTime(action.StartedAt),
			formatTime(action.CompletedAt),
		})
	}

	return rows
}

func newActionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			actions, err := ocean.Execute(context.Background(), client, ocean.ListActions())
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

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTION_ID",
		Short: "Show one action",
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

			action, err := ocean.Execute(context.Background(), client, ocean.GetAction(id))
			if err != nil {
				return err
			}

			if done, err := renderStructured(action); done {
				return err
			}

			return renderTable(
				[]string{"ID", "Type", "Status", "Started", "Completed"},
				actionRows(ocean.Actions{action}),
			)
		},
	}
}

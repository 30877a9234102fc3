package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todo-web/internal/todo"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print every todo list file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.ListLists(cmd.Context(), a.sc)
			if err != nil {
				return err
			}
			for _, name := range out.Filenames {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the items of one list with their index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Detail(cmd.Context(), a.sc, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(out.Filename))
			for i, it := range out.Items {
				fmt.Fprintf(w, "%3d %s %s\n", i, marker(it.Done), it.Task)
			}
			fmt.Fprintf(w, "%d of %d done (%.0f%%)\n", out.Stats.Completed, out.Stats.Total, out.Stats.Progress)
			return nil
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <index> <true|false>",
		Short: "Set the done flag of one item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[1], todo.ErrInvalidPayload)
			}
			done, err := strconv.ParseBool(args[2])
			if err != nil {
				return fmt.Errorf("done %q: %w", args[2], todo.ErrInvalidPayload)
			}

			out, err := a.uc.UpdateItem(cmd.Context(), a.sc, todo.UpdateItemInput{
				Filename: args[0],
				Index:    index,
				Done:     done,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s %s\n", out.Filename, out.Index, marker(out.Item.Done), out.Item.Task)
			return nil
		},
	}
}

func marker(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return pendingStyle.Render("[ ]")
}

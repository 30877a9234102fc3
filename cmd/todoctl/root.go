package main

import (
	"github.com/spf13/cobra"

	"todo-web/config"
	"todo-web/internal/model"
	"todo-web/internal/todo"
	"todo-web/internal/todo/repository/jsonfile"
	"todo-web/internal/todo/usecase"
	"todo-web/pkg/log"
)

// app carries what every subcommand needs once PersistentPreRunE has run.
type app struct {
	dir string
	uc  todo.UseCase
	sc  model.Scope
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "todoctl",
		Short: "Inspect and update JSON todo lists from the terminal",
		Long: `todoctl works on the same directory of JSON todo lists as the web front-end.
It lists the available lists, prints one list, and sets an item's done flag.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.dir, "dir", "", "todo directory (default: storage.todo_dir from config)")

	root.AddCommand(newListsCmd(a), newShowCmd(a), newSetCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dir == "" {
		a.dir = cfg.Storage.TodoDir
	}

	// Logs would interleave with command output, so keep them quiet.
	l := log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	repo, err := jsonfile.New(a.dir, l)
	if err != nil {
		return err
	}
	a.uc = usecase.New(repo, l)
	a.sc = model.Scope{Username: "todoctl"}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/ribbon/internal/config"
	"github.com/alexisbeaulieu97/ribbon/internal/tui"
	"github.com/alexisbeaulieu97/ribbon/internal/view"
)

var errNotInteractive = errors.New("show needs an interactive terminal; use 'ribbon render' instead")

type showOptions struct {
	ConfigPath string
	Watch      bool
	ShowAttrs  bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured badges in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotInteractive
			}

			// The alt screen owns stderr too, so logs only go to --log-file.
			log, closeLog, err := root.newLogger(io.Discard, "tui")
			if err != nil {
				return err
			}
			defer closeLog()

			scene, err := config.Load(opts.ConfigPath)
			if err != nil {
				log.Error(err, "failed to load config", "path", opts.ConfigPath)
				return err
			}

			var watcher *config.Watcher
			if opts.Watch {
				watcher, err = config.NewWatcher(opts.ConfigPath)
				if err != nil {
					log.Error(err, "failed to watch config", "path", opts.ConfigPath)
					return err
				}
				defer watcher.Close()
			}

			model := tui.NewModel(scene, tui.Options{
				Renderer: view.NewRenderer(view.Options{ShowAttrs: opts.ShowAttrs}),
				Logger:   log,
				Watcher:  watcher,
			})

			log.Info("starting badge host", "path", opts.ConfigPath, "badges", model.BadgeCount(), "watch", opts.Watch)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				log.Error(err, "badge host failed")
				return fmt.Errorf("failed to run badge host: %w", err)
			}
			log.Info("badge host closed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the badge configuration file")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload the configuration when the file changes")
	cmd.Flags().BoolVar(&opts.ShowAttrs, "show-attrs", false, "Print passthrough attributes under each ribbon")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

var isTerminal = func(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

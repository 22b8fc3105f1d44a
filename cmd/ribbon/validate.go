package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a badge configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(configPath); err != nil {
				return err
			}

			log, closeLog, err := root.newLogger(cmd.ErrOrStderr(), "validate")
			if err != nil {
				return err
			}
			defer closeLog()

			scene, err := config.Load(configPath)
			if err != nil {
				log.Error(err, "config is invalid", "path", configPath)
				return err
			}

			log.Debug("config validated", "path", configPath, "corner", string(scene.Corner))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d badges)\n", configPath, len(scene.Badges))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the badge configuration file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

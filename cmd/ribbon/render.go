package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/badge"
	"github.com/alexisbeaulieu97/ribbon/internal/view"
	"github.com/alexisbeaulieu97/ribbon/pkg/diff"
)

var errSnapshotMismatch = errors.New("rendered badge differs from snapshot")

type renderOptions struct {
	Label     string
	Severity  string
	Short     string
	Full      string
	Expanded  bool
	ShowAttrs bool
	Attrs     map[string]string
	Check     string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single badge once and print it",
		Example: `  ribbon render --label "ALL GOOD" --severity fine
  ribbon render --label "SERVER DOWN" --severity danger --short "5xx spike" --expanded`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := root.newLogger(cmd.ErrOrStderr(), "render")
			if err != nil {
				return err
			}
			defer closeLog()

			props, err := opts.props(cmd.Flags().Changed("short") || cmd.Flags().Changed("full"))
			if err != nil {
				log.Error(err, "invalid badge", "label", opts.Label)
				return err
			}

			out, err := renderOnce(props, opts.Expanded, view.NewRendererForWriter(cmd.OutOrStdout(), view.Options{ShowAttrs: opts.ShowAttrs}))
			if err != nil {
				log.Error(err, "render failed", "label", opts.Label)
				return err
			}

			log.Debug("badge rendered", "label", props.Label, "severity", props.Severity.String(), "expanded", opts.Expanded)
			if opts.Check != "" {
				return checkSnapshot(cmd, opts.Check, out+"\n")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Label, "label", "l", "", "Badge label")
	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", "", "Severity: info, warning, danger or fine (default info)")
	cmd.Flags().StringVar(&opts.Short, "short", "", "Short detail text")
	cmd.Flags().StringVar(&opts.Full, "full", "", "Full detail text")
	cmd.Flags().BoolVarP(&opts.Expanded, "expanded", "e", false, "Activate the badge once before rendering")
	cmd.Flags().BoolVar(&opts.ShowAttrs, "show-attrs", false, "Print passthrough attributes under the ribbon")
	cmd.Flags().StringToStringVar(&opts.Attrs, "attr", nil, "Passthrough attribute as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.Check, "check", "", "Compare the output with a snapshot file instead of printing it")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func (o renderOptions) props(hasDetail bool) (badge.Props, error) {
	severity, err := badge.ParseSeverity(o.Severity)
	if err != nil {
		return badge.Props{}, err
	}

	props := badge.Props{
		Label:    o.Label,
		Severity: severity,
		Detail:   badge.NoDetail{},
	}
	if hasDetail {
		detail, err := badge.NewDetail(o.Short, o.Full)
		if err != nil {
			return badge.Props{}, err
		}
		props.Detail = detail
	}
	if len(o.Attrs) > 0 {
		props.Attrs = badge.Attributes(o.Attrs)
	}
	return props, nil
}

// renderOnce renders props on a fresh badge, activating the root first when expanded is set.
func renderOnce(props badge.Props, expanded bool, renderer *view.Renderer) (string, error) {
	b := badge.New(badge.DefaultAppearance())

	tree, err := b.Render(props)
	if err != nil {
		return "", err
	}
	if expanded && tree.Root.OnActivate != nil {
		tree.Root.OnActivate()
		if tree, err = b.Render(props); err != nil {
			return "", err
		}
	}
	return renderer.Tree(tree), nil
}

// checkSnapshot compares rendered with the contents of path and prints a diff on mismatch.
func checkSnapshot(cmd *cobra.Command, path, rendered string) error {
	expected, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	if d := diff.Unified(expected, []byte(rendered), path, "rendered"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return errSnapshotMismatch
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
	return nil
}

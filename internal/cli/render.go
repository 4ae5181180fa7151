package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/render"
)

func newRenderCmd() *cobra.Command {
	var (
		contextJSON string
		useLayout   bool
	)

	cmd := &cobra.Command{
		Use:     "render <selector> [value]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			entity, err := s.Find(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if entity == nil {
				return fmt.Errorf(MsgErrNoEntity, strings.Join(args, " "))
			}

			var data catalog.Context
			if contextJSON != "" {
				if err := json.Unmarshal([]byte(contextJSON), &data); err != nil {
					return fmt.Errorf("parsing --context: %w", err)
				}
			}

			markup, err := s.Render(cmd.Context(), entity, data, render.Opts{UseLayout: useLayout})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}

	cmd.Flags().StringVar(&contextJSON, "context", "", "JSON object used as the render context")
	cmd.Flags().BoolVar(&useLayout, "layout", false, "Wrap output in the entity's preview layout")

	return cmd
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <selector> [value]",
		Short: MsgPreviewShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			entity, err := s.Find(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if entity == nil {
				return fmt.Errorf(MsgErrNoEntity, strings.Join(args, " "))
			}

			markup, err := s.RenderPreview(cmd.Context(), entity)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}
}

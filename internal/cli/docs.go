package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/ui"
)

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw content when the renderer cannot be built.
func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newDocsCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "docs <selector>",
		Short: MsgDocsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			entity, err := s.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if entity == nil {
				return fmt.Errorf(MsgErrNoEntity, args[0])
			}

			// Docs live on components; a variant selector resolves to
			// its owner.
			if v, ok := entity.(*catalog.Variant); ok {
				entity, err = s.Find(cmd.Context(), "@"+v.Component)
				if err != nil {
					return err
				}
			}

			comp, ok := entity.(*catalog.Component)
			if !ok || comp.Readme == "" {
				return fmt.Errorf(MsgErrNoReadme, args[0])
			}

			content, err := os.ReadFile(comp.Readme)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			if format == ui.FormatTerminal {
				fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content), width))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	}

	cmd.Flags().String("format", "auto", MsgFlagFormat)
	cmd.Flags().IntVar(&width, "width", 0, "Wrap rendered markdown at this column (0 disables)")

	return cmd
}

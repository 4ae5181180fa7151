package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/ui"
)

// resolveFormat reads the --format flag and resolves auto-detection
// against stdout.
func resolveFormat(cmd *cobra.Command) (ui.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(raw)
	if err != nil {
		return format, err
	}
	return ui.Resolve(format, os.Stdout), nil
}

// listNode is the JSON shape of one tree entry.
type listNode struct {
	Handle   string      `json:"handle"`
	Kind     string      `json:"kind"`
	Label    string      `json:"label,omitempty"`
	Status   string      `json:"status,omitempty"`
	Variants []string    `json:"variants,omitempty"`
	Children []*listNode `json:"children,omitempty"`
}

func toListNode(e catalog.Entity) *listNode {
	switch v := e.(type) {
	case *catalog.Collection:
		node := &listNode{Handle: v.Handle, Kind: string(v.Kind()), Label: v.Label}
		for _, item := range v.Items {
			if catalog.IsHidden(item) {
				continue
			}
			node.Children = append(node.Children, toListNode(item))
		}
		return node

	case *catalog.Component:
		node := &listNode{Handle: v.Handle, Kind: string(v.Kind()), Label: v.Label, Status: v.Status}
		for _, variant := range v.Variants {
			if variant.Hidden {
				continue
			}
			node.Variants = append(node.Variants, variant.Handle)
		}
		return node

	default:
		return &listNode{Handle: catalog.HandleOf(e), Kind: string(e.Kind())}
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			tree, err := s.Tree(cmd.Context())
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				out, err := json.MarshalIndent(toListNode(tree), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			rendered, err := ui.Tree(tree, format == ui.FormatTerminal)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().String("format", "auto", MsgFlagFormat)
	return cmd
}

// assetRecord is the JSON shape of one asset entry.
type assetRecord struct {
	Path       string `json:"path"`
	SourcePath string `json:"sourcePath"`
	Name       string `json:"name"`
	Ext        string `json:"ext"`
}

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: MsgAssetsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			assets, err := s.Assets(cmd.Context())
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				records := make([]assetRecord, len(assets))
				for i, a := range assets {
					records[i] = assetRecord{Path: a.Path, SourcePath: a.SourcePath, Name: a.Name, Ext: a.Ext}
				}
				out, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			for _, a := range assets {
				if format == ui.FormatTerminal {
					fmt.Fprintln(cmd.OutOrStdout(), ui.HandleStyle.Render(a.Path)+" "+ui.PathStyle.Render(a.SourcePath))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Path, a.SourcePath)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("format", "auto", MsgFlagFormat)
	return cmd
}

package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/atelier-tools/vitrine/pkg/catalog"
)

// Tree renders the entity tree: a styled pterm tree for terminals, an
// indented listing otherwise.
func Tree(root *catalog.Collection, styled bool) (string, error) {
	if styled {
		return pterm.DefaultTree.WithRoot(treeNode(root)).Srender()
	}

	var b strings.Builder
	writePlain(&b, root, 0)
	return b.String(), nil
}

func treeNode(e catalog.Entity) pterm.TreeNode {
	switch v := e.(type) {
	case *catalog.Collection:
		children := make([]pterm.TreeNode, 0, len(v.Items))
		for _, item := range v.Items {
			if catalog.IsHidden(item) {
				continue
			}
			children = append(children, treeNode(item))
		}
		return pterm.TreeNode{Text: TitleStyle.Render(v.Label), Children: children}

	case *catalog.Component:
		children := make([]pterm.TreeNode, 0, len(v.Variants))
		for _, variant := range v.Variants {
			if variant.Hidden {
				continue
			}
			children = append(children, pterm.TreeNode{
				Text: variant.Handle + " " + PathStyle.Render(variant.ViewPath),
			})
		}
		text := HandleStyle.Render("@" + v.Handle)
		if v.Label != "" && v.Label != v.Handle {
			text += " " + MutedStyle.Render(v.Label)
		}
		return pterm.TreeNode{Text: text, Children: children}

	case *catalog.Variant:
		return pterm.TreeNode{Text: v.Handle}

	default:
		return pterm.TreeNode{Text: catalog.HandleOf(e)}
	}
}

func writePlain(b *strings.Builder, e catalog.Entity, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := e.(type) {
	case *catalog.Collection:
		fmt.Fprintf(b, "%s%s/\n", indent, v.Label)
		for _, item := range v.Items {
			if catalog.IsHidden(item) {
				continue
			}
			writePlain(b, item, depth+1)
		}

	case *catalog.Component:
		line := "@" + v.Handle
		if v.Label != "" && v.Label != v.Handle {
			line += " (" + v.Label + ")"
		}
		fmt.Fprintf(b, "%s%s\n", indent, line)
		for _, variant := range v.Variants {
			if variant.Hidden {
				continue
			}
			fmt.Fprintf(b, "%s  %s\n", indent, variant.Handle)
		}

	case *catalog.Variant:
		fmt.Fprintf(b, "%s%s\n", indent, v.Handle)
	}
}

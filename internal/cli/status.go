package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/source"
	"github.com/atelier-tools/vitrine/pkg/status"
	"github.com/atelier-tools/vitrine/pkg/ui"
)

// componentStatus aggregates a component's variant statuses: distinct
// handles collapse into the mixed record.
func componentStatus(s *source.Source, comp *catalog.Component) *status.Option {
	if len(comp.Variants) == 0 {
		return s.StatusInfo(comp.Status)
	}

	handles := make([]string, len(comp.Variants))
	for i, v := range comp.Variants {
		handles[i] = v.Status
	}
	return s.StatusInfo(handles...)
}

// statusLine pairs a displayed entity with its resolved status.
type statusLine struct {
	entity string
	opt    *status.Option
}

// statusRecord is the JSON shape of one status line.
type statusRecord struct {
	Entity string   `json:"entity"`
	Handle string   `json:"handle"`
	Label  string   `json:"label"`
	Color  string   `json:"color,omitempty"`
	Parts  []string `json:"parts,omitempty"`
}

func toStatusRecord(line statusLine) statusRecord {
	rec := statusRecord{Entity: line.entity}
	if line.opt == nil {
		return rec
	}
	rec.Handle = line.opt.Handle
	rec.Label = line.opt.Label
	rec.Color = line.opt.Color
	for _, sub := range line.opt.Statuses {
		rec.Parts = append(rec.Parts, sub.Handle)
	}
	return rec
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [selector]",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			var lines []statusLine

			if len(args) == 1 {
				entity, err := s.Find(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if entity == nil {
					return fmt.Errorf(MsgErrNoEntity, args[0])
				}

				switch e := entity.(type) {
				case *catalog.Component:
					for _, v := range e.Variants {
						if v.Hidden {
							continue
						}
						lines = append(lines, statusLine{v.Handle, s.StatusInfo(v.Status)})
					}
					lines = append(lines, statusLine{"@" + e.Handle, componentStatus(s, e)})
				case *catalog.Variant:
					lines = append(lines, statusLine{e.Handle, s.StatusInfo(e.Status)})
				case *catalog.Collection:
					for _, comp := range e.Flatten() {
						if comp.Hidden {
							continue
						}
						lines = append(lines, statusLine{"@" + comp.Handle, componentStatus(s, comp)})
					}
				}
			} else {
				components, err := s.Components(cmd.Context())
				if err != nil {
					return err
				}
				for _, comp := range components {
					if comp.Hidden {
						continue
					}
					lines = append(lines, statusLine{"@" + comp.Handle, componentStatus(s, comp)})
				}
			}

			if format == ui.FormatJSON {
				records := make([]statusRecord, len(lines))
				for i, line := range lines {
					records[i] = toStatusRecord(line)
				}
				out, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			styled := format == ui.FormatTerminal
			for _, line := range lines {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", line.entity, ui.StatusBadge(line.opt, styled))
			}
			return nil
		},
	}

	cmd.Flags().String("format", "auto", MsgFlagFormat)
	return cmd
}

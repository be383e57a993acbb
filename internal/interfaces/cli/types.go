package cli

import (
	"github.com/spf13/cobra"

	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// typesListing is the supported reaction type catalog.
type typesListing struct {
	ReactionTypes []typeEntry `json:"reaction_types"`
}

type typeEntry struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

func (l *typesListing) TableHeaders() []string { return []string{"Reaction Type", "Scoring Family"} }

func (l *typesListing) TableRows() [][]string {
	rows := make([][]string, 0, len(l.ReactionTypes))
	for _, e := range l.ReactionTypes {
		rows = append(rows, []string{e.Name, e.Family})
	}
	return rows
}

// NewTypesCmd creates the types command listing supported reaction types.
func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported reaction types and their scoring families",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing := &typesListing{}
			for _, t := range rtypes.KnownTypes {
				listing.ReactionTypes = append(listing.ReactionTypes, typeEntry{
					Name:   t.String(),
					Family: t.ScoringFamily().String(),
				})
			}
			return PrintResult(cmd, listing)
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/domain/recommend"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// NewRecommendCmd creates the recommend command. It runs the full engine
// locally: no API server required.
func NewRecommendCmd() *cobra.Command {
	var (
		smiles       string
		reactionType string
		refLigand    string
		refSolvent   string
		refBase      string
		topN         int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend reaction conditions for a reaction SMILES",
		Long:  "Classify the reaction, score the reagent catalog against it, boost by\naggregated evidence, and print ranked ligand/solvent/base recommendations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if topN < 0 {
				return errors.New(errors.ErrCodeValidation, "top-n must be non-negative")
			}

			eng, err := buildEngine(cliCtx)
			if err != nil {
				return err
			}

			export, err := eng.Recommend(cmd.Context(), recommend.Request{
				ReactionSMILES:   smiles,
				ReactionType:     reactionType,
				ReferenceLigand:  refLigand,
				ReferenceSolvent: refSolvent,
				ReferenceBase:    refBase,
				TopN:             topN,
			})
			if err != nil {
				return err
			}
			return PrintResult(cmd, &recommendResult{Export: export})
		},
	}

	f := cmd.Flags()
	f.StringVar(&smiles, "smiles", "", "reaction SMILES (reactants>>products, required)")
	f.StringVar(&reactionType, "type", "", "reaction type override (skips auto-detection)")
	f.StringVar(&refLigand, "ligand", "", "reference ligand to anchor similarity scoring")
	f.StringVar(&refSolvent, "solvent", "", "reference solvent to anchor similarity scoring")
	f.StringVar(&refBase, "base", "", "reference base to anchor similarity scoring")
	f.IntVar(&topN, "top-n", 0, "recommendations per role (0 = configured default)")
	cmd.MarkFlagRequired("smiles")

	return cmd
}

// buildStores opens the configured record source and summary store.  Either
// may be nil when the corresponding directory is not configured.
func buildStores(cliCtx *CLIContext) (reaction.RecordSource, evidence.SummaryStore) {
	cfg := cliCtx.Config

	var records reaction.RecordSource
	if cfg.Dataset.Dir != "" {
		records = reaction.NewCSVDirSource(cfg.Dataset.Dir, cliCtx.Logger)
	}
	var summaries evidence.SummaryStore
	if cfg.Evidence.SummaryDir != "" {
		summaries = evidence.NewFSStore(cfg.Evidence.SummaryDir, cfg.Evidence.KeepGenerations, cliCtx.Logger)
	}
	return records, summaries
}

// buildEngine assembles a recommendation engine from the loaded config.
// Record source and summary store are optional; the engine degrades to
// curated-only scoring without them.
func buildEngine(cliCtx *CLIContext) (*recommend.Engine, error) {
	cfg := cliCtx.Config
	records, summaries := buildStores(cliCtx)

	return recommend.NewEngine(recommend.Options{
		Catalog:     catalog.NewBuiltin(),
		Records:     records,
		Summaries:   summaries,
		Scoring:     cfg.Scoring,
		Evidence:    cfg.Evidence,
		Fingerprint: cfg.Fingerprint,
		Concurrency: cfg.Dataset.ScanConcurrency,
		Logger:      cliCtx.Logger,
	})
}

// recommendResult adapts an export for table rendering.
type recommendResult struct {
	*recommend.Export
}

func (r *recommendResult) TableHeaders() []string {
	return []string{"Role", "Rank", "Name", "Score", "Confidence", "Evidence"}
}

func (r *recommendResult) TableRows() [][]string {
	var rows [][]string
	appendRole := func(role string, recs []recommend.ReagentRec) {
		for _, rec := range recs {
			rows = append(rows, []string{
				role,
				strconv.Itoa(rec.Rank),
				rec.Name,
				fmt.Sprintf("%.3f", rec.Score),
				rec.Confidence,
				strconv.Itoa(rec.EvidenceSupport),
			})
		}
	}
	appendRole(string(rtypes.RoleLigand), r.Recommendations.Ligands)
	appendRole(string(rtypes.RoleSolvent), r.Recommendations.Solvents)
	appendRole(string(rtypes.RoleBase), r.Recommendations.Bases)
	return rows
}

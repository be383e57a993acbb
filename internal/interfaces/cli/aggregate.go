package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// aggregateOutcome is one published generation.
type aggregateOutcome struct {
	Tag          string `json:"tag"`
	Generation   string `json:"generation"`
	AnalyzedRows int    `json:"analyzed_rows"`
	Fingerprint  string `json:"fingerprint"`
}

// aggregateReport aggregates the per-tag outcomes for output.
type aggregateReport struct {
	Published []aggregateOutcome `json:"published"`
	Skipped   []string           `json:"skipped,omitempty"`
}

func (r *aggregateReport) TableHeaders() []string {
	return []string{"Tag", "Generation", "Rows", "Fingerprint"}
}

func (r *aggregateReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Published))
	for _, o := range r.Published {
		fp := o.Fingerprint
		if len(fp) > 12 {
			fp = fp[:12]
		}
		rows = append(rows, []string{o.Tag, o.Generation, strconv.Itoa(o.AnalyzedRows), fp})
	}
	return rows
}

// NewAggregateCmd creates the aggregate command.  It scans the dataset and
// publishes a new evidence summary generation per reaction type.
func NewAggregateCmd() *cobra.Command {
	var (
		tag string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate dataset evidence into versioned summaries",
		Long:  "Scan the reaction dataset, compute per-type reagent frequencies,\nco-occurrence pairs and numeric statistics, and publish the result as a\nnew summary generation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := cliCtx.Config

			if tag == "" && !all {
				return errors.New(errors.ErrCodeValidation, "either --tag or --all is required")
			}
			if cfg.Dataset.Dir == "" {
				return errors.New(errors.ErrCodeDatasetUnavailable, "dataset.dir is not configured")
			}
			if cfg.Evidence.SummaryDir == "" {
				return errors.New(errors.ErrCodeValidation, "evidence.summary_dir is not configured")
			}

			var tags []rtypes.Type
			if all {
				tags = rtypes.KnownTypes
			} else {
				t := rtypes.ParseType(tag)
				if t == rtypes.TypeUnknown {
					return errors.New(errors.ErrCodeReactionTypeUnknown, fmt.Sprintf("unknown reaction type %q", tag))
				}
				tags = []rtypes.Type{t}
			}

			src := reaction.NewCSVDirSource(cfg.Dataset.Dir, cliCtx.Logger)
			store := evidence.NewFSStore(cfg.Evidence.SummaryDir, cfg.Evidence.KeepGenerations, cliCtx.Logger)
			agg := evidence.NewAggregator(cliCtx.Logger, cfg.Evidence.WinsorizePct)

			report, err := runAggregation(cmd.Context(), agg, src, store, tags)
			if err != nil {
				return err
			}
			return PrintResult(cmd, report)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "reaction type to aggregate (e.g. Suzuki)")
	cmd.Flags().BoolVar(&all, "all", false, "aggregate every known reaction type")

	return cmd
}

// runAggregation publishes one generation per tag.  Tags with no matching
// rows are skipped rather than published as empty artifacts.
func runAggregation(ctx context.Context, agg *evidence.Aggregator, src reaction.RecordSource, store evidence.SummaryStore, tags []rtypes.Type) (*aggregateReport, error) {
	report := &aggregateReport{}
	for _, t := range tags {
		sum, err := agg.Aggregate(ctx, src, t)
		if err != nil {
			return nil, err
		}
		if sum.Meta.AnalyzedRows == 0 {
			report.Skipped = append(report.Skipped, t.String())
			continue
		}
		gen, err := store.Save(ctx, sum)
		if err != nil {
			return nil, err
		}
		report.Published = append(report.Published, aggregateOutcome{
			Tag:          t.String(),
			Generation:   gen,
			AnalyzedRows: sum.Meta.AnalyzedRows,
			Fingerprint:  sum.Meta.Fingerprint,
		})
	}
	return report, nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kubev2v/filter-clauses/internal/config"
	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/internal/services"
	"github.com/kubev2v/filter-clauses/internal/store"
	"github.com/kubev2v/filter-clauses/pkg/clause"
)

type renderOptions struct {
	kind         string
	operator     string
	filters      []string
	lastSelected string
	expressions  []string
	savedFilters []string
	groupBy      []string
	onlyPrimary  bool
	output       string
}

type renderResult struct {
	Where   string   `json:"where" yaml:"where"`
	GroupBy []string `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
	Valid   bool     `json:"valid" yaml:"valid"`
	Issues  string   `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func NewRenderCommand(cfg *config.Configuration) *cobra.Command {
	opts := renderOptions{}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the where and group by clauses for a set of filters",
		Example: `  filter-clauses render --filter category=a,b --filter status=open --last-selected status --kind globalFilters
  filter-clauses render -e "size >= 512 and status in ('open', 'closed')" --group-by region,country -o yaml`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.ExpandPaths()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request()
			if err != nil {
				return err
			}

			db, err := store.NewDB(cfg.Storage.DatabasePath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			st := store.NewStore(db)
			defer st.Close()

			if len(req.SavedFilterIDs) > 0 {
				if err := st.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrating database: %w", err)
				}
			}

			preview, err := services.NewClauseService(st).Preview(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writePreview(cmd.OutOrStdout(), opts.output, preview)
		},
	}

	fs := renderCmd.Flags()
	fs.StringVar(&opts.kind, "kind", clause.DataBuilder.String(), "Builder kind (data, globalFilters)")
	fs.StringVar(&opts.operator, "operator", clause.And.String(), "Operator joining the filters (and, or)")
	fs.StringArrayVar(&opts.filters, "filter", nil, "Column selection as column=value1,value2. Repeatable")
	fs.StringVar(&opts.lastSelected, "last-selected", "", "Column of the filter the user touched last")
	fs.StringArrayVarP(&opts.expressions, "expression", "e", nil, "Filter expression added as its own section. Repeatable, sections are joined with --operator")
	fs.StringSliceVar(&opts.savedFilters, "saved-filter", nil, "Saved filter ids to include. Requires --storage-database-path")
	fs.StringSliceVar(&opts.groupBy, "group-by", nil, "Columns to group by")
	fs.BoolVar(&opts.onlyPrimary, "only-primary", false, "Group by the primary column of each filter only")
	fs.StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	fs.StringVar(&cfg.Storage.DatabasePath, "storage-database-path", cfg.Storage.DatabasePath, "DuckDB file saved filters are read from")

	return renderCmd
}

func (o renderOptions) request() (models.ClauseRequest, error) {
	kind, ok := clause.ParseBuilderKind(o.kind)
	if !ok {
		return models.ClauseRequest{}, fmt.Errorf("invalid kind %q", o.kind)
	}
	op, ok := clause.ParseOperator(o.operator)
	if !ok {
		return models.ClauseRequest{}, fmt.Errorf("invalid operator %q", o.operator)
	}
	switch o.output {
	case "text", "json", "yaml":
	default:
		return models.ClauseRequest{}, fmt.Errorf("invalid output %q", o.output)
	}

	req := models.ClauseRequest{
		Kind:           kind,
		Operator:       op,
		SavedFilterIDs: o.savedFilters,
		GroupBy:        len(o.groupBy) > 0,
		OnlyPrimary:    o.onlyPrimary,
		Expressions:    o.expressions,
	}

	index := map[string]int{}
	for _, raw := range o.filters {
		column, values, found := strings.Cut(raw, "=")
		column = strings.TrimSpace(column)
		if !found || column == "" {
			return models.ClauseRequest{}, fmt.Errorf("invalid filter %q: expected column=value1,value2", raw)
		}
		item := models.FilterItem{Column: column, LastSelected: column == o.lastSelected}
		for _, v := range strings.Split(values, ",") {
			if v = strings.TrimSpace(v); v != "" {
				item.Values = append(item.Values, v)
			}
		}
		index[column] = len(req.Filters)
		req.Filters = append(req.Filters, item)
	}

	for _, column := range o.groupBy {
		i, ok := index[column]
		if !ok {
			i = len(req.Filters)
			index[column] = i
			req.Filters = append(req.Filters, models.FilterItem{Column: column})
		}
		req.Filters[i].Primary = true
		req.Filters[i].Groupable = true
	}

	return req, nil
}

func writePreview(w io.Writer, output string, preview *models.ClausePreview) error {
	result := renderResult{
		Where:   preview.Where,
		GroupBy: preview.GroupBy,
		Valid:   preview.Valid,
		Issues:  preview.Issues,
	}

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	}

	if result.Where == "" {
		color.New(color.Faint).Fprintln(w, "no where clause")
	} else {
		color.New(color.FgGreen).Fprintln(w, result.Where)
	}
	if len(result.GroupBy) > 0 {
		color.New(color.FgCyan).Fprintln(w, "GROUP BY "+strings.Join(result.GroupBy, ", "))
	}
	if !result.Valid && result.Issues != "" {
		color.New(color.FgYellow).Fprintln(w, result.Issues)
	}
	return nil
}

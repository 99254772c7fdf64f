package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/errors"
	"github.com/matzehuels/showcase/pkg/pipeline"
	"github.com/matzehuels/showcase/pkg/project"
)

const tabAll = "all"

// projectsCommand creates the "projects" command.
func (c *CLI) projectsCommand() *cobra.Command {
	var (
		tab    string
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the categorized projects",
		Long: `Fetch the owner's repositories, enrich them from their READMEs, apply
the configured overrides and print the result grouped by category.

If GitHub cannot be reached the configured fallback projects are shown
instead, with a warning.`,
		Example: `  showcase projects
  showcase projects --tab other --limit 5
  showcase projects --tab all --json > projects.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tabs, err := selectTabs(tab, cfg.Display)
			if err != nil {
				return err
			}

			result, err := c.runPipeline(cmd.Context(), cfg, !asJSON)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(c.Out, result, tabs, limit)
			}
			writeProjects(c.Out, result, tabs, limit, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&tab, "tab", "t", "", "category to show: featured, other, archived, hidden or all (default: visible tabs)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n projects per category")

	return cmd
}

// runPipeline executes the pipeline once, with a spinner when interactive.
func (c *CLI) runPipeline(ctx context.Context, cfg *config.Config, spin bool) (*pipeline.Result, error) {
	runner, cc, err := c.newRunner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer cc.Close()

	prog := newProgress(loggerFromContext(ctx))
	var s *Spinner
	if spin {
		s = newSpinner(ctx, "Loading projects for "+cfg.Owner+"...")
		s.Start()
	}
	result, err := runner.Execute(ctx, c.runOptions())
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return nil, err
	}

	prog.done("loaded projects",
		"owner", cfg.Owner,
		"projects", result.Stats.Total,
		"degraded", result.Degraded)
	return result, nil
}

// selectTabs resolves the --tab flag. Empty means the tabs visitors see.
func selectTabs(tab string, d config.Display) ([]project.Category, error) {
	switch tab {
	case "":
		return d.Tabs(), nil
	case tabAll:
		return slices.Clone(project.Categories), nil
	}
	c, err := project.ParseCategory(tab)
	if err != nil {
		return nil, err
	}
	return []project.Category{c}, nil
}

func writeProjects(w io.Writer, result *pipeline.Result, tabs []project.Category, limit int, now time.Time) {
	if result.Degraded {
		printWarning(w, "%s", result.Warning)
		if code := errors.StatusCode(result.FetchErr); code != 0 {
			printDetail(w, "GitHub responded with status %d", code)
		}
		fmt.Fprintln(w)
	}
	for _, tab := range tabs {
		page, more := project.Page(result.Buckets.Get(tab), 0, limit)
		printProjects(w, tab, page, now)
		if more {
			printDetail(w, "%d more, use --limit to show them", len(result.Buckets.Get(tab))-len(page))
			fmt.Fprintln(w)
		}
	}
	printStats(w, result.Stats)
	if result.EnrichFailures > 0 {
		printDetail(w, "%d READMEs could not be read", result.EnrichFailures)
	}
}

type jsonOutput struct {
	Projects    map[project.Category][]project.Project `json:"projects"`
	Stats       project.Stats                          `json:"stats"`
	Degraded    bool                                   `json:"degraded"`
	Warning     string                                 `json:"warning,omitempty"`
	GeneratedAt time.Time                              `json:"generated_at"`
}

func writeJSON(w io.Writer, result *pipeline.Result, tabs []project.Category, limit int) error {
	out := jsonOutput{
		Projects:    make(map[project.Category][]project.Project, len(tabs)),
		Stats:       result.Stats,
		Degraded:    result.Degraded,
		Warning:     result.Warning,
		GeneratedAt: result.GeneratedAt,
	}
	for _, tab := range tabs {
		out.Projects[tab], _ = project.Page(result.Buckets.Get(tab), 0, limit)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

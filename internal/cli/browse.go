package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/showcase/pkg/project"
)

// browseCommand creates the interactive "browse" command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse projects interactively",
		Long: `Open a tabbed terminal browser over the projects. Each tab shows
display.projects_per_page projects at a time; press m to load more.
The archived tab is only shown when display.show_archived is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			result, err := c.runPipeline(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			m := NewBrowseModel(result, cfg.Display.Tabs(), project.Category(cfg.Display.DefaultTab), cfg.Display.ProjectsPerPage)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showcase/internal/server"
	"github.com/matzehuels/showcase/pkg/contact"
)

// serveCommand creates the "serve" command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projects and contact API over HTTP",
		Long: `Serve the project tabs and the contact form endpoint as JSON.

Routes:
  GET  /api/health
  GET  /api/projects
  GET  /api/projects/{tab}?offset=0&limit=6
  POST /api/contact

Pipeline results are cached for server.refresh_interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner, cc, err := c.newRunner(ctx, cfg)
			if err != nil {
				return err
			}
			defer cc.Close()

			store, err := contact.Open(ctx, cfg.Contact)
			if err != nil {
				return err
			}
			defer store.Close(context.WithoutCancel(ctx))

			c.Logger.Info("contact store ready", "store", store.Name())

			srv := server.New(runner, contact.NewService(store), cfg, c.Logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from the config)")

	return cmd
}

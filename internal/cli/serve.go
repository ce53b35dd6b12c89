package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/observability"
	"github.com/matzehuels/prismview/pkg/server"
)

// serveCommand starts the HTTP rendering service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenes over HTTP",
		Long: `Serve scenes over HTTP.

Routes:
  GET /healthz
  GET /v1/scenes
  GET /v1/scenes/{scene}/frame
  GET /v1/scenes/{scene}/{format}
  GET /v1/hierarchies/{scene}/{format}

Query parameters width, height, metric, scale, background and caption
override the configured defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			if c.hooks == nil {
				c.hooks = observability.NewLogHooks(c.Logger)
			}
			observability.SetServerHooks(c.hooks)

			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithDefaults(c.baseOptions()),
			)
			printInfo("Listening on %s", StyleLink.Render(listenURL(addr)))
			return srv.ListenAndServe(ctx, addr, c.Config.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// listenURL turns a listen address into a browsable URL.
func listenURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

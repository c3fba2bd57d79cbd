package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/signalwall"
	"github.com/eringen/signalwall/views"
)

func newServeCmd(cfg *fileConfig) *cobra.Command {
	var addr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := cfg.site()
			if addr != "" {
				site.Addr = addr
			}
			if watch {
				site.WatchIndex = true
			}

			app := signalwall.New(site, views.Funcs(), signalwall.WithStaticDir(cfg.StaticDir))
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the post index when it changes")
	return cmd
}

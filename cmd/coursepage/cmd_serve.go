package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursepage/internal/eventbus"
	"coursepage/internal/web"
)

var serveAddr string

// serveCmd serves the page over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page as HTML",
	Long: `Serve the landing page over HTTP. Carousel and accordion state travel in the
query string (?slide=2&faq=0), so the page works without JavaScript. With --watch
the served page follows edits to the content file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := web.NewServer(a.page, a.md, a.log)
	defer a.bus.Subscribe(eventbus.EventContentReloaded, func(e eventbus.DomainEvent) {
		srv.SetPage(e.(eventbus.ContentReloadedEvent).Page)
	})()

	if err := a.startWatcher(ctx); err != nil {
		return err
	}

	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	a.log.Info("serving page", zap.String("content", a.contentLabel()), zap.String("addr", addr))
	return srv.ListenAndServe(ctx, addr)
}

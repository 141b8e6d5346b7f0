package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/lightcycles/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listen     = ":3005"
	promEnable = true
	promListen = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&listen, "listen", "l", listen, "api address to listen on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves the game to browsers",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.New(listen, cfg)
		errs := make(chan error, 1)
		go func() { errs <- srv.WaitForExit() }()

		log.WithFields(log.Fields{
			"listen":  listen,
			"players": cfg.Players,
			"tick":    cfg.TickInterval,
		}).Info("lightcycles serving")

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

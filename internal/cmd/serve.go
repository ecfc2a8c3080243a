package cmd

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/report"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [flags] file...",
	Short: "Compute the report once and serve it over HTTP",
	Long: `serve runs the same pipeline as the root command, renders the report and
serves the static result: HTML at /, msgpack at /api/report.msgpack. The
logs are read exactly once at startup; this is not live ingestion.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rep := diag.New(os.Stderr, opts.verbose)
		rep.SetColor(!opts.noColor)

		r, err := buildReport(cfg, rep, args)
		if err != nil {
			return err
		}
		e, err := newServer(r)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}
		return e.Start(addr)
	},
}

// newServer renders the report once and wires an echo instance serving the
// static result.
func newServer(r *models.Report) (*echo.Echo, error) {
	var html bytes.Buffer
	if err := report.WriteHTML(&html, r); err != nil {
		return nil, err
	}
	var packed bytes.Buffer
	if err := report.WriteMsgpack(&packed, r); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/api/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())

	e.GET("/", func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, html.Bytes())
	})
	e.GET("/api/report.msgpack", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/msgpack", packed.Bytes())
	})
	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":      "ok",
			"reportId":    r.ID,
			"generatedAt": r.GeneratedAt.Format(time.RFC3339),
		})
	})
	return e, nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8089)")
	rootCmd.AddCommand(serveCmd)
}

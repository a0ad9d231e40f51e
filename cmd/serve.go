package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

var servePort int

const drainTimeout = 10 * time.Second

// drainOnCancel shuts srv down once ctx is canceled. The canceled ctx
// cannot carry the drain deadline, so a fresh one is used to let
// in-flight requests finish.
func drainOnCancel(ctx context.Context, srv *http.Server) {
	<-ctx.Done()
	zap.L().Info("shutting down server")
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	srv.Shutdown(drainCtx)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for matching requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p := newPipeline()

		// Set up routes
		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		mux.HandleFunc("POST /match", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Vendors      []model.VendorRecord   `json:"vendors"`
				ClientTables [][]model.ClientRecord `json:"client_tables"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}

			if len(req.Vendors) == 0 {
				http.Error(w, `{"error":"vendors is required"}`, http.StatusBadRequest)
				return
			}

			result := p.Run(req.Vendors, req.ClientTables...)

			zap.L().Info("match request complete",
				zap.Int("vendors", len(req.Vendors)),
				zap.Int("matches", len(result.Matches)),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(result)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go drainOnCancel(ctx, srv)

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/auth"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/air"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/importer"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/recommend"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/report"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey)}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	airH := &air.Handler{}
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	api.HandleFunc("/properties", airH.Properties).Methods("GET")

	secureApi := api.PathPrefix("/tools").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	tubebankH := &tubebank.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tubebank/calc", tubebankH.Calc).Methods("POST")
	secureApi.HandleFunc("/tubebank/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tubebank/import", importerH.Cases).Methods("POST")
	secureApi.HandleFunc("/tubebank/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tubebank/recommend", recommendH.Arrangement).Methods("POST")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	log.SetLevel(cfg.LogLevel)
	if cfg.TokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, cfg)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: CORS(router),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.WithFields(log.Fields{"addr": cfg.Addr, "tls": cfg.TLS()}).Info("starting server")
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server shutdown")
	}
	log.Info("server stopped")

	wg.Wait()
}

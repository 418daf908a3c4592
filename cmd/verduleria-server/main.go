// Command verduleria-server serves the shop's JSON API.
//
// @title                       Verdulería API
// @version                     1.0
// @description                 Catalog, customers and orders of a neighbourhood vegetable shop.
// @BasePath                    /api
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-KEY
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/MikeMC777/verduleria-ecom/internal/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[main] %v", err)
	}
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("[main] open store: %v", err)
	}
	defer st.close()

	pub := newPublisher(cfg.NatsURL)
	defer pub.Close()

	r := newRouter(st, pub, routerOptions{
		AdminKeyHash: cfg.AdminKeyHash,
		CORSOrigins:  cfg.CORSOrigins,
		PublicDir:    cfg.PublicDir,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 2)
	go func() {
		log.Printf("[http] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	var (
		gs *grpc.Server
		hs *health.Server
	)
	if cfg.GRPCAddr != "" {
		gs, hs = newGRPCServer()
		if _, err := serveGRPC(gs, cfg.GRPCAddr, errs); err != nil {
			log.Fatalf("[grpc] listen %s: %v", cfg.GRPCAddr, err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		log.Printf("[main] server error: %v", err)
	case sig := <-stop:
		log.Printf("[main] received %s, shutting down", sig)
	}

	if hs != nil {
		hs.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
	if gs != nil {
		done := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			log.Printf("[grpc] graceful stop timed out, forcing")
			gs.Stop()
		}
	}
	log.Printf("[main] bye")
}

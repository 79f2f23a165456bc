package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkonrad/geocachy/pkg/env"
	"github.com/mkonrad/geocachy/pkg/geocache"
	"github.com/mkonrad/geocachy/pkg/logger"
	"github.com/mkonrad/geocachy/pkg/middleware"
)

const ServiceName = "server"

func init() {
	logger.InitGlobalSlog(ServiceName)
}

func main() {
	geocacher, err := geocache.New(env.CacheDir(), env.GoogleMapsAPIKey())
	if err != nil {
		panic(fmt.Errorf("unable to set up geocoding cache: %w", err))
	}

	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(false))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/geocode", geocodeController(geocacher))
	r.DELETE("/cache", cleanCacheController(geocacher))
	r.DELETE("/cache/entry", removeEntryController(geocacher))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port := env.Port()
	srv := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: r}
	go func() {
		slog.Info(fmt.Sprintf("serving HTTP on :%s", port))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server shutdown abruptly", "error", err.Error())
		} else {
			slog.Info("server shutdown gracefully")
		}

		stop()
	}()

	// Listen for OS interrupt
	<-ctx.Done()
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err.Error())
	}

	slog.Info("server exited")
}

func geocodeController(g *geocache.Geocacher) gin.HandlerFunc {
	return func(c *gin.Context) {
		addresses := c.QueryArray("address")
		if len(addresses) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing address query parameter"})
			return
		}

		results, err := g.Geocode(addresses)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "unable to geocode addresses", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to geocode addresses"})
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

func cleanCacheController(g *geocache.Geocacher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.CleanCache(); err != nil {
			slog.ErrorContext(c.Request.Context(), "unable to clean cache", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to clean cache"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cache cleaned"})
	}
}

func removeEntryController(g *geocache.Geocacher) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Query("address")
		if address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing address query parameter"})
			return
		}

		if err := g.RemoveFromCache(address); err != nil {
			slog.ErrorContext(c.Request.Context(), "unable to remove cache entry", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to remove cache entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cache entry removed", "address": address})
	}
}

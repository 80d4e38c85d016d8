package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/config"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/gateway"
	"github.com/Suvam-Debnath/EcomTCS/internal/gateway/breaker"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cf := config.GetConfig()
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", constants.ServiceGateway).
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPas,
	})
	defer redisClient.Close()
	resolver := registry.NewRedisRegistry(redisClient)

	breakerConfig := breaker.GetDefaultBreakerConfig()
	mux := gateway.SetupRouter(gateway.DefaultRoutes(), resolver, &breakerConfig, &logger)

	server := &http.Server{
		Addr:    ":" + cf.GatewayPort,
		Handler: mux,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().Str("addr", server.Addr).Msg("gateway started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error().Err(err).Msg("gateway stopped with error")
	}
	logger.Info().Msg("gateway shutdown complete")
}

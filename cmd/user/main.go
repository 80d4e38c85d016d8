package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/handler"
	"github.com/Suvam-Debnath/EcomTCS/internal/api/router"
	"github.com/Suvam-Debnath/EcomTCS/internal/config"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/Suvam-Debnath/EcomTCS/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const registryTTL = 15 * time.Second

func main() {
	cf := config.GetConfig()
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", constants.ServiceUser).
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	dao := db.NewDbDao(conn)
	if err := dao.InitUserMigrate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate db")
	}

	userService := service.NewUserService(db.NewUserRepo(dao))
	userHandler := handler.NewUserHandler(userService)
	mux := router.SetupUserRouter(userHandler, &logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPas,
	})
	defer redisClient.Close()
	reg := registry.NewRedisRegistry(redisClient)
	inst := registry.Instance{
		ServiceName: constants.ServiceUser,
		Addr:        net.JoinHostPort(cf.ServiceHost, cf.UserPort),
	}
	if err := reg.Register(ctx, inst, registryTTL); err != nil {
		logger.Fatal().Err(err).Msg("failed to register service")
	}

	server := &http.Server{
		Addr:    ":" + cf.UserPort,
		Handler: mux,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().Str("addr", server.Addr).Msg("user service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		return registry.RunHeartbeat(gctx, reg, inst, registryTTL)
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error().Err(err).Msg("user service stopped with error")
	}
	logger.Info().Msg("user service shutdown complete")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/loveletter/internal/common/uuid"
	"github.com/KirkDiggler/loveletter/internal/handlers/discord"
	"github.com/KirkDiggler/loveletter/internal/repositories/game"
	"github.com/KirkDiggler/loveletter/internal/repositories/player"
	gameService "github.com/KirkDiggler/loveletter/internal/services/game"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// ServeCmd runs the bot until interrupted
type ServeCmd struct {
	PingTimeout time.Duration `default:"5s" help:"How long to wait for Redis at startup"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	if cfg.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, c.PingTimeout)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Language: cfg.Language,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Sender:           discord.NewSessionSender(session),
		MessagingService: messagingSvc,
		Language:         cfg.Language,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		Notifier:      notifier,
		Shuffler:      shuffle.New(nil),
		Clock:         quartz.NewReal(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	// matches do not survive a restart, close what the last run left behind
	pruned, err := gameSvc.PruneStaleGames(ctx, &gameService.PruneStaleGamesInput{})
	if err != nil {
		return fmt.Errorf("failed to prune stale games: %w", err)
	}
	if len(pruned.GameIDs) > 0 {
		logger.WithField("count", len(pruned.GameIDs)).Info("closed stale games")
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"version":  version,
		"guild_id": cfg.GuildID,
		"language": cfg.Language,
	}).Info("bot started, press CTRL-C to exit")

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return notifier.Run(egCtx)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info("shutting down")
		return bot.Stop()
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("error stopping bot: %w", err)
	}

	logger.Info("bot has been shut down")
	return nil
}

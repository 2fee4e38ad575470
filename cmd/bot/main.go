package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gatherbot/gatherbot/internal/handlers/discord"
	"github.com/gatherbot/gatherbot/internal/repositories/game"
	"github.com/gatherbot/gatherbot/internal/repositories/server"
	"github.com/gatherbot/gatherbot/internal/repositories/tag"
	"github.com/gatherbot/gatherbot/internal/repositories/user"
	gameService "github.com/gatherbot/gatherbot/internal/services/game"
	guildService "github.com/gatherbot/gatherbot/internal/services/guild"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
	"github.com/gatherbot/gatherbot/internal/services/sweeper"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load optional .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	serverRepo, err := server.NewRedis(&server.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create server repository: %v", err)
	}

	userRepo, err := user.NewRedis(&user.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	tagRepo, err := tag.NewRedis(&tag.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create tag repository: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Create the shared Discord session
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMessageReactions |
		discordgo.IntentDirectMessages |
		discordgo.IntentGuildMembers |
		discordgo.IntentMessageContent

	// Initialize messaging gateway
	gateway, err := messaging.NewDiscord(&messaging.DiscordConfig{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging gateway: %v", err)
	}

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:   gameRepo,
		ServerRepo: serverRepo,
		UserRepo:   userRepo,
		TagRepo:    tagRepo,
		Gateway:    gateway,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	guildSvc, err := guildService.New(&guildService.Config{
		ServerRepo: serverRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create guild service: %v", err)
	}

	// Initialize the expiration sweeper
	sweepInterval := sweeper.DefaultInterval
	if raw := getEnv("SWEEP_INTERVAL", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid SWEEP_INTERVAL %q: %v", raw, err)
		}
		sweepInterval = parsed
	}

	sweep, err := sweeper.New(&sweeper.Config{
		GameService: gameSvc,
		Interval:    sweepInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create sweeper: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:      session,
		GameService:  gameSvc,
		GuildService: guildSvc,
		AdminRole:    getEnv("ADMIN_ROLE", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Start the sweeper
	if err := sweep.Start(); err != nil {
		log.Fatalf("Failed to start sweeper: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the sweeper, then the bot
	sweep.Stop()
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

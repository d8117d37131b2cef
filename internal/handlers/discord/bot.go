package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/services/game"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	loveletter *LoveLetterCommand
	config     *Config
	log        *logrus.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened Discord session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	GameService      game.Service
	MessagingService messaging.Service
	Logger           *logrus.Logger
}

// NewSession creates a Discord session for a bot token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// slash commands and direct message components are all the bot reads
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cmd, err := NewLoveLetterCommand(&LoveLetterCommandConfig{
		GameService:      cfg.GameService,
		MessagingService: cfg.MessagingService,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		loveletter: cmd,
		config:     cfg,
		log:        logger,
	}

	// Register the interaction handler
	bot.session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.loveletter); err != nil {
		return fmt.Errorf("failed to register loveletter command: %w", err)
	}

	b.log.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		entry := b.log.WithFields(logrus.Fields{"command": cmdName, "command_id": cmdID})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			entry.WithError(err).Warn("failed to delete command")
		} else {
			entry.Info("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for the configured guild, or globally without one.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	entry := b.log.WithFields(logrus.Fields{
		"command":  cmd.GetName(),
		"guild_id": b.config.GuildID,
	})

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	entry.WithField("command_id", createdCmd.ID).Info("registered command")

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.WithError(err).WithField("command", name).Error("failed to handle command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.WithError(err).Error("failed to handle component interaction")
		}
	}
}

// handleComponentInteraction routes select menu choices
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case SelectCard, SelectVictim, SelectGuess:
		return b.loveletter.HandleComponent(s, i)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown component: %s", customID))
	}
}

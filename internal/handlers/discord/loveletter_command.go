package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/game"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
)

// Subcommands of /loveletter
const (
	SubcommandCreate     = "create"
	SubcommandJoin       = "join"
	SubcommandLeave      = "leave"
	SubcommandDoubleDeck = "doubledeck"
	SubcommandStart      = "start"
	SubcommandRestart    = "restart"
	SubcommandCards      = "cards"
	SubcommandPlayers    = "players"
	SubcommandHand       = "hand"
	SubcommandHelp       = "help"
	SubcommandHint       = "hint"
	SubcommandAbandon    = "abandon"
)

// Request is a command or component interaction reduced to what the game needs
type Request struct {
	Subcommand string

	// CustomID and Values are set for component interactions
	CustomID string
	Values   []string

	// Enabled is the optional doubledeck argument
	Enabled *bool

	ChannelID string
	UserID    string
	UserName  string
	Locale    string
}

// LoveLetterCommandConfig holds the dependencies of the /loveletter command
type LoveLetterCommandConfig struct {
	GameService      game.Service
	MessagingService messaging.Service
	Logger           *logrus.Logger
}

// LoveLetterCommand handles the /loveletter command and its select menus
type LoveLetterCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	log              *logrus.Logger
}

// NewLoveLetterCommand creates a new loveletter command handler
func NewLoveLetterCommand(cfg *LoveLetterCommandConfig) (*LoveLetterCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	subcommand := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        name,
			Description: description,
		}
	}

	doubleDeck := subcommand(SubcommandDoubleDeck, "Add or remove the second deck")
	doubleDeck.Options = []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "enabled",
			Description: "Use the second deck, toggles when omitted",
		},
	}

	return &LoveLetterCommand{
		BaseCommand: BaseCommand{
			Name:        "loveletter",
			Description: "Love Letter card game commands",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand(SubcommandCreate, "Create a game in this channel"),
				subcommand(SubcommandJoin, "Join the game in this channel"),
				subcommand(SubcommandLeave, "Leave your game"),
				doubleDeck,
				subcommand(SubcommandStart, "Deal the cards"),
				subcommand(SubcommandRestart, "Play again with the same players"),
				subcommand(SubcommandCards, "Show the dropped cards"),
				subcommand(SubcommandPlayers, "Show the remaining players"),
				subcommand(SubcommandHand, "Show your cards"),
				subcommand(SubcommandHelp, "List the commands"),
				subcommand(SubcommandHint, "Short rules"),
				subcommand(SubcommandAbandon, "Close the game"),
			},
		},
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		log:              logger,
	}, nil
}

// Handle processes a Discord interaction for the loveletter command
func (c *LoveLetterCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := newRequest(i)
	req.Subcommand = data.Options[0].Name
	for _, opt := range data.Options[0].Options {
		if opt.Name == "enabled" {
			enabled := opt.BoolValue()
			req.Enabled = &enabled
		}
	}

	resp, err := c.Execute(context.Background(), req)
	if err != nil {
		return err
	}
	return c.send(s, i, resp)
}

// HandleComponent processes a select menu choice
func (c *LoveLetterCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	req := newRequest(i)
	req.CustomID = data.CustomID
	req.Values = data.Values

	resp, err := c.ExecuteComponent(context.Background(), req)
	if err != nil {
		return err
	}
	return c.send(s, i, resp)
}

func (c *LoveLetterCommand) send(s *discordgo.Session, i *discordgo.InteractionCreate, resp *Response) error {
	if err := Respond(s, i, resp); err != nil {
		return err
	}
	if resp.Announce != nil {
		if _, err := s.ChannelMessageSend(resp.Announce.ChannelID, resp.Announce.Text); err != nil {
			c.log.WithError(err).WithField("channel_id", resp.Announce.ChannelID).Warn("failed to announce")
		}
	}
	return nil
}

func newRequest(i *discordgo.InteractionCreate) *Request {
	userID, userName := interactionUser(i)
	return &Request{
		ChannelID: i.ChannelID,
		UserID:    userID,
		UserName:  userName,
		Locale:    string(i.Locale),
	}
}

// Execute runs a subcommand. Game errors are rendered into the response, only
// transport level failures are returned.
func (c *LoveLetterCommand) Execute(ctx context.Context, req *Request) (*Response, error) {
	var (
		resp *Response
		err  error
	)

	switch req.Subcommand {
	case SubcommandCreate:
		resp, err = c.handleCreate(ctx, req)
	case SubcommandJoin:
		resp, err = c.handleJoin(ctx, req)
	case SubcommandLeave:
		resp, err = c.handleLeave(ctx, req)
	case SubcommandDoubleDeck:
		resp, err = c.handleDoubleDeck(ctx, req)
	case SubcommandStart:
		resp, err = c.handleStart(ctx, req)
	case SubcommandRestart:
		resp, err = c.handleRestart(ctx, req)
	case SubcommandCards:
		resp, err = c.handleCards(ctx, req)
	case SubcommandPlayers:
		resp, err = c.handlePlayers(ctx, req)
	case SubcommandHand:
		resp, err = c.handleHand(ctx, req)
	case SubcommandHelp:
		resp, err = c.handleHelp(ctx, req)
	case SubcommandHint:
		resp, err = c.handleHint(ctx, req)
	case SubcommandAbandon:
		resp, err = c.handleAbandon(ctx, req)
	default:
		err = game.ErrInvalidInput
	}

	if err != nil {
		return c.errorResponse(ctx, req, err)
	}
	return resp, nil
}

// ExecuteComponent applies a select menu choice to the caller's game
func (c *LoveLetterCommand) ExecuteComponent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Values) == 0 {
		return c.errorResponse(ctx, req, game.ErrInvalidInput)
	}
	value := req.Values[0]

	var (
		out *game.PlayOutput
		err error
	)
	switch req.CustomID {
	case SelectCard:
		out, err = c.gameService.SelectCard(ctx, &game.SelectCardInput{PlayerID: req.UserID, Card: value})
	case SelectVictim:
		out, err = c.gameService.SelectVictim(ctx, &game.SelectVictimInput{PlayerID: req.UserID, Victim: value})
	case SelectGuess:
		out, err = c.gameService.GuessCard(ctx, &game.GuessCardInput{PlayerID: req.UserID, Card: value})
	default:
		err = game.ErrInvalidInput
	}
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	resp := &Response{
		Content: c.notice(ctx, req, messaging.NoticeChosen, value),
		Update:  true,
	}

	if out.GameOver {
		resp.Announce = c.winnerAnnouncement(ctx, req, out)
	}

	return resp, nil
}

func (c *LoveLetterCommand) winnerAnnouncement(ctx context.Context, req *Request, out *game.PlayOutput) *Announcement {
	view, err := c.gameService.GetGame(ctx, &game.GetGameInput{GameID: out.GameID})
	if err != nil {
		c.log.WithError(err).WithField("game_id", out.GameID).Warn("failed to load finished game")
		return nil
	}

	return &Announcement{
		ChannelID: view.Game.ChannelID,
		Text:      c.notice(ctx, req, messaging.NoticeWinner, out.Winner),
	}
}

func (c *LoveLetterCommand) handleCreate(ctx context.Context, req *Request) (*Response, error) {
	_, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChannelID:   req.ChannelID,
		CreatorID:   req.UserID,
		CreatorName: req.UserName,
	})
	if err != nil {
		return nil, err
	}

	return &Response{Content: c.notice(ctx, req, messaging.NoticeGameCreated, req.UserName)}, nil
}

func (c *LoveLetterCommand) handleJoin(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.gameService.JoinGame(ctx, &game.JoinGameInput{
		ChannelID:  req.ChannelID,
		PlayerID:   req.UserID,
		PlayerName: req.UserName,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: c.notice(ctx, req, messaging.NoticeJoined, req.UserName, len(out.Game.PlayerIDs)),
	}, nil
}

func (c *LoveLetterCommand) handleLeave(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.gameService.LeaveGame(ctx, &game.LeaveGameInput{PlayerID: req.UserID})
	if err != nil {
		return nil, err
	}

	if out.Closed {
		return &Response{Content: c.notice(ctx, req, messaging.NoticeGameClosed)}, nil
	}
	return &Response{Content: c.notice(ctx, req, messaging.NoticeLeft, req.UserName)}, nil
}

func (c *LoveLetterCommand) handleDoubleDeck(ctx context.Context, req *Request) (*Response, error) {
	var enabled bool
	if req.Enabled != nil {
		enabled = *req.Enabled
	} else {
		view, err := c.gameService.GetGameByPlayer(ctx, &game.GetGameByPlayerInput{PlayerID: req.UserID})
		if err != nil {
			return nil, err
		}
		enabled = !view.Snapshot.DoubleDeck
	}

	out, err := c.gameService.SetDoubleDeck(ctx, &game.SetDoubleDeckInput{
		PlayerID: req.UserID,
		Enabled:  enabled,
	})
	if err != nil {
		return nil, err
	}

	kind := engine.MessageDoubleDeckOff
	if out.DoubleDeck {
		kind = engine.MessageDoubleDeckOn
	}
	rendered, err := c.messagingService.RenderMessage(ctx, &messaging.RenderMessageInput{
		Message:  &engine.Message{Kind: kind},
		Language: req.Locale,
	})
	if err != nil {
		return nil, err
	}

	return &Response{Content: rendered.Text}, nil
}

func (c *LoveLetterCommand) handleStart(ctx context.Context, req *Request) (*Response, error) {
	if _, err := c.gameService.StartGame(ctx, &game.StartGameInput{PlayerID: req.UserID}); err != nil {
		return nil, err
	}
	return &Response{Content: c.notice(ctx, req, messaging.NoticeStarted)}, nil
}

func (c *LoveLetterCommand) handleRestart(ctx context.Context, req *Request) (*Response, error) {
	if _, err := c.gameService.RestartGame(ctx, &game.RestartGameInput{PlayerID: req.UserID}); err != nil {
		return nil, err
	}
	return &Response{Content: c.notice(ctx, req, messaging.NoticeRestarted, req.UserName)}, nil
}

func (c *LoveLetterCommand) handleCards(ctx context.Context, req *Request) (*Response, error) {
	view, err := c.gameService.GetGameByPlayer(ctx, &game.GetGameByPlayerInput{PlayerID: req.UserID})
	if err != nil {
		return nil, err
	}

	out, err := c.messagingService.GetUsedCardsMessage(ctx, &messaging.GetUsedCardsMessageInput{
		Cards:    view.Snapshot.UsedCards,
		Language: req.Locale,
	})
	if err != nil {
		return nil, err
	}

	return &Response{Content: out.Text, Ephemeral: true}, nil
}

func (c *LoveLetterCommand) handlePlayers(ctx context.Context, req *Request) (*Response, error) {
	view, err := c.gameService.GetGameByPlayer(ctx, &game.GetGameByPlayerInput{PlayerID: req.UserID})
	if err != nil {
		return nil, err
	}

	out, err := c.messagingService.GetPlayersMessage(ctx, &messaging.GetPlayersMessageInput{
		Active:     view.Snapshot.Active,
		Eliminated: view.Snapshot.Eliminated,
		Language:   req.Locale,
	})
	if err != nil {
		return nil, err
	}

	return &Response{Content: out.Text, Ephemeral: true}, nil
}

// handleHand shows the caller's cards and, on their turn, the menu they are
// expected to answer. It recovers a prompt lost in direct messages.
func (c *LoveLetterCommand) handleHand(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.gameService.GetHand(ctx, &game.GetHandInput{PlayerID: req.UserID})
	if err != nil {
		return nil, err
	}

	resp := &Response{Ephemeral: true}
	if len(out.Cards) == 0 {
		resp.Content = c.notice(ctx, req, messaging.NoticeNoHand)
	} else {
		resp.Content = c.notice(ctx, req, messaging.NoticeYourHand, strings.Join(cards.Names(out.Cards), ", "))
	}

	if customID, placeholder, ok := menuForState(out.State); ok && len(out.Options) > 0 {
		resp.Menu = &Menu{
			CustomID:    customID,
			Placeholder: c.notice(ctx, req, placeholder),
			Options:     out.Options,
		}
	}

	return resp, nil
}

func (c *LoveLetterCommand) handleHelp(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.messagingService.GetHelpMessage(ctx, &messaging.GetHelpMessageInput{Language: req.Locale})
	if err != nil {
		return nil, err
	}
	return &Response{Content: out.Text, Ephemeral: true}, nil
}

func (c *LoveLetterCommand) handleHint(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.messagingService.GetHintMessage(ctx, &messaging.GetHintMessageInput{Language: req.Locale})
	if err != nil {
		return nil, err
	}
	return &Response{Content: out.Text, Ephemeral: true}, nil
}

func (c *LoveLetterCommand) handleAbandon(ctx context.Context, req *Request) (*Response, error) {
	if _, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{PlayerID: req.UserID}); err != nil {
		return nil, err
	}
	return &Response{Content: c.notice(ctx, req, messaging.NoticeAbandoned, req.UserName)}, nil
}

// notice renders a host notice, falling back to the notice key on failure
func (c *LoveLetterCommand) notice(ctx context.Context, req *Request, notice messaging.Notice, args ...interface{}) string {
	out, err := c.messagingService.GetNoticeMessage(ctx, &messaging.GetNoticeMessageInput{
		Notice:   notice,
		Args:     args,
		Language: req.Locale,
	})
	if err != nil {
		c.log.WithError(err).WithField("notice", notice).Warn("failed to render notice")
		return string(notice)
	}
	return out.Text
}

// errorResponse turns a game error into an ephemeral reply. Unexpected errors
// are logged and answered with a generic message.
func (c *LoveLetterCommand) errorResponse(ctx context.Context, req *Request, err error) (*Response, error) {
	out, renderErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:      err,
		Language: req.Locale,
	})
	if renderErr != nil {
		return nil, renderErr
	}

	entry := c.log.WithFields(logrus.Fields{
		"player_id":  req.UserID,
		"channel_id": req.ChannelID,
		"subcommand": req.Subcommand,
		"custom_id":  req.CustomID,
	}).WithError(err)
	if out.Known {
		entry.Debug("request rejected")
	} else {
		entry.Error("request failed")
	}

	return &Response{
		Content:   out.Title + ": " + out.Message,
		Ephemeral: true,
	}, nil
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/game"
)

// errorKeys maps user facing errors to catalog keys. Order matters only for
// errors that wrap each other.
var errorKeys = []struct {
	err error
	key string
}{
	{engine.ErrAlreadyJoined, "error.already_joined"},
	{engine.ErrNameTaken, "error.name_taken"},
	{engine.ErrAlreadyStarted, "error.already_started"},
	{engine.ErrTooFewPlayers, "error.too_few_players"},
	{engine.ErrIllegalCard, "error.illegal_card"},
	{engine.ErrMustDiscardCountess, "error.must_discard_countess"},
	{engine.ErrIneligibleVictim, "error.ineligible_victim"},
	{engine.ErrIllegalGuess, "error.illegal_guess"},
	{engine.ErrPlayerNotFound, "error.player_not_found"},
	{engine.ErrEmptyName, "error.empty_name"},
	{engine.ErrDeckTooSmall, "error.deck_too_small"},
	{engine.ErrWrongState, "error.wrong_state"},
	{game.ErrGameNotFound, "error.game_not_found"},
	{game.ErrPlayerAlreadyInGame, "error.player_already_in_game"},
	{game.ErrGameAlreadyExists, "error.game_already_exists"},
	{game.ErrPlayerNotInGame, "error.player_not_in_game"},
	{game.ErrGameFull, "error.game_full"},
	{game.ErrNotYourTurn, "error.not_your_turn"},
	{game.ErrNotGameCreator, "error.not_game_creator"},
	{game.ErrInvalidInput, "error.invalid_input"},
}

// service implements the Service interface
type service struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	language language.Tag
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	lang := DefaultLanguage
	if config != nil && config.Language != "" {
		lang = config.Language
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	builder, err := newCatalog()
	if err != nil {
		return nil, err
	}

	s := &service{
		catalog: builder,
		matcher: language.NewMatcher(supported),
	}
	s.language = s.match(tag)

	return s, nil
}

// match picks the closest supported language
func (s *service) match(tag language.Tag) language.Tag {
	_, index, confidence := s.matcher.Match(tag)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// printer returns a printer for the requested language, or the configured one
// when lang is empty or cannot be parsed
func (s *service) printer(lang string) *message.Printer {
	tag := s.language
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			tag = s.match(parsed)
		}
	}
	return message.NewPrinter(tag, message.Catalog(s.catalog))
}

// RenderMessage turns an engine notification into text
func (s *service) RenderMessage(ctx context.Context, input *RenderMessageInput) (*RenderMessageOutput, error) {
	if input == nil || input.Message == nil {
		return nil, errors.New("message cannot be nil")
	}

	p := s.printer(input.Language)
	m := input.Message
	key := "event." + string(m.Kind)

	var text string
	switch m.Kind {
	case engine.MessagePlayerJoined, engine.MessagePlayerLeft, engine.MessageMaidProtected,
		engine.MessagePrincessDiscarded, engine.MessageCountessDiscarded, engine.MessageLost:
		text = p.Sprintf(key, m.Player)
	case engine.MessageDoubleDeckAuto:
		text = p.Sprintf(key, m.Count)
	case engine.MessageDoubleDeckOn, engine.MessageDoubleDeckOff, engine.MessageLastTurn,
		engine.MessageCountessReminder, engine.MessageEliminated, engine.MessageWon:
		text = p.Sprintf(key)
	case engine.MessageGameStarted:
		text = p.Sprintf(key, strings.Join(m.Players, ", "))
	case engine.MessageCardDealt, engine.MessageCardDrawn:
		text = p.Sprintf(key, m.Card.Name())
	case engine.MessageTurnStarted:
		text = p.Sprintf(key, m.Player, m.Count)
	case engine.MessageChooseCard:
		text = p.Sprintf(key, strings.Join(m.Options, ", "))
	case engine.MessageChooseVictim:
		text = p.Sprintf(key, m.Card.Name(), strings.Join(m.Options, ", "))
	case engine.MessageChooseGuess:
		text = p.Sprintf(key, m.Target, strings.Join(m.Options, ", "))
	case engine.MessageNoTarget:
		text = p.Sprintf(key, m.Player, m.Card.Name())
	case engine.MessageKingSwap, engine.MessagePrincePrincess, engine.MessageBaronTie,
		engine.MessagePriestPeek:
		text = p.Sprintf(key, m.Player, m.Target)
	case engine.MessageKingReceived, engine.MessagePriestReveal:
		text = p.Sprintf(key, m.Target, m.Card.Name())
	case engine.MessagePrinceDiscard, engine.MessageBaronWon, engine.MessageBaronLost,
		engine.MessageGuardHit, engine.MessageGuardMiss:
		text = p.Sprintf(key, m.Player, m.Target, m.Card.Name())
	case engine.MessageGameOver:
		text = s.gameOver(p, m)
	default:
		return nil, fmt.Errorf("unknown message kind %q", m.Kind)
	}

	return &RenderMessageOutput{Text: text}, nil
}

func (s *service) gameOver(p *message.Printer, m *engine.Message) string {
	var b strings.Builder
	b.WriteString(p.Sprintf("event.game_over", m.Player))
	for _, standing := range m.Standings {
		b.WriteString("\n")
		b.WriteString(p.Sprintf(keyGameOverStanding, standing.Rank, standing.Name, standing.Card.Name()))
	}
	if len(m.Players) > 0 {
		b.WriteString("\n")
		b.WriteString(p.Sprintf(keyGameOverOut, strings.Join(m.Players, ", ")))
	}
	return b.String()
}

// GetNoticeMessage returns the text of a host notice
func (s *service) GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error) {
	if input == nil || input.Notice == "" {
		return nil, errors.New("notice cannot be empty")
	}

	p := s.printer(input.Language)
	return &GetNoticeMessageOutput{
		Text: p.Sprintf(string(input.Notice), input.Args...),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	p := s.printer(input.Language)
	output := &GetErrorMessageOutput{
		Title:   p.Sprintf(keyErrorTitle),
		Message: p.Sprintf(keyErrorUnknown),
	}

	for _, entry := range errorKeys {
		if errors.Is(input.Err, entry.err) {
			output.Message = p.Sprintf(entry.key)
			output.Known = true
			break
		}
	}

	return output, nil
}

// GetHelpMessage lists the commands
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	lang := ""
	if input != nil {
		lang = input.Language
	}
	return &GetHelpMessageOutput{Text: s.printer(lang).Sprintf(keyHelp)}, nil
}

// GetHintMessage is a short copy of the rules
func (s *service) GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error) {
	lang := ""
	if input != nil {
		lang = input.Language
	}
	return &GetHintMessageOutput{Text: s.printer(lang).Sprintf(keyHint)}, nil
}

// GetUsedCardsMessage groups the discard pile by card type, highest value first
func (s *service) GetUsedCardsMessage(ctx context.Context, input *GetUsedCardsMessageInput) (*GetUsedCardsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer(input.Language)
	if len(input.Cards) == 0 {
		return &GetUsedCardsMessageOutput{Text: p.Sprintf(keyUsedEmpty)}, nil
	}

	counts := make(map[cards.Card]int)
	for _, c := range input.Cards {
		counts[c]++
	}

	var b strings.Builder
	b.WriteString(p.Sprintf(keyUsedTitle))
	for _, c := range cards.All() {
		if counts[c] == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n - %-10s [%d]", c.Name(), counts[c])
	}

	return &GetUsedCardsMessageOutput{Text: b.String()}, nil
}

// GetPlayersMessage lists players in turn order. Protected players are marked
// with ^ and the current player with <<.
func (s *service) GetPlayersMessage(ctx context.Context, input *GetPlayersMessageInput) (*GetPlayersMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer(input.Language)

	var b strings.Builder
	b.WriteString(p.Sprintf(keyPlayersTitle))
	for _, player := range input.Active {
		b.WriteString("\n - ")
		b.WriteString(player.Name)
		if player.Defended {
			b.WriteString(" ^")
		}
		if player.Dealer {
			b.WriteString(" <<")
		}
	}

	if len(input.Eliminated) > 0 {
		b.WriteString("\n")
		b.WriteString(p.Sprintf(keyPlayersEliminated))
		for _, player := range input.Eliminated {
			b.WriteString("\n - ")
			b.WriteString(player.Name)
		}
	}

	return &GetPlayersMessageOutput{Text: b.String()}, nil
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/game"
)

var allKinds = []engine.MessageKind{
	engine.MessagePlayerJoined,
	engine.MessagePlayerLeft,
	engine.MessageDoubleDeckAuto,
	engine.MessageDoubleDeckOn,
	engine.MessageDoubleDeckOff,
	engine.MessageGameStarted,
	engine.MessageCardDealt,
	engine.MessageTurnStarted,
	engine.MessageLastTurn,
	engine.MessageCardDrawn,
	engine.MessageChooseCard,
	engine.MessageCountessReminder,
	engine.MessageChooseVictim,
	engine.MessageChooseGuess,
	engine.MessageNoTarget,
	engine.MessagePrincessDiscarded,
	engine.MessageCountessDiscarded,
	engine.MessageKingSwap,
	engine.MessageKingReceived,
	engine.MessagePrinceDiscard,
	engine.MessagePrincePrincess,
	engine.MessageMaidProtected,
	engine.MessageBaronWon,
	engine.MessageBaronLost,
	engine.MessageBaronTie,
	engine.MessagePriestPeek,
	engine.MessagePriestReveal,
	engine.MessageGuardHit,
	engine.MessageGuardMiss,
	engine.MessageEliminated,
	engine.MessageGameOver,
	engine.MessageWon,
	engine.MessageLost,
}

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Language: "en"})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) render(msg *engine.Message, lang string) string {
	out, err := s.service.RenderMessage(s.ctx, &RenderMessageInput{Message: msg, Language: lang})
	s.Require().NoError(err)
	return out.Text
}

func fullMessage(kind engine.MessageKind) *engine.Message {
	return &engine.Message{
		Kind:    kind,
		Player:  "alice",
		Target:  "bob",
		Card:    cards.Baron,
		Count:   3,
		Players: []string{"bob", "carol"},
		Standings: []engine.Standing{
			{Rank: 1, Name: "alice", Card: cards.King},
			{Rank: 2, Name: "dave", Card: cards.Guard},
		},
		Options: []string{"bob", "carol"},
	}
}

func (s *MessagingServiceTestSuite) TestNewServiceRejectsBadLanguage() {
	_, err := NewService(&ServiceConfig{Language: "not a tag!"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestNewServiceDefaults() {
	svc, err := NewService(nil)
	s.Require().NoError(err)

	out, err := svc.RenderMessage(s.ctx, &RenderMessageInput{Message: &engine.Message{Kind: engine.MessageWon}})
	s.Require().NoError(err)
	s.Equal("Congratulations, you won!", out.Text)
}

func (s *MessagingServiceTestSuite) TestEveryKindRenders() {
	for _, lang := range []string{"en", "ru"} {
		for _, kind := range allKinds {
			text := s.render(fullMessage(kind), lang)
			s.NotEmpty(text, "%s %s", lang, kind)
			s.NotContains(text, "%!", "%s %s: %s", lang, kind, text)
			s.NotContains(text, "event.", "%s %s: %s", lang, kind, text)
		}
	}
}

func (s *MessagingServiceTestSuite) TestRenderEnglish() {
	testCases := []struct {
		name string
		msg  *engine.Message
		want string
	}{
		{
			name: "guard hit",
			msg:  &engine.Message{Kind: engine.MessageGuardHit, Player: "alice", Target: "bob", Card: cards.Priest},
			want: "alice guessed the Priest and bob is out",
		},
		{
			name: "baron lost",
			msg:  &engine.Message{Kind: engine.MessageBaronLost, Player: "alice", Target: "bob", Card: cards.Guard},
			want: "alice played the Baron against bob and is out with the Guard",
		},
		{
			name: "choose victim",
			msg:  &engine.Message{Kind: engine.MessageChooseVictim, Card: cards.Prince, Options: []string{"alice", "bob"}},
			want: "Who is the target of your Prince? Options: alice, bob",
		},
		{
			name: "one card left",
			msg:  &engine.Message{Kind: engine.MessageTurnStarted, Player: "carol", Count: 1},
			want: "It is carol's turn, 1 card left in the deck",
		},
		{
			name: "many cards left",
			msg:  &engine.Message{Kind: engine.MessageTurnStarted, Player: "carol", Count: 7},
			want: "It is carol's turn, 7 cards left in the deck",
		},
		{
			name: "auto double deck",
			msg:  &engine.Message{Kind: engine.MessageDoubleDeckAuto, Count: 6},
			want: "The number of players reached 6, the second deck is added automatically",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, s.render(tc.msg, ""))
		})
	}
}

func (s *MessagingServiceTestSuite) TestRenderGameOver() {
	text := s.render(fullMessage(engine.MessageGameOver), "")

	s.Equal("Game over! alice wins the round\n"+
		"1. alice with the King\n"+
		"2. dave with the Guard\n"+
		"Out of the game: bob, carol", text)
}

func (s *MessagingServiceTestSuite) TestRenderRussianPlurals() {
	testCases := []struct {
		count int
		want  string
	}{
		{1, "Ходит carol, в колоде осталась 1 карта"},
		{3, "Ходит carol, в колоде осталось 3 карты"},
		{5, "Ходит carol, в колоде осталось 5 карт"},
		{21, "Ходит carol, в колоде осталась 21 карта"},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprint(tc.count), func() {
			msg := &engine.Message{Kind: engine.MessageTurnStarted, Player: "carol", Count: tc.count}
			s.Equal(tc.want, s.render(msg, "ru"))
		})
	}
}

func (s *MessagingServiceTestSuite) TestLanguageFallback() {
	msg := &engine.Message{Kind: engine.MessageEliminated}

	s.Equal("You are out of the game", s.render(msg, "de"))
	s.Equal("You are out of the game", s.render(msg, "???"))
	s.Equal("Вы выбыли из игры", s.render(msg, "ru-RU"))
}

func (s *MessagingServiceTestSuite) TestRenderRejectsUnknownKind() {
	_, err := s.service.RenderMessage(s.ctx, &RenderMessageInput{Message: &engine.Message{Kind: "bogus"}})
	s.Error(err)

	_, err = s.service.RenderMessage(s.ctx, &RenderMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name  string
		err   error
		want  string
		known bool
	}{
		{
			name:  "rule error",
			err:   engine.ErrMustDiscardCountess,
			want:  "You must discard the Countess",
			known: true,
		},
		{
			name:  "wrapped service error",
			err:   fmt.Errorf("select card: %w", game.ErrNotYourTurn),
			want:  "It is not your turn",
			known: true,
		},
		{
			name:  "state error",
			err:   &engine.StateError{Op: "GuessCard", State: engine.StateSelectCard},
			want:  "That action is not available right now",
			known: true,
		},
		{
			name: "unexpected error",
			err:  errors.New("redis: connection refused"),
			want: "Something went wrong, please try again",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal("Oops", out.Title)
			s.Equal(tc.want, out.Message)
			s.Equal(tc.known, out.Known)
		})
	}
}

func (s *MessagingServiceTestSuite) TestEveryErrorIsTranslated() {
	for _, entry := range errorKeys {
		for _, lang := range []string{"en", "ru"} {
			out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: entry.err, Language: lang})
			s.Require().NoError(err)
			s.True(out.Known)
			s.NotEqual(entry.key, out.Message)
		}
	}
}

func (s *MessagingServiceTestSuite) TestGetNoticeMessage() {
	out, err := s.service.GetNoticeMessage(s.ctx, &GetNoticeMessageInput{
		Notice: NoticeJoined,
		Args:   []interface{}{"bob", 2},
	})
	s.Require().NoError(err)
	s.Equal("bob joined, 2 players at the table", out.Text)

	out, err = s.service.GetNoticeMessage(s.ctx, &GetNoticeMessageInput{
		Notice:   NoticeJoined,
		Args:     []interface{}{"bob", 4},
		Language: "ru",
	})
	s.Require().NoError(err)
	s.Equal("bob присоединяется, за столом 4 игрока", out.Text)

	_, err = s.service.GetNoticeMessage(s.ctx, &GetNoticeMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestHelpAndHint() {
	help, err := s.service.GetHelpMessage(s.ctx, &GetHelpMessageInput{})
	s.Require().NoError(err)
	s.Contains(help.Text, "/loveletter create")
	s.Contains(help.Text, "/loveletter doubledeck")

	hint, err := s.service.GetHintMessage(s.ctx, &GetHintMessageInput{Language: "ru"})
	s.Require().NoError(err)
	for _, c := range cards.All() {
		s.Contains(hint.Text, c.Name())
	}
}

func (s *MessagingServiceTestSuite) TestGetUsedCardsMessage() {
	out, err := s.service.GetUsedCardsMessage(s.ctx, &GetUsedCardsMessageInput{
		Cards: []cards.Card{cards.Guard, cards.Maid, cards.Guard, cards.Princess, cards.Guard},
	})
	s.Require().NoError(err)
	s.Equal("Dropped cards:\n"+
		" - Princess   [1]\n"+
		" - Maid       [1]\n"+
		" - Guard      [3]", out.Text)

	out, err = s.service.GetUsedCardsMessage(s.ctx, &GetUsedCardsMessageInput{})
	s.Require().NoError(err)
	s.Equal("No cards have been played yet", out.Text)
}

func (s *MessagingServiceTestSuite) TestGetPlayersMessage() {
	out, err := s.service.GetPlayersMessage(s.ctx, &GetPlayersMessageInput{
		Active: []engine.PlayerInfo{
			{ID: "1", Name: "alice", Defended: true},
			{ID: "2", Name: "bob", Dealer: true},
			{ID: "3", Name: "carol", Defended: true, Dealer: true},
		},
		Eliminated: []engine.PlayerInfo{{ID: "4", Name: "dave"}},
	})
	s.Require().NoError(err)
	s.Equal("Players remaining:\n"+
		" - alice ^\n"+
		" - bob <<\n"+
		" - carol ^ <<\n"+
		"Out of the game:\n"+
		" - dave", out.Text)
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

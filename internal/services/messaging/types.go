package messaging

import (
	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/engine"
)

// DefaultLanguage is used when nothing else is configured
const DefaultLanguage = "en"

// Notice identifies a host level message that the engine does not emit
type Notice string

const (
	// NoticeGameCreated args: creator name
	NoticeGameCreated Notice = "notice.game_created"
	// NoticeJoined args: player name, player count
	NoticeJoined Notice = "notice.joined"
	// NoticeLeft args: player name
	NoticeLeft Notice = "notice.left"
	// NoticeGameClosed is sent when the last player leaves a lobby
	NoticeGameClosed Notice = "notice.game_closed"
	// NoticeStarted is announced in the channel once the cards are dealt
	NoticeStarted Notice = "notice.started"
	// NoticeRestarted args: player name
	NoticeRestarted Notice = "notice.restarted"
	// NoticeAbandoned args: player name
	NoticeAbandoned Notice = "notice.abandoned"
	// NoticeWinner args: winner name
	NoticeWinner Notice = "notice.winner"
	// NoticeCheckDMs is the ephemeral reply after a move
	NoticeCheckDMs Notice = "notice.check_dms"
	// NoticeChosen args: the selected option
	NoticeChosen Notice = "notice.chosen"
	// NoticeYourHand args: card names
	NoticeYourHand Notice = "notice.your_hand"
	// NoticeNoHand is shown to eliminated players or before the deal
	NoticeNoHand Notice = "notice.no_hand"
	// NoticePickCard, NoticePickVictim and NoticePickGuess are select menu placeholders
	NoticePickCard   Notice = "notice.pick_card"
	NoticePickVictim Notice = "notice.pick_victim"
	NoticePickGuess  Notice = "notice.pick_guess"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Language is a BCP 47 tag, unsupported languages fall back to English
	Language string
}

// RenderMessageInput is the input for RenderMessage
type RenderMessageInput struct {
	Message *engine.Message

	// Language overrides the configured language when set
	Language string
}

// RenderMessageOutput is the output for RenderMessage
type RenderMessageOutput struct {
	Text string
}

// GetNoticeMessageInput is the input for GetNoticeMessage
type GetNoticeMessageInput struct {
	Notice   Notice
	Args     []interface{}
	Language string
}

// GetNoticeMessageOutput is the output for GetNoticeMessage
type GetNoticeMessageOutput struct {
	Text string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err      error
	Language string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string

	// Known is false when the error was not a user facing one
	Known bool
}

// GetHelpMessageInput is the input for GetHelpMessage
type GetHelpMessageInput struct {
	Language string
}

// GetHelpMessageOutput is the output for GetHelpMessage
type GetHelpMessageOutput struct {
	Text string
}

// GetHintMessageInput is the input for GetHintMessage
type GetHintMessageInput struct {
	Language string
}

// GetHintMessageOutput is the output for GetHintMessage
type GetHintMessageOutput struct {
	Text string
}

// GetUsedCardsMessageInput is the input for GetUsedCardsMessage
type GetUsedCardsMessageInput struct {
	Cards    []cards.Card
	Language string
}

// GetUsedCardsMessageOutput is the output for GetUsedCardsMessage
type GetUsedCardsMessageOutput struct {
	Text string
}

// GetPlayersMessageInput is the input for GetPlayersMessage
type GetPlayersMessageInput struct {
	Active     []engine.PlayerInfo
	Eliminated []engine.PlayerInfo
	Language   string
}

// GetPlayersMessageOutput is the output for GetPlayersMessage
type GetPlayersMessageOutput struct {
	Text string
}

package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
)

// Component custom IDs
const (
	SelectCard   = "loveletter_card"
	SelectVictim = "loveletter_victim"
	SelectGuess  = "loveletter_guess"
)

// Discord rejects select menus with more options than this
const maxMenuOptions = 25

// Response is what a command or component handler wants sent back
type Response struct {
	Content string

	// Ephemeral responses are only shown to the caller
	Ephemeral bool

	// Update replaces the message the component was attached to
	Update bool

	Menu *Menu

	// Announce is posted to a channel in addition to the response
	Announce *Announcement
}

// Menu is a single select menu
type Menu struct {
	CustomID    string
	Placeholder string
	Options     []string
}

// Announcement is a public message for the channel hosting a game
type Announcement struct {
	ChannelID string
	Text      string
}

// menuForState picks the select menu answering the prompt of a state
func menuForState(state engine.State) (string, messaging.Notice, bool) {
	switch state {
	case engine.StateSelectCard:
		return SelectCard, messaging.NoticePickCard, true
	case engine.StateSelectVictim:
		return SelectVictim, messaging.NoticePickVictim, true
	case engine.StateGuessCard:
		return SelectGuess, messaging.NoticePickGuess, true
	default:
		return "", "", false
	}
}

// menuForMessage picks the select menu answering an engine prompt
func menuForMessage(kind engine.MessageKind) (string, messaging.Notice, bool) {
	switch kind {
	case engine.MessageChooseCard, engine.MessageCountessReminder:
		return menuForState(engine.StateSelectCard)
	case engine.MessageChooseVictim:
		return menuForState(engine.StateSelectVictim)
	case engine.MessageChooseGuess:
		return menuForState(engine.StateGuessCard)
	default:
		return "", "", false
	}
}

func selectMenu(menu *Menu) discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(menu.Options))
	for _, option := range menu.Options {
		if len(options) == maxMenuOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: option,
			Value: option,
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    menu.CustomID,
				Placeholder: menu.Placeholder,
				Options:     options,
			},
		},
	}
}

// components renders the optional menu. Updates always send a list so the
// previous menu is removed.
func components(resp *Response) []discordgo.MessageComponent {
	if resp.Menu != nil && len(resp.Menu.Options) > 0 {
		return []discordgo.MessageComponent{selectMenu(resp.Menu)}
	}
	if resp.Update {
		return []discordgo.MessageComponent{}
	}
	return nil
}

func responseData(resp *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    resp.Content,
		Components: components(resp),
	}
	if resp.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

func messageSend(text string, menu *Menu) *discordgo.MessageSend {
	send := &discordgo.MessageSend{Content: text}
	if menu != nil && len(menu.Options) > 0 {
		send.Components = []discordgo.MessageComponent{selectMenu(menu)}
	}
	return send
}

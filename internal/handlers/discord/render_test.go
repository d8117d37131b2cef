package discord

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loveletter/internal/engine"
)

func TestMenuForMessage(t *testing.T) {
	testCases := []struct {
		kind     engine.MessageKind
		customID string
	}{
		{engine.MessageChooseCard, SelectCard},
		{engine.MessageCountessReminder, SelectCard},
		{engine.MessageChooseVictim, SelectVictim},
		{engine.MessageChooseGuess, SelectGuess},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			customID, _, ok := menuForMessage(tc.kind)
			assert.True(t, ok)
			assert.Equal(t, tc.customID, customID)
		})
	}

	_, _, ok := menuForMessage(engine.MessageGuardHit)
	assert.False(t, ok)

	_, _, ok = menuForState(engine.StateChangeTurn)
	assert.False(t, ok)
}

func TestResponseData(t *testing.T) {
	t.Run("ephemeral with menu", func(t *testing.T) {
		data := responseData(&Response{
			Content:   "pick",
			Ephemeral: true,
			Menu:      &Menu{CustomID: SelectGuess, Options: []string{"Priest", "Baron"}},
		})
		assert.Equal(t, "pick", data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
		require.Len(t, data.Components, 1)
	})

	t.Run("update clears menu", func(t *testing.T) {
		data := responseData(&Response{Content: "done", Update: true})
		assert.NotNil(t, data.Components)
		assert.Empty(t, data.Components)
		assert.Zero(t, data.Flags)
	})

	t.Run("plain", func(t *testing.T) {
		data := responseData(&Response{Content: "hello"})
		assert.Nil(t, data.Components)
	})
}

func TestSelectMenuCapsOptions(t *testing.T) {
	options := make([]string, 30)
	for i := range options {
		options[i] = fmt.Sprintf("player-%d", i)
	}

	row, ok := selectMenu(&Menu{CustomID: SelectVictim, Options: options}).(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Len(t, menu.Options, maxMenuOptions)
	assert.Equal(t, discordgo.StringSelectMenu, menu.MenuType)
}

func TestInteractionUser(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{Nick: "Al", User: &discordgo.User{ID: "1", Username: "alice"}},
	}}
	id, name := interactionUser(guild)
	assert.Equal(t, "1", id)
	assert.Equal(t, "Al", name)

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "2", Username: "bob"},
	}}
	id, name = interactionUser(dm)
	assert.Equal(t, "2", id)
	assert.Equal(t, "bob", name)
}

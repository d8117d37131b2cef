package messaging

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// supported lists the catalog languages, the first one is the fallback
var supported = []language.Tag{language.English, language.Russian}

const (
	keyErrorTitle        = "error.title"
	keyErrorUnknown      = "error.unknown"
	keyGameOverStanding  = "game_over.standing"
	keyGameOverOut       = "game_over.eliminated"
	keyUsedTitle         = "used.title"
	keyUsedEmpty         = "used.empty"
	keyPlayersTitle      = "players.title"
	keyPlayersEliminated = "players.eliminated"
	keyHelp              = "help"
	keyHint              = "hint"
)

// pluralEntry is a message whose wording depends on a numeric argument
type pluralEntry struct {
	arg   int
	cases []interface{}
}

var english = map[string]string{
	"event.player_joined":      "%[1]s joined the game",
	"event.player_left":        "%[1]s left the game",
	"event.double_deck_auto":   "The number of players reached %[1]d, the second deck is added automatically",
	"event.double_deck_on":     "The second deck is added",
	"event.double_deck_off":    "The second deck is removed",
	"event.game_started":       "The game has started! Turn order: %[1]s",
	"event.card_dealt":         "Your card is the %[1]s",
	"event.last_turn":          "The deck is empty, this is the last turn!",
	"event.card_drawn":         "You drew the %[1]s",
	"event.choose_card":        "Choose a card to play: %[1]s",
	"event.countess_reminder":  "You hold the Countess together with the King or a Prince, you must discard the Countess",
	"event.choose_victim":      "Who is the target of your %[1]s? Options: %[2]s",
	"event.choose_guess":       "Guess the card %[1]s is holding: %[2]s",
	"event.no_target":          "%[1]s played the %[2]s but every other player is protected, nothing happens",
	"event.princess_discarded": "%[1]s discarded the Princess and is out of the game",
	"event.countess_discarded": "%[1]s discarded the Countess",
	"event.king_swap":          "%[1]s played the King and swapped hands with %[2]s",
	"event.king_received":      "You swapped hands with %[1]s and now hold the %[2]s",
	"event.prince_discard":     "%[1]s played the Prince, %[2]s discarded the %[3]s and draws a new card",
	"event.prince_princess":    "%[1]s played the Prince, %[2]s discarded the Princess and is out of the game",
	"event.maid_protected":     "%[1]s played the Maid and is protected until their next turn",
	"event.baron_won":          "%[1]s played the Baron against %[2]s, %[2]s had the %[3]s and is out",
	"event.baron_lost":         "%[1]s played the Baron against %[2]s and is out with the %[3]s",
	"event.baron_tie":          "%[1]s played the Baron against %[2]s, it is a tie",
	"event.priest_peek":        "%[1]s played the Priest and looked at the hand of %[2]s",
	"event.priest_reveal":      "%[1]s is holding the %[2]s",
	"event.guard_hit":          "%[1]s guessed the %[3]s and %[2]s is out",
	"event.guard_miss":         "%[1]s guessed the %[3]s but %[2]s is not holding it",
	"event.eliminated":         "You are out of the game",
	"event.game_over":          "Game over! %[1]s wins the round",
	"event.won":                "Congratulations, you won!",
	"event.lost":               "You lost, %[1]s won the game",

	keyGameOverStanding: "%[1]d. %[2]s with the %[3]s",
	keyGameOverOut:      "Out of the game: %[1]s",

	keyErrorTitle:                   "Oops",
	keyErrorUnknown:                 "Something went wrong, please try again",
	"error.already_joined":          "You already joined this game",
	"error.name_taken":              "That name is already taken in this game",
	"error.already_started":         "The game has already started",
	"error.too_few_players":         "Not enough players, you need at least 2 of them",
	"error.illegal_card":            "You are not holding that card",
	"error.must_discard_countess":   "You must discard the Countess",
	"error.ineligible_victim":       "That player cannot be targeted",
	"error.illegal_guess":           "You cannot guess that card",
	"error.player_not_found":        "There is no such player",
	"error.empty_name":              "Your name cannot be empty",
	"error.deck_too_small":          "There are not enough cards for every player, add the second deck",
	"error.wrong_state":             "That action is not available right now",
	"error.game_not_found":          "There is no game here yet, try /loveletter create",
	"error.player_already_in_game":  "You are already playing another game, leave it first",
	"error.game_already_exists":     "A game is already running in this channel",
	"error.player_not_in_game":      "You didn't join any game yet, try /loveletter create or /loveletter join",
	"error.game_full":               "The game is full",
	"error.not_your_turn":           "It is not your turn",
	"error.not_game_creator":        "Only the creator of the game can do that",
	"error.invalid_input":           "That input is not valid",

	string(NoticeGameCreated): "%[1]s created a Love Letter game. Use /loveletter join to take a seat",
	string(NoticeLeft):        "%[1]s left the game",
	string(NoticeGameClosed):  "Everyone left, the game is closed",
	string(NoticeStarted):     "The game has started! Check your direct messages",
	string(NoticeRestarted):   "%[1]s restarted the game",
	string(NoticeAbandoned):   "%[1]s abandoned the game",
	string(NoticeWinner):      "%[1]s won the game! Use /loveletter restart to play again",
	string(NoticeCheckDMs):    "Done, check your direct messages",
	string(NoticeChosen):      "You chose %[1]s",
	string(NoticeYourHand):    "Your hand: %[1]s",
	string(NoticeNoHand):      "You are not holding any cards",
	string(NoticePickCard):    "Choose a card",
	string(NoticePickVictim):  "Choose a target",
	string(NoticePickGuess):   "Guess a card",

	keyUsedTitle:         "Dropped cards:",
	keyUsedEmpty:         "No cards have been played yet",
	keyPlayersTitle:      "Players remaining:",
	keyPlayersEliminated: "Out of the game:",

	keyHelp: `Love Letter commands:
/loveletter create - create a game in this channel
/loveletter join - join the game in this channel
/loveletter leave - leave the game
/loveletter doubledeck - toggle the second deck before the start
/loveletter start - deal the cards
/loveletter restart - play again with the same players
/loveletter hand - show your cards and what the game waits for
/loveletter cards - show the dropped cards
/loveletter players - show the remaining players, ^ marks protected players and << the current one
/loveletter hint - short rules
/loveletter abandon - close the game`,

	keyHint: `Keep the highest card until the deck runs out, or be the last one standing.
Guard (1, x5): guess the card of another player, Guard excluded. A correct guess knocks them out.
Priest (2, x2): look at the hand of another player.
Baron (3, x2): compare hands with another player, the lower card is out.
Maid (4, x2): you are protected until your next turn.
Prince (5, x2): a player of your choice, you included, discards their hand and draws a new card.
King (6, x1): trade hands with another player.
Countess (7, x1): must be discarded when you also hold the King or a Prince.
Princess (8, x1): discarding her knocks you out.`,
}

var englishPlurals = map[string]pluralEntry{
	"event.turn_started": {arg: 2, cases: []interface{}{
		"one", "It is %[1]s's turn, %[2]d card left in the deck",
		"other", "It is %[1]s's turn, %[2]d cards left in the deck",
	}},
	string(NoticeJoined): {arg: 2, cases: []interface{}{
		"one", "%[1]s joined, %[2]d player at the table",
		"other", "%[1]s joined, %[2]d players at the table",
	}},
}

var russian = map[string]string{
	"event.player_joined":      "%[1]s присоединяется к игре",
	"event.player_left":        "%[1]s покидает игру",
	"event.double_deck_auto":   "Игроков уже %[1]d, вторая колода добавлена автоматически",
	"event.double_deck_on":     "Вторая колода добавлена",
	"event.double_deck_off":    "Вторая колода убрана",
	"event.game_started":       "Игра началась! Порядок ходов: %[1]s",
	"event.card_dealt":         "Ваша карта: %[1]s",
	"event.last_turn":          "Колода пуста, это последний ход!",
	"event.card_drawn":         "Вы взяли карту: %[1]s",
	"event.choose_card":        "Выберите карту: %[1]s",
	"event.countess_reminder":  "У вас Графиня вместе с Королём или Принцем, нужно сбросить Графиню",
	"event.choose_victim":      "Кого выбрать целью для карты %[1]s? Варианты: %[2]s",
	"event.choose_guess":       "Угадайте карту игрока %[1]s: %[2]s",
	"event.no_target":          "%[1]s играет карту %[2]s, но все остальные защищены, ничего не происходит",
	"event.princess_discarded": "%[1]s сбрасывает Принцессу и выбывает из игры",
	"event.countess_discarded": "%[1]s сбрасывает Графиню",
	"event.king_swap":          "%[1]s играет Короля и меняется картами с игроком %[2]s",
	"event.king_received":      "Вы поменялись картами с игроком %[1]s, теперь у вас %[2]s",
	"event.prince_discard":     "%[1]s играет Принца, %[2]s сбрасывает карту %[3]s и берёт новую",
	"event.prince_princess":    "%[1]s играет Принца, %[2]s сбрасывает Принцессу и выбывает из игры",
	"event.maid_protected":     "%[1]s играет Служанку и защищён до следующего хода",
	"event.baron_won":          "%[1]s играет Барона против игрока %[2]s, у %[2]s была карта %[3]s, %[2]s выбывает",
	"event.baron_lost":         "%[1]s играет Барона против игрока %[2]s и выбывает с картой %[3]s",
	"event.baron_tie":          "%[1]s играет Барона против игрока %[2]s, ничья",
	"event.priest_peek":        "%[1]s играет Священника и смотрит карту игрока %[2]s",
	"event.priest_reveal":      "У игрока %[1]s карта %[2]s",
	"event.guard_hit":          "%[1]s называет карту %[3]s, %[2]s выбывает",
	"event.guard_miss":         "%[1]s называет карту %[3]s, но у игрока %[2]s её нет",
	"event.eliminated":         "Вы выбыли из игры",
	"event.game_over":          "Игра окончена! Побеждает %[1]s",
	"event.won":                "Поздравляем, вы победили!",
	"event.lost":               "Вы проиграли, победитель: %[1]s",

	keyGameOverStanding: "%[1]d. %[2]s, карта %[3]s",
	keyGameOverOut:      "Выбыли: %[1]s",

	keyErrorTitle:                   "Упс",
	keyErrorUnknown:                 "Что-то пошло не так, попробуйте ещё раз",
	"error.already_joined":          "Вы уже в этой игре",
	"error.name_taken":              "Это имя уже занято в этой игре",
	"error.already_started":         "Игра уже началась",
	"error.too_few_players":         "Недостаточно игроков, нужно хотя бы двое",
	"error.illegal_card":            "У вас нет такой карты",
	"error.must_discard_countess":   "Нужно сбросить Графиню",
	"error.ineligible_victim":       "Этого игрока нельзя выбрать целью",
	"error.illegal_guess":           "Эту карту нельзя назвать",
	"error.player_not_found":        "Такого игрока нет",
	"error.empty_name":              "Имя не может быть пустым",
	"error.deck_too_small":          "Карт не хватит на всех игроков, добавьте вторую колоду",
	"error.wrong_state":             "Сейчас это действие недоступно",
	"error.game_not_found":          "Здесь ещё нет игры, попробуйте /loveletter create",
	"error.player_already_in_game":  "Вы уже участвуете в другой игре, сначала покиньте её",
	"error.game_already_exists":     "В этом канале уже идёт игра",
	"error.player_not_in_game":      "Вы ещё не присоединились к игре, попробуйте /loveletter create или /loveletter join",
	"error.game_full":               "В игре нет свободных мест",
	"error.not_your_turn":           "Сейчас не ваш ход",
	"error.not_game_creator":        "Это может сделать только создатель игры",
	"error.invalid_input":           "Неверный ввод",

	string(NoticeGameCreated): "%[1]s создаёт игру Love Letter. Присоединяйтесь: /loveletter join",
	string(NoticeLeft):        "%[1]s покидает игру",
	string(NoticeGameClosed):  "Все ушли, игра закрыта",
	string(NoticeStarted):     "Игра началась! Проверьте личные сообщения",
	string(NoticeRestarted):   "%[1]s перезапускает игру",
	string(NoticeAbandoned):   "%[1]s закрывает игру",
	string(NoticeWinner):      "%[1]s побеждает! Сыграть ещё раз: /loveletter restart",
	string(NoticeCheckDMs):    "Готово, проверьте личные сообщения",
	string(NoticeChosen):      "Вы выбрали: %[1]s",
	string(NoticeYourHand):    "Ваши карты: %[1]s",
	string(NoticeNoHand):      "У вас нет карт",
	string(NoticePickCard):    "Выберите карту",
	string(NoticePickVictim):  "Выберите цель",
	string(NoticePickGuess):   "Назовите карту",

	keyUsedTitle:         "Сброшенные карты:",
	keyUsedEmpty:         "Ещё не сыграно ни одной карты",
	keyPlayersTitle:      "Оставшиеся игроки:",
	keyPlayersEliminated: "Выбывшие:",

	keyHelp: `Команды Love Letter:
/loveletter create - создать игру в этом канале
/loveletter join - присоединиться к игре в этом канале
/loveletter leave - покинуть игру
/loveletter doubledeck - добавить или убрать вторую колоду до начала игры
/loveletter start - раздать карты
/loveletter restart - сыграть ещё раз тем же составом
/loveletter hand - показать ваши карты и чего ждёт игра
/loveletter cards - показать сброшенные карты
/loveletter players - показать оставшихся игроков, ^ отмечает защищённых, << текущего игрока
/loveletter hint - краткие правила
/loveletter abandon - закрыть игру`,

	keyHint: `Сохраните самую старшую карту до конца колоды или останьтесь последним игроком.
Guard (1, x5): назовите карту другого игрока, кроме Guard. Если угадали, он выбывает.
Priest (2, x2): посмотрите карту другого игрока.
Baron (3, x2): сравните карты с другим игроком, у кого младше, тот выбывает.
Maid (4, x2): вы защищены до своего следующего хода.
Prince (5, x2): выбранный игрок, можно и вы сами, сбрасывает карту и берёт новую.
King (6, x1): обменяйтесь картами с другим игроком.
Countess (7, x1): её нужно сбросить, если у вас есть King или Prince.
Princess (8, x1): сбросив её, вы выбываете.`,
}

var russianPlurals = map[string]pluralEntry{
	"event.turn_started": {arg: 2, cases: []interface{}{
		"one", "Ходит %[1]s, в колоде осталась %[2]d карта",
		"few", "Ходит %[1]s, в колоде осталось %[2]d карты",
		"other", "Ходит %[1]s, в колоде осталось %[2]d карт",
	}},
	string(NoticeJoined): {arg: 2, cases: []interface{}{
		"one", "%[1]s присоединяется, за столом %[2]d игрок",
		"few", "%[1]s присоединяется, за столом %[2]d игрока",
		"other", "%[1]s присоединяется, за столом %[2]d игроков",
	}},
}

// newCatalog registers every language. Lookups of keys missing in a language
// fall back to English.
func newCatalog() (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))

	sets := []struct {
		tag     language.Tag
		strs    map[string]string
		plurals map[string]pluralEntry
	}{
		{tag: language.English, strs: english, plurals: englishPlurals},
		{tag: language.Russian, strs: russian, plurals: russianPlurals},
	}

	for _, set := range sets {
		for key, msg := range set.strs {
			if err := builder.SetString(set.tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register %s message %q: %w", set.tag, key, err)
			}
		}
		for key, entry := range set.plurals {
			if err := builder.Set(set.tag, key, plural.Selectf(entry.arg, "%d", entry.cases...)); err != nil {
				return nil, fmt.Errorf("failed to register %s plural %q: %w", set.tag, key, err)
			}
		}
	}

	return builder, nil
}

package engine

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// State is the current step of the game state machine
type State string

const (
	StateNotStarted   State = "not_started"
	StateChangeTurn   State = "change_turn"
	StateSelectCard   State = "select_card"
	StateSelectVictim State = "select_victim"
	StateGuessCard    State = "guess_card"
	StateGameOver     State = "game_over"
)

// doubleDeckPlayers is the roster size that switches the second deck on
const doubleDeckPlayers = 6

// Config holds the dependencies of a game
type Config struct {
	// ID identifies the game to the host
	ID string

	Notifier Notifier

	// Shuffler randomises the deck and the turn order. Defaults to a time seeded shuffler.
	Shuffler shuffle.Shuffler

	// DeckBuilder returns the unshuffled deck. Defaults to cards.Standard.
	DeckBuilder func(double bool) []cards.Card
}

// Game is a single match. It performs no locking: the host must serialise
// every call for a given game.
type Game struct {
	id        string
	notifier  Notifier
	shuffler  shuffle.Shuffler
	buildDeck func(double bool) []cards.Card

	players   *Registry
	deck      *cards.Deck
	usedCards []cards.Card
	firstCard cards.Card

	dealer *Player
	victim *Player
	guess  cards.Card
	winner *Player

	// victims is the eligible list computed when a targeted card is selected
	victims []*Player

	// noTarget is set when a targeted card has nobody to act on
	noTarget bool

	doubleDeck bool
	state      State
}

// New creates a game waiting for players
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	g := &Game{
		id:        cfg.ID,
		notifier:  cfg.Notifier,
		shuffler:  cfg.Shuffler,
		buildDeck: cfg.DeckBuilder,
		players:   NewRegistry(),
		deck:      cards.NewDeck(nil),
		state:     StateNotStarted,
	}
	if g.shuffler == nil {
		g.shuffler = shuffle.New(nil)
	}
	if g.buildDeck == nil {
		g.buildDeck = cards.Standard
	}

	return g, nil
}

// AddPlayer registers a player before the game starts. The sixth player
// switches the double deck on.
func (g *Game) AddPlayer(id, name string) error {
	if g.state != StateNotStarted {
		return ErrAlreadyStarted
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if g.players.FindByID(id) != nil {
		return ErrAlreadyJoined
	}
	for _, p := range g.players.All() {
		if strings.EqualFold(p.Name, name) {
			return ErrNameTaken
		}
	}

	p := &Player{ID: id, Name: name}
	g.players.Add(p)
	g.broadcastExcept(p.ID, &Message{Kind: MessagePlayerJoined, Player: p.Name})

	if g.players.Len() == doubleDeckPlayers && !g.doubleDeck {
		g.doubleDeck = true
		g.broadcast(&Message{Kind: MessageDoubleDeckAuto, Count: doubleDeckPlayers})
	}

	return nil
}

// RemovePlayer lets a player leave. Active players may only leave before the
// game starts or after it is over; eliminated players may leave at any time.
func (g *Game) RemovePlayer(id string) error {
	p := g.players.FindByID(id)
	if p == nil {
		return ErrPlayerNotFound
	}

	if g.players.IsActive(id) && g.state != StateNotStarted && g.state != StateGameOver {
		return ErrAlreadyStarted
	}

	g.players.Remove(id)
	g.broadcast(&Message{Kind: MessagePlayerLeft, Player: p.Name})

	return nil
}

// SetDoubleDeck toggles the second deck. It is locked once the game starts.
func (g *Game) SetDoubleDeck(on bool) error {
	if g.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	if g.doubleDeck == on {
		return nil
	}

	g.doubleDeck = on
	if on {
		g.broadcast(&Message{Kind: MessageDoubleDeckOn})
	} else {
		g.broadcast(&Message{Kind: MessageDoubleDeckOff})
	}

	return nil
}

// Start deals the cards and begins the first turn
func (g *Game) Start() error {
	if err := g.deal(); err != nil {
		return err
	}

	g.startTurn()
	return nil
}

// Restart brings eliminated players back and starts a new match with the same
// roster. It is allowed in any state.
func (g *Game) Restart() error {
	g.players.Reset()
	for _, p := range g.players.Active() {
		p.clearHand()
	}

	g.deck = cards.NewDeck(nil)
	g.usedCards = nil
	g.firstCard = cards.None
	g.dealer = nil
	g.victim = nil
	g.winner = nil
	g.guess = cards.None
	g.victims = nil
	g.noTarget = false
	g.state = StateNotStarted

	return g.Start()
}

// deal builds and shuffles the deck, sets the first card aside, shuffles the
// turn order and gives every player one card
func (g *Game) deal() error {
	if g.state != StateNotStarted {
		return &StateError{Op: "start", State: g.state}
	}
	if g.players.Len() < 2 {
		return ErrTooFewPlayers
	}

	deck := cards.NewDeck(g.buildDeck(g.doubleDeck))
	// every player needs a card, one is set aside and the first dealer draws
	if deck.Len() < g.players.Len()+2 {
		return ErrDeckTooSmall
	}

	g.deck = deck
	g.deck.Shuffle(g.shuffler)
	g.firstCard, _ = g.deck.TakeBottom()

	g.players.Shuffle(g.shuffler)
	for _, p := range g.players.Active() {
		p.Card = g.mustDraw()
		g.notify(p, &Message{Kind: MessageCardDealt, Card: p.Card})
	}

	g.broadcast(&Message{Kind: MessageGameStarted, Players: names(g.players.Active())})
	g.state = StateChangeTurn

	return nil
}

// startTurn hands the next dealer a second card. It does nothing outside
// change_turn.
func (g *Game) startTurn() {
	if g.state != StateChangeTurn {
		return
	}

	g.dealer = g.players.NextDealer()
	g.dealer.Defended = false
	g.victim = nil
	g.victims = nil
	g.guess = cards.None
	g.noTarget = false

	// the end of round check guarantees a card is left here
	g.dealer.NewCard = g.mustDraw()

	g.broadcast(&Message{Kind: MessageTurnStarted, Player: g.dealer.Name, Count: g.deck.Len()})
	if g.deck.Empty() {
		g.broadcast(&Message{Kind: MessageLastTurn})
	}

	g.notify(g.dealer, &Message{Kind: MessageCardDrawn, Card: g.dealer.NewCard})
	g.notify(g.dealer, &Message{Kind: MessageChooseCard, Options: cards.Names(g.dealer.Hand())})

	g.state = StateSelectCard
}

// SelectCard plays one of the dealer's two cards
func (g *Game) SelectCard(name string) error {
	if g.state != StateSelectCard {
		return &StateError{Op: "select card", State: g.state}
	}

	card, ok := cards.ByName(name)
	if !ok || !g.dealer.Holds(card) {
		return ErrIllegalCard
	}

	if mustDiscardCountess(g.dealer) && card != cards.Countess {
		g.notify(g.dealer, &Message{Kind: MessageCountessReminder, Options: []string{cards.Countess.Name()}})
		return ErrMustDiscardCountess
	}

	// the played card is always referenced through NewCard
	if g.dealer.NewCard != card {
		g.dealer.Card, g.dealer.NewCard = g.dealer.NewCard, g.dealer.Card
	}

	if !card.Targeted() {
		g.resolve()
		return nil
	}

	g.state = StateSelectVictim
	g.victims = g.eligibleVictims(card)
	if g.noTarget {
		g.resolve()
		return nil
	}

	g.notify(g.dealer, &Message{Kind: MessageChooseVictim, Card: card, Options: names(g.victims)})
	return nil
}

// SelectVictim picks the target of the played card
func (g *Game) SelectVictim(name string) error {
	if g.state != StateSelectVictim {
		return &StateError{Op: "select victim", State: g.state}
	}

	var victim *Player
	for _, p := range g.victims {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			victim = p
			break
		}
	}
	if victim == nil {
		return ErrIneligibleVictim
	}

	g.victim = victim
	if g.dealer.NewCard.NeedsGuess() {
		g.state = StateGuessCard
		g.notify(g.dealer, &Message{Kind: MessageChooseGuess, Target: victim.Name, Options: cards.GuessOptions()})
		return nil
	}

	g.resolve()
	return nil
}

// GuessCard names the card the Guard's victim is suspected to hold
func (g *Game) GuessCard(name string) error {
	if g.state != StateGuessCard {
		return &StateError{Op: "guess card", State: g.state}
	}

	card, ok := cards.ByName(name)
	if !ok || card.NeedsGuess() {
		return ErrIllegalGuess
	}

	g.guess = card
	g.resolve()
	return nil
}

// eligibleVictims returns active, undefended players other than the dealer.
// A Prince may target the dealer when nobody else is eligible; any other card
// with nobody to target is played without effect.
func (g *Game) eligibleVictims(card cards.Card) []*Player {
	g.noTarget = false

	victims := g.players.Victims(g.dealer)
	if len(victims) > 0 {
		return victims
	}

	if card == cards.Prince {
		return []*Player{g.dealer}
	}

	g.noTarget = true
	return nil
}

// resolve discards the dealer's played card, applies its effect and checks for
// the end of the round
func (g *Game) resolve() {
	played := g.dealer.NewCard
	g.dealer.NewCard = cards.None
	g.usedCards = append(g.usedCards, played)

	effects[played](g)

	g.state = StateChangeTurn
	g.endOfRound()
}

// endOfRound finishes the game when one player is left or the deck is empty,
// otherwise it starts the next turn
func (g *Game) endOfRound() {
	if g.players.Len() > 1 && !g.deck.Empty() {
		g.state = StateChangeTurn
		g.startTurn()
		return
	}

	g.finish()
}

// finish ranks the remaining players by held card. Ties go to whoever comes
// first in the current turn order.
func (g *Game) finish() {
	ranking := g.players.Active()
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Card.Value() > ranking[j].Card.Value()
	})

	g.winner = ranking[0]

	standings := make([]Standing, len(ranking))
	for i, p := range ranking {
		standings[i] = Standing{Rank: i + 1, Name: p.Name, Card: p.Card}
	}

	g.broadcast(&Message{
		Kind:      MessageGameOver,
		Player:    g.winner.Name,
		Standings: standings,
		Players:   names(g.players.Eliminated()),
	})

	g.notify(g.winner, &Message{Kind: MessageWon})
	for _, p := range g.players.All() {
		if p.Same(g.winner) {
			continue
		}
		g.notify(p, &Message{Kind: MessageLost, Player: g.winner.Name})
	}

	g.state = StateGameOver
}

// eliminate knocks a player out. Any held card goes to the used pile.
func (g *Game) eliminate(p *Player) {
	for _, c := range p.Hand() {
		g.usedCards = append(g.usedCards, c)
	}
	p.clearHand()

	g.players.Eliminate(p)
	g.notify(p, &Message{Kind: MessageEliminated})
}

func (g *Game) mustDraw() cards.Card {
	c, ok := g.deck.Draw()
	if !ok {
		panic("engine: draw from an empty deck")
	}
	return c
}

func (g *Game) notify(p *Player, msg *Message) {
	g.notifier.Notify(p.ID, msg)
}

func (g *Game) broadcast(msg *Message) {
	g.broadcastExcept("", msg)
}

func (g *Game) broadcastExcept(id string, msg *Message) {
	ids := g.players.IDs(id)
	if len(ids) == 0 {
		return
	}
	g.notifier.Broadcast(ids, msg)
}

// mustDiscardCountess reports whether the Countess is held together with a King or Prince
func mustDiscardCountess(p *Player) bool {
	if !p.Holds(cards.Countess) {
		return false
	}
	return p.Holds(cards.King) || p.Holds(cards.Prince)
}

func names(players []*Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

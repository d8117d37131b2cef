package engine

import "github.com/KirkDiggler/loveletter/internal/cards"

// effect applies a played card. The card has already left the dealer's hand
// and sits on top of the used pile.
type effect func(g *Game)

// effects is indexed by card type. Adding a card means one new Card constant
// and one entry here.
var effects = [...]effect{
	cards.None:     func(*Game) {},
	cards.Guard:    playGuard,
	cards.Priest:   playPriest,
	cards.Baron:    playBaron,
	cards.Maid:     playMaid,
	cards.Prince:   playPrince,
	cards.King:     playKing,
	cards.Countess: playCountess,
	cards.Princess: playPrincess,
}

// playPrincess eliminates the owner
func playPrincess(g *Game) {
	g.broadcast(&Message{Kind: MessagePrincessDiscarded, Player: g.dealer.Name})
	g.eliminate(g.dealer)
}

// playCountess has no effect
func playCountess(g *Game) {
	g.broadcast(&Message{Kind: MessageCountessDiscarded, Player: g.dealer.Name})
}

// playKing swaps hands with the victim
func playKing(g *Game) {
	if g.noTarget {
		g.broadcastNoTarget(cards.King)
		return
	}

	g.broadcast(&Message{Kind: MessageKingSwap, Player: g.dealer.Name, Target: g.victim.Name})

	g.dealer.Card, g.victim.Card = g.victim.Card, g.dealer.Card

	g.notify(g.dealer, &Message{Kind: MessageKingReceived, Target: g.victim.Name, Card: g.dealer.Card})
	g.notify(g.victim, &Message{Kind: MessageKingReceived, Target: g.dealer.Name, Card: g.victim.Card})
}

// playPrince makes the victim discard and draw. Discarding the Princess
// eliminates them instead.
func playPrince(g *Game) {
	discarded := g.victim.Card
	g.victim.Card = cards.None
	g.usedCards = append(g.usedCards, discarded)

	if discarded == cards.Princess {
		g.broadcast(&Message{Kind: MessagePrincePrincess, Player: g.dealer.Name, Target: g.victim.Name})
		g.eliminate(g.victim)
		return
	}

	g.broadcast(&Message{Kind: MessagePrinceDiscard, Player: g.dealer.Name, Target: g.victim.Name, Card: discarded})

	if g.deck.Empty() {
		if g.firstCard == cards.None {
			panic("engine: first card already returned to the deck")
		}
		g.deck.Insert(g.firstCard)
		g.firstCard = cards.None
	}

	g.victim.Card = g.mustDraw()
	g.notify(g.victim, &Message{Kind: MessageCardDealt, Card: g.victim.Card})
}

// playMaid protects the dealer until their next turn
func playMaid(g *Game) {
	g.dealer.Defended = true
	g.broadcast(&Message{Kind: MessageMaidProtected, Player: g.dealer.Name})
}

// playBaron compares hands. The lower card is eliminated, a tie does nothing.
func playBaron(g *Game) {
	if g.noTarget {
		g.broadcastNoTarget(cards.Baron)
		return
	}

	switch g.dealer.Card.Compare(g.victim.Card) {
	case 1:
		g.broadcast(&Message{Kind: MessageBaronWon, Player: g.dealer.Name, Target: g.victim.Name, Card: g.victim.Card})
		g.eliminate(g.victim)
	case -1:
		g.broadcast(&Message{Kind: MessageBaronLost, Player: g.dealer.Name, Target: g.victim.Name, Card: g.dealer.Card})
		g.eliminate(g.dealer)
	default:
		g.broadcast(&Message{Kind: MessageBaronTie, Player: g.dealer.Name, Target: g.victim.Name})
	}
}

// playPriest shows the victim's card to the dealer
func playPriest(g *Game) {
	if g.noTarget {
		g.broadcastNoTarget(cards.Priest)
		return
	}

	g.broadcast(&Message{Kind: MessagePriestPeek, Player: g.dealer.Name, Target: g.victim.Name})
	g.notify(g.dealer, &Message{Kind: MessagePriestReveal, Target: g.victim.Name, Card: g.victim.Card})
}

// playGuard eliminates the victim on a correct guess
func playGuard(g *Game) {
	if g.noTarget {
		g.broadcastNoTarget(cards.Guard)
		return
	}

	if g.victim.Card == g.guess {
		g.broadcast(&Message{Kind: MessageGuardHit, Player: g.dealer.Name, Target: g.victim.Name, Card: g.guess})
		g.eliminate(g.victim)
		return
	}

	g.broadcast(&Message{Kind: MessageGuardMiss, Player: g.dealer.Name, Target: g.victim.Name, Card: g.guess})
}

func (g *Game) broadcastNoTarget(card cards.Card) {
	g.broadcast(&Message{Kind: MessageNoTarget, Player: g.dealer.Name, Card: card})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// maxSimulationSteps stops a simulation that never reaches game over
const maxSimulationSteps = 1000

var simulationNames = []string{
	"alice", "bob", "carol", "dave", "erin", "frank",
	"grace", "heidi", "ivan", "judy", "mallory", "oscar",
}

// SimulateCmd plays a game between random players and prints every message
type SimulateCmd struct {
	Players    int    `default:"4" help:"Number of players (2-12)"`
	Seed       *int64 `help:"Deterministic RNG seed (optional)"`
	DoubleDeck bool   `help:"Play with the second deck"`
	Lang       string `help:"Language of the messages, overrides LOVELETTER_LANG"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.WithField("seed", seed).Info("using deterministic seed")
	} else {
		seed = time.Now().UnixNano()
		logger.WithField("seed", seed).Info("using random seed")
	}

	lang := cfg.Language
	if c.Lang != "" {
		lang = c.Lang
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := simulate(ctx, &simulationOptions{
		Players:    c.Players,
		Seed:       seed,
		DoubleDeck: c.DoubleDeck,
		Language:   lang,
		Out:        os.Stdout,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"winner": result.Winner,
		"steps":  result.Steps,
	}).Info("simulation finished")
	return nil
}

type simulationOptions struct {
	Players    int
	Seed       int64
	DoubleDeck bool
	Language   string
	Out        io.Writer
	Logger     *logrus.Logger
}

type simulationResult struct {
	Winner   string
	Steps    int
	Snapshot *engine.Snapshot
}

// simulate plays one game to completion, answering every prompt with a random
// legal option
func simulate(ctx context.Context, opts *simulationOptions) (*simulationResult, error) {
	if opts.Players < 2 || opts.Players > len(simulationNames) {
		return nil, fmt.Errorf("players must be between 2 and %d", len(simulationNames))
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Language: opts.Language})
	if err != nil {
		return nil, err
	}

	notifier := &printNotifier{
		ctx:       ctx,
		out:       opts.Out,
		messaging: messagingSvc,
		names:     make(map[string]string),
		log:       logger,
	}

	random := shuffle.New(&shuffle.Config{Seed: opts.Seed})
	g, err := engine.New(&engine.Config{
		ID:       fmt.Sprintf("simulation-%d", opts.Seed),
		Notifier: notifier,
		Shuffler: random,
	})
	if err != nil {
		return nil, err
	}

	for i := 0; i < opts.Players; i++ {
		id := fmt.Sprintf("player-%d", i+1)
		notifier.names[id] = simulationNames[i]
		if err := g.AddPlayer(id, simulationNames[i]); err != nil {
			return nil, err
		}
	}

	if opts.DoubleDeck {
		if err := g.SetDoubleDeck(true); err != nil {
			return nil, err
		}
	}

	if err := g.Start(); err != nil {
		return nil, err
	}

	steps := 0
	for g.State() != engine.StateGameOver {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if steps >= maxSimulationSteps {
			return nil, fmt.Errorf("no winner after %d steps", steps)
		}
		steps++

		options := g.LegalOptions()
		if len(options) == 0 {
			return nil, fmt.Errorf("no options in state %s", g.State())
		}
		choice := options[random.Intn(len(options))]

		err := play(g, choice)
		if errors.Is(err, engine.ErrMustDiscardCountess) {
			err = play(g, cards.Countess.Name())
		}
		if err != nil {
			return nil, fmt.Errorf("failed to play %s in state %s: %w", choice, g.State(), err)
		}

		logger.WithFields(logrus.Fields{
			"step":   steps,
			"choice": choice,
			"state":  g.State(),
		}).Debug("played")
	}

	snapshot := g.Snapshot()
	return &simulationResult{
		Winner:   snapshot.Winner,
		Steps:    steps,
		Snapshot: snapshot,
	}, nil
}

// play answers the prompt of the current state
func play(g *engine.Game, choice string) error {
	switch g.State() {
	case engine.StateSelectCard:
		return g.SelectCard(choice)
	case engine.StateSelectVictim:
		return g.SelectVictim(choice)
	case engine.StateGuessCard:
		return g.GuessCard(choice)
	default:
		return &engine.StateError{Op: "play", State: g.State()}
	}
}

// printNotifier writes every message to out, broadcasts once
type printNotifier struct {
	ctx       context.Context
	out       io.Writer
	messaging messaging.Service
	names     map[string]string
	log       *logrus.Logger
}

func (n *printNotifier) Notify(playerID string, msg *engine.Message) {
	n.print(n.names[playerID], msg)
}

func (n *printNotifier) Broadcast(playerIDs []string, msg *engine.Message) {
	if len(playerIDs) == 0 {
		return
	}
	n.print("all", msg)
}

func (n *printNotifier) print(to string, msg *engine.Message) {
	rendered, err := n.messaging.RenderMessage(n.ctx, &messaging.RenderMessageInput{Message: msg})
	if err != nil {
		n.log.WithError(err).WithField("kind", msg.Kind).Error("failed to render message")
		return
	}

	text := rendered.Text
	if len(msg.Options) > 0 {
		text += " [" + strings.Join(msg.Options, ", ") + "]"
	}
	fmt.Fprintf(n.out, "%-8s %s\n", to+":", text)
}

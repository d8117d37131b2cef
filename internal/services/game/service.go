package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/common/uuid"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/models"
	gameRepo "github.com/KirkDiggler/loveletter/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/loveletter/internal/repositories/player"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// liveGame is a match held in memory. Every engine call goes through mu.
type liveGame struct {
	mu     sync.Mutex
	engine *engine.Game
}

// service implements the Service interface
type service struct {
	maxPlayers  int
	gameRepo    gameRepo.Repository
	playerRepo  playerRepo.Repository
	notifier    engine.Notifier
	shuffler    shuffle.Shuffler
	deckBuilder func(double bool) []cards.Card
	clock       quartz.Clock
	uuid        uuid.Generator
	log         *logrus.Logger

	mu    sync.RWMutex
	games map[string]*liveGame
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	s := &service{
		maxPlayers:  cfg.MaxPlayers,
		gameRepo:    cfg.GameRepo,
		playerRepo:  cfg.PlayerRepo,
		notifier:    cfg.Notifier,
		shuffler:    cfg.Shuffler,
		deckBuilder: cfg.DeckBuilder,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		log:         cfg.Logger,
		games:       make(map[string]*liveGame),
	}

	if s.maxPlayers <= 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.shuffler == nil {
		s.shuffler = shuffle.New(nil)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.uuid == nil {
		s.uuid = uuid.New()
	}
	if s.log == nil {
		s.log = logging.Discard()
	}

	return s, nil
}

// CreateGame opens a lobby in a channel with the creator as first player
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" || input.CreatorID == "" || strings.TrimSpace(input.CreatorName) == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	switch {
	case err == nil:
		if err := s.replace(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gameRepo.ErrGameNotFound):
	default:
		return nil, fmt.Errorf("failed to get game for channel: %w", err)
	}

	if err := s.release(ctx, input.CreatorID); err != nil {
		return nil, err
	}

	gameID := s.uuid.NewUUID()
	eng, err := engine.New(&engine.Config{
		ID:          gameID,
		Notifier:    s.notifier,
		Shuffler:    s.shuffler,
		DeckBuilder: s.deckBuilder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if err := eng.AddPlayer(input.CreatorID, input.CreatorName); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        gameID,
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Status:    models.GameStatusWaiting,
		PlayerIDs: []string{input.CreatorID},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	if err := s.attach(ctx, input.CreatorID, input.CreatorName, gameID, now); err != nil {
		return nil, err
	}

	s.register(gameID, eng)

	s.log.WithFields(logrus.Fields{
		"game_id":    gameID,
		"channel_id": input.ChannelID,
		"player_id":  input.CreatorID,
	}).Info("game created")

	return &CreateGameOutput{Game: game}, nil
}

// replace drops the previous game of a channel unless it is still running
func (s *service) replace(ctx context.Context, existing *models.Game) error {
	live := s.live(existing.ID)
	if live == nil {
		s.log.WithField("game_id", existing.ID).Warn("dropping stored game without a live match")
		return s.drop(ctx, existing.ID)
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	if live.engine.State() != engine.StateGameOver {
		return ErrGameAlreadyExists
	}
	return s.drop(ctx, existing.ID)
}

// JoinGame adds a player to the lobby of a channel
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	stored, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game for channel: %w", err)
	}
	if stored.HasPlayer(input.PlayerID) {
		return nil, ErrPlayerAlreadyInGame
	}
	if s.live(stored.ID) == nil {
		return nil, ErrGameNotFound
	}

	if err := s.release(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	var out *JoinGameOutput
	err = s.withGame(ctx, stored.ID, func(game *models.Game, eng *engine.Game) error {
		if eng.PlayerCount() >= s.maxPlayers {
			return ErrGameFull
		}
		if err := eng.AddPlayer(input.PlayerID, input.PlayerName); err != nil {
			return err
		}

		game.PlayerIDs = append(game.PlayerIDs, input.PlayerID)
		if err := s.save(ctx, game, eng); err != nil {
			return err
		}
		if err := s.attach(ctx, input.PlayerID, input.PlayerName, game.ID, s.clock.Now()); err != nil {
			return err
		}

		out = &JoinGameOutput{Game: game, DoubleDeck: eng.DoubleDeck()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   stored.ID,
		"player_id": input.PlayerID,
		"players":   len(out.Game.PlayerIDs),
	}).Info("player joined")

	return out, nil
}

// LeaveGame removes a player from their current game
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	gameID, err := s.currentGameID(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	out := &LeaveGameOutput{GameID: gameID}
	err = s.withGame(ctx, gameID, func(game *models.Game, eng *engine.Game) error {
		if err := eng.RemovePlayer(input.PlayerID); err != nil {
			if errors.Is(err, engine.ErrPlayerNotFound) {
				return ErrPlayerNotInGame
			}
			return err
		}

		game.RemovePlayer(input.PlayerID)
		if len(game.PlayerIDs) == 0 {
			out.Closed = true
			return s.drop(ctx, game.ID)
		}
		return s.save(ctx, game, eng)
	})
	switch {
	case errors.Is(err, ErrGameNotFound):
		// the match is gone, only the routing record is left to fix
		out.Closed = true
	case err != nil:
		return nil, err
	}

	if err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, fmt.Errorf("failed to detach player: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   gameID,
		"player_id": input.PlayerID,
		"closed":    out.Closed,
	}).Info("player left")

	return out, nil
}

// SetDoubleDeck switches the second set of cards on or off before the start
func (s *service) SetDoubleDeck(ctx context.Context, input *SetDoubleDeckInput) (*SetDoubleDeckOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var out *SetDoubleDeckOutput
	err := s.withPlayerGame(ctx, input.PlayerID, func(game *models.Game, eng *engine.Game) error {
		if err := eng.SetDoubleDeck(input.Enabled); err != nil {
			return err
		}
		if err := s.save(ctx, game, eng); err != nil {
			return err
		}
		out = &SetDoubleDeckOutput{DoubleDeck: eng.DoubleDeck()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// StartGame deals the cards
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*PlayOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var out *PlayOutput
	err := s.withPlayerGame(ctx, input.PlayerID, func(game *models.Game, eng *engine.Game) error {
		if eng.State() != engine.StateNotStarted {
			return engine.ErrAlreadyStarted
		}
		if err := eng.Start(); err != nil {
			s.logRejection(game.ID, input.PlayerID, "start", err)
			return err
		}
		if err := s.save(ctx, game, eng); err != nil {
			return err
		}
		out = playOutput(game.ID, eng)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   out.GameID,
		"player_id": input.PlayerID,
	}).Info("game started")

	return out, nil
}

// RestartGame deals a new match to the same roster. Allowed in any state.
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*PlayOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var out *PlayOutput
	err := s.withPlayerGame(ctx, input.PlayerID, func(game *models.Game, eng *engine.Game) error {
		restartErr := eng.Restart()

		// a failed restart still reset the table, so the record is saved either way
		if err := s.save(ctx, game, eng); err != nil {
			return err
		}
		if restartErr != nil {
			s.logRejection(game.ID, input.PlayerID, "restart", restartErr)
			return restartErr
		}

		out = playOutput(game.ID, eng)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   out.GameID,
		"player_id": input.PlayerID,
	}).Info("game restarted")

	return out, nil
}

// SelectCard plays one of the dealer's two cards
func (s *service) SelectCard(ctx context.Context, input *SelectCardInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.play(ctx, input.PlayerID, "select card", func(eng *engine.Game) error {
		return eng.SelectCard(input.Card)
	})
}

// SelectVictim picks the target of a played card
func (s *service) SelectVictim(ctx context.Context, input *SelectVictimInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.play(ctx, input.PlayerID, "select victim", func(eng *engine.Game) error {
		return eng.SelectVictim(input.Victim)
	})
}

// GuessCard names the card a Guard's victim is suspected to hold
func (s *service) GuessCard(ctx context.Context, input *GuessCardInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.play(ctx, input.PlayerID, "guess card", func(eng *engine.Game) error {
		return eng.GuessCard(input.Card)
	})
}

// play runs a dealer-only transition and stores the outcome
func (s *service) play(ctx context.Context, playerID, op string, fn func(eng *engine.Game) error) (*PlayOutput, error) {
	if playerID == "" {
		return nil, ErrInvalidInput
	}

	var out *PlayOutput
	err := s.withPlayerGame(ctx, playerID, func(game *models.Game, eng *engine.Game) error {
		if eng.DealerID() != playerID || eng.State() == engine.StateGameOver {
			return ErrNotYourTurn
		}
		if err := fn(eng); err != nil {
			s.logRejection(game.ID, playerID, op, err)
			return err
		}
		if err := s.save(ctx, game, eng); err != nil {
			return err
		}
		out = playOutput(game.ID, eng)
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := s.log.WithFields(logrus.Fields{
		"game_id":   out.GameID,
		"player_id": playerID,
		"state":     out.State,
	})
	if out.GameOver {
		entry.WithField("winner", out.Winner).Info("game over")
	} else {
		entry.Debugf("%s accepted", op)
	}

	return out, nil
}

// GetGame returns a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}
	return s.view(ctx, input.GameID)
}

// GetGameByChannel returns the game hosted in a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game for channel: %w", err)
	}

	return s.view(ctx, game.ID)
}

// GetGameByPlayer returns the game a player is in
func (s *service) GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*GetGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	gameID, err := s.currentGameID(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, gameID)
}

func (s *service) view(ctx context.Context, gameID string) (*GetGameOutput, error) {
	var out *GetGameOutput
	err := s.withGame(ctx, gameID, func(game *models.Game, eng *engine.Game) error {
		out = &GetGameOutput{Game: game, Snapshot: eng.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetHand returns the cards a player holds
func (s *service) GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var out *GetHandOutput
	err := s.withPlayerGame(ctx, input.PlayerID, func(game *models.Game, eng *engine.Game) error {
		hand, err := eng.Hand(input.PlayerID)
		if err != nil {
			return ErrPlayerNotInGame
		}

		out = &GetHandOutput{GameID: game.ID, Cards: hand, State: eng.State()}
		if eng.DealerID() == input.PlayerID {
			out.Options = eng.LegalOptions()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AbandonGame drops a game and frees its players. Only the creator may do it
// while they are still on the roster.
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var out *AbandonGameOutput
	err := s.withPlayerGame(ctx, input.PlayerID, func(game *models.Game, eng *engine.Game) error {
		if game.CreatorID != input.PlayerID && game.HasPlayer(game.CreatorID) {
			return ErrNotGameCreator
		}

		out = &AbandonGameOutput{GameID: game.ID, PlayerIDs: game.PlayerIDs}
		return s.drop(ctx, game.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   out.GameID,
		"player_id": input.PlayerID,
	}).Info("game abandoned")

	return out, nil
}

// PruneStaleGames closes stored games that have no live match behind them,
// which is every open game after a process restart
func (s *service) PruneStaleGames(ctx context.Context, input *PruneStaleGamesInput) (*PruneStaleGamesOutput, error) {
	open, err := s.gameRepo.GetOpenGames(ctx, &gameRepo.GetOpenGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get open games: %w", err)
	}

	out := &PruneStaleGamesOutput{GameIDs: []string{}}
	for _, game := range open.Games {
		if s.live(game.ID) != nil {
			continue
		}
		if err := s.drop(ctx, game.ID); err != nil {
			return nil, err
		}
		out.GameIDs = append(out.GameIDs, game.ID)
	}

	if len(out.GameIDs) > 0 {
		s.log.WithField("games", len(out.GameIDs)).Warn("pruned stale games")
	}

	return out, nil
}

func (s *service) live(gameID string) *liveGame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameID]
}

func (s *service) register(gameID string, eng *engine.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[gameID] = &liveGame{engine: eng}
}

func (s *service) unregister(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, gameID)
}

// withGame runs fn holding the game's lock, with the stored record loaded
func (s *service) withGame(ctx context.Context, gameID string, fn func(game *models.Game, eng *engine.Game) error) error {
	live := s.live(gameID)
	if live == nil {
		return ErrGameNotFound
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	// dropped while we waited for the lock
	if s.live(gameID) != live {
		return ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get game: %w", err)
	}

	return fn(game, live.engine)
}

// withPlayerGame is withGame for the game the player is currently in
func (s *service) withPlayerGame(ctx context.Context, playerID string, fn func(game *models.Game, eng *engine.Game) error) error {
	gameID, err := s.currentGameID(ctx, playerID)
	if err != nil {
		return err
	}

	err = s.withGame(ctx, gameID, func(game *models.Game, eng *engine.Game) error {
		if !eng.HasPlayer(playerID) {
			return ErrPlayerNotInGame
		}
		return fn(game, eng)
	})
	if errors.Is(err, ErrGameNotFound) {
		return ErrPlayerNotInGame
	}
	return err
}

func (s *service) currentGameID(ctx context.Context, playerID string) (string, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return "", ErrPlayerNotInGame
		}
		return "", fmt.Errorf("failed to get player: %w", err)
	}
	if player.CurrentGameID == "" {
		return "", ErrPlayerNotInGame
	}
	return player.CurrentGameID, nil
}

// release takes a player out of a finished game so they can sit at another
// table. Players of a running game or lobby have to leave first.
func (s *service) release(ctx context.Context, playerID string) error {
	gameID, err := s.currentGameID(ctx, playerID)
	if errors.Is(err, ErrPlayerNotInGame) {
		return nil
	}
	if err != nil {
		return err
	}

	err = s.withGame(ctx, gameID, func(game *models.Game, eng *engine.Game) error {
		if !eng.HasPlayer(playerID) {
			return nil
		}
		if eng.State() != engine.StateGameOver {
			return ErrPlayerAlreadyInGame
		}
		if err := eng.RemovePlayer(playerID); err != nil {
			return err
		}

		game.RemovePlayer(playerID)
		if len(game.PlayerIDs) == 0 {
			return s.drop(ctx, game.ID)
		}
		return s.save(ctx, game, eng)
	})
	if errors.Is(err, ErrGameNotFound) {
		return nil
	}
	return err
}

// attach records which game a player is sitting at
func (s *service) attach(ctx context.Context, playerID, name, gameID string, at time.Time) error {
	err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: &models.Player{
			ID:            playerID,
			Name:          name,
			CurrentGameID: gameID,
			JoinedAt:      at,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// drop forgets a game. The caller holds the game's lock if it is live.
func (s *service) drop(ctx context.Context, gameID string) error {
	s.unregister(gameID)

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: gameID})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if err := s.playerRepo.ClearGame(ctx, &playerRepo.ClearGameInput{GameID: gameID}); err != nil {
		return fmt.Errorf("failed to clear game players: %w", err)
	}

	return nil
}

// save copies the engine's lifecycle onto the stored record
func (s *service) save(ctx context.Context, game *models.Game, eng *engine.Game) error {
	status := statusOf(eng.State())
	if status == models.GameStatusCompleted && game.Status != models.GameStatusCompleted {
		game.Rounds++
		game.Winner = eng.Snapshot().Winner
	}

	game.Status = status
	game.DoubleDeck = eng.DoubleDeck()
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (s *service) logRejection(gameID, playerID, op string, err error) {
	entry := s.log.WithFields(logrus.Fields{
		"game_id":   gameID,
		"player_id": playerID,
		"op":        op,
	}).WithError(err)

	if errors.Is(err, engine.ErrWrongState) {
		entry.Error("transition called in wrong state")
		return
	}
	entry.Debug("input rejected")
}

func statusOf(state engine.State) models.GameStatus {
	switch state {
	case engine.StateNotStarted:
		return models.GameStatusWaiting
	case engine.StateGameOver:
		return models.GameStatusCompleted
	default:
		return models.GameStatusActive
	}
}

func playOutput(gameID string, eng *engine.Game) *PlayOutput {
	out := &PlayOutput{
		GameID:   gameID,
		State:    eng.State(),
		DealerID: eng.DealerID(),
		Options:  eng.LegalOptions(),
	}
	if out.State == engine.StateGameOver {
		out.GameOver = true
		out.Winner = eng.Snapshot().Winner
		out.DealerID = ""
	}
	return out
}

// Package engine orchestrates matchmaking and the per-match turn state
// machine. Every inbound player action funnels through here.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/roodle/server/internal/dependencies/clock"
	"github.com/roodle/server/internal/dependencies/random"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/guess"
	"github.com/roodle/server/internal/services/leaderboard"
	"github.com/roodle/server/internal/services/progression"
	"github.com/roodle/server/internal/services/queue"
	"github.com/roodle/server/internal/services/registry"
	"github.com/roodle/server/internal/services/words"
)

const (
	// DefaultMaxGuesses is the per-player guess maximum; the shared budget
	// across both players is twice this
	DefaultMaxGuesses = 6

	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Notifier delivers outbound events to players. The transport layer
// implements it; tests use a recording fake.
type Notifier interface {
	// Send delivers an event to exactly one connected player. Delivery to a
	// disconnected player is a no-op.
	Send(id model.PlayerID, event model.Event)

	// Broadcast delivers an event to all connected players
	Broadcast(event model.Event)
}

// Engine is the authoritative coordinator for sessions, the matchmaking
// queue, and in-flight matches. A single mutex serializes all inbound
// actions so no shared state is ever observed mid-mutation; durable writes
// never happen under that lock.
type Engine struct {
	registry    *registry.Registry
	queue       *queue.Queue
	words       *words.Service
	progression *progression.Service
	leaderboard *leaderboard.Service
	notifier    Notifier
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger

	mu sync.Mutex
}

// New creates a new engine
func New(
	reg *registry.Registry,
	q *queue.Queue,
	wordSource *words.Service,
	prog *progression.Service,
	lb *leaderboard.Service,
	notifier Notifier,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		registry:    reg,
		queue:       q,
		words:       wordSource,
		progression: prog,
		leaderboard: lb,
		notifier:    notifier,
		clock:       clk,
		random:      rnd,
		logger:      logger.With(slog.String("component", "engine")),
	}
}

// Register creates (or replaces) a player session and acknowledges with the
// player's loaded progression. An empty player id gets a generated stable id.
func (e *Engine) Register(ctx context.Context, playerID, nick string, preferredLength int) (*model.PlayerSession, *model.ProgressionRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if playerID == "" {
		playerID = uuid.NewString()
	}
	if nick == "" {
		nick = "Player"
	}
	if preferredLength < words.MinLength || preferredLength > words.MaxLength {
		preferredLength = words.DefaultLength
	}

	id := model.PlayerID(playerID)
	rec, err := e.progression.GetOrCreate(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	session := &model.PlayerSession{
		ID:              id,
		Nick:            nick,
		Level:           rec.Level,
		Rating:          rec.Rating,
		PreferredLength: preferredLength,
		ConnectedAt:     e.clock.Now(),
	}
	// Re-registering must not let a player escape an active match
	if match, ok := e.registry.MatchFor(id); ok && match.Status == model.MatchStatusActive {
		session.CurrentGame = match.ID
	}
	e.registry.AddPlayer(session)

	e.notifier.Send(id, model.Event{
		Type:    model.EventPlayerRegistered,
		Payload: model.RegisteredPayload{PlayerID: id, Progress: rec},
	})

	e.logger.Info("player registered",
		slog.String("player_id", playerID),
		slog.String("nick", nick),
	)

	return session, rec, nil
}

// JoinQueue enrolls a registered player in the matchmaking queue and starts
// a match if a pair is waiting
func (e *Engine) JoinQueue(ctx context.Context, id model.PlayerID, wordLength int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.registry.GetPlayer(id)
	if !ok {
		return 0, model.ErrNotRegistered
	}
	if session.InMatch() {
		return 0, model.ErrAlreadyInGame
	}
	if wordLength >= words.MinLength && wordLength <= words.MaxLength {
		session.PreferredLength = wordLength
	}

	if err := e.queue.Enqueue(session); err != nil {
		return 0, err
	}
	position := e.queue.Len()

	e.notifier.Send(id, model.Event{
		Type:    model.EventQueueJoined,
		Payload: model.QueueJoinedPayload{Position: position},
	})

	e.logger.Info("player joined queue",
		slog.String("player_id", string(id)),
		slog.Int("queue_size", position),
	)

	e.broadcastQueue()
	e.tryStartMatch(ctx)
	return position, nil
}

// LeaveQueue removes a player from the queue. Idempotent.
func (e *Engine) LeaveQueue(ctx context.Context, id model.PlayerID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.queue.Dequeue(id) == nil

	e.notifier.Send(id, model.Event{Type: model.EventQueueLeft})
	if removed {
		e.broadcastQueue()
	}
}

// SubmitGuess handles one guess from the currently-active turn holder. The
// submitter-facing result is both returned and delivered as an event.
func (e *Engine) SubmitGuess(ctx context.Context, id model.PlayerID, gameID model.GameID, word string) (*model.GuessResultPayload, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	match, ok := e.registry.GetMatch(gameID)
	if !ok || match.Status != model.MatchStatusActive {
		return nil, model.ErrGameNotFound
	}
	state := match.PlayerState(id)
	if state == nil {
		return nil, model.ErrNotInGame
	}
	if match.CurrentTurn != id {
		return nil, model.ErrNotYourTurn
	}
	if !isLetters(word) {
		return nil, model.ErrInvalidGuess
	}

	result, err := guess.Evaluate(word, match.TargetWord)
	if err != nil {
		return nil, err
	}

	normalized := guess.Normalize(word)
	won := guess.IsWin(result)

	match.TurnNumber++
	state.Guesses++
	match.AllGuesses = append(match.AllGuesses, model.Guess{
		Player: id,
		Nick:   state.Nick,
		Word:   normalized,
		Result: result,
		Turn:   match.TurnNumber,
	})

	submitterResult := &model.GuessResultPayload{
		Guess:  normalized,
		Result: result,
		Won:    won,
	}
	e.notifier.Send(id, model.Event{
		Type:    model.EventGuessResult,
		Payload: *submitterResult,
	})

	opponent := match.Opponent(id)
	gameOver := won || match.BudgetExhausted()
	e.notifier.Send(opponent.ID, model.Event{
		Type: model.EventOpponentGuess,
		Payload: model.OpponentGuessPayload{
			Guess:       normalized,
			Result:      result,
			OpponentWon: won,
			YourTurn:    !gameOver,
		},
	})

	if won {
		state.Finished = true
		state.Won = true
		e.endMatch(ctx, match, id, false)
		return submitterResult, nil
	}

	if match.BudgetExhausted() {
		e.endMatch(ctx, match, "", false)
		return submitterResult, nil
	}

	// Game continues: turn flips to the other player
	match.CurrentTurn = opponent.ID
	e.notifier.Send(opponent.ID, model.Event{
		Type: model.EventTurnStart,
		Payload: model.TurnStartPayload{
			TurnNumber:       match.TurnNumber,
			GuessesRemaining: match.GuessBudget() - match.TurnNumber,
		},
	})

	return submitterResult, nil
}

// Disconnect handles transport-level disconnection: an active match is
// resolved as a win for the opponent, the player leaves any queue, and the
// session is dropped. Serialized like any other action, so it always wins a
// race against a simultaneous guess.
func (e *Engine) Disconnect(ctx context.Context, id model.PlayerID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if match, ok := e.registry.MatchFor(id); ok && match.Status == model.MatchStatusActive {
		opponent := match.Opponent(id)
		e.notifier.Send(opponent.ID, model.Event{Type: model.EventOpponentDisconnected})
		e.endMatch(ctx, match, opponent.ID, true)
	}

	if e.queue.Dequeue(id) == nil {
		e.broadcastQueue()
	}
	e.registry.RemovePlayer(id)

	e.logger.Info("player disconnected", slog.String("player_id", string(id)))
}

// Progress returns a player's progression record. Unlike registration this
// never creates a record, so lookups for unknown players fail cleanly.
func (e *Engine) Progress(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	return e.progression.Lookup(ctx, id)
}

// Leaderboard returns the exposed leaderboard snapshot
func (e *Engine) Leaderboard() []model.LeaderboardEntry {
	return e.leaderboard.Top()
}

// LeaderboardRank returns a player's 1-based leaderboard position, 0 if
// unranked
func (e *Engine) LeaderboardRank(id model.PlayerID) int {
	return e.leaderboard.RankOf(id)
}

// Stats are the live server counters
type Stats struct {
	Players           int `json:"players"`
	QueueSize         int `json:"queue_size"`
	ActiveGames       int `json:"active_games"`
	RegisteredPlayers int `json:"registered_players"`
}

// CurrentStats returns the live server counters
func (e *Engine) CurrentStats() Stats {
	return Stats{
		Players:           e.registry.PlayerCount(),
		QueueSize:         e.queue.Len(),
		ActiveGames:       e.registry.MatchCount(),
		RegisteredPlayers: e.progression.KnownCount(),
	}
}

// tryStartMatch pairs the two longest-waiting players and creates a match.
// Caller must hold e.mu.
func (e *Engine) tryStartMatch(ctx context.Context) {
	first, second, ok := e.queue.TryPair()
	if !ok {
		return
	}

	// Word length follows the first paired player's preference
	length := first.PreferredLength
	if length == 0 {
		length = words.DefaultLength
	}

	target, err := e.words.PickRandom(length)
	if err != nil && length != words.DefaultLength {
		length = words.DefaultLength
		target, err = e.words.PickRandom(length)
	}
	if err != nil {
		// No words loaded at all; put both players back in order
		e.logger.Error("cannot start match", slog.String("error", err.Error()))
		_ = e.queue.Enqueue(first)
		_ = e.queue.Enqueue(second)
		return
	}

	gameID := model.GameID("game_" + e.random.String(gameIDLength, gameIDAlphabet))
	starter := first
	if !e.random.Coin() {
		starter = second
	}

	match := &model.Match{
		ID:         gameID,
		TargetWord: target,
		WordLength: length,
		MaxGuesses: DefaultMaxGuesses,
		Players: [2]model.MatchPlayer{
			{ID: first.ID, Nick: first.Nick},
			{ID: second.ID, Nick: second.Nick},
		},
		CurrentTurn: starter.ID,
		Status:      model.MatchStatusActive,
		CreatedAt:   e.clock.Now(),
	}

	e.registry.AddMatch(match)
	first.CurrentGame = gameID
	second.CurrentGame = gameID

	e.notifier.Send(first.ID, model.Event{
		Type: model.EventGameStart,
		Payload: model.GameStartPayload{
			GameID:     gameID,
			WordLength: length,
			Opponent:   model.OpponentInfo{Nick: second.Nick, Level: second.Level, Rating: second.Rating},
			YourTurn:   starter.ID == first.ID,
		},
	})
	e.notifier.Send(second.ID, model.Event{
		Type: model.EventGameStart,
		Payload: model.GameStartPayload{
			GameID:     gameID,
			WordLength: length,
			Opponent:   model.OpponentInfo{Nick: first.Nick, Level: first.Level, Rating: first.Rating},
			YourTurn:   starter.ID == second.ID,
		},
	})

	e.logger.Info("match started",
		slog.String("game_id", string(gameID)),
		slog.String("player_1", string(first.ID)),
		slog.String("player_2", string(second.ID)),
		slog.Int("word_length", length),
	)

	e.broadcastQueue()
}

// endMatch resolves a match, applies progression, notifies both players,
// and tears the session down. An empty winnerID means a draw. Caller must
// hold e.mu.
func (e *Engine) endMatch(ctx context.Context, match *model.Match, winnerID model.PlayerID, disconnected bool) {
	match.Status = model.MatchStatusFinished

	draw := winnerID == ""
	winner, loser := &match.Players[0], &match.Players[1]
	if !draw && loser.ID == winnerID {
		winner, loser = loser, winner
	}

	winnerReward, loserReward, err := e.progression.ApplyMatchResult(ctx, progression.MatchResult{
		Winner:     winner.ID,
		Loser:      loser.ID,
		WinnerNick: winner.Nick,
		LoserNick:  loser.Nick,
		Draw:       draw,
		TurnsTaken: match.TurnNumber,
		MaxGuesses: match.MaxGuesses,
	})
	if err != nil {
		// The result is queued for retry; the players still get closure,
		// just without progression numbers
		e.logger.Error("progression update failed",
			slog.String("game_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		winnerReward = &progression.Reward{}
		loserReward = &progression.Reward{}
	}

	winnerResult, loserResult := model.GameResultWin, model.GameResultLose
	if draw {
		winnerResult, loserResult = model.GameResultDraw, model.GameResultDraw
	}

	e.sendGameEnd(match, winner.ID, winnerResult, winnerReward, disconnected && !draw)
	e.sendGameEnd(match, loser.ID, loserResult, loserReward, false)

	for i := range match.Players {
		id := match.Players[i].ID
		rec := rewardFor(id, winner.ID, winnerReward, loserReward)
		if session, ok := e.registry.GetPlayer(id); ok {
			session.CurrentGame = ""
			if rec != nil {
				session.Level = rec.Level
				session.Rating = rec.Rating
			}
		}
		if rec != nil {
			e.notifier.Send(id, model.Event{
				Type:    model.EventProgressUpdate,
				Payload: model.ProgressPayload{Progress: rec},
			})
		}
	}
	e.registry.RemoveMatch(match.ID)

	e.notifier.Broadcast(model.Event{
		Type:    model.EventLeaderboardUpdate,
		Payload: model.LeaderboardPayload{Leaderboard: e.leaderboard.Top()},
	})

	e.logger.Info("match ended",
		slog.String("game_id", string(match.ID)),
		slog.String("winner", string(winnerID)),
		slog.Bool("draw", draw),
		slog.Bool("disconnected", disconnected),
		slog.Int("turns", match.TurnNumber),
	)

	// Kick an out-of-band flush so the result hits storage promptly without
	// blocking the action path
	go func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.progression.FlushPending(flushCtx); err != nil {
			e.logger.Warn("post-match flush failed", slog.String("error", err.Error()))
		}
	}()
}

func (e *Engine) sendGameEnd(match *model.Match, id model.PlayerID, result model.GameResult, reward *progression.Reward, disconnected bool) {
	e.notifier.Send(id, model.Event{
		Type: model.EventGameEnd,
		Payload: model.GameEndPayload{
			Result:       result,
			TargetWord:   match.TargetWord,
			XPGained:     reward.XPGained,
			RatingChange: reward.RatingDelta,
			NewRating:    reward.NewRating,
			Progress:     reward.Record,
			LeveledUp:    reward.LeveledUp,
			Disconnected: disconnected,
			AllGuesses:   match.AllGuesses,
		},
	})
}

// rewardFor picks the record belonging to id out of the two rewards
func rewardFor(id, winnerID model.PlayerID, winnerReward, loserReward *progression.Reward) *model.ProgressionRecord {
	if id == winnerID {
		return winnerReward.Record
	}
	return loserReward.Record
}

// broadcastQueue emits the current waiting roster to everyone. Caller must
// hold e.mu.
func (e *Engine) broadcastQueue() {
	e.notifier.Broadcast(model.Event{
		Type:    model.EventQueueUpdate,
		Payload: model.QueueUpdatePayload{Players: e.queue.Roster()},
	})
}

func isLetters(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValidationError reports whether an error is a player-facing validation
// failure rather than an internal fault
func IsValidationError(err error) bool {
	for _, target := range []error{
		model.ErrNotRegistered,
		model.ErrAlreadyQueued,
		model.ErrNotQueued,
		model.ErrAlreadyInGame,
		model.ErrGameNotFound,
		model.ErrGameFinished,
		model.ErrNotYourTurn,
		model.ErrNotInGame,
		model.ErrInvalidGuess,
		model.ErrLengthMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package discord

import (
	"errors"
	"sync"

	"github.com/KirkDiggler/recall/internal/modes"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/rs/zerolog"
)

// GameFactory builds the game service for one channel
type GameFactory func(channelID string, presenter modes.Presenter) (game.Service, error)

// channelGame is a channel's game service and the presenter it reports to
type channelGame struct {
	service   game.Service
	presenter *ChannelPresenter
}

// Games keeps one game service per channel
type Games struct {
	factory   GameFactory
	messenger ChannelMessenger
	messaging messaging.Service
	logger    zerolog.Logger

	mu       sync.Mutex
	channels map[string]*channelGame
}

// GamesConfig holds the dependencies of the channel registry
type GamesConfig struct {
	Factory          GameFactory
	Messenger        ChannelMessenger
	MessagingService messaging.Service
	Logger           zerolog.Logger
}

// NewGames creates an empty channel registry
func NewGames(cfg *GamesConfig) (*Games, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Factory == nil {
		return nil, errors.New("game factory cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("channel messenger cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Games{
		factory:   cfg.Factory,
		messenger: cfg.Messenger,
		messaging: cfg.MessagingService,
		logger:    cfg.Logger,
		channels:  make(map[string]*channelGame),
	}, nil
}

// get returns the channel's game, if one was ever started there
func (g *Games) get(channelID string) (*channelGame, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cg, ok := g.channels[channelID]
	return cg, ok
}

// getOrCreate returns the channel's game, creating its service on first use
func (g *Games) getOrCreate(channelID string) (*channelGame, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cg, ok := g.channels[channelID]; ok {
		return cg, nil
	}

	presenter := NewChannelPresenter(channelID, g.messenger, g.messaging, g.logger)
	svc, err := g.factory(channelID, presenter)
	if err != nil {
		return nil, err
	}

	cg := &channelGame{service: svc, presenter: presenter}
	g.channels[channelID] = cg
	g.logger.Info().Str("channel_id", channelID).Msg("created channel game")
	return cg, nil
}

// CloseAll stops every channel's game
func (g *Games) CloseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for channelID, cg := range g.channels {
		cg.service.Close()
		delete(g.channels, channelID)
	}
}

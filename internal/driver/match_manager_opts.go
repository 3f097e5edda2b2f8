package driver

import (
	"math/rand/v2"
	"time"

	"github.com/pixil98/go-mafia/internal/event"
	"github.com/pixil98/go-mafia/internal/game"
	"github.com/pixil98/go-mafia/internal/storage"
)

type MatchManagerOpt func(*MatchManager)

// WithRecords saves a snapshot of each game after every change.
func WithRecords(st storage.Storer[*game.Record]) MatchManagerOpt {
	return func(m *MatchManager) {
		m.records = st
	}
}

func WithChatSink(sink game.ChatSink) MatchManagerOpt {
	return func(m *MatchManager) {
		m.sink = sink
	}
}

func WithBroadcaster(b *event.Broadcaster) MatchManagerOpt {
	return func(m *MatchManager) {
		m.broadcaster = b
	}
}

func WithClock(now func() time.Time) MatchManagerOpt {
	return func(m *MatchManager) {
		m.now = now
	}
}

// WithRand sets the source used to deal roles.
func WithRand(rng *rand.Rand) MatchManagerOpt {
	return func(m *MatchManager) {
		m.rng = rng
	}
}

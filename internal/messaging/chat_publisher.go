package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mafia/internal/chat"
	"github.com/pixil98/go-mafia/internal/game"
)

type publisher interface {
	Publish(subject string, data []byte) error
}

// PlayerSubject is the subject a player's private messages are published on.
func PlayerSubject(gameID string, ref game.PlayerRef) string {
	return fmt.Sprintf("game.%s.player.%d", gameID, ref.Index())
}

// PublicSubject is the subject messages for every player are published on.
func PublicSubject(gameID string) string {
	return fmt.Sprintf("game.%s.public", gameID)
}

// ChatPublisher is a game.ChatSink that publishes JSON chat envelopes.
// Failures are logged and dropped.
type ChatPublisher struct {
	pub publisher
}

func NewChatPublisher(pub publisher) *ChatPublisher {
	return &ChatPublisher{pub: pub}
}

func (p *ChatPublisher) SendPrivate(gameID string, to game.PlayerRef, msg chat.Message) {
	p.publish(PlayerSubject(gameID, to), msg)
}

func (p *ChatPublisher) Broadcast(gameID string, msg chat.Message) {
	p.publish(PublicSubject(gameID), msg)
}

func (p *ChatPublisher) publish(subject string, msg chat.Message) {
	env, err := chat.NewEnvelope(msg)
	if err != nil {
		slog.Error("rendering chat message", "subject", subject, "kind", msg.Kind(), "error", err)
		return
	}

	data, err := json.Marshal(env)
	if err != nil {
		slog.Error("marshalling chat envelope", "subject", subject, "kind", msg.Kind(), "error", err)
		return
	}

	if err := p.pub.Publish(subject, data); err != nil {
		slog.Warn("publishing chat message", "subject", subject, "kind", msg.Kind(), "error", err)
	}
}

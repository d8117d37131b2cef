package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/services/messaging"
)

// DefaultQueueSize bounds the notifications waiting for delivery
const DefaultQueueSize = 256

// Sender delivers a direct message to a user
type Sender interface {
	SendDM(userID string, msg *discordgo.MessageSend) error
}

// SessionSender sends direct messages through a Discord session
type SessionSender struct {
	session *discordgo.Session
}

// NewSessionSender wraps a session
func NewSessionSender(session *discordgo.Session) *SessionSender {
	return &SessionSender{session: session}
}

// SendDM opens the private channel with the user and posts the message
func (s *SessionSender) SendDM(userID string, msg *discordgo.MessageSend) error {
	channel, err := s.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}
	if _, err := s.session.ChannelMessageSendComplex(channel.ID, msg); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

// NotifierConfig holds the dependencies of the notifier
type NotifierConfig struct {
	Sender           Sender
	MessagingService messaging.Service

	// Language of the direct messages, the messaging default when empty
	Language string

	QueueSize int
	Logger    *logrus.Logger
}

type delivery struct {
	playerID string
	msg      *engine.Message
}

// Notifier implements engine.Notifier by sending direct messages. Engines call
// it while holding their game lock, so messages are queued and delivered in
// order by Run.
type Notifier struct {
	sender    Sender
	messaging messaging.Service
	language  string
	log       *logrus.Logger

	queue    chan delivery
	done     chan struct{}
	stopOnce sync.Once
}

// NewNotifier creates a notifier, Run must be started to deliver anything
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Notifier{
		sender:    cfg.Sender,
		messaging: cfg.MessagingService,
		language:  cfg.Language,
		log:       logger,
		queue:     make(chan delivery, size),
		done:      make(chan struct{}),
	}, nil
}

// Notify queues a message for a single player
func (n *Notifier) Notify(playerID string, msg *engine.Message) {
	n.enqueue(delivery{playerID: playerID, msg: msg})
}

// Broadcast queues a message for every listed player
func (n *Notifier) Broadcast(playerIDs []string, msg *engine.Message) {
	for _, id := range playerIDs {
		n.enqueue(delivery{playerID: id, msg: msg})
	}
}

func (n *Notifier) enqueue(d delivery) {
	select {
	case n.queue <- d:
	case <-n.done:
		n.log.WithFields(logrus.Fields{
			"player_id": d.playerID,
			"kind":      d.msg.Kind,
		}).Warn("notifier stopped, message dropped")
	}
}

// Run delivers queued messages until ctx is cancelled
func (n *Notifier) Run(ctx context.Context) error {
	defer n.stopOnce.Do(func() { close(n.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-n.queue:
			n.deliver(ctx, d)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, d delivery) {
	entry := n.log.WithFields(logrus.Fields{
		"player_id": d.playerID,
		"kind":      d.msg.Kind,
	})

	rendered, err := n.messaging.RenderMessage(ctx, &messaging.RenderMessageInput{
		Message:  d.msg,
		Language: n.language,
	})
	if err != nil {
		entry.WithError(err).Error("failed to render message")
		return
	}

	var menu *Menu
	if customID, placeholder, ok := menuForMessage(d.msg.Kind); ok {
		menu = &Menu{
			CustomID:    customID,
			Placeholder: n.placeholder(ctx, placeholder),
			Options:     d.msg.Options,
		}
	}

	if err := n.sender.SendDM(d.playerID, messageSend(rendered.Text, menu)); err != nil {
		entry.WithError(err).Warn("failed to deliver message")
		return
	}
	entry.Debug("message delivered")
}

func (n *Notifier) placeholder(ctx context.Context, notice messaging.Notice) string {
	out, err := n.messaging.GetNoticeMessage(ctx, &messaging.GetNoticeMessageInput{
		Notice:   notice,
		Language: n.language,
	})
	if err != nil {
		return ""
	}
	return out.Text
}

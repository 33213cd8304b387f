package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"moodbot/app/client/completion"
	"moodbot/app/client/huggingface"
	"moodbot/app/client/newsapi"
	"moodbot/app/client/twilio"
	"moodbot/app/config"
	"moodbot/app/service/mood"

	"github.com/samber/do"
)

type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (huggingface.Sentiment, error)
}

type Dispatcher interface {
	Send(to, body string) error
}

// Service runs the per-message pipeline: resolve state, detect language,
// record turns, classify mood, score sentiment, compose and dispatch.
type Service struct {
	cfg   *config.Config
	store *Store

	composer   *Composer
	sentiment  SentimentAnalyzer
	dispatcher Dispatcher

	detectLanguage func(text string) string
}

func New(di *do.Injector) (*Service, error) {
	hfClient := do.MustInvoke[*huggingface.Client](di)

	composer := NewComposer(
		do.MustInvoke[*completion.Client](di),
		hfClient,
		do.MustInvoke[*newsapi.Client](di),
	)

	return &Service{
		cfg:            do.MustInvoke[*config.Config](di),
		store:          NewStore(),
		composer:       composer,
		sentiment:      hfClient,
		dispatcher:     do.MustInvoke[*twilio.Client](di),
		detectLanguage: detectLanguage,
	}, nil
}

// ProcessMessage handles one inbound message. The sender's state lock is held
// for the whole sequence, so messages from the same sender are processed one
// at a time while different senders proceed independently.
func (s *Service) ProcessMessage(ctx context.Context, senderID, text string) error {
	state := s.store.GetOrCreate(senderID)

	state.mu.Lock()
	defer state.mu.Unlock()

	// Language is decided by the first message and never overwritten.
	if state.language == "" {
		state.language = s.detectLanguage(text)
	}

	state.context = append(state.context, Turn{Role: RoleUser, Message: text})
	state.mood = mood.Classify(text)

	var sentiment *huggingface.Sentiment
	if result, err := s.sentiment.AnalyzeSentiment(ctx, text); err != nil {
		slog.Warn("Sentiment analysis failed, skipping annotation", "error", err)
	} else {
		sentiment = &result
	}

	reply, entities := s.composer.Compose(ctx, state, sentiment)

	state.context = append(state.context, Turn{Role: RoleBot, Message: reply})

	if err := s.dispatcher.Send(senderID, reply); err != nil {
		return fmt.Errorf("failed to dispatch reply: %w", err)
	}

	state.namedEntities = entities

	slog.Info("Replied to message",
		"sender", senderID,
		"mood", state.mood,
		"turns", len(state.context),
	)

	return nil
}

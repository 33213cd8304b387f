package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"moodbot/app/client/huggingface"
	"moodbot/app/service/mood"

	"golang.org/x/sync/errgroup"
)

type Completer interface {
	Complete(ctx context.Context, userMessage string, botMessages []string) (string, error)
}

type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) ([]huggingface.Entity, error)
}

type NewsProvider interface {
	TopHeadlines(ctx context.Context) ([]string, error)
}

// Composer assembles the outbound reply from the mood template, the sentiment
// annotation and the external enrichment blocks.
type Composer struct {
	completer Completer
	extractor EntityExtractor
	news      NewsProvider

	pickFollowup func(n int) int
}

func NewComposer(completer Completer, extractor EntityExtractor, news NewsProvider) *Composer {
	return &Composer{
		completer:    completer,
		extractor:    extractor,
		news:         news,
		pickFollowup: rand.IntN,
	}
}

// Compose builds the reply text for the current state. The caller holds the
// state's lock; Compose itself never mutates the state. The extracted
// entities are returned alongside the reply so the caller can record them.
//
// Block order is fixed: template, sentiment annotation, follow-up, completion
// (English conversations only), named entities, headlines. A failed
// enrichment call drops its block and nothing else.
func (c *Composer) Compose(ctx context.Context, state *State, sentiment *huggingface.Sentiment) (string, []huggingface.Entity) {
	entry, ok := mood.Responses[state.mood]
	if !ok {
		entry = mood.Responses[mood.Neutral]
	}

	var reply strings.Builder
	reply.WriteString(entry.Template)

	if sentiment != nil {
		fmt.Fprintf(&reply, " (Sentiment: %s)", sentiment)
	}

	reply.WriteString("\n\n")
	reply.WriteString(entry.Followups[c.pickFollowup(len(entry.Followups))])

	userMessage := lastUserMessage(state.context)
	botMessages := botMessages(state.context)

	var (
		completionText string
		entities       []huggingface.Entity
		headlines      []string
	)

	group, groupCtx := errgroup.WithContext(ctx)

	if state.language == "en" {
		group.Go(func() error {
			text, err := c.completer.Complete(groupCtx, userMessage, botMessages)
			if err != nil {
				slog.Warn("Completion failed, skipping block", "error", err)
				return nil
			}

			completionText = text
			return nil
		})
	}

	group.Go(func() error {
		result, err := c.extractor.ExtractEntities(groupCtx, userMessage)
		if err != nil {
			slog.Warn("Entity extraction failed, skipping annotations", "error", err)
			return nil
		}

		entities = result
		return nil
	})

	group.Go(func() error {
		result, err := c.news.TopHeadlines(groupCtx)
		if err != nil {
			slog.Warn("Headlines fetch failed, skipping block", "error", err)
			return nil
		}

		headlines = result
		return nil
	})

	_ = group.Wait()

	if completionText != "" {
		reply.WriteString("\n\n")
		reply.WriteString(completionText)
	}

	reply.WriteString("\n\nNamed Entities: ")
	reply.WriteString(formatEntities(entities))

	reply.WriteString("\n\nLatest News Headlines: ")
	reply.WriteString(formatHeadlines(headlines))

	return reply.String(), entities
}

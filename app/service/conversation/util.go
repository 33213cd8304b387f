package conversation

import (
	"fmt"
	"strings"

	"moodbot/app/client/huggingface"

	"github.com/abadojack/whatlanggo"
	"github.com/elliotchance/pie/v2"
)

func lastUserMessage(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			return turns[i].Message
		}
	}

	return ""
}

func botMessages(turns []Turn) []string {
	return pie.Map(
		pie.Filter(turns, func(turn Turn) bool {
			return turn.Role == RoleBot
		}),
		func(turn Turn) string {
			return turn.Message
		},
	)
}

func formatEntities(entities []huggingface.Entity) string {
	if len(entities) == 0 {
		return "none"
	}

	parts := pie.Map(entities, func(entity huggingface.Entity) string {
		return fmt.Sprintf("%s (%s)", entity.Text, entity.Label)
	})

	return strings.Join(parts, ", ")
}

func formatHeadlines(headlines []string) string {
	if len(headlines) == 0 {
		return "none"
	}

	return strings.Join(headlines, "\n")
}

func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}

	return info.Lang.Iso6391()
}

package conversation

import (
	"sync"

	"moodbot/app/client/huggingface"
	"moodbot/app/service/mood"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message exchange unit in a conversation. Turns are append-only
// and never mutated once recorded.
type Turn struct {
	Role    Role
	Message string
}

// State is the per-sender conversation state. mu serializes the whole
// read-modify-compose-dispatch sequence of a single message, so two
// simultaneous messages from the same sender cannot race on context or mood.
type State struct {
	mu sync.Mutex

	userID   int
	context  []Turn
	language string
	mood     mood.Tag

	// sarcasmMode is a reserved extension point; nothing toggles it yet.
	sarcasmMode bool

	namedEntities []huggingface.Entity
}

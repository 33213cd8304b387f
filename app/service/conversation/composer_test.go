package conversation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"moodbot/app/client/huggingface"
	"moodbot/app/service/mood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text  string
	err   error
	calls atomic.Int64
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ []string) (string, error) {
	f.calls.Add(1)
	return f.text, f.err
}

type fakeExtractor struct {
	entities []huggingface.Entity
	err      error
}

func (f *fakeExtractor) ExtractEntities(_ context.Context, _ string) ([]huggingface.Entity, error) {
	return f.entities, f.err
}

type fakeNews struct {
	headlines []string
	err       error
}

func (f *fakeNews) TopHeadlines(_ context.Context) ([]string, error) {
	return f.headlines, f.err
}

func testComposer(completer *fakeCompleter, extractor *fakeExtractor, news *fakeNews) *Composer {
	composer := NewComposer(completer, extractor, news)
	composer.pickFollowup = func(int) int { return 0 }

	return composer
}

func englishState(tag mood.Tag, message string) *State {
	return &State{
		userID:   42,
		language: "en",
		mood:     tag,
		context:  []Turn{{Role: RoleUser, Message: message}},
	}
}

func TestComposeBlockOrder(t *testing.T) {
	completer := &fakeCompleter{text: "Glad to chat!"}
	extractor := &fakeExtractor{entities: []huggingface.Entity{{Text: "Paris", Label: "LOC"}}}
	news := &fakeNews{headlines: []string{"Big Story - Daily Times"}}

	state := englishState(mood.Happy, "I am so happy in Paris")
	sentiment := &huggingface.Sentiment{Label: "POSITIVE", Score: 0.98}

	reply, entities := testComposer(completer, extractor, news).Compose(context.Background(), state, sentiment)

	expected := mood.Responses[mood.Happy].Template +
		" (Sentiment: POSITIVE 0.98)" +
		"\n\n" + mood.Responses[mood.Happy].Followups[0] +
		"\n\nGlad to chat!" +
		"\n\nNamed Entities: Paris (LOC)" +
		"\n\nLatest News Headlines: Big Story - Daily Times"

	assert.Equal(t, expected, reply)
	assert.Equal(t, extractor.entities, entities)
}

func TestComposeFollowupMembership(t *testing.T) {
	composer := NewComposer(
		&fakeCompleter{text: "ok"},
		&fakeExtractor{},
		&fakeNews{},
	)

	state := englishState(mood.Sad, "feeling depressed")

	reply, _ := composer.Compose(context.Background(), state, nil)

	found := false
	for _, followup := range mood.Responses[mood.Sad].Followups {
		if strings.Contains(reply, followup) {
			found = true
			break
		}
	}
	assert.True(t, found, "reply must contain one configured follow-up: %q", reply)
}

func TestComposeNonEnglishSkipsCompletion(t *testing.T) {
	completer := &fakeCompleter{text: "should not appear"}

	state := englishState(mood.Neutral, "hola")
	state.language = "es"

	reply, _ := testComposer(completer, &fakeExtractor{}, &fakeNews{}).Compose(context.Background(), state, nil)

	assert.Zero(t, completer.calls.Load())
	assert.NotContains(t, reply, "should not appear")
}

func TestComposeCompletionFailureOmitsOnlyThatBlock(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("backend down")}
	extractor := &fakeExtractor{entities: []huggingface.Entity{{Text: "Bob", Label: "PER"}}}
	news := &fakeNews{headlines: []string{"Top Story - Wire"}}

	state := englishState(mood.Happy, "so happy")
	sentiment := &huggingface.Sentiment{Label: "POSITIVE", Score: 0.91}

	reply, _ := testComposer(completer, extractor, news).Compose(context.Background(), state, sentiment)

	assert.Contains(t, reply, mood.Responses[mood.Happy].Template)
	assert.Contains(t, reply, "(Sentiment: POSITIVE 0.91)")
	assert.Contains(t, reply, mood.Responses[mood.Happy].Followups[0])
	assert.Contains(t, reply, "Named Entities: Bob (PER)")
	assert.Contains(t, reply, "Latest News Headlines: Top Story - Wire")
}

func TestComposeWithoutSentiment(t *testing.T) {
	state := englishState(mood.Tired, "so weary")

	reply, _ := testComposer(&fakeCompleter{text: "rest up"}, &fakeExtractor{}, &fakeNews{}).
		Compose(context.Background(), state, nil)

	assert.NotContains(t, reply, "(Sentiment:")
}

func TestComposeEmptyEnrichment(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("model offline")}
	news := &fakeNews{err: errors.New("upstream 500")}

	state := englishState(mood.Neutral, "hello there")

	reply, entities := testComposer(&fakeCompleter{text: "hi"}, extractor, news).
		Compose(context.Background(), state, nil)

	assert.Contains(t, reply, "Named Entities: none")
	assert.Contains(t, reply, "Latest News Headlines: none")
	assert.Empty(t, entities)
}

func TestComposeUnknownMoodFallsBackToNeutral(t *testing.T) {
	state := englishState("bogus", "hello")

	reply, _ := testComposer(&fakeCompleter{text: "hi"}, &fakeExtractor{}, &fakeNews{}).
		Compose(context.Background(), state, nil)

	assert.True(t, strings.HasPrefix(reply, mood.Responses[mood.Neutral].Template))
}

func TestComposeDoesNotMutateState(t *testing.T) {
	state := englishState(mood.Happy, "so happy")

	before := len(state.context)

	reply, _ := testComposer(&fakeCompleter{text: "hi"}, &fakeExtractor{}, &fakeNews{}).
		Compose(context.Background(), state, nil)

	require.NotEmpty(t, reply)
	assert.Len(t, state.context, before)
	assert.Equal(t, mood.Happy, state.mood)
}

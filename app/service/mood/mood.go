package mood

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

// Tag is one of the closed set of mood labels used to pick response templates.
type Tag string

const (
	Happy      Tag = "happy"
	Sad        Tag = "sad"
	Angry      Tag = "angry"
	Confused   Tag = "confused"
	Excited    Tag = "excited"
	Grateful   Tag = "grateful"
	Frustrated Tag = "frustrated"
	Curious    Tag = "curious"
	Tired      Tag = "tired"
	Neutral    Tag = "neutral"
)

type keywordGroup struct {
	tag      Tag
	keywords []string
}

// Group order is significant: the first group containing a matching keyword wins.
// Note that "frustrated" belongs to the angry group and there is no frustrated
// group, so the frustrated tag is never produced by classification; its entry in
// Responses is kept for the template table's sake.
var keywordGroups = []keywordGroup{
	{Happy, []string{"happy", "joyful", "excited", "delighted"}},
	{Sad, []string{"sad", "depressed", "unhappy", "heartbroken"}},
	{Angry, []string{"angry", "frustrated", "mad", "irritated"}},
	{Confused, []string{"confused", "baffled", "perplexed", "uncertain"}},
	{Excited, []string{"excited", "thrilled", "enthusiastic", "eager"}},
	{Grateful, []string{"grateful", "thankful", "appreciative", "blessed"}},
	{Curious, []string{"curious", "inquisitive", "interested", "intrigued"}},
	{Tired, []string{"tired", "exhausted", "weary", "fatigued"}},
}

// Classify maps a raw message to a mood tag via case-insensitive substring
// matching against the keyword groups above. Falls back to Neutral.
func Classify(text string) Tag {
	lowered := strings.ToLower(text)

	for _, group := range keywordGroups {
		if pie.Any(group.keywords, func(keyword string) bool {
			return strings.Contains(lowered, keyword)
		}) {
			return group.tag
		}
	}

	return Neutral
}

package mood

// Entry holds the canned reply for a mood: the template that opens the reply
// and the follow-up variants one of which is appended at random.
type Entry struct {
	Template  string
	Followups []string
}

var Responses = map[Tag]Entry{
	Happy: {
		Template: "I'm glad to hear that you're feeling happy!",
		Followups: []string{
			"Keep spreading the positivity! 😄",
			"What's making you feel happy today?",
			"Happiness is contagious. Have a fantastic day! 🌞",
		},
	},
	Sad: {
		Template: "I'm sorry to hear that you're feeling sad. Is there anything I can do to help?",
		Followups: []string{
			"Remember, you're not alone. I'm here to listen.",
			"Take some time for self-care and do something that brings you joy.",
			"Sending you virtual hugs. Stay strong! 🤗",
		},
	},
	Angry: {
		Template: "I understand that you're feeling angry. Take a deep breath and let's work through it together.",
		Followups: []string{
			"Anger is a natural emotion. Let's find a constructive way to channel it.",
			"It's okay to be angry. Let's talk it out and find a solution.",
			"Take a moment to pause and reflect. We'll address the anger together. 😊",
		},
	},
	Confused: {
		Template: "I can sense your confusion. Don't worry, I'm here to provide clarity and answers.",
		Followups: []string{
			"Confusion is an opportunity for growth. Let's explore and find answers together.",
			"What specifically are you confused about? Let's break it down step by step.",
			"Curiosity and confusion often go hand in hand. Embrace the journey of discovery! 🚀",
		},
	},
	Neutral: {
		Template: "It seems like you're in a neutral mood. How can I assist you today?",
		Followups: []string{
			"Feel free to ask me anything you'd like to know.",
			"I'm here to help. What can I do for you?",
			"Let's make the most of this conversation. How can I make your day better? 😊",
		},
	},
	Excited: {
		Template: "Wow! Your excitement is contagious. What's got you so thrilled?",
		Followups: []string{
			"Your enthusiasm is inspiring. Share your excitement with me!",
			"I love seeing your excitement. What's the best part about it?",
			"Embrace the thrill and enjoy the ride! 🎉",
		},
	},
	Grateful: {
		Template: "Expressing gratitude is a beautiful thing. I'm grateful to have this conversation with you.",
		Followups: []string{
			"Gratitude uplifts the spirit. What are you grateful for today?",
			"Gratefulness brings joy. Share something you're thankful for!",
			"Your positive outlook is admirable. Keep the gratitude flowing! 🙏",
		},
	},
	Frustrated: {
		Template: "I can sense your frustration. Let's work together to find a solution.",
		Followups: []string{
			"Frustration can be an opportunity for growth. How can I assist you in overcoming your frustrations?",
			"Let's break down the source of your frustration and brainstorm potential solutions.",
			"Remember, challenges are stepping stones to success! 💪",
		},
	},
	Curious: {
		Template: "Your curiosity is admirable. Feel free to ask me anything you'd like to know.",
		Followups: []string{
			"Curiosity is the key to learning. What knowledge are you seeking today?",
			"I'm here to satisfy your curiosity. Ask me any question!",
			"Keep the curiosity alive. The pursuit of knowledge knows no bounds! 🧠",
		},
	},
	Tired: {
		Template: "I understand that you're feeling tired. Take a break and recharge. I'll be here when you're ready.",
		Followups: []string{
			"Self-care is important. Take some time to relax and rejuvenate.",
			"Rest is crucial for well-being. Make sure to take care of yourself.",
			"Remember, a refreshed mind and body perform at their best! 💤",
		},
	},
}

// Package seed populates the store with the site's built-in content.
package seed

import (
	"haven/internal/models"
	"haven/internal/store"
)

var defaultQuotes = []models.InsertQuote{
	{Content: "It's ok to not be ok", Author: "Unknown"},
	{Content: "Be kind for everyone you meet is fighting a battle", Author: "Unknown"},
	{Content: "Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.", Author: "Unknown"},
	{Content: "Healing isn't linear. Some days will be harder than others.", Author: "Unknown"},
	{Content: "You are stronger than you think and more resilient than you feel.", Author: "Unknown"},
	{Content: "Progress, not perfection.", Author: "Unknown"},
}

var defaultFaqs = []models.InsertFaqQuestion{
	{
		Question: "I'm stressed, what do I do?",
		Answer:   "Take deep breaths or simply take a walk outside. Sometimes squeezing and playing with a fidget can help too. You could also try making homemade crafts or family-friendly activities to help relax your mind.",
	},
	{
		Question: "I feel like I'm a burden on my friends and family. Am I?",
		Answer:   "I'm sorry that you feel this way but you're really not. Some steps you could take to feel better is maybe talk to your family about how you feel. It's normal to feel this way and unfortunately many people feel this way. Consider going into the chat room and talking it out with people that go through similar issues. Everyone in this world is worth something.",
	},
	{
		Question: "If I go to therapy, is something wrong with me?",
		Answer:   "No, going to therapy should be considered a normal thing and many people go through it. It helps you process your emotions and talk out what you go through. If therapy isn't working for you try an alternate therapist or journal your feelings.",
	},
	{
		Question: "If I have self harm thoughts, does that make me a bad person?",
		Answer:   "No, not at all. Sometimes the world can be a hard place to navigate. Take a deep breath and you got this! Try doing other things to take your mind off of it, like taking a walk or biking, or even doing chores!",
	},
	{
		Question: "How do I know if I need to talk to someone?",
		Answer:   "If your thoughts are interfering with your work or being happy, or you have the strong urge to self harm, then you should really talk to someone like a friend or parent. There are suicide crisis lifelines that you can talk to: a famous one being 988.",
	},
	{
		Question: "I'm gay/bisexual or trans, am I less of a person? What if my family doesn't support me?",
		Answer:   "Being gay or trans or anything does NOT mean you are less of a person. It just means you might identify differently than what \"normal\" people do and that's ok. Many people fall under this category. If your family doesn't support you, maybe they have different ideals and beliefs but that doesn't make it ok. Consider talking to them about it.",
	},
	{
		Question: "Does being neurodivergent make me incapable of finding love?",
		Answer:   "Being different does not limit your capacity for love. Many neurodivergent people still can and do find love.",
	},
	{
		Question: "What if I never find anyone to love?",
		Answer:   "The right person could take time to find and comes at the right time. Not having a partner does NOT mean that you can't still feel happy. If you really want to find love, love yourself first and you can find it in your family and friends and the simple things you do! Don't force or pressure yourself to find love.",
	},
	{
		Question: "What does being neurodivergent mean?",
		Answer:   "Someone's brain which works in a fascinating and unique way not considered to be \"normal\" but the secret is, everyone in this world is a little neurodivergent in their own way.",
	},
	{
		Question: "I feel underconfident in my body, I'm too fat/skinny?",
		Answer:   "Everyone's body is different and you don't always have to compare yourself to everyone you see in school, work or social media where most people compare themselves. Everyone is beautiful in their own way.",
	},
}

// Apply inserts the built-in quotes and FAQ entries. Seed quotes skip
// moderation so they appear on the public quotes wall immediately.
func Apply(s *store.Store) {
	for _, q := range defaultQuotes {
		quote := s.CreateQuote(q)
		_, _ = s.ApproveQuote(quote.ID)
	}
	for _, f := range defaultFaqs {
		s.CreateFaqQuestion(f)
	}
}

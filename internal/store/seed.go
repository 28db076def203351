package store

import "github.com/crumble-app/crumble-backend/internal/models"

// SeedBreakupMessages is the built-in message library. The Postgres store
// loads these rows during migration when the table is empty; the memory
// store carries them directly.
var SeedBreakupMessages = []models.BreakupMessage{
	{Type: "emoji", Title: "The Classic Goodbye", Content: "👋 💔 🚶‍♂️", Tone: "classic"},
	{Type: "emoji", Title: "It's Not You, It's Me", Content: "🙅‍♂️ 👉 😔 👈 🙅‍♀️", Tone: "gentle"},
	{Type: "emoji", Title: "Moving On", Content: "🏃‍♂️ 💨 ➡️ 🌈 ✨", Tone: "blunt"},
	{Type: "emoji", Title: "The Lighthearted Exit", Content: "🎭 🎪 👋 😂 🎭", Tone: "humorous"},

	{Type: "call", Title: "The Respectful Goodbye", Content: "I've been doing a lot of thinking about us, and I feel that we've grown apart. I value the time we've spent together, but I think it's best if we end our relationship and move forward separately.", Tone: "classic"},
	{Type: "call", Title: "The Gentle Letdown", Content: "I care about you deeply, which is why this is so difficult to say. I've realized that our relationship isn't fulfilling my needs, and I think we both deserve to find happiness, even if that's not with each other.", Tone: "gentle"},
	{Type: "call", Title: "The Direct Approach", Content: "I need to be straightforward with you. This relationship isn't working for me anymore, and I've decided to end it. I wish you the best, but I need to move on.", Tone: "blunt"},
	{Type: "call", Title: "The Lighthearted Farewell", Content: "So, remember how we always joked that your cat hates me? I think the cat was right all along. In all seriousness though, I think we're better as friends, and I'd like to end our romantic relationship.", Tone: "humorous"},

	{Type: "text", Title: "The Thoughtful Text", Content: "Hi [Name], I've been reflecting on our relationship, and I feel we should talk. I don't think we're compatible in the ways that matter for a long-term relationship. I've valued our time together, but I think it's best if we part ways. I wish you all the best.", Tone: "classic"},
	{Type: "text", Title: "The Caring Goodbye", Content: "[Name], this is really hard for me to say, but I need to be honest with you. I don't feel the same way about our relationship as I once did. You're an amazing person, and I care about you deeply, but I think we need to end things between us. I hope you can understand.", Tone: "gentle"},
	{Type: "text", Title: "The No-Nonsense Text", Content: "[Name], I've decided to end our relationship. We want different things, and I don't see a future for us together. I wish you well, but it's time for both of us to move on.", Tone: "blunt"},
	{Type: "text", Title: "The Lighthearted Breakup", Content: "Hey [Name], remember how we always said honesty is the best policy? Well, honestly, I think we make better friends than partners. Our romantic relationship has run its course, but I still think you're awesome. Let's call it quits on the dating thing, ok?", Tone: "humorous"},
}

// SeedMessageIDs assigns stable ids to the seed list for stores that do not
// generate their own.
func init() {
	for i := range SeedBreakupMessages {
		SeedBreakupMessages[i].ID = i + 1
	}
}

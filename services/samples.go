package services

import (
	"contentpilot/models"
)

// MinScrapedContentChars is the minimum amount of usable text a scrape must
// yield before topic extraction runs against it. Below this the per-platform
// sample block is substituted so the pipeline still produces topics.
const MinScrapedContentChars = 100

// MinStyleSourceChars is the per-source floor during style analysis; thinner
// sections are dropped from the accumulated corpus.
const MinStyleSourceChars = 50

var sampleContent = map[models.Platform]string{
	models.PlatformLinkedIn: `Just wrapped up another quarter of helping teams ship faster. Three lessons that keep proving themselves:

1. Small batches beat big launches. Every time.
2. The best roadmap input comes from support tickets, not strategy decks.
3. Hiring for curiosity outperforms hiring for credentials.

What's the one lesson you keep re-learning? Drop it in the comments.

#productmanagement #leadership #startups

---

Hot take: most "AI strategies" are just automation strategies with better branding. The companies actually winning with AI started by fixing their data plumbing first. Unglamorous, but it works. 247 likes, 58 comments`,

	models.PlatformTwitter: `Shipping beats planning. Every single time.

---

The fastest way to learn a codebase: fix one small bug a day for two weeks. You'll know it better than people who've been there a year. 1.2K likes

---

Unpopular opinion: your side project doesn't need auth, billing, or a landing page. It needs one user who isn't you. 834 likes, 92 retweets`,

	models.PlatformInstagram: `Day 47 of building in public 🚀

This week we crossed 1,000 users and I want to share exactly what moved the needle:

✨ Replying to every single comment
✨ Posting behind-the-scenes failures, not just wins
✨ One clear CTA per post instead of five

The algorithm rewards conversations, not broadcasts. Treat every post like the start of a chat.

What should I break down next? 👇

#buildinpublic #entrepreneurlife #contentcreator #growthtips`,

	models.PlatformTikTok: `POV: you automated your whole morning routine and now you have 2 extra hours ⏰ Here's the exact stack I use (part 3 is the game changer) #productivity #techtok #automation 45.2K likes`,

	models.PlatformYouTube: `I Spent 30 Days Testing Every AI Writing Tool - Here's What Actually Works

In this video I break down the 12 most popular AI writing assistants, run them through identical real-world tasks, and rank them by output quality, speed, and price. Timestamps below.

0:00 Why most AI tool reviews are useless
2:14 The testing methodology
5:30 The surprising winner for long-form
11:45 What I actually use day to day

New deep dives every Tuesday. Subscribe so you don't miss the next one. 89K views, 4.1K likes`,
}

const defaultSampleContent = `Recent posts discuss industry trends, practical productivity advice, and lessons learned from building products. Several posts highlight engagement with followers through questions and polls, with recurring themes around growth, tooling, and team culture. 312 likes across recent posts`

// SampleContentFor returns the canned content block used when a real scrape
// yields too little text to analyze.
func SampleContentFor(platform models.Platform) string {
	if s, ok := sampleContent[platform]; ok {
		return s
	}
	return defaultSampleContent
}

// StylePlaceholderFor returns the short stand-in section used when a style
// analysis source cannot be scraped at all.
func StylePlaceholderFor(platform models.Platform) string {
	return "Sample " + string(platform) + " content for analysis purposes."
}

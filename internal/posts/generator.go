// Package posts renders the seven fixed-slug blog posts from a merged
// insights snapshot. Slugs are a published contract and must never change.
// Generation is pure: writing artifacts belongs to the caller.
package posts

import (
	"fmt"
	"strings"

	"github.com/insightscodes/devlog/internal/insight"
	"github.com/insightscodes/devlog/internal/textclean"
	"github.com/insightscodes/devlog/models"
)

// The seven stable slugs, in generation order.
const (
	SlugHowIUse    = "how-i-use-claude-code"
	SlugWhatWorks  = "what-works"
	SlugGoesWrong  = "where-things-go-wrong"
	SlugPowerTips  = "power-user-tips"
	SlugStory      = "the-story"
	SlugWhatsNext  = "whats-next"
	SlugProjects   = "the-projects"
	wordsPerMinute = 200
)

// Slugs lists every generated slug in its stable order.
func Slugs() []string {
	return []string{SlugHowIUse, SlugWhatWorks, SlugGoesWrong, SlugPowerTips, SlugStory, SlugWhatsNext, SlugProjects}
}

// ReadingTime estimates reading time as ceil(words/200), uniformly across
// every post.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	if words < 1 {
		words = 1
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// Generator renders posts with a configured text cleaner.
type Generator struct {
	cleaner *textclean.Cleaner
}

// NewGenerator returns a Generator using the given cleaner for every
// free-text fragment.
func NewGenerator(cleaner *textclean.Cleaner) *Generator {
	return &Generator{cleaner: cleaner}
}

// Generate renders all seven posts dated today (ISO date). Numeric facts are
// computed once and shared so every post quotes the same figures.
func (g *Generator) Generate(data models.InsightsSnapshot, today string) []models.BlogPost {
	facts := insight.ExtractFacts(data)
	posts := make([]models.BlogPost, 0, 7)
	posts = append(posts, g.howIUsePost(data, facts, today))
	posts = append(posts, g.whatWorksPost(data, facts, today))
	posts = append(posts, g.goesWrongPost(data, facts, today))
	posts = append(posts, g.powerTipsPost(data, facts, today))
	posts = append(posts, g.storyPost(data, facts, today))
	posts = append(posts, g.whatsNextPost(data, facts, today))
	posts = append(posts, g.projectsPost(data, facts, today))
	return posts
}

// Post 1: the definitive "what is it actually like" post.
func (g *Generator) howIUsePost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	narrative := g.cleaner.Clean(data.InteractionStyle.Narrative)
	keyPattern := g.cleaner.Clean(data.InteractionStyle.KeyPattern)

	var b strings.Builder
	fmt.Fprintf(&b, "There's a version of this post that just shows you the numbers: %d sessions, %s commits, %s hours, %d projects. But numbers don't capture what it actually *feels* like to treat an AI as your primary engineering partner for two months straight.\n\n",
		f.Sessions, f.Commits, f.Hours, f.ProjectCount)
	b.WriteString("So here's the honest version.\n\n")
	b.WriteString("## The Working Dynamic\n\n")
	b.WriteString(narrative + "\n\n")
	fmt.Fprintf(&b, ":::callout{type=\"insight\"}\n**The one-line summary:** %s\n:::\n\n", keyPattern)
	b.WriteString("## What This Looks Like Day to Day\n\n")
	b.WriteString("Most sessions follow the same arc: I describe what I want at a high level, Claude decomposes it into steps, and then we iterate. The good sessions feel like pair programming with someone who types infinitely fast. The bad sessions feel like managing a junior developer who keeps misunderstanding the architecture.\n\n")
	b.WriteString("The difference between the two? Specificity. When I say \"add a delete button to the user profile with a confirmation modal that calls the existing deleteUser API endpoint,\" Claude nails it. When I say \"improve the settings page,\" Claude spends 8 minutes reading files and writing plans without producing code.\n\n")
	b.WriteString("## The Projects\n\n")
	for i, area := range data.ProjectAreas.Areas {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "### %s\n:::stat{value=\"%d\" label=\"sessions\"}:::\n\n%s",
			g.cleaner.Anonymize(area.Name), area.SessionCount, g.cleaner.Clean(area.Description))
	}
	b.WriteString("\n\n## The Meta-Pattern\n\n")
	fmt.Fprintf(&b, "After %d sessions, the pattern that matters most isn't any specific technique — it's the *speed of the feedback loop*. The faster you can tell Claude what's wrong and get a correction, the more productive you are. Every workflow optimization I've found boils down to: reduce the time between \"that's wrong\" and \"now it's right.\"\n", f.Sessions)

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugHowIUse,
		Title:         "What It's Actually Like to Use Claude Code for Everything",
		Subtitle:      fmt.Sprintf("%d sessions, %s commits, %s hours — an honest account of treating AI as an engineering partner", f.Sessions, f.Commits, f.Hours),
		Date:          today,
		Category:      "Workflow",
		CategoryColor: "cyan",
		Icon:          "terminal",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights: []string{
			fmt.Sprintf("%d sessions", f.Sessions),
			fmt.Sprintf("%s commits", f.Commits),
			fmt.Sprintf("%s file touches", f.FileTouches),
		},
		KeyTakeaway: "The speed of the feedback loop is everything. Reduce the time between 'that's wrong' and 'now it's right.'",
		Stats: []models.PostStat{
			{Label: "Sessions", Value: fmt.Sprintf("%d", f.Sessions), Color: "green"},
			{Label: "Commits", Value: f.Commits, Color: "amber"},
			{Label: "Hours", Value: f.Hours, Color: "cyan"},
		},
	}
}

// Post 2: the things that actually work well.
func (g *Generator) whatWorksPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	var b strings.Builder
	b.WriteString(g.cleaner.Clean(data.WhatWorks.Intro) + "\n\n")
	b.WriteString("But \"it works well\" isn't very useful advice. What specifically works? What patterns can you steal?\n\n")
	for i, w := range data.WhatWorks.ImpressiveWorkflows {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n%s", w.Title, g.cleaner.Clean(w.Description))
	}
	b.WriteString("\n\n## The Pattern Behind the Patterns\n\n")
	b.WriteString("Every workflow above shares a common structure: **clear scope, autonomous execution, verification gate, ship.**\n\n")
	b.WriteString("The temptation with AI coding tools is to micromanage — describe each function, review each file, approve each change. That's the slow way. The fast way is to describe the *outcome* you want, let Claude figure out the implementation, then verify the result against your actual quality bar (type checks, builds, tests, visual inspection).\n\n")
	b.WriteString(":::callout{type=\"insight\"}\n**The mental model that works:** Think of Claude as a contractor, not an employee. You don't tell a contractor which nails to use — you describe the finished product and inspect the work.\n:::\n\n")
	b.WriteString("## What Doesn't Get Talked About Enough\n\n")
	b.WriteString("The biggest unlock wasn't any single technique. It was building *trust* over time. After watching Claude successfully implement a complex connector across 12 files and 1,352 lines in a single session, I started scoping much more ambitiously. That compounding trust is the real force multiplier.\n\n")
	b.WriteString("The flip side: trust needs to be *calibrated*. Claude will confidently ship code with subtle bugs (more on that in [Where Things Go Wrong](/posts/where-things-go-wrong)). The right balance is high trust on implementation, zero trust on correctness until verified.\n")

	highlights := make([]string, 0, len(data.WhatWorks.ImpressiveWorkflows))
	for _, w := range data.WhatWorks.ImpressiveWorkflows {
		highlights = append(highlights, w.Title)
	}

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugWhatWorks,
		Title:         "The Workflows That Actually Work",
		Subtitle:      "Concrete patterns for shipping features, fixing bugs, and running code reviews with Claude Code",
		Date:          today,
		Category:      "Wins",
		CategoryColor: "green",
		Icon:          "rocket",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights:    highlights,
		KeyTakeaway:   "Describe outcomes, not implementations. Let Claude figure out the how, then verify the what.",
		Stats: []models.PostStat{
			{Label: "Commits", Value: f.Commits, Color: "green"},
			{Label: "Workflows", Value: fmt.Sprintf("%d", len(data.WhatWorks.ImpressiveWorkflows)), Color: "cyan"},
		},
	}
}

// Post 3: where things go wrong, the honest one.
func (g *Generator) goesWrongPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	var b strings.Builder
	b.WriteString("Every post about AI coding tools tells you how great they are. This one tells you where they break.\n\n")
	fmt.Fprintf(&b, "After %d sessions, I've accumulated a detailed friction log. Not theoretical concerns — actual things that went wrong, cost time, and sometimes killed entire sessions. Here's the unfiltered version.\n\n", f.Sessions)
	for _, cat := range data.FrictionAnalysis.Categories {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", cat.Category, g.cleaner.Clean(cat.Description))
		b.WriteString(":::callout{type=\"warning\"}\n**Real examples from my sessions:**\n")
		for _, e := range cat.Examples {
			b.WriteString("- " + g.cleaner.Clean(e) + "\n")
		}
		b.WriteString(":::\n\n")
	}
	b.WriteString("## The Honest Numbers\n\n")
	fmt.Fprintf(&b, ":::stat{value=\"%s\" label=\"buggy code incidents\"}::: :::stat{value=\"%s\" label=\"wrong approaches\"}:::\n\n", f.BuggyCode, f.WrongApproach)
	fmt.Fprintf(&b, "These aren't edge cases. Across %d sessions and %s commits, roughly 1 in 4 sessions hit meaningful friction. The productive output still far outweighs the cost — but pretending friction doesn't exist makes you worse at managing it.\n\n", f.Sessions, f.Commits)
	b.WriteString("## What I've Learned About Managing Friction\n\n")
	b.WriteString("The single biggest improvement: **make Claude verify its own work before declaring done.** Adding `npx tsc --noEmit` after every implementation pass catches the majority of shipped bugs. It's a 5-second check that saves 15-minute debugging cycles.\n\n")
	b.WriteString(":::callout{type=\"insight\"}\n**The counterintuitive lesson:** The solution to buggy AI code isn't more careful prompting — it's faster verification loops. Don't try to prevent bugs; catch them immediately.\n:::\n\n")
	b.WriteString("The second biggest improvement: **interrupt early when Claude starts over-planning.** If Claude is reading files and writing plans after 2 minutes without producing code, it's stuck. Kill it, restate the goal more concretely, and tell it to start implementing immediately.\n")

	highlights := make([]string, 0, len(data.FrictionAnalysis.Categories))
	for _, cat := range data.FrictionAnalysis.Categories {
		highlights = append(highlights, cat.Category)
	}

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugGoesWrong,
		Title:         "Where Things Go Wrong",
		Subtitle:      fmt.Sprintf("An honest friction log from %d sessions — buggy code, planning paralysis, and deployment gotchas", f.Sessions),
		Date:          today,
		Category:      "Lessons",
		CategoryColor: "red",
		Icon:          "alert",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights:    highlights,
		KeyTakeaway:   "The solution to buggy AI code isn't more careful prompting — it's faster verification loops.",
		Stats: []models.PostStat{
			{Label: "Buggy Code", Value: f.BuggyCode, Color: "red"},
			{Label: "Wrong Approach", Value: f.WrongApproach, Color: "amber"},
			{Label: "Sessions", Value: fmt.Sprintf("%d", f.Sessions), Color: "green"},
		},
	}
}

// Post 4: practical tips.
func (g *Generator) powerTipsPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	var b strings.Builder
	b.WriteString("This is the post I wish I'd read before my first session. No theory, no hype — just the specific things that make Claude Code dramatically more effective.\n\n")
	b.WriteString("## The Prompts That Work\n\n")
	for _, p := range data.Suggestions.UsagePatterns {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n:::prompt\n%s\n:::\n\n", p.Title, g.cleaner.Clean(p.Detail), p.CopyablePrompt)
	}
	b.WriteString("## Features You're Probably Not Using\n\n")
	for _, feat := range data.Suggestions.FeaturesToTry {
		fmt.Fprintf(&b, "### %s\n\n*%s*\n\n%s\n\n```\n%s\n```\n\n", feat.Feature, feat.OneLiner, g.cleaner.Clean(feat.WhyForYou), feat.ExampleCode)
	}
	b.WriteString("## CLAUDE.md: The Most Underrated Feature\n\n")
	fmt.Fprintf(&b, "Your `CLAUDE.md` file is loaded at the start of every session. It's the single highest-leverage thing you can configure. Here are the rules I'd add based on %d sessions of friction data:\n\n", f.Sessions)
	for i, a := range data.Suggestions.ClaudeMdAdditions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, ":::callout{type=\"tip\"}\n**Add this rule:** %s\n\n**Why it matters:** %s\n:::", a.Addition, g.cleaner.Clean(a.Why))
	}
	b.WriteString("\n\n## The One-Minute Setup That Prevents Most Problems\n\n")
	b.WriteString("If you only do one thing from this post, do this: add a pre-commit hook that runs your type checker. Most of the bugs Claude ships are type errors that would be caught instantly.\n\n")
	b.WriteString("```json\n// .claude/settings.json\n{\n  \"hooks\": {\n    \"preCommit\": {\n      \"command\": \"npx tsc --noEmit && npm run build\"\n    }\n  }\n}\n```\n\n")
	fmt.Fprintf(&b, "This single change would have prevented the majority of my %s buggy code incidents.\n", f.BuggyCode)

	highlights := make([]string, 0, len(data.Suggestions.FeaturesToTry)+2)
	for _, feat := range data.Suggestions.FeaturesToTry {
		highlights = append(highlights, feat.Feature)
	}
	highlights = append(highlights, "CLAUDE.md rules", "Copyable prompts")

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugPowerTips,
		Title:         "Claude Code Power User Guide",
		Subtitle:      fmt.Sprintf("Battle-tested prompts, CLAUDE.md rules, and workflow tricks from %d sessions", f.Sessions),
		Date:          today,
		Category:      "Tips",
		CategoryColor: "green",
		Icon:          "zap",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights:    highlights,
		KeyTakeaway:   "Add a CLAUDE.md rule: 'start coding immediately, don't over-plan' and a pre-commit hook that runs tsc. These two changes prevent most friction.",
	}
}

// Post 5: the fun story.
func (g *Generator) storyPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	headline := g.cleaner.Clean(data.FunEnding.Headline)

	var b strings.Builder
	fmt.Fprintf(&b, ":::callout{type=\"story\"}\n%s\n:::\n\n", headline)
	b.WriteString(g.cleaner.Clean(data.FunEnding.Detail) + "\n\n")
	b.WriteString("## Why This Is Actually Revealing\n\n")
	b.WriteString("This isn't just a funny anecdote. It captures the central tension of working with AI coding tools at scale: **the same capability that makes them incredibly productive also makes them incredibly frustrating.**\n\n")
	b.WriteString("Claude can implement a complete payment integration across server and client code in a single session. It can also burn 8 minutes reading files it's already read, writing a plan nobody asked for, without producing a single line of code. Same model, same session, sometimes minutes apart.\n\n")
	fmt.Fprintf(&b, "## The Patterns That Emerge After %d Sessions\n\n", f.Sessions)
	fmt.Fprintf(&b, "When you use Claude Code intensely across %d projects for %s+ hours, the patterns — both productive and frustrating — become impossible to ignore:\n\n", f.ProjectCount, f.Hours)
	b.WriteString("- **Productivity follows a power law.** About 20% of my sessions produce 80% of the shipped code. The best sessions are 10x more productive than average. The worst sessions produce negative value (bugs I have to fix later).\n\n")
	b.WriteString("- **Context is everything.** Claude performs dramatically better when it has: a clear goal, specific file paths, known constraints, and a \"just do it\" instruction. It performs worst with vague requests, open-ended exploration tasks, and multi-objective sessions.\n\n")
	b.WriteString("- **The interruption instinct is learned.** I used to wait patiently while Claude explored. Now I interrupt within 2 minutes if I don't see code being written. This single behavioral change improved my success rate more than any prompting technique.\n\n")
	fmt.Fprintf(&b, "## Lessons From %s+ Hours\n\n", f.Hours)
	b.WriteString("- **Trust but verify** — Let Claude run freely, but always validate against your build pipeline\n")
	b.WriteString("- **Interrupt early** — When Claude starts over-planning, cut it off and redirect\n")
	b.WriteString("- **Stack tasks intentionally** — Chaining implement → review → fix → deploy works great; stacking 5 unrelated tasks doesn't\n")
	b.WriteString("- **Front-load constraints** — Tell Claude what NOT to do upfront\n\n")
	b.WriteString(":::callout{type=\"insight\"}\n**The meta-insight:** The best way to get better at using Claude Code is to use it more, document what happens, and share what you learn. Which is exactly what this site does.\n:::\n")

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugStory,
		Title:         fmt.Sprintf("The Best Story From %s+ Hours of AI Coding", f.Hours),
		Subtitle:      headline,
		Date:          today,
		Category:      "Story",
		CategoryColor: "cyan",
		Icon:          "moon",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights: []string{
			fmt.Sprintf("%d sessions analyzed", f.Sessions),
			fmt.Sprintf("%s+ hours", f.Hours),
			"Real patterns",
		},
		KeyTakeaway: "The interruption instinct is learned. Don't wait patiently — interrupt within 2 minutes if you don't see code being written.",
	}
}

// Post 6: the forward-looking post.
func (g *Generator) whatsNextPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	var b strings.Builder
	b.WriteString(g.cleaner.Clean(data.OnTheHorizon.Intro) + "\n\n")
	b.WriteString("The workflows I use today would have seemed impossible a year ago. Here's what I think becomes possible in the next year — based not on speculation, but on patterns I'm already seeing work at small scale.\n\n")
	for _, o := range data.OnTheHorizon.Opportunities {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n### How to Start Experimenting\n\n%s\n\n:::prompt\n%s\n:::\n\n",
			o.Title, g.cleaner.Clean(o.WhatsPossible), g.cleaner.Clean(o.HowToTry), o.CopyablePrompt)
	}
	b.WriteString("## The Bigger Picture\n\n")
	b.WriteString("Right now, most people use Claude Code for single-task, single-session work: \"fix this bug,\" \"add this feature,\" \"write this test.\" That's like using a spreadsheet as a calculator — technically correct but dramatically underutilizing the tool.\n\n")
	b.WriteString("The future is **compound workflows**: chains of autonomous agents that handle entire development lifecycles — from planning through implementation through testing through deployment through monitoring. Not in theory. I've already seen pieces of this work.\n\n")
	b.WriteString(":::callout{type=\"insight\"}\n**The trajectory:** We're moving from \"AI writes code I review\" to \"AI runs a development pipeline I occasionally steer.\" The timeline for this transition is shorter than most people think.\n:::\n\n")
	b.WriteString("The constraint isn't model capability — it's context management. The models can already do the work. The challenge is giving them enough context to do it reliably without human intervention at every step. Solving that is what turns AI coding assistants into AI development teams.\n")

	highlights := make([]string, 0, len(data.OnTheHorizon.Opportunities))
	for _, o := range data.OnTheHorizon.Opportunities {
		highlights = append(highlights, o.Title)
	}

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugWhatsNext,
		Title:         "Where AI Coding Is Actually Heading",
		Subtitle:      "Parallel agents, self-healing deploys, and autonomous development pipelines — based on patterns already working",
		Date:          today,
		Category:      "Future",
		CategoryColor: "cyan",
		Icon:          "telescope",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights:    highlights,
		KeyTakeaway:   "The constraint isn't model capability — it's context management. Solving that turns AI assistants into AI development teams.",
	}
}

// Post 7: the projects deep dive.
func (g *Generator) projectsPost(data models.InsightsSnapshot, f insight.Facts, today string) models.BlogPost {
	var b strings.Builder
	fmt.Fprintf(&b, "Over %s+ hours, I used Claude Code across %d distinct project areas. Not toy projects or tutorials — production systems with real users, real integrations, and real deployment pipelines.\n\n", f.Hours, f.ProjectCount)
	b.WriteString("Here's what Claude Code handles well, what it struggles with, and what surprised me about each.\n\n")
	for i, area := range data.ProjectAreas.Areas {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n:::stat{value=\"%d\" label=\"sessions\"}:::\n\n%s\n\n%s",
			g.cleaner.Anonymize(area.Name), area.SessionCount, g.cleaner.Clean(area.Description), areaCallout(area))
	}
	b.WriteString("\n\n## Cross-Project Patterns\n\n")
	fmt.Fprintf(&b, "After working with Claude across all %d areas, a few things became clear:\n\n", f.ProjectCount)
	fmt.Fprintf(&b, "- **TypeScript is Claude's sweet spot.** With %s file touches across the period, TypeScript/React projects had the highest success rate by far. The type system acts as a guardrail that catches Claude's mistakes early.\n\n", f.FileTouches)
	b.WriteString("- **Infrastructure work needs more hand-holding.** Terraform, database migrations, and deployment configs require more explicit instructions. Claude tends to make assumptions about infrastructure that are wrong.\n\n")
	b.WriteString("- **Integrations are surprisingly strong.** Payment systems, calendar APIs, OAuth flows, MCP servers — Claude handled these well because the APIs are well-documented and the patterns are clear.\n")

	highlights := make([]string, 0, len(data.ProjectAreas.Areas))
	for _, area := range data.ProjectAreas.Areas {
		name := g.cleaner.Anonymize(area.Name)
		if fields := strings.Fields(name); len(fields) > 0 {
			name = fields[0]
		}
		highlights = append(highlights, fmt.Sprintf("%s (%d)", name, area.SessionCount))
	}

	content := strings.TrimSpace(b.String())
	return models.BlogPost{
		Slug:          SlugProjects,
		Title:         fmt.Sprintf("%d Projects, %d Sessions: What I Built", f.ProjectCount, f.Sessions),
		Subtitle:      "From SaaS platforms to infrastructure to marketing sites — what Claude handles well and where it struggles",
		Date:          today,
		Category:      "Projects",
		CategoryColor: "amber",
		Icon:          "folder",
		ReadingTime:   ReadingTime(content),
		Content:       content,
		Highlights:    highlights,
		KeyTakeaway:   "TypeScript is Claude's sweet spot. The type system acts as a guardrail that catches mistakes early. Infrastructure work needs more hand-holding.",
		Stats: []models.PostStat{
			{Label: "Projects", Value: fmt.Sprintf("%d", f.ProjectCount), Color: "amber"},
			{Label: "Sessions", Value: fmt.Sprintf("%d", f.Sessions), Color: "green"},
			{Label: "File Touches", Value: f.FileTouches, Color: "cyan"},
		},
	}
}

// areaCallout picks the per-project closing callout by session volume.
func areaCallout(area models.ProjectArea) string {
	switch {
	case area.SessionCount > 30:
		return fmt.Sprintf(":::callout{type=\"insight\"}\nWith %d sessions, this was heavy enough to reveal Claude's real strengths and weaknesses in this domain. The patterns that emerged here informed many of the tips in the [Power User Guide](/posts/power-user-tips).\n:::", area.SessionCount)
	case area.SessionCount > 15:
		return fmt.Sprintf(":::callout{type=\"tip\"}\nAt %d sessions, the dominant pattern was rapid iteration — fixing issues as they surfaced rather than trying to prevent them upfront.\n:::", area.SessionCount)
	default:
		return fmt.Sprintf(":::callout{type=\"tip\"}\nEven with only %d sessions, Claude handled the full scope — from initial setup through production deployment.\n:::", area.SessionCount)
	}
}

package models

// InsightsSnapshot is the root input document: one point-in-time structured
// export of usage analytics. Every list may be empty; free-text fields may
// carry embedded numeric facts ("256 commits") that downstream code extracts
// best-effort.
type InsightsSnapshot struct {
	ProjectAreas     ProjectAreas     `json:"project_areas" validate:"required"`
	InteractionStyle InteractionStyle `json:"interaction_style"`
	WhatWorks        WhatWorks        `json:"what_works"`
	FrictionAnalysis FrictionAnalysis `json:"friction_analysis"`
	Suggestions      Suggestions      `json:"suggestions"`
	OnTheHorizon     OnTheHorizon     `json:"on_the_horizon"`
	FunEnding        FunEnding        `json:"fun_ending"`
	AtAGlance        AtAGlance        `json:"at_a_glance"`
}

// ProjectAreas groups the per-project usage breakdown.
type ProjectAreas struct {
	Areas []ProjectArea `json:"areas" validate:"dive"`
}

// ProjectArea is one project with its session count and narrative.
type ProjectArea struct {
	Name         string `json:"name" validate:"required"`
	SessionCount int    `json:"session_count" validate:"min=0"`
	Description  string `json:"description"`
}

// InteractionStyle carries the long-form narrative and the one-line pattern.
type InteractionStyle struct {
	Narrative  string `json:"narrative"`
	KeyPattern string `json:"key_pattern"`
}

// WhatWorks lists the workflows that proved effective.
type WhatWorks struct {
	Intro               string     `json:"intro"`
	ImpressiveWorkflows []Workflow `json:"impressive_workflows"`
}

// Workflow is a titled workflow description. Title is the natural key used
// for cross-run deduplication.
type Workflow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FrictionAnalysis groups friction categories with concrete examples.
type FrictionAnalysis struct {
	Intro      string             `json:"intro"`
	Categories []FrictionCategory `json:"categories"`
}

// FrictionCategory is keyed by Category (case-insensitive) when merging runs.
type FrictionCategory struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Suggestions carries the three suggestion sub-lists.
type Suggestions struct {
	ClaudeMdAdditions []ClaudeMdAddition `json:"claude_md_additions"`
	FeaturesToTry     []Feature          `json:"features_to_try"`
	UsagePatterns     []UsagePattern     `json:"usage_patterns"`
}

// ClaudeMdAddition is one suggested CLAUDE.md rule with its rationale.
type ClaudeMdAddition struct {
	Addition string `json:"addition"`
	Why      string `json:"why"`
}

// Feature is one product feature worth trying.
type Feature struct {
	Feature     string `json:"feature"`
	OneLiner    string `json:"one_liner"`
	WhyForYou   string `json:"why_for_you"`
	ExampleCode string `json:"example_code"`
}

// UsagePattern is one prompting pattern with a copyable prompt.
type UsagePattern struct {
	Title          string `json:"title"`
	Suggestion     string `json:"suggestion"`
	Detail         string `json:"detail"`
	CopyablePrompt string `json:"copyable_prompt"`
}

// OnTheHorizon lists forward-looking opportunities.
type OnTheHorizon struct {
	Intro         string        `json:"intro"`
	Opportunities []Opportunity `json:"opportunities"`
}

// Opportunity is one not-yet-tried workflow idea.
type Opportunity struct {
	Title          string `json:"title"`
	WhatsPossible  string `json:"whats_possible"`
	HowToTry       string `json:"how_to_try"`
	CopyablePrompt string `json:"copyable_prompt"`
}

// FunEnding is the closing anecdote. When merging, the run with the longest
// Detail wins outright.
type FunEnding struct {
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
}

// AtAGlance is the short summary block. Scalar: latest run wins.
type AtAGlance struct {
	WhatsWorking       string `json:"whats_working"`
	WhatsHindering     string `json:"whats_hindering"`
	QuickWins          string `json:"quick_wins"`
	AmbitiousWorkflows string `json:"ambitious_workflows"`
}

// TotalSessions sums session counts across all project areas.
func (s InsightsSnapshot) TotalSessions() int {
	total := 0
	for _, a := range s.ProjectAreas.Areas {
		total += a.SessionCount
	}
	return total
}

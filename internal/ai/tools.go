package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Tool names as recorded in generation history.
const (
	ToolMarketing  = "MARKETING"
	ToolBoosting   = "BOOSTING"
	ToolSpy        = "SPY"
	ToolParaphrase = "PARAPHRASE"
)

type MarketingInput struct {
	BusinessName   string `json:"business_name" binding:"required"`
	ProductService string `json:"product_service" binding:"required"`
	Type           string `json:"type"`
	Budget         string `json:"budget" binding:"required"`
}

// MarketingCampaign asks the model for a full campaign strategy in
// markdown.
func (s *Service) MarketingCampaign(ctx context.Context, in MarketingInput) (string, error) {
	prompt := fmt.Sprintf(`Generate a comprehensive marketing campaign strategy for:
Business Name: %s
Product/Service: %s
Type: %s
Monthly Budget: $%s

Include:
1. Campaign Objective
2. Target Audience
3. Key Messages
4. Online Strategy
5. Offline Strategy (if applicable)
6. Budget Allocation
7. Expected Results

Keep the tone professional yet actionable. Output in clear Markdown format.`,
		in.BusinessName, in.ProductService, in.Type, in.Budget)

	return s.client.GenerateContent(ctx, prompt)
}

type BoostingInput struct {
	Business  string `json:"business" binding:"required"`
	Budget    string `json:"budget" binding:"required"`
	Days      string `json:"days" binding:"required"`
	PostType  string `json:"post_type"`
	Caption   string `json:"caption"`
	ABTesting bool   `json:"ab_testing"`
}

type BoostingVariant struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type BoostingResult struct {
	DailyBudget     string            `json:"daily_budget"`
	Objective       string            `json:"objective"`
	Audience        string            `json:"audience"`
	Placements      string            `json:"placements"`
	CaptionAnalysis string            `json:"caption_analysis"`
	Variants        []BoostingVariant `json:"variants"`
}

// BoostingPlan derives a boosted-post plan locally; no model call.
func BoostingPlan(in BoostingInput) (*BoostingResult, error) {
	budget, err := strconv.ParseFloat(in.Budget, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid budget: %w", err)
	}
	days, err := strconv.Atoi(in.Days)
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("invalid day count")
	}

	objective := "Engagement / Messages"
	if in.PostType == "video" {
		objective = "Video Views / Engagement"
	}

	captionAnalysis := "Your caption is short. Consider adding more value proposition and a strong CTA."
	if len(in.Caption) > 50 {
		captionAnalysis = "Your caption length is good. Ensure you have a clear Call To Action (CTA)."
	}

	result := &BoostingResult{
		DailyBudget:     strconv.FormatFloat(budget/float64(days), 'f', 2, 64),
		Objective:       objective,
		Audience:        fmt.Sprintf("Location: Cambodia (Phnom Penh priority)\nAge: 18-40\nInterests: %s, Shopping, Lifestyle", in.Business),
		Placements:      "Facebook Feed, Instagram Feed, Reels (Automatic Placements)",
		CaptionAnalysis: captionAnalysis,
		Variants:        []BoostingVariant{},
	}

	if in.ABTesting {
		result.Variants = []BoostingVariant{
			{Name: "Variant A", Desc: `Focus on "Benefit" (Save time/money)`},
			{Name: "Variant B", Desc: `Focus on "Fear of Missing Out" (Limited Offer)`},
		}
	}

	return result, nil
}

type SpyOption struct {
	Label       string `json:"label"`
	Spend       string `json:"spend"`
	Days        string `json:"days"`
	Objective   string `json:"objective"`
	Audience    string `json:"audience"`
	Placements  string `json:"placements"`
	FunnelStage string `json:"funnel_stage"`
	Explanation string `json:"explanation"`
}

type SpyResult struct {
	URL     string      `json:"url"`
	Options []SpyOption `json:"options"`
}

// SpyAnalysis produces a tiered spend estimate for a competitor's post.
// The three tiers are fixed; only the analyzed URL varies.
func SpyAnalysis(postURL string) *SpyResult {
	return &SpyResult{
		URL: postURL,
		Options: []SpyOption{
			{
				Label:       "Option A (Cold Audience)",
				Spend:       "$50 - $200",
				Days:        "3 - 7 days",
				Objective:   "Engagement / Awareness",
				Audience:    "Age 25-40, Broad Interest, Cambodia",
				Placements:  "Feeds, Stories",
				FunnelStage: "Top of Funnel (Awareness)",
				Explanation: "This post seems designed to grab attention quickly. The caption is short and the visual is striking.",
			},
			{
				Label:       "Option B (Warm Audience)",
				Spend:       "$100 - $400",
				Days:        "5 - 10 days",
				Objective:   "Messages / Leads",
				Audience:    "Age 30-45, Specific Interests (e.g. Real Estate/Tech), Phnom Penh",
				Placements:  "Feeds, Messenger",
				FunnelStage: "Middle of Funnel (Consideration)",
				Explanation: "The content includes detailed information and a strong CTA, suggesting a push for conversation.",
			},
			{
				Label:       "Option C (Retargeting)",
				Spend:       "$200 - $800",
				Days:        "7 - 14 days",
				Objective:   "Conversions / Sales",
				Audience:    "Previous Engagers, Website Visitors",
				Placements:  "Feeds, Stories, Reels",
				FunnelStage: "Bottom of Funnel (Conversion)",
				Explanation: "High urgency language suggests retargeting people who already know the brand.",
			},
		},
	}
}

type ParaphraseInput struct {
	Content       string `json:"content" binding:"required"`
	ReferenceLink string `json:"reference_link"`
	Tone          string `json:"tone"`
	Language      string `json:"language"`
	NumVariations int    `json:"num_variations"`
}

const (
	tweetSeparator   = "|||"
	maxTweetVariants = 5
	fallbackProvider = "Simulation (Fallback)"
	geminiProvider   = "Gemini"
)

// TweetVariations rewrites content into short social post variants. When
// the model call fails the variants are synthesized locally and the
// provider field marks the result as simulated, as the caller still
// expects output.
func (s *Service) TweetVariations(ctx context.Context, in ParaphraseInput) ([]string, string) {
	count := in.NumVariations
	if count <= 0 {
		count = 3
	}
	if count > maxTweetVariants {
		count = maxTweetVariants
	}

	system := fmt.Sprintf(`You are a social media copywriter.

INSTRUCTIONS:
1. Rewrite the user's content into %d distinct tweets.
2. Tone: %s (Make it powerful).
3. Language: %s.
4. Keep tweets under 280 chars.
5. Separate tweets with "%s" only. No numbering.`,
		count, in.Tone, in.Language, tweetSeparator)

	prompt := fmt.Sprintf("CONTENT: %s\n\nCONTEXT: %s", in.Content, in.ReferenceLink)

	text, err := s.client.GenerateWithSystem(ctx, system, prompt, 0.9)
	if err == nil {
		var tweets []string
		for _, t := range strings.Split(text, tweetSeparator) {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tweets = append(tweets, trimmed)
			}
		}
		if len(tweets) > 0 {
			return tweets, geminiProvider
		}
	}

	return offlineVariations(in.Content, count), fallbackProvider
}

var offlinePrefixes = []string{"📢 ", "🔥 ", "⚡ ", "💡 ", "🚀 "}

func offlineVariations(content string, count int) []string {
	short := content
	if len(short) > 150 {
		short = short[:150] + "..."
	}

	variations := make([]string, 0, count)
	for i := 0; i < count; i++ {
		prefix := offlinePrefixes[i%len(offlinePrefixes)]
		variations = append(variations, prefix+short)
	}
	return variations
}

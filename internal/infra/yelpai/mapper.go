package infra_yelpai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhinav1singhal/social-dining/internal/model"
)

type chatResponse struct {
	Response struct {
		Text string `json:"text"`
	} `json:"response"`
	Entities []entity `json:"entities"`
}

type entity struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Rating         float64        `json:"rating"`
	Price          string         `json:"price"`
	Categories     []category     `json:"categories"`
	Summaries      summaries      `json:"summaries"`
	ContextualInfo contextualInfo `json:"contextual_info"`
}

type category struct {
	Title string `json:"title"`
}

type summaries struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
}

type contextualInfo struct {
	Photos []photo `json:"photos"`
}

type photo struct {
	OriginalURL string `json:"original_url"`
}

const defaultReasoning = "Recommended based on your preferences."

func mapRecommendations(resp chatResponse) []model.Recommendation {
	if len(resp.Entities) == 0 {
		return nil
	}

	businesses := resp.Entities[0].Businesses
	recs := make([]model.Recommendation, 0, len(businesses))
	for _, biz := range businesses {
		recs = append(recs, mapBusiness(biz))
	}
	return recs
}

func mapBusiness(biz business) model.Recommendation {
	categories := make([]string, 0, len(biz.Categories))
	for _, cat := range biz.Categories {
		if cat.Title != "" {
			categories = append(categories, cat.Title)
		}
	}

	reasoning := biz.Summaries.Short
	if reasoning == "" {
		reasoning = biz.Summaries.Medium
	}
	if reasoning == "" {
		reasoning = defaultReasoning
	}

	var imageURL *string
	if len(biz.ContextualInfo.Photos) > 0 && biz.ContextualInfo.Photos[0].OriginalURL != "" {
		url := biz.ContextualInfo.Photos[0].OriginalURL
		imageURL = &url
	}

	price := biz.Price
	if price == "" {
		price = "$$"
	}

	name := biz.Name
	if name == "" {
		name = "Unknown Restaurant"
	}

	rec := model.Recommendation{
		BusinessID:  biz.ID,
		Name:        name,
		ImageURL:    imageURL,
		Rating:      biz.Rating,
		Price:       price,
		Categories:  categories,
		AIReasoning: reasoning,
	}
	rec.WhyPicked, rec.TradeOffs = splitReasoning(reasoning)
	return rec
}

// The generation prompt asks the model to prefix its summary with
// "Why Picked:" and "Trade-offs:". When it obliged, pull those apart;
// the raw summary stays as the reasoning either way.
func splitReasoning(reasoning string) (*string, []string) {
	const (
		whyMarker   = "Why Picked:"
		tradeMarker = "Trade-offs:"
	)

	whyIdx := strings.Index(reasoning, whyMarker)
	if whyIdx < 0 {
		return nil, nil
	}

	rest := reasoning[whyIdx+len(whyMarker):]
	var tradeOffs []string
	if tradeIdx := strings.Index(rest, tradeMarker); tradeIdx >= 0 {
		for _, part := range strings.Split(rest[tradeIdx+len(tradeMarker):], ";") {
			if part = strings.TrimSpace(strings.TrimSuffix(part, ".")); part != "" {
				tradeOffs = append(tradeOffs, part)
			}
		}
		rest = rest[:tradeIdx]
	}

	why := strings.TrimSpace(rest)
	if why == "" {
		return nil, tradeOffs
	}
	return &why, tradeOffs
}

type conflictDTO struct {
	HasConflicts bool     `json:"has_conflicts"`
	Conflicts    []string `json:"conflicts"`
	Resolution   string   `json:"resolution"`
}

// parseConflictAnalysis expects the raw JSON object the prompt asked
// for, tolerating markdown fences the model sometimes wraps it in.
func parseConflictAnalysis(text string) (model.ConflictAnalysis, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// The model may pad the object with prose.
	if start := strings.Index(cleaned, "{"); start >= 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	var dto conflictDTO
	if err := json.Unmarshal([]byte(cleaned), &dto); err != nil {
		return model.ConflictAnalysis{}, fmt.Errorf("unparsable conflict analysis: %w", err)
	}

	return model.ConflictAnalysis{
		HasConflicts: dto.HasConflicts,
		Conflicts:    dto.Conflicts,
		Resolution:   dto.Resolution,
	}, nil
}

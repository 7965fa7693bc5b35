package infra_yelpai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhinav1singhal/social-dining/internal/config"
	"github.com/abhinav1singhal/social-dining/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type YelpAIUnitSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *YelpAIUnitSuite) BeforeEach(t provider.T) {
	s.ctx = context.Background()
}

func driverFor(serverURL string, opts ...DriverOption) *Driver {
	return New(config.YelpAI{APIKey: "test-key", Endpoint: serverURL}, opts...)
}

const sampleChatResponse = `{
	"response": {"text": "Here are three options."},
	"entities": [{
		"businesses": [
			{
				"id": "biz-a",
				"name": "Blue Plate",
				"rating": 4.5,
				"price": "$$",
				"categories": [{"title": "American"}, {"title": "Brunch"}],
				"summaries": {"short": "Why Picked: Fits everyone's budget. Trade-offs: 20 min drive; loud on weekends."},
				"contextual_info": {"photos": [{"original_url": "https://img.example/a.jpg"}]}
			},
			{
				"id": "biz-b",
				"name": "",
				"rating": 4.0,
				"price": "",
				"categories": [],
				"summaries": {"short": "", "medium": "A solid fallback."},
				"contextual_info": {"photos": []}
			}
		]
	}]
}`

func (s *YelpAIUnitSuite) TestGenerateRecommendations(t provider.T) {
	t.Run("Should map businesses from the chat response", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req struct {
				Query string `json:"query"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "find dinner", req.Query)

			w.Write([]byte(sampleChatResponse))
		}))
		defer server.Close()

		recs, err := driverFor(server.URL).GenerateRecommendations(s.ctx, "find dinner")

		assert.NoError(t, err)
		assert.Len(t, recs, 2)

		assert.Equal(t, "biz-a", recs[0].BusinessID)
		assert.Equal(t, "Blue Plate", recs[0].Name)
		assert.Equal(t, []string{"American", "Brunch"}, recs[0].Categories)
		assert.NotNil(t, recs[0].ImageURL)
		assert.Equal(t, "https://img.example/a.jpg", *recs[0].ImageURL)
		assert.NotNil(t, recs[0].WhyPicked)
		assert.Equal(t, "Fits everyone's budget.", *recs[0].WhyPicked)
		assert.Equal(t, []string{"20 min drive", "loud on weekends"}, recs[0].TradeOffs)

		assert.Equal(t, "Unknown Restaurant", recs[1].Name)
		assert.Equal(t, "$$", recs[1].Price)
		assert.Equal(t, "A solid fallback.", recs[1].AIReasoning)
		assert.Nil(t, recs[1].ImageURL)
		assert.Nil(t, recs[1].WhyPicked)
	})

	t.Run("Should return nothing when the response has no entities", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": {"text": "No results."}, "entities": []}`))
		}))
		defer server.Close()

		recs, err := driverFor(server.URL).GenerateRecommendations(s.ctx, "find dinner")

		assert.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("Should fail without an API key", func(t provider.T) {
		driver := New(config.YelpAI{Endpoint: "https://api.yelp.com/ai/chat/v2"})

		_, err := driver.GenerateRecommendations(s.ctx, "find dinner")

		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("Should surface non-200 answers", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := driverFor(server.URL).GenerateRecommendations(s.ctx, "find dinner")

		assert.Error(t, err)
	})
}

func (s *YelpAIUnitSuite) TestAnalyzeConflicts(t provider.T) {
	participants := []model.Participant{
		{Name: "Sarah", Profile: model.Profile{DietaryRestrictions: "vegan"}},
		{Name: "Mike", Profile: model.Profile{CuisinePreferences: "steakhouse"}},
	}

	t.Run("Should parse the returned JSON object", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": {"text": "{\"has_conflicts\": true, \"conflicts\": [\"Vegan vs Steakhouse\"], \"resolution\": \"Pick a place with both.\"}"}}`))
		}))
		defer server.Close()

		analysis, err := driverFor(server.URL).AnalyzeConflicts(s.ctx, participants)

		assert.NoError(t, err)
		assert.True(t, analysis.HasConflicts)
		assert.Equal(t, []string{"Vegan vs Steakhouse"}, analysis.Conflicts)
		assert.Equal(t, "Pick a place with both.", analysis.Resolution)
	})

	t.Run("Should tolerate markdown fences around the object", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": {"text": "` + "```json\\n{\\\"has_conflicts\\\": false, \\\"conflicts\\\": [], \\\"resolution\\\": \\\"All good.\\\"}\\n```" + `"}}`))
		}))
		defer server.Close()

		analysis, err := driverFor(server.URL).AnalyzeConflicts(s.ctx, participants)

		assert.NoError(t, err)
		assert.False(t, analysis.HasConflicts)
		assert.Equal(t, "All good.", analysis.Resolution)
	})

	t.Run("Should skip the call when nobody stated preferences", func(t provider.T) {
		driver := New(config.YelpAI{APIKey: "test-key", Endpoint: "http://unreachable.invalid"})

		analysis, err := driver.AnalyzeConflicts(s.ctx, []model.Participant{{Name: "Sarah"}})

		assert.NoError(t, err)
		assert.False(t, analysis.HasConflicts)
		assert.Equal(t, "No specific preferences provided.", analysis.Resolution)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(YelpAIUnitSuite))
}

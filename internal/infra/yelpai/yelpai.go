package infra_yelpai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/config"
	"github.com/abhinav1singhal/social-dining/internal/model"
)

var ErrNoAPIKey = errors.New("no API key provided")

type Driver struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type DriverOption func(*Driver)

func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

func WithHTTPClient(client *http.Client) DriverOption {
	return func(d *Driver) {
		d.httpClient = client
	}
}

func New(cfg config.YelpAI, opts ...DriverOption) *Driver {
	d := &Driver{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type chatRequest struct {
	Query string `json:"query"`
}

func (d *Driver) chat(ctx context.Context, query string) (chatResponse, error) {
	if d.apiKey == "" {
		return chatResponse{}, ErrNoAPIKey
	}

	body, err := json.Marshal(chatRequest{Query: query})
	if err != nil {
		return chatResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return chatResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return chatResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return chatResponse{}, fmt.Errorf("yelp ai request failed: %s - %s", resp.Status, string(respBody))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return chatResponse{}, err
	}
	return decoded, nil
}

func (d *Driver) GenerateRecommendations(ctx context.Context, query string) ([]model.Recommendation, error) {
	resp, err := d.chat(ctx, query)
	if err != nil {
		return nil, err
	}

	recs := mapRecommendations(resp)
	if len(recs) == 0 {
		d.logger.Warn("no businesses in yelp ai response")
	}
	return recs, nil
}

func (d *Driver) AnalyzeConflicts(ctx context.Context, participants []model.Participant) (model.ConflictAnalysis, error) {
	prefs := make([]string, 0, len(participants))
	for _, p := range participants {
		var details []string
		if p.Profile.DietaryRestrictions != "" {
			details = append(details, "Diet: "+p.Profile.DietaryRestrictions)
		}
		if p.Profile.CuisinePreferences != "" {
			details = append(details, "Cuisine: "+p.Profile.CuisinePreferences)
		}
		if len(details) > 0 {
			prefs = append(prefs, fmt.Sprintf("%s (%s)", p.Name, strings.Join(details, ", ")))
		}
	}
	if len(prefs) == 0 {
		return model.ConflictAnalysis{Resolution: "No specific preferences provided."}, nil
	}

	prompt := fmt.Sprintf(
		"Analyze these dining preferences for a group: %s. "+
			"Identify any major conflicts (e.g. Vegan vs Steakhouse, Budget mismatch). "+
			"Return a raw JSON object (no markdown) with keys: "+
			"'has_conflicts' (bool), 'conflicts' (list of strings), 'resolution' (string suggestion). "+
			"If no conflicts, set has_conflicts to false.",
		strings.Join(prefs, "; "),
	)

	resp, err := d.chat(ctx, prompt)
	if err != nil {
		return model.ConflictAnalysis{}, err
	}
	return parseConflictAnalysis(resp.Response.Text)
}

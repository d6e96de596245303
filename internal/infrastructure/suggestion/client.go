// Package suggestion provides the client for the external recipe search API.
// It implements the SuggestionService interface over plain HTTP with a
// bounded timeout.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	apperrors "github.com/hauqxngo/NomNom/pkg/errors"
	"go.uber.org/zap"
)

// Client implements the SuggestionService interface against a
// Spoonacular-compatible API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new suggestion client
func NewClient(cfg *config.SuggestionConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("suggestion-client"),
	}
}

// Upstream API structures
type randomRecipesResponse struct {
	Recipes []randomRecipe `json:"recipes"`
}

type randomRecipe struct {
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl"`
}

// Suggest fetches a single random recipe matching the tags. An empty result
// list from upstream is a recoverable not-found condition, never a panic.
func (c *Client) Suggest(ctx context.Context, tags string) (*outbound.Suggestion, error) {
	endpoint := fmt.Sprintf("%s/recipes/random?apiKey=%s&tags=%s&number=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(tags))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("recipe search API", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Recipe search request failed", zap.Error(err))
		return nil, apperrors.NewExternalServiceError("recipe search API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Recipe search returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, apperrors.NewExternalServiceError("recipe search API",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload randomRecipesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalServiceError("recipe search API", err)
	}

	if len(payload.Recipes) == 0 {
		c.logger.Info("Recipe search returned no results", zap.String("tags", tags))
		return nil, apperrors.NewNoSuggestionsError(tags)
	}

	entry := payload.Recipes[0]
	return &outbound.Suggestion{
		Title:          entry.Title,
		ImageURL:       entry.Image,
		ReadyInMinutes: entry.ReadyInMinutes,
		Servings:       entry.Servings,
		SourceURL:      entry.SourceURL,
	}, nil
}

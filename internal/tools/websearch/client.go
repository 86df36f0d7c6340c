// internal/tools/websearch/client.go
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"trip-planner/internal/common/logger"
)

// Searcher retrieves web findings for a research topic. A nil or failed search
// yields empty findings; research tasks proceed without them.
type Searcher interface {
	Search(ctx context.Context, query string) (*Findings, error)
}

// Findings is prompt-ready web search output.
type Findings struct {
	Sources []Source `json:"sources"`
	Summary string   `json:"summary"`
}

// Source is a single filtered search result.
type Source struct {
	URL       string  `json:"url"`
	Title     string  `json:"title"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

// Config holds the search API settings.
type Config struct {
	BaseURL      string
	APIKey       string
	EngineID     string
	MaxResults   int
	MinRelevance float64
	Timeout      time.Duration
}

type client struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

// NewClient creates a web search client.
func NewClient(config *Config, log logger.Logger) Searcher {
	if config.MaxResults == 0 {
		config.MaxResults = 5
	}
	if config.MinRelevance == 0 {
		config.MinRelevance = 1.0
	}
	return &client{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.WithFields(map[string]interface{}{
			"component": "web-search",
		}),
	}
}

func (c *client) Search(ctx context.Context, query string) (*Findings, error) {
	query = regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(query), " ")

	req, err := http.NewRequestWithContext(ctx, "GET", c.buildSearchURL(query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded ||
			strings.Contains(err.Error(), "timeout") ||
			strings.Contains(err.Error(), "deadline") ||
			strings.Contains(err.Error(), "Client.Timeout") {
			c.logger.Warn("search timed out, returning empty findings", map[string]interface{}{
				"query": query,
			})
			return &Findings{Sources: []Source{}}, nil
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	var apiResponse struct {
		Items []searchItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, err
	}

	sources := c.processResults(apiResponse.Items)

	c.logger.Info("web search completed", map[string]interface{}{
		"query":       query,
		"resultCount": len(sources),
	})

	return &Findings{
		Sources: sources,
		Summary: summarize(sources),
	}, nil
}

type searchItem struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Mime    string `json:"mime"`
}

func (c *client) buildSearchURL(query string) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("key", c.config.APIKey)
	params.Add("cx", c.config.EngineID)
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", c.config.MaxResults))
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

func (c *client) processResults(items []searchItem) []Source {
	seen := make(map[string]bool)
	sources := []Source{}

	for _, item := range items {
		// Skip non-HTML
		if item.Mime != "" && !strings.Contains(item.Mime, "html") {
			continue
		}

		// Dedupe by URL
		if seen[item.Link] {
			continue
		}
		seen[item.Link] = true

		relevance := 1.0
		if strings.Contains(item.Link, ".gov") || strings.Contains(item.Link, ".edu") {
			relevance += 0.2
		}
		if strings.Contains(strings.ToLower(item.Title), "official") {
			relevance += 0.1
		}

		if relevance >= c.config.MinRelevance {
			sources = append(sources, Source{
				URL:       item.Link,
				Title:     item.Title,
				Snippet:   item.Snippet,
				Relevance: relevance,
			})
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Relevance > sources[j].Relevance
	})

	if len(sources) > c.config.MaxResults {
		sources = sources[:c.config.MaxResults]
	}

	return sources
}

func summarize(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}
	return sources[0].Snippet
}

// PromptBlock renders the findings as a prompt context section. Empty findings
// render to an empty string.
func (f *Findings) PromptBlock() string {
	if f == nil || len(f.Sources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Web research findings:\n")
	for _, src := range f.Sources {
		b.WriteString(fmt.Sprintf("- %s (%s): %s\n", src.Title, src.URL, src.Snippet))
	}
	if f.Summary != "" {
		b.WriteString("Summary: " + f.Summary + "\n")
	}
	return b.String()
}

// internal/tools/websearch/client_test.go
package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-planner/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, serverURL string) Searcher {
	t.Helper()
	return NewClient(&Config{
		BaseURL:    serverURL,
		APIKey:     "test-key",
		EngineID:   "test-engine",
		MaxResults: 3,
		Timeout:    2 * time.Second,
	}, logger.NewTestLogger(t))
}

func TestSearch_FiltersAndRanksResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-engine", r.URL.Query().Get("cx"))
		assert.Equal(t, "panama city travel", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("num"))

		w.Write([]byte(`{"items":[
			{"link":"https://blog.example.com/panama","title":"Panama trip notes","snippet":"A blog post"},
			{"link":"https://travel.state.gov/panama","title":"Panama advisory","snippet":"Entry requirements"},
			{"link":"https://example.com/brochure.pdf","title":"Brochure","snippet":"PDF","mime":"application/pdf"},
			{"link":"https://blog.example.com/panama","title":"Panama trip notes","snippet":"Duplicate"},
			{"link":"https://visitpanama.example.com","title":"Official tourism site","snippet":"Plan your visit"}
		]}`))
	}))
	defer server.Close()

	searcher := newTestSearcher(t, server.URL)

	findings, err := searcher.Search(context.Background(), "  panama   city travel ")
	require.NoError(t, err)
	require.Len(t, findings.Sources, 3)

	// .gov outranks "official" in the title, which outranks the plain result.
	assert.Equal(t, "https://travel.state.gov/panama", findings.Sources[0].URL)
	assert.Equal(t, 1.2, findings.Sources[0].Relevance)
	assert.Equal(t, "https://visitpanama.example.com", findings.Sources[1].URL)
	assert.Equal(t, 1.1, findings.Sources[1].Relevance)
	assert.Equal(t, "https://blog.example.com/panama", findings.Sources[2].URL)

	assert.Equal(t, "Entry requirements", findings.Summary)
}

func TestSearch_CapsAtMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"link":"https://a.example.com","title":"A","snippet":"a"},
			{"link":"https://b.example.com","title":"B","snippet":"b"},
			{"link":"https://c.example.com","title":"C","snippet":"c"},
			{"link":"https://d.example.com","title":"D","snippet":"d"}
		]}`))
	}))
	defer server.Close()

	searcher := newTestSearcher(t, server.URL)

	findings, err := searcher.Search(context.Background(), "hotels")
	require.NoError(t, err)
	assert.Len(t, findings.Sources, 3)
}

func TestSearch_TimeoutReturnsEmptyFindings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	searcher := NewClient(&Config{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		EngineID: "test-engine",
		Timeout:  50 * time.Millisecond,
	}, logger.NewTestLogger(t))

	findings, err := searcher.Search(context.Background(), "transportation")
	require.NoError(t, err)
	assert.Empty(t, findings.Sources)
	assert.Equal(t, "", findings.PromptBlock())
}

func TestSearch_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	searcher := newTestSearcher(t, server.URL)

	_, err := searcher.Search(context.Background(), "dining")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFindings_PromptBlock(t *testing.T) {
	findings := &Findings{
		Sources: []Source{
			{URL: "https://a.example.com", Title: "A", Snippet: "first", Relevance: 1.2},
		},
		Summary: "first",
	}

	block := findings.PromptBlock()
	assert.Contains(t, block, "Web research findings:")
	assert.Contains(t, block, "A (https://a.example.com): first")
	assert.Contains(t, block, "Summary: first")
}

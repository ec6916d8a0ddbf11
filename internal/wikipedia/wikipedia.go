package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pep299/wiki-stub-finder/internal/model"
)

const (
	defaultAPIURL     = "https://en.wikipedia.org/w/api.php"
	defaultArticleURL = "https://en.wikipedia.org/wiki/"

	categoryLimit = 50
	thumbnailSize = 200
)

// Client calls the MediaWiki action API.
type Client struct {
	apiURL     string
	articleURL string
	httpClient *http.Client
}

// NewClient creates a Wikipedia API client. An empty apiURL selects the
// English Wikipedia endpoint.
func NewClient(apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiURL:     apiURL,
		articleURL: defaultArticleURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			PageID  int    `json:"pageid"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages map[string]pageInfo `json:"pages"`
	} `json:"query"`
}

type pageInfo struct {
	Title      string `json:"title"`
	Extract    string `json:"extract"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// Search runs a full-text search and returns the raw hits.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("origin", "*")

	var out searchResponse
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}

	results := make([]model.SearchResult, 0, len(out.Query.Search))
	for _, hit := range out.Query.Search {
		results = append(results, model.SearchResult{
			Title:   hit.Title,
			PageID:  hit.PageID,
			Snippet: hit.Snippet,
		})
	}
	return results, nil
}

// Categories returns the category names of an article. A title that does
// not resolve, or a page without categories, yields an empty slice.
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "categories")
	params.Set("titles", title)
	params.Set("format", "json")
	params.Set("cllimit", strconv.Itoa(categoryLimit))
	params.Set("origin", "*")

	var out pagesResponse
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}

	// A single-title query returns exactly one page; id "-1" means missing.
	for id, page := range out.Query.Pages {
		if id == "-1" {
			return nil, nil
		}
		categories := make([]string, 0, len(page.Categories))
		for _, cat := range page.Categories {
			categories = append(categories, cat.Title)
		}
		return categories, nil
	}
	return nil, nil
}

// Details fetches the plain-text intro, categories and thumbnail of an
// article. A title that does not resolve yields (nil, nil).
func (c *Client) Details(ctx context.Context, title string) (*model.ArticleDetail, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts|pageimages|categories")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("titles", title)
	params.Set("format", "json")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", strconv.Itoa(thumbnailSize))
	params.Set("pilimit", "1")
	params.Set("cllimit", strconv.Itoa(categoryLimit))
	params.Set("origin", "*")

	var out pagesResponse
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}

	for id, page := range out.Query.Pages {
		if id == "-1" {
			return nil, nil
		}

		categories := make([]string, 0, len(page.Categories))
		for _, cat := range page.Categories {
			categories = append(categories, cat.Title)
		}

		detail := &model.ArticleDetail{
			Title:      page.Title,
			Extract:    page.Extract,
			Categories: categories,
			ViewURL:    c.articleURL + underscored(page.Title),
			EditURL:    c.articleURL + "Edit:" + underscored(page.Title),
		}
		if page.Thumbnail != nil {
			detail.ThumbnailURL = page.Thumbnail.Source
		}
		return detail, nil
	}
	return nil, nil
}

func underscored(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "Wiki Stub Finder Bot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling wikipedia API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

package model

// SearchResult is a single hit from a Wikipedia full-text search.
type SearchResult struct {
	Title   string `json:"title"`
	PageID  int    `json:"pageid"`
	Snippet string `json:"snippet"`
}

// ArticleDetail holds the intro text and metadata of a resolved article.
// Immutable once fetched; view/edit URLs are derived from the canonical title.
type ArticleDetail struct {
	Title        string   `json:"title"`
	Extract      string   `json:"extract"`
	Categories   []string `json:"categories"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	ViewURL      string   `json:"viewUrl"`
	EditURL      string   `json:"editUrl"`
}

// ScoredArticle is the externally visible result unit of the ranking
// pipeline. It deliberately carries no embedding vector; embeddings are an
// internal computation artifact and never serialize.
type ScoredArticle struct {
	ArticleDetail
	RelevanceScore float64  `json:"relevanceScore"`
	MissingInfo    []string `json:"missingInfo"`
}

package pixabay

// SearchResponse mirrors the payload returned by the Pixabay image endpoint.
type SearchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"`
	Hits      []Hit `json:"hits"`
}

// Hit is one image result.
type Hit struct {
	ID            int64  `json:"id"`
	PageURL       string `json:"pageURL"`
	Tags          string `json:"tags"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	Likes         int    `json:"likes"`
	Comments      int    `json:"comments"`
	User          string `json:"user"`
}

// Result is the normalized outcome of one page fetch.
type Result struct {
	Hits      []Hit
	TotalHits int
}

package search

import "github.com/five82/shutter/internal/pixabay"

// Card is the render-ready form of one hit. Counts are kept as plain integers;
// formatting is left to the renderer.
type Card struct {
	Link      string // full-size image, opened by the viewer
	Thumbnail string // web-sized image
	Alt       string // tags, used as alt text
	Likes     int
	Views     int
	Comments  int
	Downloads int
}

// NewCard converts an API hit into a Card.
func NewCard(hit pixabay.Hit) Card {
	return Card{
		Link:      hit.LargeImageURL,
		Thumbnail: hit.WebformatURL,
		Alt:       hit.Tags,
		Likes:     hit.Likes,
		Views:     hit.Views,
		Comments:  hit.Comments,
		Downloads: hit.Downloads,
	}
}

// Cards converts hits in order.
func Cards(hits []pixabay.Hit) []Card {
	cards := make([]Card, len(hits))
	for i, hit := range hits {
		cards[i] = NewCard(hit)
	}
	return cards
}

func links(hits []pixabay.Hit) []string {
	out := make([]string, len(hits))
	for i, hit := range hits {
		out[i] = hit.LargeImageURL
	}
	return out
}

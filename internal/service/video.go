package service

import (
	"net/url"
	"strings"
)

// VideoLinks are the ready-to-use YouTube URLs derived from a search query.
type VideoLinks struct {
	EmbedURL       string
	FirstResultURL string
	SearchURL      string
}

// encodeQuery percent-encodes a search query the way JavaScript's
// encodeURIComponent does: spaces become %20 rather than '+'.
func encodeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

// BuildVideoLinks expands a search query into YouTube URLs. Pure string
// formatting; no provider interaction.
func BuildVideoLinks(searchQuery string) VideoLinks {
	encoded := encodeQuery(searchQuery)
	searchURL := "https://www.youtube.com/results?search_query=" + encoded

	return VideoLinks{
		EmbedURL: "https://www.youtube.com/embed?listType=search&list=" + encoded,
		// The sp parameter filters the results page to videos only, so the
		// first hit is always playable.
		FirstResultURL: searchURL + "&sp=EgIQAQ%253D%253D",
		SearchURL:      searchURL,
	}
}

package listartists

type ListArtistsQuery struct{}

type ArtistItem struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	InstagramLinks []string `json:"instagram_links"`
}

type ListArtistsResponse struct {
	Artists []ArtistItem `json:"artists"`
}

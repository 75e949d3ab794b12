package liststudios

type ListStudiosQuery struct{}

type StudioItem struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	InstagramLinks []string `json:"instagram_links"`
}

type ListStudiosResponse struct {
	Studios []StudioItem `json:"studios"`
}

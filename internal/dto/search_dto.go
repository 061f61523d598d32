package dto

type VisualShotResponse struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	HiDPIURL  string `json:"hidpi_url,omitempty"`
	SourceURL string `json:"source_url"`
}

type VisualSearchResponse struct {
	Shots []VisualShotResponse `json:"shots"`
}

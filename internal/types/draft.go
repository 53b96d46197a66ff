package types

// DraftRoadmap is a generated roadmap held in memory between generation and
// save. It is never persisted directly; saving converts it into a Roadmap
// header plus RoadmapStep rows.
type DraftRoadmap struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Steps       []DraftStep `json:"steps"`
}

type DraftStep struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	OrderIndex    int      `json:"order_index"`
	EstimatedTime string   `json:"estimated_time"`
	Keywords      []string `json:"keywords"`
}

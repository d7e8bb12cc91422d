package model

// Mentor is a helper profile attached to a gig.
type Mentor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Rating      float64  `json:"rating"`
	Message     string   `json:"message"`
	Specialties []string `json:"specialties"`

	// Server-generated display counters for the synthesized default mentor.
	BaseReputation int    `json:"baseReputation,omitempty"`
	CompletedGigs  int    `json:"completedGigs,omitempty"`
	BaseName       string `json:"baseName,omitempty"`
}

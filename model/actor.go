package model

// Actor is the caller identity passed into every mutating core call.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
}

func (a Actor) String() string {
	if a.ID == "" {
		return "anonymous"
	}
	return a.ID
}

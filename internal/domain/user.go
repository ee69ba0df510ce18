package domain

// User is a row in the demo users API. It has no relation to chat state.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

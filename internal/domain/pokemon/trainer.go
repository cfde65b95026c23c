package pokemon

import "time"

// Trainer owns generated pokemon. ID is the chat user id.
type Trainer struct {
	ID        string
	Name      string
	Enabled   bool
	CreatedAt time.Time
}

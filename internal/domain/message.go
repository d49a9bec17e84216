package domain

type MessageType string

const (
	MessageAlert MessageType = "alert"
	MessageCard  MessageType = "card"
)

// OutgoingMessage is the envelope handed to a Sender.
type OutgoingMessage struct {
	UserID string      `json:"userId"`
	Type   MessageType `json:"type"`
	Text   string      `json:"text,omitempty"`
	Card   *Card       `json:"card,omitempty"`
}

type Card struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	URL         string       `json:"url"`
	Options     []CardOption `json:"options,omitempty"`
}

type CardOption struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

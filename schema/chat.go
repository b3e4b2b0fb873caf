package schema

const (
	ChatCollection = "chat"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one line of a user's conversation with the assistant.
// Timestamp is Unix milliseconds.
type ChatMessage struct {
	ID        string   `json:"id" bson:"id"`
	Owner     string   `json:"owner" bson:"owner"`
	Role      ChatRole `json:"role" bson:"role"`
	Text      string   `json:"text" bson:"text"`
	Scripted  bool     `json:"scripted" bson:"scripted"`
	Timestamp int64    `json:"ts" bson:"ts"`
}

package models

import "time"

// Message roles
const (
    RoleUser      = "user"
    RoleAssistant = "assistant"
)

// AIMessage is one turn in an assistant conversation.
type AIMessage struct {
    ID        string    `json:"id"`
    Role      string    `json:"role"`
    Content   string    `json:"content"`
    CreatedAt time.Time `json:"createdAt"`
}

// AIConversation is held in memory only. Conversations are never written to
// the database and are wiped when the user signs out, so there are no gorm
// tags here and the type is not part of AutoMigrate.
type AIConversation struct {
    ID        string      `json:"id"`
    Title     string      `json:"title"`
    Messages  []AIMessage `json:"messages"`
    CreatedAt time.Time   `json:"createdAt"`
}

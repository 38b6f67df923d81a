package services

import (
    "errors"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/itstoasti/KetoMate-sub001/models"
)

const assistantSystemPrompt = `You are a friendly keto diet coach inside a diet-tracking app.
Answer questions about the ketogenic diet, nutrition and the user's food choices.
Keep answers short and practical. Do not give medical advice.`

const foodAnalysisPrompt = `Analyze the food "%s" for a keto diet tracker.
Respond with exactly these lines and nothing else:
Status: Found or NotFound
Name: <common food name>
Serving Size: <typical serving>
Calories: <number>
Carbs: <grams, number only>
Protein: <grams, number only>
Fat: <grams, number only>
If you cannot identify the food, set Status to NotFound.`

// assistantErrorMessage is appended to the conversation when the endpoint
// fails; the failure itself is not retried.
const assistantErrorMessage = "Sorry, I couldn't reach the assistant right now. Please try again."

// How many prior turns are replayed to the endpoint per question.
const assistantContextTurns = 10

var ErrConversationNotFound = errors.New("conversation not found")

// ErrAssistantUnavailable marks failures of the AI endpoint itself, so
// handlers can tell them apart from store errors.
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// AssistantService owns the AI chat. Conversations live in memory only,
// keyed by user, and are wiped on sign-out.
type AssistantService struct {
    llm *LLMService

    mu    sync.RWMutex
    convs map[uint][]*models.AIConversation
}

func NewAssistantService(llm *LLMService) *AssistantService {
    return &AssistantService{llm: llm, convs: make(map[uint][]*models.AIConversation)}
}

func (s *AssistantService) ListConversations(userID uint) []*models.AIConversation {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]*models.AIConversation, len(s.convs[userID]))
    copy(out, s.convs[userID])
    return out
}

func (s *AssistantService) CreateConversation(userID uint, title string) *models.AIConversation {
    if strings.TrimSpace(title) == "" {
        title = "New chat"
    }
    conv := &models.AIConversation{
        ID:        uuid.NewString(),
        Title:     title,
        CreatedAt: time.Now(),
    }
    s.mu.Lock()
    s.convs[userID] = append(s.convs[userID], conv)
    s.mu.Unlock()
    return conv
}

// Ask appends the user's question, calls the text endpoint with recent
// context and appends the reply. Endpoint failures surface as a generic
// assistant message in the conversation rather than an error to the caller.
func (s *AssistantService) Ask(userID uint, conversationID, question string) (*models.AIConversation, error) {
    s.mu.Lock()
    conv := s.findConversation(userID, conversationID)
    if conv == nil {
        s.mu.Unlock()
        return nil, ErrConversationNotFound
    }
    conv.Messages = append(conv.Messages, models.AIMessage{
        ID:        uuid.NewString(),
        Role:      models.RoleUser,
        Content:   question,
        CreatedAt: time.Now(),
    })
    history := s.recentMessages(conv)
    s.mu.Unlock()

    messages := make([]ChatMessage, 0, len(history)+1)
    messages = append(messages, ChatMessage{Role: "system", Content: assistantSystemPrompt})
    for _, m := range history {
        messages = append(messages, ChatMessage{Role: m.Role, Content: m.Content})
    }

    reply, err := s.llm.Complete(messages)
    if err != nil {
        log.Printf("assistant completion failed: %v", err)
        reply = assistantErrorMessage
    }

    s.mu.Lock()
    defer s.mu.Unlock()
    // The conversation may have been wiped by a sign-out while the call was
    // in flight; drop the reply in that case.
    conv = s.findConversation(userID, conversationID)
    if conv == nil {
        return nil, ErrConversationNotFound
    }
    conv.Messages = append(conv.Messages, models.AIMessage{
        ID:        uuid.NewString(),
        Role:      models.RoleAssistant,
        Content:   reply,
        CreatedAt: time.Now(),
    })
    return conv, nil
}

// AnalyzeFood asks the text endpoint to describe a food by name and parses
// the Key: value response into the three-way analysis outcome.
func (s *AssistantService) AnalyzeFood(query string) (*FoodAnalysis, error) {
    text, err := s.llm.Complete([]ChatMessage{
        {Role: "user", Content: fmt.Sprintf(foodAnalysisPrompt, query)},
    })
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
    }
    return ParseFoodAnalysis(text, query), nil
}

// ClearUser drops every conversation for the user. Called on sign-out.
func (s *AssistantService) ClearUser(userID uint) {
    s.mu.Lock()
    delete(s.convs, userID)
    s.mu.Unlock()
}

func (s *AssistantService) findConversation(userID uint, id string) *models.AIConversation {
    for _, c := range s.convs[userID] {
        if c.ID == id {
            return c
        }
    }
    return nil
}

func (s *AssistantService) recentMessages(conv *models.AIConversation) []models.AIMessage {
    msgs := conv.Messages
    if len(msgs) > assistantContextTurns {
        msgs = msgs[len(msgs)-assistantContextTurns:]
    }
    out := make([]models.AIMessage, len(msgs))
    copy(out, msgs)
    return out
}

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
	"github.com/taxtech-ae/einvoice-assistant/internal/metrics"
	"github.com/taxtech-ae/einvoice-assistant/internal/store"
	"github.com/taxtech-ae/einvoice-assistant/internal/viz"
)

const (
	chatTitleMaxLen       = 60
	maxTranscriptMessages = 100
)

// Defaults carries the service-level completion settings. Requests may
// override any of them per turn.
type Defaults struct {
	APIKey      string
	Model       string
	Temperature float64
}

// ChatService runs one user turn end to end: classify, assemble, produce an
// answer (live or mock), select a chart, and persist the transcript.
type ChatService struct {
	dbStore    *store.SQLiteStore
	classifier *Classifier
	assembler  *Assembler
	producer   *Producer
	tables     dataset.Set
	defaults   Defaults
	logger     *zap.Logger
}

func NewChatService(db *store.SQLiteStore, classifier *Classifier, assembler *Assembler, producer *Producer, tables dataset.Set, defaults Defaults, logger *zap.Logger) *ChatService {
	return &ChatService{
		dbStore:    db,
		classifier: classifier,
		assembler:  assembler,
		producer:   producer,
		tables:     tables,
		defaults:   defaults,
		logger:     logger.Named("chat"),
	}
}

// TurnRequest is one user question plus optional per-turn overrides.
type TurnRequest struct {
	Query          string
	SelectedTable  string // "" or "all" means no table filter
	SelectedDomain string // "" or "all" means no domain filter
	Model          string
	APIKey         string
	Temperature    *float64
}

// TurnResult merges the textual answer with the selected chart.
type TurnResult struct {
	Answer       Answer       `json:"answer"`
	Chart        *viz.Chart   `json:"chart,omitempty"`
	QueryContext QueryContext `json:"query_context"`
}

// AnswerQuery executes one turn without touching the transcript store.
func (s *ChatService) AnswerQuery(ctx context.Context, req TurnRequest) TurnResult {
	qc := s.classifier.Classify(req.Query, req.SelectedTable)
	// A domain filter replaces the classified domains outright, which changes
	// both the canned response key and the default chart kind.
	if req.SelectedDomain != "" && !strings.EqualFold(req.SelectedDomain, "all") {
		domain := strings.ToLower(req.SelectedDomain)
		qc.RelevantDomains = []string{domain}
		qc.PrimaryDomain = domain
	}
	rc := s.assembler.Prepare(qc, s.tables)

	s.logger.Debug("classified query",
		zap.String("language", string(qc.Language)),
		zap.Strings("tables", qc.RelevantTables),
		zap.Strings("domains", qc.RelevantDomains),
		zap.Bool("out_of_domain", rc.IsOutOfDomain))

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = s.defaults.APIKey
	}
	model := req.Model
	if model == "" {
		model = s.defaults.Model
	}
	temperature := s.defaults.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	var answer Answer
	start := time.Now()
	if HasValidKey(apiKey) {
		answer = s.producer.Complete(ctx, req.Query, rc, apiKey, model, temperature)
		metrics.CompletionDuration.WithLabelValues("live").Observe(time.Since(start).Seconds())
	} else {
		answer = MockComplete(req.Query, rc)
		metrics.CompletionDuration.WithLabelValues("mock").Observe(time.Since(start).Seconds())
	}

	if rc.IsOutOfDomain {
		metrics.OutOfDomainTotal.Inc()
	} else if answer.Success {
		metrics.QueriesTotal.WithLabelValues(qc.PrimaryTable, qc.PrimaryDomain, string(qc.Language)).Inc()
	}
	if !answer.Success {
		metrics.CompletionFailures.WithLabelValues(string(answer.ErrorKind)).Inc()
	}

	result := TurnResult{Answer: answer, QueryContext: qc}
	if answer.Success && answer.VisualizationType != "" {
		result.Chart = viz.Render(viz.Kind(answer.VisualizationType), s.tables.Get(qc.PrimaryTable), string(qc.Language))
	}
	return result
}

// GetUserByExternalID exposes user lookup for the auth middleware.
func (s *ChatService) GetUserByExternalID(externalUserID string) (*store.User, error) {
	return s.dbStore.GetUserByExternalID(externalUserID)
}

func (s *ChatService) CreateUser(externalUserID, passwordHash string) (*store.User, error) {
	return s.dbStore.CreateUser(externalUserID, passwordHash)
}

// CreateChat starts a new chat. If a first message is given, the full turn
// runs immediately and both messages are stored; the chat title derives from
// the first message.
func (s *ChatService) CreateChat(ctx context.Context, userID int64, firstMessage *TurnRequest) (*store.Chat, []store.Message, error) {
	var title *string
	if firstMessage != nil && firstMessage.Query != "" {
		t := deriveTitle(firstMessage.Query)
		title = &t
	}

	chat, err := s.dbStore.CreateChat(userID, title)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create chat in DB: %w", err)
	}

	var messages []store.Message
	if firstMessage != nil && firstMessage.Query != "" {
		messages, err = s.runAndStoreTurn(ctx, chat.ID, *firstMessage)
		if err != nil {
			// The chat exists; surface the turn failure but keep the chat.
			s.logger.Error("failed to answer first message", zap.String("chat_id", chat.ID), zap.Error(err))
		}
	}

	return chat, messages, nil
}

func (s *ChatService) GetChats(userID int64) ([]store.Chat, error) {
	return s.dbStore.GetChatsByUserID(userID)
}

func (s *ChatService) GetChatDetails(chatID string, userID int64) (*store.Chat, []store.Message, error) {
	chat, err := s.dbStore.GetChatByID(chatID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chat: %w", err)
	}
	if chat == nil {
		return nil, nil, nil // Not found
	}

	// The transcript view is bounded by the most recent messages, not the
	// oldest; the store returns them newest-first.
	messages, err := s.dbStore.GetLastNMessagesByChatID(chatID, maxTranscriptMessages)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get messages for chat: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return chat, messages, nil
}

// PostMessage appends one user turn to an existing chat and returns the stored
// model message.
func (s *ChatService) PostMessage(ctx context.Context, chatID string, userID int64, req TurnRequest) (*store.Message, error) {
	chat, err := s.dbStore.GetChatByID(chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify chat: %w", err)
	}
	if chat == nil {
		return nil, fmt.Errorf("chat not found")
	}

	messages, err := s.runAndStoreTurn(ctx, chatID, req)
	if err != nil {
		return nil, err
	}

	if chat.Title == nil || *chat.Title == "" {
		if err := s.dbStore.UpdateChatTitle(chatID, userID, deriveTitle(req.Query)); err != nil {
			s.logger.Warn("failed to set chat title", zap.String("chat_id", chatID), zap.Error(err))
		}
	}

	return &messages[len(messages)-1], nil
}

// runAndStoreTurn stores the user message, runs the pipeline, and stores the
// model message with its language, chart kind, and serialized chart.
func (s *ChatService) runAndStoreTurn(ctx context.Context, chatID string, req TurnRequest) ([]store.Message, error) {
	result := s.AnswerQuery(ctx, req)
	qc := result.QueryContext

	userMsg := store.Message{
		ChatID:   chatID,
		Sender:   "user",
		Content:  req.Query,
		Language: string(qc.Language),
	}
	if err := s.dbStore.CreateMessage(&userMsg); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	content := result.Answer.ResponseText
	if !result.Answer.Success {
		content = result.Answer.Message
	}

	modelMsg := store.Message{
		ChatID:            chatID,
		Sender:            "model",
		Content:           FormatForLanguage(content, qc.Language),
		Language:          string(qc.Language),
		VisualizationType: result.Answer.VisualizationType,
	}
	if result.Chart != nil {
		if encoded, err := json.Marshal(result.Chart); err == nil {
			modelMsg.Chart = encoded
		}
	}
	if err := s.dbStore.CreateMessage(&modelMsg); err != nil {
		return nil, fmt.Errorf("failed to store model message: %w", err)
	}

	return []store.Message{userMsg, modelMsg}, nil
}

func (s *ChatService) SetMessageFeedback(messageID string, userID int64, negative bool) error {
	return s.dbStore.UpdateMessageFeedback(messageID, negative)
}

// deriveTitle truncates the first user message on a rune boundary. No LLM call
// is made, so the offline path produces titled chats too.
func deriveTitle(query string) string {
	runes := []rune(query)
	if len(runes) <= chatTitleMaxLen {
		return query
	}
	return string(runes[:chatTitleMaxLen]) + "…"
}

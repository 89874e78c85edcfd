package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	// MinAPIKeyLength is a local sanity check on the credential, not real
	// validation.
	MinAPIKeyLength = 10

	maxResponseTokens = 1000
)

var missingKeyMessage = map[Language]string{
	LangEnglish: "Please provide an OpenAI API key to enable AI responses.",
	LangArabic:  "الرجاء إدخال مفتاح API الخاص بك لـ OpenAI لتمكين ردود الذكاء الاصطناعي.",
}

// Producer sends the assembled context to the hosted chat-completion service.
// The call is bounded by a timeout; failures are classified, never retried.
type Producer struct {
	endpoint string // overrides the default API base URL when set
	timeout  time.Duration
	logger   *zap.Logger
}

func NewProducer(endpoint string, timeout time.Duration, logger *zap.Logger) *Producer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Producer{
		endpoint: endpoint,
		timeout:  timeout,
		logger:   logger.Named("producer"),
	}
}

// HasValidKey applies the minimum-length credential check.
func HasValidKey(apiKey string) bool {
	return len(apiKey) >= MinAPIKeyLength
}

// Complete answers one turn through the hosted service. Without a valid
// credential it fails immediately; out-of-domain contexts succeed with the
// pre-built message. Neither path touches the network.
func (p *Producer) Complete(ctx context.Context, query string, rc *ResponseContext, apiKey, model string, temperature float64) Answer {
	if !HasValidKey(apiKey) {
		return Answer{
			Success:   false,
			ErrorKind: ErrMissingAPIKey,
			Message:   missingKeyMessage[rc.QueryContext.Language],
		}
	}

	if rc.IsOutOfDomain {
		return Answer{
			Success:      true,
			ResponseText: rc.OutOfDomainMessage,
		}
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: rc.SystemPrompt},
	}
	if samples := serializeSamples(rc); samples != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: samples,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	clientConfig := openai.DefaultConfig(apiKey)
	if p.endpoint != "" {
		clientConfig.BaseURL = strings.TrimSuffix(p.endpoint, "/")
	}
	client := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(temperature),
		MaxTokens:   maxResponseTokens,
	})
	if err != nil {
		kind, message := classifyAPIError(err)
		p.logger.Error("completion request failed",
			zap.String("kind", string(kind)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Answer{Success: false, ErrorKind: kind, Message: message}
	}

	if len(resp.Choices) == 0 {
		return Answer{
			Success:   false,
			ErrorKind: ErrAPIError,
			Message:   "API error: no choices in response",
		}
	}

	p.logger.Info("completion request succeeded",
		zap.String("model", model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return Answer{
		Success:           true,
		ResponseText:      resp.Choices[0].Message.Content,
		VisualizationType: rc.VisualizationType,
	}
}

// serializeSamples renders the sampled rows as labelled JSON blocks, one per
// relevant table, in relevant-table order. Empty when no table produced
// samples.
func serializeSamples(rc *ResponseContext) string {
	if len(rc.SampleOrder) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Here are samples from the relevant data tables:\n\n")
	for _, name := range rc.SampleOrder {
		encoded, err := json.MarshalIndent(rc.DataSamples[name], "", "  ")
		if err != nil {
			continue
		}
		b.WriteString(strings.ToUpper(name))
		b.WriteString(" TABLE SAMPLE:\n")
		b.Write(encoded)
		b.WriteString("\n\n")
	}
	return b.String()
}

// classifyAPIError maps a service error onto the failure taxonomy by
// case-insensitive substring match on the error text.
func classifyAPIError(err error) (ErrorKind, string) {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "authentication"):
		return ErrInvalidAPIKey, "Invalid API key. Please check your OpenAI API key and try again."
	case strings.Contains(text, "rate limit"):
		return ErrRateLimit, "Rate limit exceeded. Please wait a moment and try again."
	default:
		return ErrAPIError, fmt.Sprintf("API error: %s", err.Error())
	}
}

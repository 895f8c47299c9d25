package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"sheetlingo/internal/memory"
	"sheetlingo/internal/prompt"
	"sheetlingo/internal/sheet"
)

// Config carries the settings for a Translator.
type Config struct {
	APIKey         string
	Model          string
	RequestTimeout time.Duration
	Prompts        *prompt.Config
	Memory         *memory.Store
	Logger         *logrus.Logger
}

// chatClient is the slice of the OpenAI client the translator uses,
// extracted so tests can substitute a fake.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Translator translates cell values and rewrites cell formulas through
// the OpenAI chat API.
type Translator struct {
	cfg     Config
	client  chatClient
	breaker *gobreaker.CircuitBreaker
}

// New creates a translator, applying defaults for the model, request
// timeout, prompt configuration, and logger.
func New(cfg Config) *Translator {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4o
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if cfg.Prompts == nil {
		cfg.Prompts = prompt.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	logger := cfg.Logger
	return &Translator{
		cfg:    cfg,
		client: openai.NewClient(cfg.APIKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Circuit breaker state changed")
			},
		}),
	}
}

// Reload replaces the translator's configuration in place, rebuilding the
// API client and resetting the circuit breaker. Callers holding the
// translator keep their reference and see the new model and prompts on
// the next call.
func (t *Translator) Reload(cfg Config) {
	fresh := New(cfg)
	t.cfg = fresh.cfg
	t.client = fresh.client
	t.breaker = fresh.breaker
}

// Model returns the chat model the translator sends requests to.
func (t *Translator) Model() string {
	return t.cfg.Model
}

// TranslateValue translates an English cell value into lang.
func (t *Translator) TranslateValue(ctx context.Context, value string, lang sheet.Language) (string, error) {
	if t.cfg.APIKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	if out, ok := t.lookup(value, lang, memory.KindValue); ok {
		return out, nil
	}

	system, user, err := t.cfg.Prompts.ValueMessages(prompt.ValueData{
		Language: lang.String(),
		Value:    value,
	})
	if err != nil {
		return "", err
	}

	out, err := t.complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("failed to translate value: %w", err)
	}

	t.remember(value, lang, memory.KindValue, out)
	return out, nil
}

// RewriteFormula rewrites an Excel formula so its quoted English text
// matches the translated value. The model is instructed to return the
// formula behind a single leading apostrophe.
func (t *Translator) RewriteFormula(ctx context.Context, value, translated, formula string, lang sheet.Language) (string, error) {
	if t.cfg.APIKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	key := formulaKey(value, translated, formula)
	if out, ok := t.lookup(key, lang, memory.KindFormula); ok {
		return out, nil
	}

	system, user, err := t.cfg.Prompts.FormulaMessages(prompt.FormulaData{
		Language:   lang.String(),
		Value:      value,
		Translated: translated,
		Formula:    formula,
	})
	if err != nil {
		return "", err
	}

	out, err := t.complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("failed to rewrite formula: %w", err)
	}

	t.remember(key, lang, memory.KindFormula, out)
	return out, nil
}

// complete sends one chat completion through the circuit breaker and
// returns the trimmed message content.
func (t *Translator) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		Temperature: 0.3,
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
		defer cancel()
		return t.client.CreateChatCompletion(callCtx, req)
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	resp := result.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// formulaKey builds the translation memory key for a formula rewrite.
// The rewritten formula embeds the translated value, so the value and its
// translation are part of the key alongside the formula itself.
func formulaKey(value, translated, formula string) string {
	return value + "\x1f" + translated + "\x1f" + formula
}

func (t *Translator) lookup(sourceText string, lang sheet.Language, kind string) (string, bool) {
	if t.cfg.Memory == nil {
		return "", false
	}
	out, found, err := t.cfg.Memory.Lookup(sourceText, lang.String(), kind, t.cfg.Model)
	if err != nil {
		t.cfg.Logger.WithError(err).Warn("Translation memory lookup failed")
		return "", false
	}
	if found {
		t.cfg.Logger.WithField("kind", kind).Debug("Translation memory hit")
	}
	return out, found
}

func (t *Translator) remember(sourceText string, lang sheet.Language, kind, output string) {
	if t.cfg.Memory == nil {
		return
	}
	if err := t.cfg.Memory.Save(sourceText, lang.String(), kind, t.cfg.Model, output); err != nil {
		t.cfg.Logger.WithError(err).Warn("Translation memory save failed")
	}
}

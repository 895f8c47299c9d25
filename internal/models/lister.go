package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the available OpenAI models, separating the
// chat models usable for translation from everything else
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .sheetlingo.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	otherModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		} else {
			otherModels = append(otherModels, model.ID)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(otherModels)

	fmt.Println("Available OpenAI Models:")
	fmt.Println("\nChat Models (usable with --openai-model):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else if len(chatModels) > 15 {
		// Show only the families people actually translate with
		relevantModels := []string{}
		for _, model := range chatModels {
			if strings.Contains(model, "gpt-4") || strings.Contains(model, "gpt-3.5") {
				relevantModels = append(relevantModels, model)
			}
		}
		for _, model := range relevantModels {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(chatModels)-len(relevantModels))
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	if len(otherModels) > 0 {
		fmt.Printf("\nOther Models (audio, images, embeddings): %d\n", len(otherModels))
	}

	return nil
}

// isChatModel reports whether the model ID names a chat completion model
func isChatModel(id string) bool {
	if strings.Contains(id, "instruct") || strings.Contains(id, "audio") || strings.Contains(id, "realtime") {
		return false
	}
	return strings.HasPrefix(id, "gpt-") || strings.HasPrefix(id, "o1") ||
		strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") ||
		strings.Contains(id, "chatgpt")
}

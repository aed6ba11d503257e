// File: service/ai/gemini_client.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medigo/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	generateAttempts = 3
	backoffBase      = 4 * time.Second
	backoffCap       = 10 * time.Second
	attemptTimeout   = 15 * time.Second
)

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-2.0-flash-exp")
	return &GeminiClient{model: model}
}

// GenerateContent calls the model with up to three attempts and exponential
// backoff between them.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	logger := utils.GetLogger()
	backoff := backoffBase

	var lastErr error
	for attempt := 1; attempt <= generateAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		resp, err := g.model.GenerateContent(attemptCtx, genai.Text(prompt))
		cancel()

		if err == nil {
			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				lastErr = fmt.Errorf("gemini returned no candidates")
			} else {
				var sb strings.Builder
				for _, part := range resp.Candidates[0].Content.Parts {
					if textPart, ok := part.(genai.Text); ok {
						sb.WriteString(string(textPart))
					}
				}
				return sb.String(), nil
			}
		} else {
			lastErr = fmt.Errorf("gemini generate error: %w", err)
		}

		if attempt < generateAttempts {
			logger.Warn("Gemini attempt failed, retrying",
				zap.Int("attempt", attempt), zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > backoffCap {
				backoff = backoffCap
			}
		}
	}
	return "", lastErr
}

// CleanJSONResponse strips markdown code fences the model tends to wrap
// around JSON output.
func CleanJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

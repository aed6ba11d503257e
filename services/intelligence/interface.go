// File: service/ai/interface.go
package ai

import "context"

// TextGenerator produces free-form text for a prompt. Implementations are
// expected to handle their own retry policy.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

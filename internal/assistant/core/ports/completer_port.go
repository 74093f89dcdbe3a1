package ports

import "context"

// CompleterPort turns a prompt into free text.
type CompleterPort interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

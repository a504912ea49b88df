// Package caption talks to an external image-captioning collaborator. The
// contract is best-effort only: callers substitute a fallback string whenever
// a provider fails.
package caption

import "context"

type Provider interface {
	// Caption produces a short text caption for a single image reference
	// (typically a base64 data URL captured client-side).
	Caption(ctx context.Context, image string) (string, error)
}

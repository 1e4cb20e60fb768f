package vlm

import "context"

// Invoker is the narrow vision-model capability the pipeline depends on:
// one base64-encoded image plus a text instruction in, free-form text out.
// Implementations must classify failures as transient vs permanent via
// common.ModelInvocationError.
type Invoker interface {
	// Invoke sends one image and an instruction, returning the raw response text.
	Invoke(ctx context.Context, image []byte, mediaType, instruction string) (string, error)
	// InvokeText sends a text-only instruction (used to structure raw page text).
	InvokeText(ctx context.Context, instruction string) (string, error)
}

// Package groq implements the generation.CompletionClient interface against
// Groq's OpenAI-compatible chat-completions endpoint.
package groq

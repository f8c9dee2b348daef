// Package generation turns a topic and slide count into a validated revision
// deck by prompting an external LLM completion service. It abstracts the
// provider behind the CompletionClient interface, allowing the application to
// generate decks without coupling to a specific external service, and owns
// the prompt templates, the JSON normalization rules and the bounded
// two-attempt recovery policy.
package generation

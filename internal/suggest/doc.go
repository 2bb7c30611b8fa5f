// Package suggest provides AI text suggestions for the free-text fields of
// the assistance step.
//
// It has two halves. Client is a thin wrapper over the OpenAI chat completion
// API: it builds a field- and language-scoped system instruction, issues
// exactly one request with a fixed token budget and temperature, and maps
// failures to a closed error taxonomy (not configured, unauthorized, rate
// limited, timeout, provider error). There is no retry loop; callers decide
// what to surface.
//
// Controller is the per-field workflow around the client. At most one
// suggestion session exists at a time:
//
//	idle -> generating -> ready | error
//
// From ready the user can edit the text freely and either accept (which
// writes it into the form session through the same path as a manual edit) or
// discard. Opening a session for another field implicitly discards the
// current one; a response that arrives for a discarded session is dropped.
package suggest

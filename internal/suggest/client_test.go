package suggest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewClientWithoutKey(t *testing.T) {
	c, err := NewClient(Config{})

	if !IsNotConfigured(err) {
		t.Fatalf("NewClient() without key error = %v, want NotConfigured", err)
	}
	if c == nil {
		t.Fatal("NewClient() should still return a usable client")
	}
	if c.Configured() {
		t.Error("Configured() = true without a key")
	}
}

func TestSuggestFailsFastWhenNotConfigured(t *testing.T) {
	// Scenario D: no credential means the error surfaces before any network
	// attempt - no endpoint even exists here to attempt against.
	c, _ := NewClient(Config{})

	start := time.Now()
	_, err := c.Suggest(context.Background(), "seed", FieldKindFinancialHardship, "en")
	elapsed := time.Since(start)

	if !IsNotConfigured(err) {
		t.Fatalf("Suggest() error = %v, want NotConfigured", err)
	}
	if elapsed > time.Second {
		t.Errorf("Suggest() took %v; should fail without a network attempt", elapsed)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if !c.Configured() {
		t.Error("Configured() = false with a key")
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q, want %q", c.model, DefaultModel)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{
			name: "api 401",
			err:  &openai.APIError{HTTPStatusCode: 401, Message: "invalid key"},
			kind: ErrKindUnauthorized,
		},
		{
			name: "api 429",
			err:  &openai.APIError{HTTPStatusCode: 429, Message: "quota"},
			kind: ErrKindRateLimited,
		},
		{
			name: "api 500",
			err:  &openai.APIError{HTTPStatusCode: 500, Message: "oops"},
			kind: ErrKindProvider,
		},
		{
			name: "request 401",
			err:  &openai.RequestError{HTTPStatusCode: 401, Err: errors.New("denied")},
			kind: ErrKindUnauthorized,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			kind: ErrKindTimeout,
		},
		{
			name: "wrapped deadline",
			err:  fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			kind: ErrKindTimeout,
		},
		{
			name: "plain transport",
			err:  errors.New("connection reset"),
			kind: ErrKindProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := Classify(tt.err)
			if se == nil {
				t.Fatal("Classify() = nil")
			}
			if se.Kind != tt.kind {
				t.Errorf("Classify() kind = %v, want %v", se.Kind, tt.kind)
			}
			if !errors.Is(se, tt.err) && se.Err == nil {
				t.Error("classified error lost its cause")
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestClassifyPassesThroughSuggestError(t *testing.T) {
	orig := NewNotConfiguredError()
	if got := Classify(orig); got != orig {
		t.Error("Classify() re-wrapped an existing SuggestError")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", NewNotConfiguredError(),
			"OpenAI API key not configured. Please set OPENAI_API_KEY in your environment."},
		{"unauthorized", Classify(&openai.APIError{HTTPStatusCode: 401}),
			"Invalid API key. Please check your OpenAI API key."},
		{"rate limited", Classify(&openai.APIError{HTTPStatusCode: 429}),
			"Rate limit exceeded. Please try again later."},
		{"timeout", Classify(context.DeadlineExceeded),
			"Request timeout. Please try again."},
		{"provider", Classify(errors.New("boom")),
			"Failed to generate text suggestion. Please try again."},
		{"foreign error", errors.New("boom"),
			"Failed to generate text suggestion. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsUnauthorized(Classify(&openai.APIError{HTTPStatusCode: 401})) {
		t.Error("IsUnauthorized() missed a 401")
	}
	if !IsRateLimited(Classify(&openai.APIError{HTTPStatusCode: 429})) {
		t.Error("IsRateLimited() missed a 429")
	}
	if !IsTimeout(Classify(context.DeadlineExceeded)) {
		t.Error("IsTimeout() missed a deadline error")
	}
	if IsUnauthorized(errors.New("nope")) {
		t.Error("IsUnauthorized() matched a foreign error")
	}
}

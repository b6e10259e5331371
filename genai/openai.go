// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// Returned in place of note content when the API answers with an empty body.
const emptySynthesisPlaceholder = "The writing assistant returned an empty document for this session; " +
	"your answers were recorded but no note could be generated."

// OpenAI is a Generator backed by the OpenAI chat-completions API.
type OpenAI struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// OpenAIConfig configures the live generator. Zero values get defaults for
// everything except APIKey, which is required.
type OpenAIConfig struct {
	APIKey  string
	APIURL  string // default https://api.openai.com/v1/chat/completions
	Model   string // default gpt-3.5-turbo
	Timeout time.Duration
}

// NewOpenAI creates a chat-completions client.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai: API key is not set")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}

	return &OpenAI{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		maxTokens:   600,
		temperature: 0.7,
		client:      &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// message is a single message in a chat-completions conversation.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Questions asks the API for n short guiding questions about topic and
// parses the reply as a JSON array of strings. Anything that does not parse
// as an array of at least five strings is treated as a failure, so the
// fallback wrapper can substitute the template list.
func (c *OpenAI) Questions(ctx context.Context, topic string, n int) ([]string, error) {
	prompt := fmt.Sprintf(
		"Write %d short Socratic questions that guide a learner to build study notes about %q. "+
			"Between them the questions must cover: the learner's scope and intent, the audience "+
			"and context, a restatement of the core idea in the learner's own words, one concrete "+
			"example, and one common misconception. "+
			"Reply with ONLY a JSON array of strings, no prose and no code fences.",
		n, topic,
	)

	content, err := c.complete(ctx, []message{
		{Role: "system", Content: "You are a study coach who asks one precise question at a time."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestionArray(content)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Synthesize asks the API to turn the session transcript into a Markdown
// study note and returns the generated text verbatim. Empty output is
// replaced by an explanatory placeholder rather than treated as an error.
func (c *OpenAI) Synthesize(ctx context.Context, topic string, pairs []models.QA) (string, error) {
	var transcript strings.Builder
	for i, pair := range pairs {
		fmt.Fprintf(&transcript, "Q%d: %s\nA%d: %s\n", i+1, pair.Question, i+1, pair.Answer)
	}

	prompt := fmt.Sprintf(
		"Turn this Socratic Q&A about %q into a Markdown study note with: a title, a short intro, "+
			"the core idea as bullet points, one worked example, a \"Common Pitfall\" callout, and a TL;DR.\n\n%s",
		topic, transcript.String(),
	)

	content, err := c.complete(ctx, []message{
		{Role: "system", Content: "You turn raw question-and-answer transcripts into tight, well-structured study notes."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(content) == "" {
		return emptySynthesisPlaceholder, nil
	}
	return content, nil
}

// complete sends one chat-completions request and returns the first choice.
func (c *OpenAI) complete(ctx context.Context, messages []message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("genai: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("genai: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai: request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("genai: failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("genai: API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("genai: no response choices returned")
	}

	return parsed.Choices[0].Message.Content, nil
}

// parseQuestionArray decodes a JSON array of strings, tolerating the code
// fences some models wrap around JSON despite instructions.
func parseQuestionArray(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var questions []string
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("genai: reply is not a JSON string array: %w", err)
	}
	if len(questions) < 5 {
		return nil, fmt.Errorf("genai: expected at least 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		questions[i] = strings.TrimSpace(q)
		if questions[i] == "" {
			return nil, fmt.Errorf("genai: question %d is empty", i)
		}
	}
	return questions, nil
}

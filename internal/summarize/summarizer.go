// Package summarize reformats cleaned article text through the
// generative-text service.
package summarize

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	u "github.com/jayt9/article-downloader/internal/utils"
)

// instruction is the fixed system prompt. The model must not invent
// content for pages it cannot read.
const instruction = `I am going to pass you text from an articles website that was cleaned of style, script, image and path elements.
Return only the article content and title in a clean format, clean any remaining html or anything else that doesn't belong.
If the article seems to be locked behind a login report that the content can't be accessed.`

// OpenAISummarizer calls the chat completion API once per article.
// No retry, no caching: every call is a fresh round trip.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

// New creates an OpenAISummarizer from the LLM configuration.
func New(cfg u.LLMConfig) *OpenAISummarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Summarize sends the cleaned text with the fixed instruction and
// returns the model's reply verbatim.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Package pipeline sequences one article request from fetch to sent
// email: fetch → clean → summarize → render → send → cleanup.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/jayt9/article-downloader/internal/clean"
	"github.com/jayt9/article-downloader/internal/domain"
	"github.com/jayt9/article-downloader/internal/fetch"
	"github.com/jayt9/article-downloader/internal/mailer"
	"github.com/jayt9/article-downloader/internal/render"
	"github.com/jayt9/article-downloader/internal/summarize"
	u "github.com/jayt9/article-downloader/internal/utils"
)

// Fetcher retrieves the raw page for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Cleaner turns raw HTML into plain text.
type Cleaner interface {
	Clean(html []byte) (string, error)
}

// Summarizer reformats cleaned text through the external model.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Renderer writes formatted text to a PDF file at path.
type Renderer interface {
	Render(content, path string) error
}

// Mailer delivers a prepared message.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Deps bundles the pipeline stages so tests can substitute fakes.
type Deps struct {
	Fetcher    Fetcher
	Cleaner    Cleaner
	Summarizer Summarizer
	Renderer   Renderer
	Mailer     Mailer
}

// Pipeline runs the article flow for one request. It holds no
// per-request state; concurrent Runs are independent.
type Pipeline struct {
	cfg  u.Config
	deps Deps
}

// New creates a Pipeline with explicit dependencies.
func New(cfg u.Config, deps Deps) *Pipeline {
	return &Pipeline{cfg: cfg, deps: deps}
}

// NewDefault wires the production stage implementations.
func NewDefault(cfg u.Config) *Pipeline {
	return New(cfg, Deps{
		Fetcher:    fetch.New(),
		Cleaner:    clean.New(),
		Summarizer: summarize.New(cfg.LLM),
		Renderer:   render.New(),
		Mailer:     mailer.New(cfg.SMTP),
	})
}

// Run processes one validated request. Credentials are checked before
// any network or rendering work. The ephemeral PDF is removed on every
// exit path once it exists; the removal never masks a stage error.
func (p *Pipeline) Run(ctx context.Context, url, email string) error {
	if p.cfg.SMTP.User == "" || p.cfg.SMTP.Password == "" {
		return domain.ErrMissingCredentials
	}

	raw, err := p.deps.Fetcher.Fetch(ctx, url)
	if err != nil {
		return &domain.FetchError{URL: url, Err: err}
	}

	text, err := p.deps.Cleaner.Clean(raw)
	if err != nil {
		return fmt.Errorf("clean article: %w", err)
	}

	formatted, err := p.deps.Summarizer.Summarize(ctx, text)
	if err != nil {
		return &domain.SummarizeError{Err: err}
	}

	tmp, err := os.CreateTemp("", "article-*.pdf")
	if err != nil {
		return &domain.RenderError{Err: err}
	}
	path := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			u.Warn("Temp file cleanup failed", "path", path, "error", err)
		}
	}()

	if err := p.deps.Renderer.Render(formatted, path); err != nil {
		return &domain.RenderError{Err: err}
	}

	msg := mailer.Message{
		From:           p.cfg.SMTP.User,
		To:             email,
		Subject:        "Article from " + url,
		Body:           "Please find the attached article.",
		AttachmentPath: path,
	}
	if err := p.deps.Mailer.Send(ctx, msg); err != nil {
		return &domain.DeliveryError{Err: err}
	}

	u.Info("Article processed", "url", url, "recipient", email)
	return nil
}

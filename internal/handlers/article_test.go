package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/jayt9/article-downloader/internal/mailer"
	"github.com/jayt9/article-downloader/internal/pipeline"
	u "github.com/jayt9/article-downloader/internal/utils"
)

type stubFetcher struct {
	calls int
	err   error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []byte("<html><body>article text</body></html>"), nil
}

type stubCleaner struct{}

func (stubCleaner) Clean(html []byte) (string, error) { return "cleaned", nil }

type stubSummarizer struct {
	err error
}

func (s stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "Formatted Article", nil
}

type stubRenderer struct{}

func (stubRenderer) Render(content, path string) error {
	return os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644)
}

type stubMailer struct {
	err error
}

func (s stubMailer) Send(ctx context.Context, msg mailer.Message) error { return s.err }

func testConfig() u.Config {
	var cfg u.Config
	cfg.SMTP.User = "sender@example.com"
	cfg.SMTP.Password = "secret"
	return cfg
}

func newTestApp(cfg u.Config, deps pipeline.Deps) *fiber.App {
	if deps.Fetcher == nil {
		deps.Fetcher = &stubFetcher{}
	}
	if deps.Cleaner == nil {
		deps.Cleaner = stubCleaner{}
	}
	if deps.Summarizer == nil {
		deps.Summarizer = stubSummarizer{}
	}
	if deps.Renderer == nil {
		deps.Renderer = stubRenderer{}
	}
	if deps.Mailer == nil {
		deps.Mailer = stubMailer{}
	}

	svc := NewArticleService(cfg, pipeline.New(cfg, deps))
	app := fiber.New()
	app.Get("/health", svc.HandleHealth)
	app.Post("/process-article", svc.HandleProcessArticle)
	return app
}

func postArticle(app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest("POST", "/process-article", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		return 0, err.Error()
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(data)
}

func TestHandleHealth_AlwaysHealthy(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), `"status":"healthy"`) {
		t.Fatalf("unexpected health body: %s", data)
	}
}

func TestHandleProcessArticle_RejectsBadURLBeforeFetching(t *testing.T) {
	fetcher := &stubFetcher{}
	app := newTestApp(testConfig(), pipeline.Deps{Fetcher: fetcher})

	status, body := postArticle(app, `{"url":"ftp://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad url, got %d (%s)", status, body)
	}
	if fetcher.calls != 0 {
		t.Fatalf("no network call may happen for invalid input")
	}
}

func TestHandleProcessArticle_RejectsBadEmailBeforeFetching(t *testing.T) {
	fetcher := &stubFetcher{}
	app := newTestApp(testConfig(), pipeline.Deps{Fetcher: fetcher})

	for _, email := range []string{"reader-at-example.com", "reader@examplecom", ""} {
		status, body := postArticle(app, `{"url":"https://example.com/a","email":"`+email+`"}`)
		if status != fiber.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for email %q, got %d (%s)", email, status, body)
		}
	}
	if fetcher.calls != 0 {
		t.Fatalf("no network call may happen for invalid input")
	}
}

func TestHandleProcessArticle_MalformedBodyIs422(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{})

	status, _ := postArticle(app, `{"url": `)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed body, got %d", status)
	}
}

func TestHandleProcessArticle_FetchFailureIs400(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{
		Fetcher: &stubFetcher{err: errors.New("connection refused")},
	})

	status, body := postArticle(app, `{"url":"https://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for fetch failure, got %d", status)
	}
	if !strings.Contains(body, "Failed to fetch article") {
		t.Fatalf("expected fetch failure detail, got %s", body)
	}
}

func TestHandleProcessArticle_SummarizeFailureIs500(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{
		Summarizer: stubSummarizer{err: errors.New("model overloaded")},
	})

	status, body := postArticle(app, `{"url":"https://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for summarize failure, got %d", status)
	}
	if !strings.Contains(body, "Failed to process article content") {
		t.Fatalf("expected summarize failure detail, got %s", body)
	}
}

func TestHandleProcessArticle_DeliveryFailureIs500(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{
		Mailer: stubMailer{err: errors.New("relay rejected sender")},
	})

	status, body := postArticle(app, `{"url":"https://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for delivery failure, got %d", status)
	}
	if !strings.Contains(body, "Failed to process or send article") {
		t.Fatalf("expected delivery failure detail, got %s", body)
	}
}

func TestHandleProcessArticle_MissingCredentialsIs500WithoutFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	var cfg u.Config // no credentials
	app := newTestApp(cfg, pipeline.Deps{Fetcher: fetcher})

	status, body := postArticle(app, `{"url":"https://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for missing credentials, got %d", status)
	}
	if !strings.Contains(body, "Email configuration is missing") {
		t.Fatalf("expected configuration detail, got %s", body)
	}
	if fetcher.calls != 0 {
		t.Fatalf("missing credentials must fail before fetching")
	}
}

func TestHandleProcessArticle_Success(t *testing.T) {
	app := newTestApp(testConfig(), pipeline.Deps{})

	status, body := postArticle(app, `{"url":"https://example.com/a","email":"reader@example.com"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "Article has been processed and sent to your email!") {
		t.Fatalf("unexpected success body: %s", body)
	}
}

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		name  string
		req   ArticleRequest
		valid bool
	}{
		{name: "https url", req: ArticleRequest{URL: "https://example.com", Email: "a@b.com"}, valid: true},
		{name: "http url", req: ArticleRequest{URL: "http://example.com", Email: "a@b.com"}, valid: true},
		{name: "missing scheme", req: ArticleRequest{URL: "example.com", Email: "a@b.com"}, valid: false},
		{name: "ftp scheme", req: ArticleRequest{URL: "ftp://example.com", Email: "a@b.com"}, valid: false},
		{name: "email without at", req: ArticleRequest{URL: "https://example.com", Email: "a.b.com"}, valid: false},
		{name: "email without dot", req: ArticleRequest{URL: "https://example.com", Email: "a@bcom"}, valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

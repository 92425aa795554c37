package fetch

import (
	"context"

	"github.com/rs/zerolog"
)

// RenderFunc renders a page and returns its HTML.
type RenderFunc func(ctx context.Context, url string) (string, error)

// JobFetcher turns a job posting URL into plain job description text.
type JobFetcher struct {
	Options *Options
	// Render is used for the browser fallback; nil means headless Chrome.
	Render RenderFunc
	Logger zerolog.Logger
}

// JobText fetches urlStr with default settings and returns the posting text.
func JobText(ctx context.Context, urlStr string, opts *Options) (string, error) {
	f := &JobFetcher{Options: opts, Logger: zerolog.Nop()}
	return f.JobText(ctx, urlStr)
}

// JobText fetches the posting over HTTP and extracts its main text. When the
// text is shorter than MinContentLength and browser mode is enabled, the page
// is rendered headlessly and extraction is retried.
func (f *JobFetcher) JobText(ctx context.Context, urlStr string) (string, error) {
	opts := f.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	board := DetectBoard(urlStr)
	content, noise := Selectors(board)
	log := f.Logger.With().Str("url", urlStr).Str("board", string(board)).Logger()

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	log.Debug().Int("chars", len(text)).Msg("job posting fetched")

	if opts.UseBrowser && ShouldUseBrowser(text) {
		log.Info().Msg("posting text too short, rendering with headless browser")
		render := f.Render
		if render == nil {
			timeout := opts.Timeout
			if timeout <= 0 {
				timeout = DefaultTimeout
			}
			render = func(ctx context.Context, url string) (string, error) {
				return WithBrowser(ctx, url, timeout)
			}
		}

		html, err := render(ctx, urlStr)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "browser fallback failed", Cause: err}
		}
		rendered, err := ExtractMainText(html, content, noise...)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to extract rendered text", Cause: err}
		}
		if len(rendered) > len(text) {
			text = rendered
		}
	}

	if text == "" {
		return "", &Error{URL: urlStr, Message: "no job description text found"}
	}
	return text, nil
}

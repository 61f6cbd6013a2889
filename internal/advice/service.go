// Package advice backs the storefront's fashion-advice box: one outbound
// call to a generative-text model, wrapped in a fixed stylist prompt, with
// friendly fallbacks for the two ways it can go wrong.
package advice

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

const (
	// FallbackNoCredential is shown when no API key is configured. The
	// service never attempts a call in that state.
	FallbackNoCredential = "المعذرة، ما أقدر اتصل بالخادم حالياً. تأكد من مفتاح API."
	// FallbackCallFailed is shown when the remote call fails; the cause is
	// logged, never surfaced.
	FallbackCallFailed = "صار فيه خطأ بسيط، حاول مرة ثانية يا غالي."
	// FallbackEmptyAnswer is shown when the model returns nothing useful.
	FallbackEmptyAnswer = "ما فهمت عليك، ممكن توضح أكثر؟"
)

const promptTemplate = `أنت مساعد تسوق شخصي سعودي خبير في الموضة والأزياء في متجر "فخامة".
تتحدث باللهجة السعودية الودية والمحترمة.
User Query: %s
جاوب باختصار وبنصائح مفيدة تساعد المستخدم يختار المنتج المناسب. اقترح عليه أنواع منتجات عامة.`

// Generator produces advisory text for a rendered prompt. Implementations
// wrap a real model client; tests substitute a recording stub.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Answer is the widget's response: raw model text plus a sanitised HTML
// rendering of the markdown the model tends to emit.
type Answer struct {
	Text string
	HTML template.HTML
	// Fallback reports whether Text is one of the fixed apology strings
	// rather than model output.
	Fallback bool
}

// Service performs the advice exchange. A nil generator means no credential
// was configured, which is a normal runtime state, not an error.
type Service struct {
	gen       Generator
	logger    *zap.Logger
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewService builds the advice service. gen may be nil.
func NewService(gen Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gen:       gen,
		logger:    logger,
		markdown:  goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Configured reports whether a generator is wired in.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// Ask runs the advice exchange. It is total: every outcome, including
// remote failure, comes back as a friendly Answer rather than an error.
func (s *Service) Ask(ctx context.Context, query string) Answer {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.fallback(FallbackEmptyAnswer)
	}

	if s.gen == nil {
		return s.fallback(FallbackNoCredential)
	}

	text, err := s.gen.GenerateText(ctx, fmt.Sprintf(promptTemplate, query))
	if err != nil {
		s.logger.Error("advice generation failed", zap.Error(err))
		return s.fallback(FallbackCallFailed)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return s.fallback(FallbackEmptyAnswer)
	}

	return Answer{Text: text, HTML: s.render(text)}
}

func (s *Service) fallback(msg string) Answer {
	return Answer{Text: msg, HTML: s.render(msg), Fallback: true}
}

// render converts the model's markdown into sanitised HTML. Rendering
// failures degrade to escaped plain text.
func (s *Service) render(text string) template.HTML {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &buf); err != nil {
		s.logger.Warn("advice markdown render failed", zap.Error(err))
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(s.sanitizer.SanitizeBytes(buf.Bytes()))
}

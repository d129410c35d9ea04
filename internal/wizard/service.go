package wizard

import (
	"context"
	"html"
	"net/http"
	"strings"
)

const (
	DefaultTitle      = "Web CGI Wizard"
	DefaultStylesheet = "style.css"
)

// Request carries the parts of an HTTP request the wizard reads.
type Request struct {
	Method   string
	RawQuery string
	Body     string
}

// Page is the outcome of one request, ready to be written out.
type Page struct {
	Title      string
	Stylesheet string
	Step       int
	Kind       Kind
	Indicator  string
	Content    string
	Navigation string
	Rejected   *ValidationError
}

// Service handles wizard requests. Each call builds its own Wizard, so a
// Service can be shared freely.
type Service struct {
	Title      string
	Stylesheet string
	Options    Options
}

// NewService returns a service with the default title and stylesheet.
func NewService(opts Options) *Service {
	return &Service{Title: DefaultTitle, Stylesheet: DefaultStylesheet, Options: opts}
}

// Handle runs one request through a fresh wizard. The form body is applied
// first, then a step query parameter, then reset=1, so a query step
// overrides a posted one and a reset always lands on step 1.
func (s *Service) Handle(ctx context.Context, req Request) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	w := New(s.Options)

	if strings.EqualFold(req.Method, http.MethodPost) && req.Body != "" {
		if err := w.ProcessFormData(req.Body); err != nil {
			return Page{}, err
		}
	}

	query := ParseForm(req.RawQuery)
	if raw, ok := Lookup(query, "step"); ok {
		n, err := ParseStep(raw)
		if err != nil {
			return Page{}, err
		}
		w.SetCurrentStep(n)
	}
	if reset, _ := Lookup(query, "reset"); reset == "1" {
		w.Reset()
	}

	return Page{
		Title:      s.title(),
		Stylesheet: s.stylesheet(),
		Step:       w.CurrentStep(),
		Kind:       w.Step(w.CurrentStep()).Kind,
		Indicator:  w.RenderStepsIndicator(),
		Content:    w.RenderCurrentStep(),
		Navigation: w.RenderNavigation(),
		Rejected:   w.Rejected(),
	}, nil
}

func (s *Service) title() string {
	if strings.TrimSpace(s.Title) == "" {
		return DefaultTitle
	}
	return s.Title
}

func (s *Service) stylesheet() string {
	if strings.TrimSpace(s.Stylesheet) == "" {
		return DefaultStylesheet
	}
	return s.Stylesheet
}

// HTML renders the complete document.
func (p Page) HTML() string {
	title := html.EscapeString(p.Title)
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset='utf-8'><meta name='viewport' content='width=device-width, initial-scale=1'>")
	b.WriteString("<title>" + title + "</title>")
	b.WriteString("<link rel='stylesheet' href='" + html.EscapeString(p.Stylesheet) + "'>")
	b.WriteString("</head><body><div class='container'>")
	b.WriteString("<h1>" + title + "</h1>")
	b.WriteString(p.Indicator)
	b.WriteString(p.Content)
	b.WriteString(p.Navigation)
	b.WriteString("</div></body></html>")
	return b.String()
}

package wizard

import (
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

// Kind identifies which screen a Step represents.
type Kind int

const (
	KindProjectName Kind = iota + 1
	KindLanguage
	KindFeatures
	KindSummary
)

func (k Kind) String() string {
	switch k {
	case KindProjectName:
		return "project_name"
	case KindLanguage:
		return "language"
	case KindFeatures:
		return "features"
	case KindSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// MaxProjectNameLen is the longest accepted project name, in characters.
const MaxProjectNameLen = 50

// Languages are the runtimes offered on the language screen.
var Languages = []string{"C++", "Python", "Perl", "Bash"}

// Features are the optional capabilities offered on the features screen.
var Features = []string{"Form handling", "File upload", "Database connection", "Session management", "Templating"}

// Step is one screen of the wizard. The Kind selects the behaviour of
// Render, ProcessInput and Validate; only the fields for that kind are used.
type Step struct {
	Kind        Kind
	Number      int
	Title       string
	Description string

	name     string
	language string
	features []string

	// data is the wizard's answer store. Steps only read from it.
	data Reader
	// problem is shown above the form after a rejected submission.
	problem string
}

// NewProjectNameStep builds the first screen.
func NewProjectNameStep(number int, data Reader) *Step {
	return &Step{
		Kind:        KindProjectName,
		Number:      number,
		Title:       fmt.Sprintf("Step %d: Define your project", number),
		Description: fmt.Sprintf("Start step by step from step %d. Give your web CGI project a name.", number),
		data:        data,
	}
}

// NewLanguageStep builds the runtime selection screen.
func NewLanguageStep(number int, data Reader) *Step {
	return &Step{
		Kind:        KindLanguage,
		Number:      number,
		Title:       fmt.Sprintf("Step %d: Choose a language/runtime", number),
		Description: "Select the runtime for your CGI-style app.",
		data:        data,
	}
}

// NewFeaturesStep builds the feature checklist screen.
func NewFeaturesStep(number int, data Reader) *Step {
	return &Step{
		Kind:        KindFeatures,
		Number:      number,
		Title:       fmt.Sprintf("Step %d: Pick features", number),
		Description: "Choose the features you want to include.",
		data:        data,
	}
}

// NewSummaryStep builds the read-only review screen.
func NewSummaryStep(number int, data Reader) *Step {
	return &Step{
		Kind:        KindSummary,
		Number:      number,
		Title:       fmt.Sprintf("Step %d: Summary", number),
		Description: "Review your selections",
		data:        data,
	}
}

// ProcessInput updates the selection from a raw value. Any string is
// accepted; Validate decides whether it is usable.
func (s *Step) ProcessInput(raw string) {
	switch s.Kind {
	case KindProjectName:
		s.name = raw
	case KindLanguage:
		s.language = raw
	case KindFeatures:
		s.features = SplitList(raw)
	case KindSummary:
		// read-only
	}
}

// Validate explains why the current selection is unusable, or returns nil.
func (s *Step) Validate() error {
	switch s.Kind {
	case KindProjectName:
		if s.name == "" {
			return &ValidationError{Step: s.Number, Field: KeyProjectName, Message: "Project name is required."}
		}
		if utf8.RuneCountInString(s.name) > MaxProjectNameLen {
			return &ValidationError{
				Step:    s.Number,
				Field:   KeyProjectName,
				Message: fmt.Sprintf("Project name must be at most %d characters.", MaxProjectNameLen),
			}
		}
	case KindLanguage:
		if !slices.Contains(Languages, s.language) {
			return &ValidationError{Step: s.Number, Field: KeyLanguage, Message: "Please choose one of the listed runtimes."}
		}
	}
	return nil
}

// IsValid reports whether the step would let the user move on.
func (s *Step) IsValid() bool {
	return s.Validate() == nil
}

// Selection returns the step's own state as it would be submitted.
func (s *Step) Selection() string {
	switch s.Kind {
	case KindProjectName:
		return s.name
	case KindLanguage:
		return s.language
	case KindFeatures:
		return strings.Join(s.features, ",")
	default:
		return ""
	}
}

// Render produces the HTML fragment for the step. It has no side effects.
func (s *Step) Render() string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(s.Title) + "</h2>")
	switch s.Kind {
	case KindProjectName:
		s.renderIntro(&b)
		b.WriteString("<form method='post'>")
		b.WriteString("<label>Project name<br><input type='text' name='project_name' value='" +
			html.EscapeString(s.name) + "' maxlength='" + strconv.Itoa(MaxProjectNameLen) + "' required></label><br>")
		s.renderCarry(&b, KeyLanguage, KeyFeatures)
		s.renderButtons(&b)
		b.WriteString("</form>")
	case KindLanguage:
		s.renderIntro(&b)
		b.WriteString("<form method='post'>")
		for _, lang := range Languages {
			b.WriteString("<label class='choice'><input type='radio' name='language' value='" +
				html.EscapeString(lang) + "'" + checked(lang == s.language) + "> " + html.EscapeString(lang) + "</label>")
		}
		s.renderCarry(&b, KeyProjectName, KeyFeatures)
		b.WriteString("<br>")
		s.renderButtons(&b)
		b.WriteString("</form>")
	case KindFeatures:
		s.renderIntro(&b)
		b.WriteString("<form method='post'>")
		for _, feature := range Features {
			b.WriteString("<label class='choice'><input type='checkbox' name='features[]' value='" +
				html.EscapeString(feature) + "'" + checked(slices.Contains(s.features, feature)) + "> " +
				html.EscapeString(feature) + "</label>")
		}
		s.renderCarry(&b, KeyProjectName, KeyLanguage)
		b.WriteString("<br>")
		s.renderButtons(&b)
		b.WriteString("</form>")
	case KindSummary:
		s.renderSummary(&b)
	}
	return b.String()
}

func (s *Step) renderIntro(b *strings.Builder) {
	b.WriteString("<p>" + html.EscapeString(s.Description) + "</p>")
	if s.problem != "" {
		b.WriteString("<p class='error'>" + html.EscapeString(s.problem) + "</p>")
	}
}

// renderCarry forwards answers owned by other steps as hidden fields, so
// they survive the next POST.
func (s *Step) renderCarry(b *strings.Builder, keys ...string) {
	b.WriteString("<input type='hidden' name='from' value='" + strconv.Itoa(s.Number) + "'>")
	if s.data == nil {
		return
	}
	for _, key := range keys {
		if !s.data.Has(key) {
			continue
		}
		if key == KeyFeatures {
			for _, feature := range SplitList(s.data.Get(key)) {
				b.WriteString("<input type='hidden' name='features[]' value='" + html.EscapeString(feature) + "'>")
			}
			continue
		}
		b.WriteString("<input type='hidden' name='" + key + "' value='" + html.EscapeString(s.data.Get(key)) + "'>")
	}
}

func (s *Step) renderButtons(b *strings.Builder) {
	if s.Number > 1 {
		b.WriteString("<button class='btn' type='submit' name='step' value='" + strconv.Itoa(s.Number-1) + "'>Back</button> ")
	}
	next := strconv.Itoa(s.Number + 1)
	b.WriteString("<button class='btn primary' type='submit' name='step' value='" + next + "'>Continue to Step " + next + "</button>")
}

func (s *Step) renderSummary(b *strings.Builder) {
	var name, language, features string
	if s.data != nil {
		name = s.data.Get(KeyProjectName)
		language = s.data.Get(KeyLanguage)
		features = s.data.Get(KeyFeatures)
	}
	b.WriteString("<div class='summary'>")
	b.WriteString("<p><strong>Project:</strong> " + html.EscapeString(name) + "</p>")
	if dir := slug.Make(name); dir != "" {
		b.WriteString("<p><strong>Directory:</strong> " + html.EscapeString(dir) + "</p>")
	}
	b.WriteString("<p><strong>Runtime:</strong> " + html.EscapeString(language) + "</p>")
	if list := SplitList(features); len(list) > 0 {
		b.WriteString("<p><strong>Features:</strong></p><ul>")
		for _, feature := range list {
			b.WriteString("<li>" + html.EscapeString(feature) + "</li>")
		}
		b.WriteString("</ul>")
	} else {
		b.WriteString("<p><strong>Features:</strong> None selected</p>")
	}
	b.WriteString("<p>You can restart the wizard or go back to change selections.</p>")
	b.WriteString("</div>")
}

func checked(on bool) string {
	if on {
		return " checked"
	}
	return ""
}

// SplitList splits a comma-joined list, dropping empty segments.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

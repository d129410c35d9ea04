// Package wizard implements the four-screen project setup flow: the answer
// store, the screens, the controller that sequences them and the request
// service that turns one HTTP round-trip into a rendered page.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Options tunes controller behaviour.
type Options struct {
	// EnforceValidation keeps a step current when its own form tries to move
	// forward with an invalid answer. When false any posted step is honoured.
	EnforceValidation bool
}

// Wizard owns the steps and the answers for a single request.
type Wizard struct {
	steps    []*Step
	data     *UserData
	current  int
	opts     Options
	rejected *ValidationError
}

// New builds a wizard positioned on the first step.
func New(opts Options) *Wizard {
	data := NewUserData()
	return &Wizard{
		steps: []*Step{
			NewProjectNameStep(1, data),
			NewLanguageStep(2, data),
			NewFeaturesStep(3, data),
			NewSummaryStep(4, data),
		},
		data:    data,
		current: 1,
		opts:    opts,
	}
}

// StepCount returns the number of steps.
func (w *Wizard) StepCount() int { return len(w.steps) }

// CurrentStep returns the 1-based active step.
func (w *Wizard) CurrentStep() int { return w.current }

// Step returns the step at the 1-based position n, or nil when out of range.
func (w *Wizard) Step(n int) *Step {
	if n < 1 || n > len(w.steps) {
		return nil
	}
	return w.steps[n-1]
}

// Data exposes the answer store.
func (w *Wizard) Data() *UserData { return w.data }

// Rejected returns the validation failure of the last submission, if any.
func (w *Wizard) Rejected() *ValidationError { return w.rejected }

// SetCurrentStep moves to step n. Out-of-range values are ignored.
func (w *Wizard) SetCurrentStep(n int) {
	if n >= 1 && n <= len(w.steps) {
		w.current = n
	}
}

// Reset clears every answer and returns to the first step.
func (w *Wizard) Reset() {
	w.data.Clear()
	for _, s := range w.steps {
		s.ProcessInput("")
		s.problem = ""
	}
	w.rejected = nil
	w.current = 1
}

// RenderCurrentStep renders the active step's fragment.
func (w *Wizard) RenderCurrentStep() string {
	return w.steps[w.current-1].Render()
}

// ProcessFormData applies an urlencoded form body. Answers are stored,
// distributed to their steps, and the requested step (if any) is applied.
// A step value that is not an integer aborts with ErrInvalidStep.
func (w *Wizard) ProcessFormData(body string) error {
	target, from := 0, 0
	for _, p := range ParseForm(body) {
		switch p.Key {
		case "step":
			n, err := ParseStep(p.Value)
			if err != nil {
				return err
			}
			if n >= 1 && n <= len(w.steps) {
				target = n
			}
		case "from":
			// Produced by our own forms; anything unreadable just disables gating.
			if n, err := strconv.Atoi(strings.TrimSpace(p.Value)); err == nil {
				from = n
			}
		case KeyProjectName, KeyLanguage:
			w.data.Set(p.Key, p.Value)
		case "features[]":
			features := w.data.Get(KeyFeatures)
			if features != "" {
				features += ","
			}
			w.data.Set(KeyFeatures, features+p.Value)
		}
	}
	w.distribute()

	if target == 0 {
		return nil
	}
	if w.opts.EnforceValidation && target > from {
		if origin := w.Step(from); origin != nil {
			if err := origin.Validate(); err != nil {
				var verr *ValidationError
				if errors.As(err, &verr) {
					w.rejected = verr
					origin.problem = verr.Message
				}
				w.SetCurrentStep(from)
				return nil
			}
		}
	}
	w.SetCurrentStep(target)
	return nil
}

// distribute hands stored answers to the steps that own them.
func (w *Wizard) distribute() {
	for _, s := range w.steps {
		switch s.Kind {
		case KindProjectName:
			s.ProcessInput(w.data.Get(KeyProjectName))
		case KindLanguage:
			s.ProcessInput(w.data.Get(KeyLanguage))
		case KindFeatures:
			s.ProcessInput(w.data.Get(KeyFeatures))
		}
	}
}

// RenderStepsIndicator renders the progress list.
func (w *Wizard) RenderStepsIndicator() string {
	var b strings.Builder
	b.WriteString("<ol class='steps'>")
	for i := range w.steps {
		n := i + 1
		cls := ""
		switch {
		case n == w.current:
			cls = "current"
		case n < w.current:
			cls = "done"
		}
		fmt.Fprintf(&b, "<li class='%s'>Step %d</li>", cls, n)
	}
	b.WriteString("</ol>")
	return b.String()
}

// RenderNavigation renders the Back/Next links, or Restart on the last step.
func (w *Wizard) RenderNavigation() string {
	var b strings.Builder
	b.WriteString("<div class='nav'>")
	if w.current > 1 {
		fmt.Fprintf(&b, "<a class='btn' href='?step=%d'>Back</a>", w.current-1)
	}
	if w.current < len(w.steps) {
		fmt.Fprintf(&b, "<a class='btn primary' href='?step=%d'>Next</a>", w.current+1)
	} else {
		b.WriteString("<a class='btn success' href='?reset=1'>Restart</a>")
	}
	b.WriteString("</div>")
	return b.String()
}

// ParseStep converts a submitted step value to an integer.
func ParseStep(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStep, raw)
	}
	return n, nil
}

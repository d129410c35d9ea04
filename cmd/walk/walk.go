package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"cgi-wizard/internal/wizard"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// maxAttempts bounds re-prompting when input keeps failing validation.
const maxAttempts = 3

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0969da"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e"))
)

// prompts maps each input step to the question asked for it.
var prompts = map[wizard.Kind]string{
	wizard.KindProjectName: "Enter project name: ",
	wizard.KindLanguage:    "Choose language (" + strings.Join(wizard.Languages, "/") + "): ",
	wizard.KindFeatures:    "Enter features (comma separated, optional): ",
}

var keys = map[wizard.Kind]string{
	wizard.KindProjectName: wizard.KeyProjectName,
	wizard.KindLanguage:    wizard.KeyLanguage,
	wizard.KindFeatures:    wizard.KeyFeatures,
}

// walk runs the console flow. Prompts go to term and the summary to out,
// so a yaml or json summary can be piped on its own.
func walk(in io.Reader, term, out io.Writer, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}

	w := wizard.New(wizard.Options{EnforceValidation: true})
	scanner := bufio.NewScanner(in)

	for n := 1; n <= w.StepCount(); n++ {
		step := w.Step(n)
		fmt.Fprintln(term, headingStyle.Render(step.Title))
		if step.Kind == wizard.KindSummary {
			break
		}
		if err := ask(scanner, term, step); err != nil {
			return err
		}
		w.Data().Set(keys[step.Kind], step.Selection())
		w.SetCurrentStep(n + 1)
		fmt.Fprintln(term)
	}

	return writeSummary(out, wizard.AnswersFrom(w.Data()), format)
}

// ask prompts until the step accepts the answer or attempts run out.
func ask(scanner *bufio.Scanner, out io.Writer, step *wizard.Step) error {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(out, prompts[step.Kind])
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return fmt.Errorf("%s: %w", step.Kind, io.ErrUnexpectedEOF)
		}
		step.ProcessInput(normalize(step.Kind, scanner.Text()))
		err := step.Validate()
		if err == nil {
			return nil
		}
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(out, errorStyle.Render(verr.Message))
		}
	}
	return fmt.Errorf("%s: no valid answer after %d attempts", step.Kind, maxAttempts)
}

// normalize tidies console input: names are trimmed, languages matched
// case-insensitively, and feature lists trimmed around commas.
func normalize(kind wizard.Kind, raw string) string {
	raw = strings.TrimSpace(raw)
	switch kind {
	case wizard.KindLanguage:
		for _, lang := range wizard.Languages {
			if strings.EqualFold(lang, raw) {
				return lang
			}
		}
	case wizard.KindFeatures:
		parts := strings.Split(raw, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return strings.Join(parts, ",")
	}
	return raw
}

func writeSummary(out io.Writer, answers wizard.Answers, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(answers); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(answers); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out, "=== SUMMARY ===")
	fmt.Fprintf(out, "Project: %s\n", answers.ProjectName)
	if answers.Directory != "" {
		fmt.Fprintf(out, "Directory: %s\n", answers.Directory)
	}
	fmt.Fprintf(out, "Language: %s\n", answers.Language)
	if len(answers.Features) == 0 {
		fmt.Fprintln(out, "Features: None selected")
	} else {
		fmt.Fprintf(out, "Features: %s\n", strings.Join(answers.Features, ", "))
	}
	return nil
}

package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleInitialGet(t *testing.T) {
	svc := NewService(Options{EnforceValidation: true})

	page, err := svc.Handle(context.Background(), Request{Method: "GET"})
	require.NoError(t, err)

	require.Equal(t, 1, page.Step)
	require.Equal(t, KindProjectName, page.Kind)
	require.Contains(t, page.Content, "name='project_name' value=''")
	require.Nil(t, page.Rejected)
}

func TestHandlePostAdvances(t *testing.T) {
	svc := NewService(Options{EnforceValidation: true})

	page, err := svc.Handle(context.Background(), Request{Method: "POST", Body: "step=2&project_name=Demo"})
	require.NoError(t, err)
	require.Equal(t, 2, page.Step)
	require.Contains(t, page.Content, "<input type='hidden' name='project_name' value='Demo'>")
}

func TestHandleHasNoServerSideMemory(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	_, err := svc.Handle(ctx, Request{Method: "POST", Body: "step=2&project_name=Demo"})
	require.NoError(t, err)

	page, err := svc.Handle(ctx, Request{Method: "GET", RawQuery: "step=4"})
	require.NoError(t, err)
	require.Equal(t, 4, page.Step)
	require.Contains(t, page.Content, "<p><strong>Project:</strong> </p>")

	forwarded, err := svc.Handle(ctx, Request{Method: "POST", Body: "project_name=Demo&step=4"})
	require.NoError(t, err)
	require.Contains(t, forwarded.Content, "<p><strong>Project:</strong> Demo</p>")
}

func TestHandleIgnoresBodyOnGet(t *testing.T) {
	svc := NewService(Options{})
	page, err := svc.Handle(context.Background(), Request{Method: "GET", Body: "step=3"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Step)
}

func TestHandleQueryStepOverridesForm(t *testing.T) {
	svc := NewService(Options{})
	page, err := svc.Handle(context.Background(), Request{Method: "POST", RawQuery: "step=3", Body: "step=2"})
	require.NoError(t, err)
	require.Equal(t, 3, page.Step)
}

func TestHandleQueryStepOutOfRangeIsIgnored(t *testing.T) {
	svc := NewService(Options{})
	page, err := svc.Handle(context.Background(), Request{Method: "POST", RawQuery: "step=7", Body: "step=2"})
	require.NoError(t, err)
	require.Equal(t, 2, page.Step)
}

func TestHandleResetAlwaysWins(t *testing.T) {
	svc := NewService(Options{})
	page, err := svc.Handle(context.Background(), Request{
		Method:   "POST",
		RawQuery: "reset=1&step=4",
		Body:     "project_name=Demo&step=3",
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.Step)
	require.Contains(t, page.Content, "name='project_name' value=''")
}

func TestHandleMalformedStep(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	_, err := svc.Handle(ctx, Request{Method: "GET", RawQuery: "step=two"})
	require.ErrorIs(t, err, ErrInvalidStep)

	_, err = svc.Handle(ctx, Request{Method: "POST", Body: "step=x"})
	require.ErrorIs(t, err, ErrInvalidStep)
}

func TestHandleReportsRejection(t *testing.T) {
	svc := NewService(Options{EnforceValidation: true})
	page, err := svc.Handle(context.Background(), Request{Method: "POST", Body: "project_name=&from=1&step=2"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Step)
	require.NotNil(t, page.Rejected)
}

func TestHandleCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewService(Options{}).Handle(ctx, Request{Method: "GET"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPageHTML(t *testing.T) {
	svc := &Service{Title: "Starter <Kit>", Stylesheet: "/assets/style.css"}
	page, err := svc.Handle(context.Background(), Request{Method: "GET", RawQuery: "step=2"})
	require.NoError(t, err)

	doc := page.HTML()
	require.True(t, strings.HasPrefix(doc, "<!DOCTYPE html><html><head><meta charset='utf-8'>"))
	require.Contains(t, doc, "<title>Starter &lt;Kit&gt;</title>")
	require.Contains(t, doc, "<link rel='stylesheet' href='/assets/style.css'>")
	require.Contains(t, doc, "<h1>Starter &lt;Kit&gt;</h1>")

	indicator := strings.Index(doc, "<ol class='steps'>")
	content := strings.Index(doc, "<h2>Step 2")
	nav := strings.Index(doc, "<div class='nav'>")
	require.True(t, indicator > 0 && indicator < content && content < nav, "indicator, step, navigation order")
	require.True(t, strings.HasSuffix(doc, "</div></body></html>"))
}

func TestServiceDefaults(t *testing.T) {
	page, err := (&Service{}).Handle(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, DefaultTitle, page.Title)
	require.Equal(t, DefaultStylesheet, page.Stylesheet)
}

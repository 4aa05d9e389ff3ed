package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/tui"
)

func TestMarkdown_Plain(t *testing.T) {
	env := setupTestDeps(t)
	ctx := context.Background()
	if err := env.wb.Write(ctx, "Week 1", sheet.MustParseRange("A12:G12"),
		sheet.Grid{{"2-1-2024", "14:30", "1:30:00", "R2D2 Research", "Review", "pr-12", "Clocksheet"}}); err != nil {
		t.Fatal(err)
	}

	Markdown(ctx, env.deps, "", MarkdownFlags{})

	env.expectSuccess(t)
	out := env.stdout.String()
	if !strings.Contains(out, "## Week 1") {
		t.Errorf("expected week heading, got %q", out)
	}
	if !strings.Contains(out, "|2-1-2024 |1:30:00 |![R](") {
		t.Errorf("expected substituted category, got %q", out)
	}
	if env.viewed != nil {
		t.Error("viewer should not open without a terminal")
	}
}

func TestMarkdown_All(t *testing.T) {
	env := setupTestDeps(t)

	Markdown(context.Background(), env.deps, "", MarkdownFlags{All: true})

	env.expectSuccess(t)
	if strings.Contains(env.stdout.String(), "## Template") {
		t.Error("first sheet should be left out")
	}
	if !strings.HasSuffix(env.stdout.String(), "<br>") {
		t.Errorf("expected joined output, got %q", env.stdout.String())
	}
}

func TestMarkdown_Viewer(t *testing.T) {
	env := setupTestDeps(t)
	env.deps.IsTerminal = func() bool { return true }
	env.deps.Config.TUI.Theme = "nord"

	Markdown(context.Background(), env.deps, "Week 1", MarkdownFlags{})

	env.expectSuccess(t)
	if env.viewed == nil {
		t.Fatal("expected viewer to open on a terminal")
	}
	if *env.viewed != (tui.Options{Sheet: "Week 1", Theme: "nord"}) {
		t.Errorf("viewer options = %+v", *env.viewed)
	}
	if env.stdout.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", env.stdout.String())
	}
}

func TestMarkdown_PlainOnTerminal(t *testing.T) {
	env := setupTestDeps(t)
	env.deps.IsTerminal = func() bool { return true }

	Markdown(context.Background(), env.deps, "", MarkdownFlags{Plain: true})

	env.expectSuccess(t)
	if env.viewed != nil {
		t.Error("--plain should skip the viewer")
	}
	if !strings.Contains(env.stdout.String(), "## Week 1") {
		t.Errorf("expected markdown output, got %q", env.stdout.String())
	}
}

func TestMarkdown_ViewerError(t *testing.T) {
	env := setupTestDeps(t)
	env.deps.IsTerminal = func() bool { return true }
	env.deps.View = func(ctx context.Context, src tui.Source, opts tui.Options) error {
		return errors.New("no tty")
	}

	Markdown(context.Background(), env.deps, "", MarkdownFlags{})

	env.expectFailure(t, "Failed to run the viewer", "--plain")
}

func TestMarkdown_UnknownSheet(t *testing.T) {
	env := setupTestDeps(t)

	Markdown(context.Background(), env.deps, "Week 9", MarkdownFlags{})

	env.expectFailure(t, "Failed to generate markdown")
}

package services

import (
  "context"
  "errors"
  "strings"
  "testing"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/logger"
)

type fakeGemini struct {
  text  string
  err   error
  calls int
}

func (f *fakeGemini) GenerateContent(ctx context.Context, contents []GeminiContent, cfg GenerationConfig) (string, error) {
  f.calls++
  if err := ctx.Err(); err != nil {
    return "", err
  }
  return f.text, f.err
}

func (f *fakeGemini) Model() string { return "fake-model" }

func newGenerationService(t *testing.T, ai GeminiClient) RoadmapGenerationService {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger init: %v", err)
  }
  return NewRoadmapGenerationService(log, ai, i18n.Default())
}

func stepKeywordsContain(keywords []string, want string) bool {
  for _, kw := range keywords {
    if kw == want {
      return true
    }
  }
  return false
}

func TestGenerateDraft_EmptyPathNameRejectedWithoutEndpointCall(t *testing.T) {
  ai := &fakeGemini{text: "{}"}
  svc := newGenerationService(t, ai)

  _, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "   ",
    Level:    "beginner",
    Language: "english",
  })
  if err == nil {
    t.Fatalf("expected error for empty path name")
  }
  if !apierr.Is(err, apierr.CodeInvalidInput) {
    t.Fatalf("expected invalid_input, got %v", err)
  }
  if ai.calls != 0 {
    t.Fatalf("endpoint should not be called, got %d calls", ai.calls)
  }
}

func TestGenerateDraft_EndpointFailureFallsBackForBeginner(t *testing.T) {
  ai := &fakeGemini{err: errors.New("connection refused")}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Web Development",
    Level:    "beginner",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("fallback path should not error: %v", err)
  }
  if !result.UsedFallback {
    t.Fatalf("expected fallback result")
  }
  if result.FallbackCause != apierr.CodeUpstreamUnavailable {
    t.Fatalf("expected upstream_unavailable cause, got %q", result.FallbackCause)
  }
  if len(result.Draft.Steps) != 5 {
    t.Fatalf("expected 5 beginner steps, got %d", len(result.Draft.Steps))
  }
  for i, step := range result.Draft.Steps {
    if !stepKeywordsContain(step.Keywords, "beginner") {
      t.Fatalf("step %d keywords missing level: %v", i, step.Keywords)
    }
    if step.OrderIndex != i {
      t.Fatalf("step %d has order index %d", i, step.OrderIndex)
    }
  }
  if result.Draft.Steps[0].Title != "HTML Fundamentals" {
    t.Fatalf("expected web topic match, got %q", result.Draft.Steps[0].Title)
  }
}

func TestGenerateDraft_ParsesFencedJSONInsideProse(t *testing.T) {
  ai := &fakeGemini{text: "Here is your roadmap!\n\n```json\n" +
    `{"title": "T", "description": "D", "steps": [{"title": "Step One"}]}` +
    "\n```\nGood luck!"}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Web Development",
    Level:    "beginner",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if result.UsedFallback {
    t.Fatalf("expected parsed result, got fallback (%s)", result.FallbackCause)
  }
  draft := result.Draft
  if draft.Title != "T" || draft.Description != "D" {
    t.Fatalf("unexpected header: %q / %q", draft.Title, draft.Description)
  }
  if len(draft.Steps) != 1 {
    t.Fatalf("expected 1 step, got %d", len(draft.Steps))
  }
  step := draft.Steps[0]
  if step.Title != "Step One" {
    t.Fatalf("unexpected step title %q", step.Title)
  }
  if !strings.Contains(step.Description, "Step One") {
    t.Fatalf("expected synthesized description mentioning the title, got %q", step.Description)
  }
  if step.EstimatedTime != "1-2 hours" {
    t.Fatalf("expected beginner default time, got %q", step.EstimatedTime)
  }
  if !stepKeywordsContain(step.Keywords, "Web Development") || !stepKeywordsContain(step.Keywords, "beginner") {
    t.Fatalf("expected default keywords, got %v", step.Keywords)
  }
}

func TestGenerateDraft_LabeledFenceWinsOverEarlierFence(t *testing.T) {
  ai := &fakeGemini{text: "```\nnot json at all\n```\n\n```json\n" +
    `{"title": "Real", "description": "Payload", "steps": [{"title": "A"}]}` +
    "\n```"}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Data Science",
    Level:    "intermediate",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if result.UsedFallback {
    t.Fatalf("expected labeled fence to parse, got fallback (%s)", result.FallbackCause)
  }
  if result.Draft.Title != "Real" {
    t.Fatalf("wrong candidate parsed: %q", result.Draft.Title)
  }
}

func TestGenerateDraft_UnparseableResponseFallsBack(t *testing.T) {
  ai := &fakeGemini{text: "Sorry, I cannot produce JSON today."}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Mobile Development",
    Level:    "advanced",
    Language: "french",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if !result.UsedFallback || result.FallbackCause != apierr.CodeUnparseableResponse {
    t.Fatalf("expected unparseable_response fallback, got %+v", result)
  }
  if len(result.Draft.Steps) != 7 {
    t.Fatalf("expected 7 advanced steps, got %d", len(result.Draft.Steps))
  }
}

func TestGenerateDraft_EmptyStepsFallsBack(t *testing.T) {
  ai := &fakeGemini{text: `{"title": "T", "description": "D", "steps": []}`}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Blockchain",
    Level:    "beginner",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if !result.UsedFallback || result.FallbackCause != apierr.CodeEmptyResult {
    t.Fatalf("expected empty_result fallback, got %+v", result)
  }
  if result.Draft.Steps[0].Title != "Core Concepts" {
    t.Fatalf("expected generic topic steps, got %q", result.Draft.Steps[0].Title)
  }
}

func TestGenerateDraft_SkipsStepsWithoutTitles(t *testing.T) {
  ai := &fakeGemini{text: `{"title": "T", "description": "D", "steps": [` +
    `{"title": ""}, {"title": "Kept"}, {"title": "   "}]}`}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Web Development",
    Level:    "beginner",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if result.UsedFallback {
    t.Fatalf("expected parsed result")
  }
  if len(result.Draft.Steps) != 1 || result.Draft.Steps[0].Title != "Kept" {
    t.Fatalf("expected only the titled step, got %+v", result.Draft.Steps)
  }
  if result.Draft.Steps[0].OrderIndex != 0 {
    t.Fatalf("order index should compact to 0, got %d", result.Draft.Steps[0].OrderIndex)
  }
}

func TestGenerateDraft_MarkdownStrippedFromPayload(t *testing.T) {
  ai := &fakeGemini{text: `{"title": "**Bold Title**", "description": "See [docs](http://x)", ` +
    `"steps": [{"title": "## Step", "description": "Use ` + "`go`" + ` daily"}]}`}
  svc := newGenerationService(t, ai)

  result, err := svc.GenerateDraft(context.Background(), GenerateRoadmapRequest{
    PathName: "Go",
    Level:    "beginner",
    Language: "english",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  draft := result.Draft
  if draft.Title != "Bold Title" {
    t.Fatalf("title not stripped: %q", draft.Title)
  }
  if draft.Description != "See docs" {
    t.Fatalf("description not stripped: %q", draft.Description)
  }
  if draft.Steps[0].Title != "Step" || draft.Steps[0].Description != "Use go daily" {
    t.Fatalf("step not stripped: %+v", draft.Steps[0])
  }
}

func TestGenerateDraft_CanceledContextIsNotAFallback(t *testing.T) {
  ai := &fakeGemini{text: "{}"}
  svc := newGenerationService(t, ai)

  ctx, cancel := context.WithCancel(context.Background())
  cancel()
  _, err := svc.GenerateDraft(ctx, GenerateRoadmapRequest{
    PathName: "Web Development",
    Level:    "beginner",
    Language: "english",
  })
  if !errors.Is(err, context.Canceled) {
    t.Fatalf("expected context.Canceled, got %v", err)
  }
}

func TestFallbackDraft_LocalizedTitleAndLevelCounts(t *testing.T) {
  bundle := i18n.Default()
  cases := []struct {
    level string
    count int
  }{
    {"beginner", 5},
    {"intermediate", 6},
    {"advanced", 7},
    {"unknown", 5},
  }
  for _, tc := range cases {
    draft := FallbackDraft("Data Science", tc.level, i18n.LangFrench, bundle)
    if len(draft.Steps) != tc.count {
      t.Fatalf("level %q: expected %d steps, got %d", tc.level, tc.count, len(draft.Steps))
    }
    if !strings.Contains(draft.Title, "Data Science") {
      t.Fatalf("title should carry the path name: %q", draft.Title)
    }
  }
}

func TestDefaultEstimatedTime(t *testing.T) {
  if got := defaultEstimatedTime("beginner"); got != "1-2 hours" {
    t.Fatalf("beginner: %q", got)
  }
  if got := defaultEstimatedTime("intermediate"); got != "3-4 hours" {
    t.Fatalf("intermediate: %q", got)
  }
  if got := defaultEstimatedTime("advanced"); got != "5-6 hours" {
    t.Fatalf("advanced: %q", got)
  }
  if got := defaultEstimatedTime(""); got != "1-2 hours" {
    t.Fatalf("default: %q", got)
  }
}

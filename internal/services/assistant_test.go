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

type captureGemini struct {
  contents []GeminiContent
  cfg      GenerationConfig
  text     string
  err      error
}

func (c *captureGemini) GenerateContent(ctx context.Context, contents []GeminiContent, cfg GenerationConfig) (string, error) {
  c.contents = contents
  c.cfg = cfg
  return c.text, c.err
}

func (c *captureGemini) Model() string { return "fake-model" }

func newAssistant(t *testing.T, ai GeminiClient) AssistantService {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger init: %v", err)
  }
  return NewAssistantService(log, ai)
}

func TestChat_MissingMessageRejected(t *testing.T) {
  svc := newAssistant(t, &captureGemini{text: "hi"})
  _, err := svc.Chat(context.Background(), &AssistantRequest{Message: "   "})
  if !apierr.Is(err, apierr.CodeInvalidInput) {
    t.Fatalf("expected invalid_input, got %v", err)
  }
}

func TestChat_PrependsSystemPromptWhenNoHistory(t *testing.T) {
  ai := &captureGemini{text: "Hello!"}
  svc := newAssistant(t, ai)

  _, err := svc.Chat(context.Background(), &AssistantRequest{
    Message:  "How do I start?",
    Language: "darija",
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(ai.contents) != 2 {
    t.Fatalf("expected prompt + message, got %d contents", len(ai.contents))
  }
  if ai.contents[0].Role != "model" || ai.contents[0].Text != assistantPromptDarija {
    t.Fatalf("expected darija system prompt first, got role=%q", ai.contents[0].Role)
  }
  if ai.contents[1].Role != "user" || ai.contents[1].Text != "How do I start?" {
    t.Fatalf("unexpected trailing message: %+v", ai.contents[1])
  }
}

func TestChat_MapsHistoryRoles(t *testing.T) {
  ai := &captureGemini{text: "sure"}
  svc := newAssistant(t, ai)

  _, err := svc.Chat(context.Background(), &AssistantRequest{
    Message:  "and then?",
    Language: "english",
    History: []ChatTurn{
      {Role: "assistant", Content: "welcome"},
      {Role: "user", Content: "teach me"},
      {Role: "assistant", Content: "start with variables"},
    },
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  // History already opens with a model turn, so no prompt is injected.
  roles := make([]string, 0, len(ai.contents))
  for _, c := range ai.contents {
    roles = append(roles, c.Role)
  }
  want := []string{"model", "user", "model", "user"}
  if len(roles) != len(want) {
    t.Fatalf("expected %d contents, got %v", len(want), roles)
  }
  for i := range want {
    if roles[i] != want[i] {
      t.Fatalf("content %d role = %q, want %q", i, roles[i], want[i])
    }
  }
  if ai.contents[len(ai.contents)-1].Text != "and then?" {
    t.Fatalf("current message must come last")
  }
}

func TestChat_GenerationConfig(t *testing.T) {
  ai := &captureGemini{text: "ok"}
  svc := newAssistant(t, ai)
  if _, err := svc.Chat(context.Background(), &AssistantRequest{Message: "hi"}); err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if ai.cfg.Temperature != 0.7 || ai.cfg.MaxOutputTokens != 2048 {
    t.Fatalf("unexpected generation config: %+v", ai.cfg)
  }
}

func TestChat_CleansReplyFormatting(t *testing.T) {
  ai := &captureGemini{text: "**Important**: use `fmt.Println`\n- one\n- two"}
  svc := newAssistant(t, ai)

  reply, err := svc.Chat(context.Background(), &AssistantRequest{Message: "print?"})
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if strings.ContainsAny(reply.Reply, "*`") {
    t.Fatalf("formatting not cleaned: %q", reply.Reply)
  }
  if !strings.Contains(reply.Reply, "fmt.Println") {
    t.Fatalf("code content lost: %q", reply.Reply)
  }
  if reply.Model != "fake-model" {
    t.Fatalf("unexpected model: %q", reply.Model)
  }
}

func TestChat_UpstreamFailureIs502(t *testing.T) {
  ai := &captureGemini{err: errors.New("boom")}
  svc := newAssistant(t, ai)

  _, err := svc.Chat(context.Background(), &AssistantRequest{Message: "hi"})
  if !apierr.Is(err, apierr.CodeUpstreamUnavailable) {
    t.Fatalf("expected upstream_unavailable, got %v", err)
  }
  if apierr.Status(err) != 502 {
    t.Fatalf("expected 502, got %d", apierr.Status(err))
  }
}

func TestSystemPrompt_PerLanguage(t *testing.T) {
  cases := []struct {
    lang i18n.Language
    want string
  }{
    {i18n.LangEnglish, assistantPromptEnglish},
    {i18n.LangFrench, assistantPromptFrench},
    {i18n.LangArabic, assistantPromptArabic},
    {i18n.LangDarija, assistantPromptDarija},
  }
  for _, tc := range cases {
    if got := systemPrompt(tc.lang); got != tc.want {
      t.Fatalf("wrong prompt for %q", tc.lang)
    }
  }
}

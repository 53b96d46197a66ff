package services

import (
  "context"
  "encoding/json"
  "fmt"
  "regexp"
  "strings"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/sanitize"
  "github.com/darijacode/hub-backend/internal/types"
)

type GenerateRoadmapRequest struct {
  PathName     string `json:"pathName"`
  Level        string `json:"level"`
  Language     string `json:"language"`
  CustomPrompt string `json:"customPrompt"`
}

// GenerationResult carries the draft plus how it was produced. When the
// generation endpoint fails or returns unusable output the draft comes from
// the local template bank and FallbackCause records the triggering error
// code, so callers can show a non-fatal notice instead of an error.
type GenerationResult struct {
  Draft         *types.DraftRoadmap `json:"draft"`
  UsedFallback  bool                `json:"used_fallback"`
  FallbackCause string              `json:"fallback_cause,omitempty"`
}

type RoadmapGenerationService interface {
  GenerateDraft(ctx context.Context, req GenerateRoadmapRequest) (*GenerationResult, error)
}

type roadmapGenerationService struct {
  log    *logger.Logger
  ai     GeminiClient
  bundle *i18n.Bundle
}

func NewRoadmapGenerationService(baseLog *logger.Logger, ai GeminiClient, bundle *i18n.Bundle) RoadmapGenerationService {
  return &roadmapGenerationService{
    log:    baseLog.With("service", "RoadmapGenerationService"),
    ai:     ai,
    bundle: bundle,
  }
}

// GenerateDraft turns {pathName, level, language, customPrompt} into a draft
// roadmap. An empty path name is fatal and never reaches the endpoint; any
// endpoint, parse, or empty-steps failure falls back to the template bank.
// Each call is independent: the previous draft is simply discarded by the
// caller, and a canceled ctx aborts the in-flight endpoint call.
func (s *roadmapGenerationService) GenerateDraft(ctx context.Context, req GenerateRoadmapRequest) (*GenerationResult, error) {
  req.PathName = strings.TrimSpace(req.PathName)
  if req.PathName == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("path name is required"))
  }

  lang := i18n.ParseLanguage(req.Language)

  instruction := buildRoadmapInstruction(req)
  text, err := s.ai.GenerateContent(ctx, []GeminiContent{
    {Role: "user", Text: instruction},
  }, GenerationConfig{Temperature: 0.4, MaxOutputTokens: 4096})
  if err != nil {
    if ctx.Err() != nil {
      return nil, ctx.Err()
    }
    s.log.Warn("Generation endpoint failed, using fallback", "path", req.PathName, "error", err)
    return s.fallbackResult(req, lang, apierr.CodeUpstreamUnavailable), nil
  }

  payload, err := parseRoadmapPayload(text)
  if err != nil {
    s.log.Warn("Generation response unparseable, using fallback", "path", req.PathName, "error", err)
    return s.fallbackResult(req, lang, apierr.CodeUnparseableResponse), nil
  }

  draft := s.buildDraft(payload, req, lang)
  if len(draft.Steps) == 0 {
    s.log.Warn("Generation response had no usable steps, using fallback", "path", req.PathName)
    return s.fallbackResult(req, lang, apierr.CodeEmptyResult), nil
  }

  return &GenerationResult{Draft: draft}, nil
}

func (s *roadmapGenerationService) fallbackResult(req GenerateRoadmapRequest, lang i18n.Language, cause string) *GenerationResult {
  return &GenerationResult{
    Draft:         FallbackDraft(req.PathName, req.Level, lang, s.bundle),
    UsedFallback:  true,
    FallbackCause: cause,
  }
}

func buildRoadmapInstruction(req GenerateRoadmapRequest) string {
  var b strings.Builder
  fmt.Fprintf(&b, "Create a learning roadmap for %q at the %s level.\n", req.PathName, req.Level)
  fmt.Fprintf(&b, "Write all titles and descriptions in %s.\n", req.Language)
  if goal := strings.TrimSpace(req.CustomPrompt); goal != "" {
    fmt.Fprintf(&b, "Learner goal: %s\n", goal)
  }
  b.WriteString("\nRespond with a single JSON object of this exact shape and nothing else:\n")
  b.WriteString(`{"title": string, "description": string, "steps": [{"title": string, "description": string, "estimated_time": string, "keywords": [string]}]}`)
  b.WriteString("\nOrder the steps from first to last. Use 5 to 8 steps.")
  return b.String()
}

type roadmapPayload struct {
  Title       string        `json:"title"`
  Description string        `json:"description"`
  Steps       []stepPayload `json:"steps"`
}

type stepPayload struct {
  Title         string   `json:"title"`
  Description   string   `json:"description"`
  EstimatedTime string   `json:"estimated_time"`
  Keywords      []string `json:"keywords"`
}

var (
  fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")
  fencedAnyRe  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")
)

// parseRoadmapPayload recovers a JSON object from free text. Precedence: a
// fenced block labeled json, then any fenced block, then the raw text. The
// first candidate that parses wins.
func parseRoadmapPayload(text string) (*roadmapPayload, error) {
  candidates := make([]string, 0, 3)
  if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
    candidates = append(candidates, m[1])
  }
  if m := fencedAnyRe.FindStringSubmatch(text); m != nil {
    candidates = append(candidates, m[1])
  }
  candidates = append(candidates, text)

  var lastErr error
  for _, cand := range candidates {
    cand = strings.TrimSpace(cand)
    if cand == "" {
      continue
    }
    var payload roadmapPayload
    if err := json.Unmarshal([]byte(cand), &payload); err != nil {
      lastErr = err
      continue
    }
    return &payload, nil
  }
  if lastErr == nil {
    lastErr = fmt.Errorf("empty response")
  }
  return nil, fmt.Errorf("no JSON object found in response: %w", lastErr)
}

// buildDraft repairs the parsed payload into a well-formed draft: every step
// gets a description, an estimated time and keywords, order indexes are
// assigned from array position, and all text is stripped of markdown.
func (s *roadmapGenerationService) buildDraft(payload *roadmapPayload, req GenerateRoadmapRequest, lang i18n.Language) *types.DraftRoadmap {
  title := sanitize.Strip(payload.Title)
  if title == "" {
    title = s.bundle.T(lang, "roadmap.default_title", i18n.Params{
      "path":  req.PathName,
      "level": req.Level,
    })
  }
  description := sanitize.Strip(payload.Description)
  if description == "" {
    description = s.bundle.T(lang, "roadmap.default_description", i18n.Params{
      "path":     req.PathName,
      "level":    req.Level,
      "language": req.Language,
    })
  }

  draft := &types.DraftRoadmap{Title: title, Description: description}
  for _, sp := range payload.Steps {
    stepTitle := sanitize.Strip(sp.Title)
    if stepTitle == "" {
      continue
    }
    stepDesc := sanitize.Strip(sp.Description)
    if stepDesc == "" {
      stepDesc = s.bundle.T(lang, "roadmap.default_step_description", i18n.Params{"title": stepTitle})
    }
    estimated := strings.TrimSpace(sp.EstimatedTime)
    if estimated == "" {
      estimated = defaultEstimatedTime(req.Level)
    }
    keywords := sp.Keywords
    if len(keywords) == 0 {
      keywords = []string{req.PathName, req.Level}
    }
    draft.Steps = append(draft.Steps, types.DraftStep{
      Title:         stepTitle,
      Description:   stepDesc,
      OrderIndex:    len(draft.Steps),
      EstimatedTime: estimated,
      Keywords:      keywords,
    })
  }
  return draft
}

// defaultEstimatedTime is the fixed per-level table used when the model
// omits estimated_time.
func defaultEstimatedTime(level string) string {
  switch level {
  case types.LevelIntermediate:
    return "3-4 hours"
  case types.LevelAdvanced:
    return "5-6 hours"
  default:
    return "1-2 hours"
  }
}

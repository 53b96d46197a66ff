package services

import (
  "context"
  "fmt"
  "regexp"
  "strings"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/logger"
)

// ChatTurn is one prior exchange in the conversation as the client replays
// it. Role is "user" or "assistant"; anything else maps to the model side.
type ChatTurn struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

type AssistantRequest struct {
  Message  string     `json:"message"`
  Language string     `json:"language"`
  History  []ChatTurn `json:"chatHistory"`
}

type AssistantReply struct {
  Reply string `json:"reply"`
  Model string `json:"model"`
}

type AssistantService interface {
  Chat(ctx context.Context, req *AssistantRequest) (*AssistantReply, error)
}

type assistantService struct {
  log *logger.Logger
  ai  GeminiClient
}

func NewAssistantService(baseLog *logger.Logger, ai GeminiClient) AssistantService {
  return &assistantService{
    log: baseLog.With("service", "AssistantService"),
    ai:  ai,
  }
}

const assistantPromptEnglish = `You are an intelligent and friendly assistant specialized in programming. Your mission is to help users learn programming in English.
You should answer users' questions about programming in English.
Be encouraging, patient, and supportive of users of all skill levels.
When asked to provide multiple options, write the answers without using asterisks, bullets, or any formatting marks.
Always give the answer directly without using formatting symbols.`

const assistantPromptFrench = `Vous êtes un assistant intelligent et amical spécialisé dans la programmation. Votre mission est d'aider les utilisateurs à apprendre la programmation en français.
Vous devez répondre aux questions des utilisateurs sur la programmation en français.
S'il y a des termes techniques qui n'ont pas de traduction directe en français, utilisez le terme anglais avec une brève explication.
Soyez encourageant, patient et solidaire des utilisateurs de tous niveaux de compétence.
Lorsqu'on vous demande de fournir plusieurs options, écrivez les réponses sans utiliser d'astérisques, de tirets ou d'autres marques de formatage.
Donnez toujours la réponse directement sans utiliser de symboles de formatage.`

const assistantPromptArabic = `أنت مساعد ذكي ودود متخصص في البرمجة. مهمتك هي مساعدة المستخدمين على تعلم البرمجة باللغة العربية.
يجب عليك الإجابة على أسئلة المستخدمين حول البرمجة بالعربية.
إذا كان هناك مصطلحات تقنية لا يوجد لها ترجمة مباشرة في العربية، فاستخدم المصطلح الإنجليزي مع شرح بسيط.
كن مشجعا، صبورا، وداعما للمستخدمين على مختلف مستويات المهارة.
عندما يُطلب منك تقديم خيارات متعددة، اكتب الإجابات بدون استخدام علامات النجمة أو الشرطات أو أي علامات تنسيق.
قم دائمًا بإعطاء الإجابة مباشرة دون استخدام رموز التنسيق.`

const assistantPromptDarija = `أنت مساعد ذكي ودود متخصص في البرمجة. مهمتك هي مساعدة المستخدمين على تعلم البرمجة باللهجة المغربية (الدارجة).
يجب عليك الإجابة على أسئلة المستخدمين حول البرمجة بالدارجة المغربية.
إذا كان هناك مصطلحات تقنية لا يوجد لها ترجمة مباشرة في الدارجة، فاستخدم المصطلح الإنجليزي مع شرح بسيط.
كن مشجعا، صبورا، وداعما للمستخدمين على مختلف مستويات المهارة.
عندما يُطلب منك تقديم خيارات متعددة، اكتب الإجابات بدون استخدام علامات النجمة أو الشرطات أو أي علامات تنسيق.
قم دائمًا بإعطاء الإجابة مباشرة دون استخدام رموز التنسيق.`

func systemPrompt(lang i18n.Language) string {
  switch lang {
  case i18n.LangDarija:
    return assistantPromptDarija
  case i18n.LangArabic:
    return assistantPromptArabic
  case i18n.LangFrench:
    return assistantPromptFrench
  default:
    return assistantPromptEnglish
  }
}

var (
  replyEmphasisRe = regexp.MustCompile(`\*\*?(.*?)\*\*?`)
  replyBulletRe   = regexp.MustCompile(`(?m)^\s*[*\-]\s+`)
  replyBacktickRe = regexp.MustCompile("`([^`]+)`")
)

// cleanReply strips the markdown the model emits despite being told not to.
func cleanReply(text string) string {
  cleaned := replyEmphasisRe.ReplaceAllString(text, "$1")
  cleaned = replyBulletRe.ReplaceAllString(cleaned, "")
  cleaned = replyBacktickRe.ReplaceAllString(cleaned, "$1")
  return cleaned
}

// buildContents replays the prior conversation for the model. The system
// prompt is injected as an opening model turn when the history does not
// already carry one.
func buildContents(req *AssistantRequest, lang i18n.Language) []GeminiContent {
  contents := make([]GeminiContent, 0, len(req.History)+2)
  for _, turn := range req.History {
    role := "model"
    if turn.Role == "user" {
      role = "user"
    }
    contents = append(contents, GeminiContent{Role: role, Text: turn.Content})
  }
  if len(contents) == 0 || contents[0].Role != "model" {
    contents = append([]GeminiContent{{Role: "model", Text: systemPrompt(lang)}}, contents...)
  }
  contents = append(contents, GeminiContent{Role: "user", Text: req.Message})
  return contents
}

func (s *assistantService) Chat(ctx context.Context, req *AssistantRequest) (*AssistantReply, error) {
  if req == nil || strings.TrimSpace(req.Message) == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("message is required"))
  }
  lang := i18n.ParseLanguage(req.Language)

  contents := buildContents(req, lang)
  text, err := s.ai.GenerateContent(ctx, contents, GenerationConfig{
    Temperature:     0.7,
    MaxOutputTokens: 2048,
  })
  if err != nil {
    if ctx.Err() != nil {
      return nil, ctx.Err()
    }
    s.log.Error("Assistant request failed", "language", string(lang), "error", err)
    return nil, apierr.UpstreamUnavailable(fmt.Errorf("assistant unavailable: %w", err))
  }
  if strings.TrimSpace(text) == "" {
    return nil, apierr.UpstreamUnavailable(fmt.Errorf("assistant returned no text"))
  }

  return &AssistantReply{Reply: cleanReply(text), Model: s.ai.Model()}, nil
}

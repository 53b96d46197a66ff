package services

import (
  "strings"

  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/types"
)

// fallbackTopic is a canned step sequence for one coarse domain. Step titles
// stay in technical English terms; descriptions are localized through the
// catalog when the draft is assembled.
type fallbackTopic struct {
  match string
  steps []fallbackStep
}

type fallbackStep struct {
  title    string
  keywords []string
}

var fallbackTopics = []fallbackTopic{
  {
    match: "web",
    steps: []fallbackStep{
      {title: "HTML Fundamentals", keywords: []string{"HTML", "semantic markup"}},
      {title: "CSS and Responsive Layouts", keywords: []string{"CSS", "flexbox", "responsive design"}},
      {title: "JavaScript Basics", keywords: []string{"JavaScript", "DOM"}},
      {title: "Building Interactive Pages", keywords: []string{"events", "forms", "fetch"}},
      {title: "A Frontend Framework", keywords: []string{"components", "state management"}},
      {title: "Backend Basics and APIs", keywords: []string{"HTTP", "REST", "databases"}},
      {title: "Deploying a Full Project", keywords: []string{"hosting", "CI", "domains"}},
    },
  },
  {
    match: "data",
    steps: []fallbackStep{
      {title: "Python Fundamentals", keywords: []string{"Python", "syntax"}},
      {title: "Working with Data Structures", keywords: []string{"lists", "dictionaries", "pandas"}},
      {title: "Data Cleaning and Exploration", keywords: []string{"pandas", "missing values"}},
      {title: "Data Visualization", keywords: []string{"matplotlib", "charts"}},
      {title: "Statistics Essentials", keywords: []string{"distributions", "hypothesis testing"}},
      {title: "Machine Learning Basics", keywords: []string{"scikit-learn", "regression", "classification"}},
      {title: "A Complete Analysis Project", keywords: []string{"datasets", "reporting"}},
    },
  },
  {
    match: "mobile",
    steps: []fallbackStep{
      {title: "Programming Fundamentals", keywords: []string{"variables", "functions", "types"}},
      {title: "Mobile UI Building Blocks", keywords: []string{"layouts", "widgets", "navigation"}},
      {title: "State and Data Flow", keywords: []string{"state", "lifecycle"}},
      {title: "Networking and Storage", keywords: []string{"REST", "local storage"}},
      {title: "Device Features", keywords: []string{"camera", "location", "notifications"}},
      {title: "Testing and Debugging", keywords: []string{"unit tests", "emulators"}},
      {title: "Publishing Your App", keywords: []string{"app store", "play store", "signing"}},
    },
  },
}

var fallbackGenericSteps = []fallbackStep{
  {title: "Core Concepts", keywords: []string{"fundamentals", "terminology"}},
  {title: "Setting Up Your Tools", keywords: []string{"environment", "tooling"}},
  {title: "First Guided Exercises", keywords: []string{"practice", "basics"}},
  {title: "Intermediate Techniques", keywords: []string{"patterns", "best practices"}},
  {title: "A Small Real Project", keywords: []string{"project", "portfolio"}},
  {title: "Deepening Your Knowledge", keywords: []string{"advanced topics"}},
  {title: "Joining the Community", keywords: []string{"open source", "collaboration"}},
}

// FallbackDraft builds a roadmap from the local template bank: coarse topic
// matching on the path name crossed with level (5/6/7 steps) and language.
// It is pure and deterministic and never touches the network.
func FallbackDraft(pathName, level string, lang i18n.Language, bundle *i18n.Bundle) *types.DraftRoadmap {
  steps := fallbackGenericSteps
  lower := strings.ToLower(pathName)
  for _, topic := range fallbackTopics {
    if strings.Contains(lower, topic.match) {
      steps = topic.steps
      break
    }
  }

  count := fallbackStepCount(level)
  if count > len(steps) {
    count = len(steps)
  }

  draft := &types.DraftRoadmap{
    Title: bundle.T(lang, "roadmap.default_title", i18n.Params{
      "path":  pathName,
      "level": level,
    }),
    Description: bundle.T(lang, "roadmap.default_description", i18n.Params{
      "path":     pathName,
      "level":    level,
      "language": string(lang),
    }),
  }

  for i := 0; i < count; i++ {
    tmpl := steps[i]
    keywords := make([]string, 0, len(tmpl.keywords)+1)
    keywords = append(keywords, tmpl.keywords...)
    keywords = append(keywords, level)
    draft.Steps = append(draft.Steps, types.DraftStep{
      Title:         tmpl.title,
      Description:   bundle.T(lang, "roadmap.default_step_description", i18n.Params{"title": tmpl.title}),
      OrderIndex:    i,
      EstimatedTime: defaultEstimatedTime(level),
      Keywords:      keywords,
    })
  }
  return draft
}

func fallbackStepCount(level string) int {
  switch level {
  case types.LevelIntermediate:
    return 6
  case types.LevelAdvanced:
    return 7
  default:
    return 5
  }
}

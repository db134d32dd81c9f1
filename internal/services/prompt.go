package services

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	QuestionSystemPrompt = "You are an AI assistant that generates job interview questions."
	FeedbackSystemPrompt = "You are an AI assistant that provides detailed interview feedback."
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionPrompt(resumeText, jobDescriptionText string) string {
	return fmt.Sprintf(`You are an AI interviewer.

Given this **resume**:
---
%s
---

And this **job description**:
---
%s
---

Generate 5 tailored interview question that test the candidate's fit for the role. Keep the questions clear and relevant. There should be no numbers in the beginning.
`, resumeText, jobDescriptionText)
}

// BuildFeedbackPrompt creates the prompt for end-of-interview feedback
func (pb *PromptBuilder) BuildFeedbackPrompt(responses []string) string {
	return fmt.Sprintf(`You are an AI interviewer providing feedback on a candidate's interview performance.

Given these responses from the candidate:
---
%s
---

Please provide detailed feedback on:
1. Communication skills
2. Technical knowledge
3. Problem-solving abilities
4. Areas for improvement
5. Overall assessment

Keep the feedback constructive and specific.`, strings.Join(responses, "\n\n"))
}

var leadingEnumeration = regexp.MustCompile(`^\d+\.?\s*`)

// ParseQuestions splits the model's raw output into individual
// questions: one segment per run of newlines, empty segments dropped,
// and any leading "1." style enumeration stripped (the prompt asks the
// model not to number, but models number anyway).
func (pb *PromptBuilder) ParseQuestions(raw string) []string {
	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n'
	})

	var questions []string
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		questions = append(questions, leadingEnumeration.ReplaceAllString(segment, ""))
	}

	return questions
}

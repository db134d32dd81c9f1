package services

import (
	"strings"
	"testing"
)

func TestParseQuestionsStripsEnumeration(t *testing.T) {
	pb := NewPromptBuilder()

	raw := "1. Tell me about your backend experience.\n2. How do you design APIs?\n\n3 What is your biggest weakness?"
	questions := pb.ParseQuestions(raw)

	want := []string{
		"Tell me about your backend experience.",
		"How do you design APIs?",
		"What is your biggest weakness?",
	}

	if len(questions) != len(want) {
		t.Fatalf("got %d questions, want %d: %v", len(questions), len(want), questions)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("question %d = %q, want %q", i, questions[i], want[i])
		}
	}
}

func TestParseQuestionsDropsEmptySegments(t *testing.T) {
	pb := NewPromptBuilder()

	raw := "\n\nFirst question?\n\n\n   \nSecond question?\n"
	questions := pb.ParseQuestions(raw)

	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2: %v", len(questions), questions)
	}
	if questions[0] != "First question?" || questions[1] != "Second question?" {
		t.Errorf("unexpected questions: %v", questions)
	}
}

func TestParseQuestionsEmptyInput(t *testing.T) {
	pb := NewPromptBuilder()

	if got := pb.ParseQuestions(""); len(got) != 0 {
		t.Errorf("expected no questions for empty input, got %v", got)
	}
}

func TestBuildQuestionPromptEmbedsTexts(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildQuestionPrompt("RESUME TEXT", "JD TEXT")

	if !strings.Contains(prompt, "RESUME TEXT") {
		t.Error("prompt does not contain the resume text")
	}
	if !strings.Contains(prompt, "JD TEXT") {
		t.Error("prompt does not contain the job description text")
	}
	if !strings.Contains(prompt, "Generate 5 tailored interview question") {
		t.Error("prompt does not ask for 5 questions")
	}
}

func TestBuildFeedbackPromptJoinsResponses(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFeedbackPrompt([]string{"answer one", "answer two"})

	if !strings.Contains(prompt, "answer one\n\nanswer two") {
		t.Error("responses are not joined with blank lines")
	}
	if !strings.Contains(prompt, "Overall assessment") {
		t.Error("prompt is missing the feedback structure")
	}
}

func TestBuildFeedbackPromptEmptyResponses(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFeedbackPrompt(nil)
	if !strings.Contains(prompt, "Communication skills") {
		t.Error("empty response list should still produce a full prompt")
	}
}

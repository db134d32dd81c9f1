package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
	"alfredoptarigan/ai-interviewer/internal/models"
)

type fakeInterviewRepo struct {
	data     map[string]*models.InterviewData
	sessions map[string]*models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{
		data:     make(map[string]*models.InterviewData),
		sessions: make(map[string]*models.Interview),
	}
}

func (f *fakeInterviewRepo) CreateData(data *models.InterviewData) error {
	f.data[data.ID] = data
	return nil
}

func (f *fakeInterviewRepo) CreateSession(interview *models.Interview) error {
	f.sessions[interview.ID] = interview
	return nil
}

func (f *fakeInterviewRepo) FindByID(id string) (*models.Interview, error) {
	interview, ok := f.sessions[id]
	if !ok {
		return nil, apperrors.ErrInterviewNotFound
	}
	copied := *interview
	return &copied, nil
}

func (f *fakeInterviewRepo) UpdateResponses(id string, responses []string) error {
	if interview, ok := f.sessions[id]; ok {
		interview.Responses = responses
		return nil
	}
	f.sessions[id] = &models.Interview{ID: id, Responses: responses}
	return nil
}

func (f *fakeInterviewRepo) UpdateFeedback(id string, feedback string) error {
	if interview, ok := f.sessions[id]; ok {
		interview.Feedback = feedback
		return nil
	}
	f.sessions[id] = &models.Interview{ID: id, Feedback: feedback}
	return nil
}

type fakeChatClient struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const cannedQuestions = "1. Why backend?\n2. Describe an API you designed.\n3. How do you test?\n4. Tell me about scaling.\n5. Why this role?"

func TestStartGeneratesSessionAndFirstQuestion(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	result, err := svc.Start(context.Background(), "Experienced backend engineer", "Seeking backend engineer with API design skills")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.InterviewID, "interview_") {
		t.Errorf("interview id %q has no interview_ prefix", result.InterviewID)
	}
	if result.FirstQuestion != "Why backend?" {
		t.Errorf("first question = %q", result.FirstQuestion)
	}

	data, ok := repo.data[result.InterviewID]
	if !ok {
		t.Fatal("source-text record was not persisted")
	}
	if data.ResumeText != "Experienced backend engineer" {
		t.Errorf("resume text = %q", data.ResumeText)
	}

	session, ok := repo.sessions[result.InterviewID]
	if !ok {
		t.Fatal("session record was not persisted")
	}
	if session.CurrentQuestionID != 0 {
		t.Errorf("cursor = %d, want 0", session.CurrentQuestionID)
	}
	if len(session.Questions) != 5 {
		t.Errorf("got %d questions, want 5", len(session.Questions))
	}
}

func TestStartUniqueIDs(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		result, err := svc.Start(context.Background(), "r", "jd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[result.InterviewID] {
			t.Fatalf("duplicate interview id %q", result.InterviewID)
		}
		seen[result.InterviewID] = true
	}
}

func TestStartLLMFailureDoesNotCreateSession(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{err: errors.New("upstream down")}
	svc := NewInterviewService(repo, chat)

	if _, err := svc.Start(context.Background(), "r", "jd"); err == nil {
		t.Fatal("expected error when the LLM call fails")
	}
	if len(repo.sessions) != 0 {
		t.Error("session record should not exist after LLM failure")
	}
	// The source-text write happens first and is not rolled back.
	if len(repo.data) != 1 {
		t.Errorf("expected the orphaned source-text record, got %d", len(repo.data))
	}
}

func TestAdvanceEchoesClientCursorPlusOne(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	started, err := svc.Start(context.Background(), "r", "jd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Advance(context.Background(), started.InterviewID, "my answer", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentQuestionID != 1 {
		t.Errorf("cursor = %d, want 1", result.CurrentQuestionID)
	}
	if result.Question != "Describe an API you designed." {
		t.Errorf("question = %q", result.Question)
	}

	session := repo.sessions[started.InterviewID]
	if len(session.Responses) != 1 || session.Responses[0] != "my answer" {
		t.Errorf("responses = %v", session.Responses)
	}

	// The cursor is client-supplied: a repeated 0 still yields 1, and a
	// second response is appended regardless.
	again, err := svc.Advance(context.Background(), started.InterviewID, "another answer", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.CurrentQuestionID != 1 {
		t.Errorf("cursor = %d, want 1", again.CurrentQuestionID)
	}
	if got := len(repo.sessions[started.InterviewID].Responses); got != 2 {
		t.Errorf("responses length = %d, want 2", got)
	}
}

func TestAdvancePastLastQuestion(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	started, err := svc.Start(context.Background(), "r", "jd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Advance(context.Background(), started.InterviewID, "final answer", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentQuestionID != 5 {
		t.Errorf("cursor = %d, want 5", result.CurrentQuestionID)
	}
	if result.Question != "" {
		t.Errorf("question past the end should be empty, got %q", result.Question)
	}
}

func TestAdvanceUnknownSession(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo, &fakeChatClient{})

	_, err := svc.Advance(context.Background(), "interview_missing", "answer", 0)
	if !errors.Is(err, apperrors.ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestEndWithZeroResponses(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	started, err := svc.Start(context.Background(), "r", "jd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chat.reply = "Solid communication. Work on system design depth."
	feedback, err := svc.End(context.Background(), started.InterviewID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback == "" {
		t.Fatal("expected non-empty feedback for a session with no responses")
	}

	if got := repo.sessions[started.InterviewID].Feedback; got != feedback {
		t.Errorf("persisted feedback = %q, want %q", got, feedback)
	}
}

func TestEndSendsResponsesToLLM(t *testing.T) {
	repo := newFakeInterviewRepo()
	chat := &fakeChatClient{reply: cannedQuestions}
	svc := NewInterviewService(repo, chat)

	started, err := svc.Start(context.Background(), "r", "jd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Advance(context.Background(), started.InterviewID, "first answer", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Advance(context.Background(), started.InterviewID, "second answer", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chat.reply = "feedback text"
	if _, err := svc.End(context.Background(), started.InterviewID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := chat.prompts[len(chat.prompts)-1]
	if !strings.Contains(last, "first answer\n\nsecond answer") {
		t.Errorf("feedback prompt missing joined responses:\n%s", last)
	}
}

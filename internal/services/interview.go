package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/repositories"
)

type InterviewService interface {
	Start(ctx context.Context, resumeText, jobDescriptionText string) (*StartResult, error)
	Advance(ctx context.Context, interviewID, response string, currentQuestionID int) (*AdvanceResult, error)
	End(ctx context.Context, interviewID string) (string, error)
}

type StartResult struct {
	InterviewID   string
	FirstQuestion string
}

type AdvanceResult struct {
	Question          string
	CurrentQuestionID int
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	chatClient    ChatClient
	promptBuilder *PromptBuilder

	// One lock per interview id so concurrent submits against the same
	// session cannot interleave their read-modify-write of responses.
	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	chatClient ChatClient,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		chatClient:    chatClient,
		promptBuilder: NewPromptBuilder(),
		sessions:      make(map[string]*sync.Mutex),
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newInterviewID builds the opaque session token: creation timestamp
// plus a random base-36 suffix.
func newInterviewID() string {
	suffix := strings.Builder{}
	for i := 0; i < 13; i++ {
		suffix.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return fmt.Sprintf("interview_%d_%s", time.Now().UnixMilli(), suffix.String())
}

func (s *interviewService) lockSession(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[id]
	if !ok {
		m = &sync.Mutex{}
		s.sessions[id] = m
	}
	return m
}

// Start implements InterviewService. The source-text record and the
// session record are two independent writes; a failure between them
// leaves the source texts behind without session state.
func (s *interviewService) Start(ctx context.Context, resumeText, jobDescriptionText string) (*StartResult, error) {
	interviewID := newInterviewID()

	data := &models.InterviewData{
		ID:             interviewID,
		ResumeText:     resumeText,
		JobDescription: jobDescriptionText,
		CreatedAt:      time.Now(),
	}
	if err := s.interviewRepo.CreateData(data); err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildQuestionPrompt(resumeText, jobDescriptionText)
	raw, err := s.chatClient.Complete(ctx, QuestionSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to get interview questions from LLM: %w", err)
	}

	questions := s.promptBuilder.ParseQuestions(raw)
	log.Printf("🎤 Interview %s: generated %d questions\n", interviewID, len(questions))

	now := time.Now()
	interview := &models.Interview{
		ID:                interviewID,
		CurrentQuestionID: 0,
		Questions:         pq.StringArray(questions),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.interviewRepo.CreateSession(interview); err != nil {
		return nil, err
	}

	result := &StartResult{InterviewID: interviewID}
	if len(questions) > 0 {
		result.FirstQuestion = questions[0]
	}

	return result, nil
}

// Advance implements InterviewService. The response is appended
// unconditionally and the next cursor is the client-supplied value plus
// one; the stored record's cursor is not consulted.
func (s *interviewService) Advance(ctx context.Context, interviewID, response string, currentQuestionID int) (*AdvanceResult, error) {
	lock := s.lockSession(interviewID)
	lock.Lock()
	defer lock.Unlock()

	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, err
	}

	responses := append([]string(interview.Responses), response)
	if err := s.interviewRepo.UpdateResponses(interviewID, responses); err != nil {
		return nil, err
	}

	nextQuestionID := currentQuestionID + 1
	result := &AdvanceResult{CurrentQuestionID: nextQuestionID}
	if nextQuestionID >= 0 && nextQuestionID < len(interview.Questions) {
		result.Question = interview.Questions[nextQuestionID]
	}

	return result, nil
}

// End implements InterviewService. Feedback is generated from whatever
// responses exist, including none at all.
func (s *interviewService) End(ctx context.Context, interviewID string) (string, error) {
	lock := s.lockSession(interviewID)
	lock.Lock()
	defer lock.Unlock()

	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return "", err
	}

	prompt := s.promptBuilder.BuildFeedbackPrompt(interview.Responses)
	feedback, err := s.chatClient.Complete(ctx, FeedbackSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}
	feedback = strings.TrimSpace(feedback)

	if err := s.interviewRepo.UpdateFeedback(interviewID, feedback); err != nil {
		return "", err
	}

	return feedback, nil
}

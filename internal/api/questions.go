package api

import (
	"context"

	"acodelab/internal/gateway"
)

// QuestionsService wraps the Q&A endpoints.
type QuestionsService struct {
	api Doer
}

func (s *QuestionsService) List(ctx context.Context, params ListParams) ([]Question, error) {
	var out []Question
	err := s.api.Get(ctx, "/api/questions", params.values(), &out)
	return out, err
}

func (s *QuestionsService) Get(ctx context.Context, id string) (Question, error) {
	var out Question
	err := s.api.Get(ctx, gateway.Path("api", "questions", id), nil, &out)
	return out, err
}

func (s *QuestionsService) Create(ctx context.Context, question QuestionCreate) (Question, error) {
	var out Question
	err := s.api.Post(ctx, "/api/questions", question, &out)
	return out, err
}

func (s *QuestionsService) Update(ctx context.Context, id string, question QuestionCreate) (Question, error) {
	var out Question
	err := s.api.Put(ctx, gateway.Path("api", "questions", id), question, &out)
	return out, err
}

func (s *QuestionsService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, gateway.Path("api", "questions", id), nil)
}

// RecordView bumps the question's view counter.
func (s *QuestionsService) RecordView(ctx context.Context, id string) error {
	return s.api.Post(ctx, gateway.Path("api", "questions", id, "view"), nil, nil)
}

// Vote casts an up or down vote on a question.
func (s *QuestionsService) Vote(ctx context.Context, id, direction string) error {
	return s.api.Post(ctx, gateway.Path("api", "questions", id, "vote"), voteRequest{VoteType: direction}, nil)
}

func (s *QuestionsService) Answers(ctx context.Context, questionID string) ([]Answer, error) {
	var out []Answer
	err := s.api.Get(ctx, gateway.Path("api", "questions", questionID, "answers"), nil, &out)
	return out, err
}

func (s *QuestionsService) CreateAnswer(ctx context.Context, questionID string, answer AnswerCreate) (Answer, error) {
	var out Answer
	err := s.api.Post(ctx, gateway.Path("api", "questions", questionID, "answers"), answer, &out)
	return out, err
}

func (s *QuestionsService) VoteAnswer(ctx context.Context, answerID, direction string) error {
	return s.api.Post(ctx, gateway.Path("api", "answers", answerID, "vote"), voteRequest{VoteType: direction}, nil)
}

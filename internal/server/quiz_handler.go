// Package server provides the HTTP handlers of the quiz service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	quizv1 "github.com/at-ishikawa/tango/internal/api/quizv1"
	"github.com/at-ishikawa/tango/internal/api/quizv1/quizv1connect"
	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/validation"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

//go:generate mockgen -source=quiz_handler.go -destination=../mocks/server/mock_quiz_engine.go -package=mock_server QuizEngine

type QuizEngine interface {
	Refresh(ctx context.Context, level vocabulary.Level) error
	NextPrompt(ctx context.Context, level vocabulary.Level) (quiz.Prompt, error)
	Check(ctx context.Context, level vocabulary.Level, id string, mode vocabulary.Mode, answer string) (quiz.Result, error)
}

// QuizHandler implements the QuizServiceHandler interface.
type QuizHandler struct {
	engine    QuizEngine
	validator *validation.Validator
	logger    *slog.Logger
}

var _ quizv1connect.QuizServiceHandler = (*QuizHandler)(nil)

func NewQuizHandler(engine QuizEngine, logger *slog.Logger) (*QuizHandler, error) {
	validator, err := validation.New("json")
	if err != nil {
		return nil, fmt.Errorf("validation.New > %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		engine:    engine,
		validator: validator,
		logger:    logger.With("component", "quiz_handler"),
	}, nil
}

// GetWord draws a random word of the level, refreshing the level first when asked to.
func (h *QuizHandler) GetWord(
	ctx context.Context,
	req *connect.Request[quizv1.GetWordRequest],
) (*connect.Response[quizv1.GetWordResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	level, err := vocabulary.ParseLevel(req.Msg.Level)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if req.Msg.Refresh {
		if err := h.engine.Refresh(ctx, level); err != nil {
			return nil, h.toConnectError(err)
		}
	}

	prompt, err := h.engine.NextPrompt(ctx, level)
	if err != nil {
		return nil, h.toConnectError(err)
	}
	return connect.NewResponse(quizv1.NewGetWordResponse(prompt)), nil
}

// CheckAnswer grades an answer for a word previously returned by GetWord.
func (h *QuizHandler) CheckAnswer(
	ctx context.Context,
	req *connect.Request[quizv1.CheckAnswerRequest],
) (*connect.Response[quizv1.CheckAnswerResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	level, err := vocabulary.ParseLevel(req.Msg.Level)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	mode, err := vocabulary.ParseMode(req.Msg.Mode)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result, err := h.engine.Check(ctx, level, req.Msg.WordID, mode, req.Msg.Answer)
	if err != nil {
		return nil, h.toConnectError(err)
	}
	return connect.NewResponse(&quizv1.CheckAnswerResponse{
		Correct:        result.Correct,
		CorrectAnswer:  result.Answer,
		RemainingWords: result.Remaining,
	}), nil
}

func (h *QuizHandler) toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, quiz.ErrNoWordsAvailable):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, quiz.ErrInvalidEntry),
		errors.Is(err, vocabulary.ErrUnknownLevel),
		errors.Is(err, vocabulary.ErrUnknownMode):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		h.logger.Error("quiz request failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

func (h *QuizHandler) validateRequest(msg any) *connect.Error {
	violations, err := h.validator.Violations(msg)
	if err != nil {
		return connect.NewError(connect.CodeInternal, err)
	}
	if len(violations) == 0 {
		return nil
	}

	fieldViolations := make([]*errdetails.BadRequest_FieldViolation, 0, len(violations))
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
		messages = append(messages, v.Description)
	}
	connectErr := connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid request: %s", strings.Join(messages, ", ")))
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

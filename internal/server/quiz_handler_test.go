package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	quizv1 "github.com/at-ishikawa/tango/internal/api/quizv1"
	mock_server "github.com/at-ishikawa/tango/internal/mocks/server"
	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

func newTestHandler(t *testing.T, engine QuizEngine) *QuizHandler {
	t.Helper()
	handler, err := NewQuizHandler(engine, nil)
	require.NoError(t, err)
	return handler
}

func requireConnectCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, want, connectErr.Code())
	return connectErr
}

func TestQuizHandler_GetWord(t *testing.T) {
	book := vocabulary.MustNewEntry("本", "ほん", "书")

	tests := []struct {
		name      string
		request   *quizv1.GetWordRequest
		setupMock func(m *mock_server.MockQuizEngine)
		want      *quizv1.GetWordResponse
		wantCode  connect.Code
	}{
		{
			name:    "returns a word of the level",
			request: &quizv1.GetWordRequest{Level: "N5"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().NextPrompt(gomock.Any(), vocabulary.LevelN5).Return(quiz.Prompt{
					Entry:     book,
					Mode:      vocabulary.ModeLogographic,
					Remaining: 7,
				}, nil)
			},
			want: &quizv1.GetWordResponse{
				Word:           quizv1.Word{ID: book.ID, Meaning: "书", Kanji: "本", Kana: "ほん"},
				Mode:           "kanji",
				RemainingWords: 7,
			},
		},
		{
			name:    "accepts a lowercase level",
			request: &quizv1.GetWordRequest{Level: "n3"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().NextPrompt(gomock.Any(), vocabulary.LevelN3).Return(quiz.Prompt{
					Entry:     book,
					Mode:      vocabulary.ModePhonetic,
					Remaining: 1,
				}, nil)
			},
			want: &quizv1.GetWordResponse{
				Word:           quizv1.NewWord(book),
				Mode:           "kana",
				RemainingWords: 1,
			},
		},
		{
			name:    "refreshes the level before drawing when asked to",
			request: &quizv1.GetWordRequest{Level: "N2", Refresh: true},
			setupMock: func(m *mock_server.MockQuizEngine) {
				gomock.InOrder(
					m.EXPECT().Refresh(gomock.Any(), vocabulary.LevelN2).Return(nil),
					m.EXPECT().NextPrompt(gomock.Any(), vocabulary.LevelN2).Return(quiz.Prompt{
						Entry:     book,
						Mode:      vocabulary.ModePhonetic,
						Remaining: 20,
					}, nil),
				)
			},
			want: &quizv1.GetWordResponse{
				Word:           quizv1.NewWord(book),
				Mode:           "kana",
				RemainingWords: 20,
			},
		},
		{
			name:     "returns INVALID_ARGUMENT for an unknown level",
			request:  &quizv1.GetWordRequest{Level: "N6"},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:    "returns NOT_FOUND when the level has no words",
			request: &quizv1.GetWordRequest{Level: "N1"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().NextPrompt(gomock.Any(), vocabulary.LevelN1).
					Return(quiz.Prompt{}, fmt.Errorf("%w for level N1", quiz.ErrNoWordsAvailable))
			},
			wantCode: connect.CodeNotFound,
		},
		{
			name:    "returns INTERNAL when the refresh fails unexpectedly",
			request: &quizv1.GetWordRequest{Level: "N4", Refresh: true},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().Refresh(gomock.Any(), vocabulary.LevelN4).Return(errors.New("boom"))
			},
			wantCode: connect.CodeInternal,
		},
		{
			name:    "returns DEADLINE_EXCEEDED when the engine times out",
			request: &quizv1.GetWordRequest{Level: "N5"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().NextPrompt(gomock.Any(), vocabulary.LevelN5).
					Return(quiz.Prompt{}, fmt.Errorf("cache.Get > %w", context.DeadlineExceeded))
			},
			wantCode: connect.CodeDeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := mock_server.NewMockQuizEngine(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(engine)
			}
			handler := newTestHandler(t, engine)

			resp, err := handler.GetWord(context.Background(), connect.NewRequest(tt.request))
			if tt.wantCode != 0 {
				requireConnectCode(t, err, tt.wantCode)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Msg)
		})
	}
}

func TestQuizHandler_GetWord_BadRequestDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := newTestHandler(t, mock_server.NewMockQuizEngine(ctrl))

	_, err := handler.GetWord(context.Background(), connect.NewRequest(&quizv1.GetWordRequest{Level: ""}))
	connectErr := requireConnectCode(t, err, connect.CodeInvalidArgument)
	assert.Contains(t, connectErr.Message(), "level must be one of N5, N4, N3, N2 or N1")

	require.Len(t, connectErr.Details(), 1)
	value, err := connectErr.Details()[0].Value()
	require.NoError(t, err)
	badRequest, ok := value.(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, badRequest.GetFieldViolations(), 1)
	assert.Equal(t, "level", badRequest.GetFieldViolations()[0].GetField())
}

func TestQuizHandler_CheckAnswer(t *testing.T) {
	book := vocabulary.MustNewEntry("本", "ほん", "书")

	tests := []struct {
		name      string
		request   *quizv1.CheckAnswerRequest
		setupMock func(m *mock_server.MockQuizEngine)
		want      *quizv1.CheckAnswerResponse
		wantCode  connect.Code
		wantField []string
	}{
		{
			name:    "grades a correct answer",
			request: &quizv1.CheckAnswerRequest{Level: "N5", WordID: book.ID, Mode: "kana", Answer: "ほん"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().Check(gomock.Any(), vocabulary.LevelN5, book.ID, vocabulary.ModePhonetic, "ほん").
					Return(quiz.Result{Correct: true, Answer: "ほん", Remaining: 4}, nil)
			},
			want: &quizv1.CheckAnswerResponse{Correct: true, CorrectAnswer: "ほん", RemainingWords: 4},
		},
		{
			name:    "grades a wrong answer",
			request: &quizv1.CheckAnswerRequest{Level: "N5", WordID: book.ID, Mode: "kanji", Answer: "木"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().Check(gomock.Any(), vocabulary.LevelN5, book.ID, vocabulary.ModeLogographic, "木").
					Return(quiz.Result{Correct: false, Answer: "本", Remaining: 5}, nil)
			},
			want: &quizv1.CheckAnswerResponse{Correct: false, CorrectAnswer: "本", RemainingWords: 5},
		},
		{
			name:    "passes an empty answer through for grading",
			request: &quizv1.CheckAnswerRequest{Level: "N5", WordID: book.ID, Mode: "kana"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().Check(gomock.Any(), vocabulary.LevelN5, book.ID, vocabulary.ModePhonetic, "").
					Return(quiz.Result{Correct: false, Answer: "ほん", Remaining: 5}, nil)
			},
			want: &quizv1.CheckAnswerResponse{Correct: false, CorrectAnswer: "ほん", RemainingWords: 5},
		},
		{
			name:    "returns INVALID_ARGUMENT for a word that is no longer cached",
			request: &quizv1.CheckAnswerRequest{Level: "N5", WordID: "gone", Mode: "kana", Answer: "ほん"},
			setupMock: func(m *mock_server.MockQuizEngine) {
				m.EXPECT().Check(gomock.Any(), vocabulary.LevelN5, "gone", vocabulary.ModePhonetic, "ほん").
					Return(quiz.Result{}, fmt.Errorf("%w: %q", quiz.ErrInvalidEntry, "gone"))
			},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:      "returns INVALID_ARGUMENT for every invalid field",
			request:   &quizv1.CheckAnswerRequest{Level: "N9", Mode: "romaji"},
			wantCode:  connect.CodeInvalidArgument,
			wantField: []string{"level", "word_id", "mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := mock_server.NewMockQuizEngine(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(engine)
			}
			handler := newTestHandler(t, engine)

			resp, err := handler.CheckAnswer(context.Background(), connect.NewRequest(tt.request))
			if tt.wantCode != 0 {
				connectErr := requireConnectCode(t, err, tt.wantCode)
				assert.Nil(t, resp)
				if tt.wantField != nil {
					require.Len(t, connectErr.Details(), 1)
					value, err := connectErr.Details()[0].Value()
					require.NoError(t, err)
					badRequest := value.(*errdetails.BadRequest)
					var fields []string
					for _, violation := range badRequest.GetFieldViolations() {
						fields = append(fields, violation.GetField())
					}
					assert.Equal(t, tt.wantField, fields)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Msg)
		})
	}
}

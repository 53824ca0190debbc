// Package quizv1connect wires the tango.quiz.v1 messages to Connect handlers and clients.
package quizv1connect

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	quizv1 "github.com/at-ishikawa/tango/internal/api/quizv1"
)

const (
	QuizServiceName = "tango.quiz.v1.QuizService"

	QuizServiceGetWordProcedure     = "/" + QuizServiceName + "/GetWord"
	QuizServiceCheckAnswerProcedure = "/" + QuizServiceName + "/CheckAnswer"
)

// jsonCodec encodes plain Go structs with encoding/json.
// It is registered under both names Connect uses for JSON payloads.
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string {
	return c.name
}

func (c jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (c jsonCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}

var codecs = []connect.Codec{
	jsonCodec{name: "json"},
	jsonCodec{name: "json; charset=utf-8"},
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	options := make([]connect.HandlerOption, 0, len(codecs)+len(opts))
	for _, codec := range codecs {
		options = append(options, connect.WithCodec(codec))
	}
	return append(options, opts...)
}

type QuizServiceHandler interface {
	GetWord(context.Context, *connect.Request[quizv1.GetWordRequest]) (*connect.Response[quizv1.GetWordResponse], error)
	CheckAnswer(context.Context, *connect.Request[quizv1.CheckAnswerRequest]) (*connect.Response[quizv1.CheckAnswerResponse], error)
}

// NewQuizServiceHandler returns the path the service is mounted on and its handler.
func NewQuizServiceHandler(svc QuizServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	options := handlerOptions(opts)
	getWordHandler := connect.NewUnaryHandler(
		QuizServiceGetWordProcedure,
		svc.GetWord,
		options...,
	)
	checkAnswerHandler := connect.NewUnaryHandler(
		QuizServiceCheckAnswerProcedure,
		svc.CheckAnswer,
		options...,
	)
	return "/" + QuizServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case QuizServiceGetWordProcedure:
			getWordHandler.ServeHTTP(w, r)
		case QuizServiceCheckAnswerProcedure:
			checkAnswerHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

type QuizServiceClient interface {
	GetWord(context.Context, *connect.Request[quizv1.GetWordRequest]) (*connect.Response[quizv1.GetWordResponse], error)
	CheckAnswer(context.Context, *connect.Request[quizv1.CheckAnswerRequest]) (*connect.Response[quizv1.CheckAnswerResponse], error)
}

type quizServiceClient struct {
	getWord     *connect.Client[quizv1.GetWordRequest, quizv1.GetWordResponse]
	checkAnswer *connect.Client[quizv1.CheckAnswerRequest, quizv1.CheckAnswerResponse]
}

func NewQuizServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuizServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	options := append([]connect.ClientOption{connect.WithCodec(codecs[0])}, opts...)
	return &quizServiceClient{
		getWord: connect.NewClient[quizv1.GetWordRequest, quizv1.GetWordResponse](
			httpClient,
			baseURL+QuizServiceGetWordProcedure,
			options...,
		),
		checkAnswer: connect.NewClient[quizv1.CheckAnswerRequest, quizv1.CheckAnswerResponse](
			httpClient,
			baseURL+QuizServiceCheckAnswerProcedure,
			options...,
		),
	}
}

func (c *quizServiceClient) GetWord(ctx context.Context, req *connect.Request[quizv1.GetWordRequest]) (*connect.Response[quizv1.GetWordResponse], error) {
	return c.getWord.CallUnary(ctx, req)
}

func (c *quizServiceClient) CheckAnswer(ctx context.Context, req *connect.Request[quizv1.CheckAnswerRequest]) (*connect.Response[quizv1.CheckAnswerResponse], error) {
	return c.checkAnswer.CallUnary(ctx, req)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"connectrpc.com/connect"
	"github.com/avast/retry-go"

	quizv1 "github.com/at-ishikawa/tango/internal/api/quizv1"
	"github.com/at-ishikawa/tango/internal/api/quizv1/quizv1connect"
	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// RemoteQuizCLI quizzes through the quiz service.
type RemoteQuizCLI struct {
	*InteractiveQuizCLI
	client        quizv1connect.QuizServiceClient
	level         vocabulary.Level
	retryAttempts uint
	retryDelay    time.Duration

	current *quizv1.GetWordResponse
	score   quiz.Score
	refresh bool
}

type RemoteOption func(*RemoteQuizCLI)

// WithRetry sets how many times a request is retried and the initial backoff between tries.
func WithRetry(attempts uint, delay time.Duration) RemoteOption {
	return func(c *RemoteQuizCLI) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

func NewRemoteQuizCLI(
	client quizv1connect.QuizServiceClient,
	level vocabulary.Level,
	stdin io.Reader,
	stdout io.Writer,
	opts ...RemoteOption,
) *RemoteQuizCLI {
	c := &RemoteQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		client:             client,
		level:              level,
		retryAttempts:      defaultRetryAttempts,
		retryDelay:         defaultRetryDelay,
		refresh:            true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RemoteQuizCLI) Session(ctx context.Context) error {
	if c.current == nil {
		word, err := c.getWord(ctx)
		if err != nil {
			if connect.CodeOf(err) == connect.CodeNotFound {
				c.printf("%s级别暂时没有可用的单词\n", c.level)
				return errEnd
			}
			return fmt.Errorf("getWord > %w", err)
		}
		c.current = word
		c.printQuestion(word)
	}

	answer, err := c.readAnswer()
	if err != nil {
		return err
	}

	mode, err := vocabulary.ParseMode(c.current.Mode)
	if err != nil {
		return fmt.Errorf("vocabulary.ParseMode > %w", err)
	}
	switch answer {
	case "":
		return nil
	case quitCommand:
		return errEnd
	case skipCommand:
		c.printSkipped(quiz.FormatAnswer(c.current.Word.Entry(), mode))
		c.score.Total++
		c.current = nil
		return nil
	}

	result, err := c.checkAnswer(ctx, answer)
	if err != nil {
		if connect.CodeOf(err) == connect.CodeInvalidArgument {
			// The word left the server cache, e.g. after a refresh.
			c.printf("该单词已失效，换一个新词\n")
			c.current = nil
			return nil
		}
		return fmt.Errorf("checkAnswer > %w", err)
	}

	if result.Correct {
		c.printCorrect()
		c.score.Correct++
		c.score.Total++
		c.current = nil
		return nil
	}
	c.printWrong(quiz.FormatAnswer(c.current.Word.Entry(), mode))
	return nil
}

func (c *RemoteQuizCLI) printQuestion(word *quizv1.GetWordResponse) {
	mode, _ := vocabulary.ParseMode(word.Mode)
	c.printf("\n%s\n", separator)
	c.printf("第 %d 题（剩余 %d 个单词）\n", c.score.Total+1, word.RemainingWords)
	c.printf("【中文】%s\n", word.Word.Meaning)
	c.printf("【日语】%s\n", word.Word.Entry().Field(mode.Other()))
	c.printf("请输入这个单词的%s写法：\n", mode.Label())
}

func (c *RemoteQuizCLI) getWord(ctx context.Context) (*quizv1.GetWordResponse, error) {
	var word *quizv1.GetWordResponse
	err := c.withRetry(ctx, func() error {
		resp, err := c.client.GetWord(ctx, connect.NewRequest(&quizv1.GetWordRequest{
			Level:   string(c.level),
			Refresh: c.refresh,
		}))
		if err != nil {
			return err
		}
		word = resp.Msg
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.refresh = false
	return word, nil
}

func (c *RemoteQuizCLI) checkAnswer(ctx context.Context, answer string) (*quizv1.CheckAnswerResponse, error) {
	var result *quizv1.CheckAnswerResponse
	err := c.withRetry(ctx, func() error {
		resp, err := c.client.CheckAnswer(ctx, connect.NewRequest(&quizv1.CheckAnswerRequest{
			Level:  string(c.level),
			WordID: c.current.Word.ID,
			Mode:   c.current.Mode,
			Answer: answer,
		}))
		if err != nil {
			return err
		}
		result = resp.Msg
		return nil
	})
	return result, err
}

// withRetry retries transient failures with an exponential backoff and returns
// the error of the last attempt.
func (c *RemoteQuizCLI) withRetry(ctx context.Context, call func() error) error {
	var lastErr error
	err := retry.Do(
		func() error {
			lastErr = call()
			if lastErr != nil && !isRetryableError(lastErr) {
				return retry.Unrecoverable(lastErr)
			}
			return lastErr
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			if n+1 < c.retryAttempts {
				c.printf("加载失败，正在重试 (%d/%d)...\n", n+1, c.retryAttempts-1)
			}
		}),
	)
	if err == nil {
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return err
}

func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch connect.CodeOf(err) {
	case connect.CodeUnavailable,
		connect.CodeDeadlineExceeded,
		connect.CodeResourceExhausted,
		connect.CodeInternal,
		connect.CodeUnknown:
		return true
	default:
		return false
	}
}

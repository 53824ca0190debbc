package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/at-ishikawa/tango/internal/quiz"
	"github.com/at-ishikawa/tango/internal/vocabulary"
)

// ArchiveQuizCLI quizzes from entries loaded in memory.
// A wrong answer keeps the word until it is answered or skipped.
type ArchiveQuizCLI struct {
	*InteractiveQuizCLI
	session  *quiz.LocalSession
	retrying bool
}

func NewArchiveQuizCLI(entries []vocabulary.Entry, random *rand.Rand, stdin io.Reader, stdout io.Writer) (*ArchiveQuizCLI, error) {
	session, err := quiz.NewLocalSession(entries, random)
	if err != nil {
		return nil, fmt.Errorf("quiz.NewLocalSession > %w", err)
	}
	return &ArchiveQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		session:            session,
	}, nil
}

func (c *ArchiveQuizCLI) Session(ctx context.Context) error {
	prompt := c.session.Next()
	if !c.retrying {
		c.printQuestion(c.session.Score().Total+1, prompt)
	}

	answer, err := c.readAnswer()
	if err != nil {
		return err
	}

	switch answer {
	case quitCommand:
		return errEnd
	case skipCommand:
		correctAnswer, err := c.session.Skip()
		if err != nil {
			return fmt.Errorf("session.Skip > %w", err)
		}
		c.printSkipped(correctAnswer)
		c.retrying = false
		return nil
	}

	result, err := c.session.Check(answer)
	if err != nil {
		return fmt.Errorf("session.Check > %w", err)
	}
	if result.Correct {
		c.printCorrect()
		c.retrying = false
		return nil
	}
	c.printWrong(quiz.FormatAnswer(prompt.Entry, prompt.Mode))
	c.retrying = true
	return nil
}

func (c *ArchiveQuizCLI) printQuestion(number int, prompt quiz.Prompt) {
	c.printf("\n%s\n", separator)
	c.printf("第 %d 题\n", number)
	c.printf("单词解释：\n")
	c.printf("【中文】%s\n", prompt.Entry.Meaning)
	c.printf("【日语】%s\n", prompt.Entry.Field(prompt.Mode.Other()))
	c.printf("请输入这个单词的%s写法：\n", prompt.Mode.Label())
}

// PrintSummary prints the score of the finished quiz.
func (c *ArchiveQuizCLI) PrintSummary() {
	score := c.session.Score()
	c.printf("\n%s\n", separator)
	c.printf("测试结束！共完成 %d 题，答对 %d 题\n", score.Total, score.Correct)
	if score.Total > 0 {
		c.printf("正确率：%.1f%%\n", score.Accuracy())
	}
	c.printf("%s\n", separator)
}

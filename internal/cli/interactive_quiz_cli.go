// Package cli runs interactive vocabulary quizzes in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

const (
	quitCommand = "q"
	skipCommand = "s"

	separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

var (
	errEnd = errors.New("end")
)

// InteractiveQuizCLI contains shared logic for interactive quiz CLIs
type InteractiveQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	correct      *color.Color
	wrong        *color.Color
}

func newInteractiveQuizCLI(stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &InteractiveQuizCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// Run repeats the session until it ends, fails, or the process is interrupted.
func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "\n\n程序已终止。再见！")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readAnswer reads one line without its surrounding blanks.
// An input closed before any text ends the quiz.
func (cli *InteractiveQuizCLI) readAnswer() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			return "", errEnd
		}
	}
	return strings.TrimSpace(line), nil
}

func (cli *InteractiveQuizCLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, format, args...)
}

// PrintWelcome explains the commands available during a quiz.
func (cli *InteractiveQuizCLI) PrintWelcome() {
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "\n=== 欢迎使用日语单词测试程序！===")
	cli.printf("* 每次会显示一个单词的中文含义\n")
	cli.printf("* 系统会随机要求你输入假名或汉字写法\n")
	cli.printf("* 输入答案后按回车确认\n")
	cli.printf("* 输入 '%s' 退出程序\n", quitCommand)
	cli.printf("* 输入 '%s' 跳过当前单词\n", skipCommand)
	cli.printf("================================\n\n")
}

func (cli *InteractiveQuizCLI) printCorrect() {
	_, _ = cli.correct.Fprintln(cli.stdoutWriter, "✓ 回答正确！")
}

func (cli *InteractiveQuizCLI) printWrong(answer string) {
	_, _ = cli.wrong.Fprintf(cli.stdoutWriter, "✗ 回答错误！正确答案是：%s\n", answer)
	cli.printf("请重试：\n")
}

func (cli *InteractiveQuizCLI) printSkipped(answer string) {
	cli.printf("跳过！正确答案是：%s\n", answer)
}

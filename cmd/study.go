/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/internal/adapter/mapping"
	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/usecase/quiz"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const feedbackDelayKey = "study.feedback_delay"

var studyCmd = &cobra.Command{
	Use:   "study <vocab>",
	Short: "开始学习：认识 (recognize)、选择 (choice) 或拼写 (spell) 模式",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		modeValue, _ := cmd.Flags().GetString("mode")
		mode, err := entity.ParseStudyMode(modeValue)
		if err != nil {
			return err
		}
		typeValues, _ := cmd.Flags().GetStringSlice("types")
		types, err := parseWordTypes(typeValues)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		unsubscribe := container.Engine.OnProgress(func(p quiz.Progress) {
			fmt.Fprintf(out, "进度 %d/%d\n", p.CurrentIndex, p.TotalCount)
		})
		defer unsubscribe()

		cmd.Printf("词库 %s，模式 %s\n", v.Name, mapping.ModeLabel(mode))
		loop := &studyLoop{
			runner: container.Runner,
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    out,
			delay:  viper.GetDuration(feedbackDelayKey),
		}
		return loop.run(ctx, quiz.Config{VocabularyID: v.ID, Mode: mode, Types: types})
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)

	studyCmd.Flags().StringP("mode", "m", string(entity.StudyModeRecognize), "学习模式: recognize, choice, spell")
	studyCmd.Flags().StringSlice("types", []string{string(entity.WordTypeWord), string(entity.WordTypePhrase)}, "参与学习的类型，逗号分隔")
	studyCmd.Flags().Duration("delay", 0, "答题后自动进入下一题的等待时间 (默认 1.5s)")
	bindFlagToViper(feedbackDelayKey, studyCmd.Flags().Lookup("delay"))
}

type studyLoop struct {
	runner *quiz.Runner
	in     *bufio.Scanner
	out    io.Writer
	delay  time.Duration
}

func (l *studyLoop) run(ctx context.Context, cfg quiz.Config) error {
	q, err := l.runner.Start(ctx, cfg)
	if err != nil {
		return err
	}

	for {
		answer, ok := l.ask(*q)
		if !ok {
			p := l.runner.Progress()
			l.runner.Abandon()
			fmt.Fprintf(l.out, "已退出，本次完成 %d/%d 题\n", p.CurrentIndex, p.TotalCount)
			return nil
		}

		res, err := l.runner.Submit(ctx, answer)
		if err != nil {
			return err
		}
		if res.Correct {
			fmt.Fprintf(l.out, "✓ 正确  %s\n", res.Question.Display)
		} else {
			fmt.Fprintf(l.out, "✗ 错误  正确答案: %s\n", res.Question.Expected())
			if res.Question.Mode != entity.StudyModeRecognize {
				fmt.Fprintf(l.out, "  %s\n", res.Question.Display)
			}
		}
		if res.Complete {
			s := res.Summary
			fmt.Fprintf(l.out, "学习完成: 共 %d 题，答对 %d 题，正确率 %.2f%%\n", s.TotalCount, s.CorrectCount, s.Accuracy)
			return nil
		}

		if q, err = l.waitNext(ctx); err != nil {
			return err
		}
	}
}

// waitNext blocks until the feedback delay has passed and returns the next question.
func (l *studyLoop) waitNext(ctx context.Context) (*quiz.Question, error) {
	next := make(chan quiz.Question, 1)
	cancel := l.runner.AfterFeedback(l.delay, func(q quiz.Question) { next <- q })
	select {
	case q := <-next:
		return &q, nil
	case <-ctx.Done():
		cancel()
		l.runner.Abandon()
		return nil, ctx.Err()
	}
}

// ask reads one answer; false means the learner quit or input ended.
func (l *studyLoop) ask(q quiz.Question) (quiz.Answer, bool) {
	fmt.Fprintf(l.out, "\n%s\n", q.Prompt())
	switch q.Mode {
	case entity.StudyModeChoice:
		for i, opt := range q.Options {
			fmt.Fprintf(l.out, "  %d. %s\n", i+1, opt)
		}
		for {
			line, ok := l.readLine("选择序号 (q 退出): ")
			if !ok || line == "q" {
				return quiz.Answer{}, false
			}
			n, err := strconv.Atoi(line)
			if err == nil && n >= 1 && n <= len(q.Options) {
				return quiz.Answer{Text: q.Options[n-1]}, true
			}
			fmt.Fprintf(l.out, "请输入 1-%d 之间的序号\n", len(q.Options))
		}
	case entity.StudyModeSpell:
		line, ok := l.readLine("请输入拼写 (:q 退出): ")
		if !ok || line == ":q" {
			return quiz.Answer{}, false
		}
		return quiz.Answer{Text: line}, true
	default:
		for {
			line, ok := l.readLine("认识吗? [y] 认识 [n] 不认识 [m] 显示释义 [q] 退出: ")
			if !ok {
				return quiz.Answer{}, false
			}
			switch strings.ToLower(line) {
			case "y", "yes":
				return quiz.Answer{Known: true}, true
			case "n", "no":
				return quiz.Answer{Known: false}, true
			case "m":
				fmt.Fprintf(l.out, "  %s\n", q.Display)
			case "q":
				return quiz.Answer{}, false
			}
		}
	}
}

func (l *studyLoop) readLine(prompt string) (string, bool) {
	fmt.Fprint(l.out, prompt)
	if !l.in.Scan() {
		fmt.Fprintln(l.out)
		return "", false
	}
	return strings.TrimSpace(l.in.Text()), true
}

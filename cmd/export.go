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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/internal/usecase/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <vocab>",
	Short: "将词库导出为 CSV (word,meaning)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		noBOM, _ := cmd.Flags().GetBool("no-bom")
		if outputPath == "" {
			outputPath = defaultExportFilename(v.Name)
		}

		writer := cmd.OutOrStdout()
		if outputPath != "-" {
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("创建输出目录失败: %w", err)
			}
			file, openErr := os.Create(outputPath)
			if openErr != nil {
				return fmt.Errorf("创建导出文件失败: %w", openErr)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			writer = file
		}

		exportOpts := []export.ExportOption{export.WithProgressReporter(newCLIProgress(cmd.ErrOrStderr()))}
		if noBOM {
			exportOpts = append(exportOpts, export.WithoutBOM())
		}

		n, err := container.Exporter.Export(ctx, v.ID, writer, exportOpts...)
		if err != nil {
			return fmt.Errorf("导出失败: %w", err)
		}

		if outputPath == "-" {
			cmd.PrintErrf("导出完成: %d 个单词输出到标准输出\n", n)
		} else {
			cmd.Printf("导出完成: %d 个单词 -> %s\n", n, outputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "导出文件路径，使用 - 表示标准输出")
	exportCmd.Flags().Bool("no-bom", false, "不写入 UTF-8 BOM")
}

func defaultExportFilename(vocabulary string) string {
	ts := time.Now().Format("20060102-150405")
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, vocabulary)
	return fmt.Sprintf("%s-%s.csv", name, ts)
}

// cliProgress prints export progress for a single vocabulary to out.
type cliProgress struct {
	out   io.Writer
	name  string
	total int
	count int
}

func newCLIProgress(out io.Writer) *cliProgress {
	return &cliProgress{out: out}
}

func (p *cliProgress) Start(name string, total int) {
	p.name, p.total, p.count = name, max(total, 0), 0
	fmt.Fprintf(p.out, "开始导出 %s (共 %d 个单词)\n", name, p.total)
}

// Increment is called once per flushed batch.
func (p *cliProgress) Increment(_ string, delta int) {
	if delta <= 0 {
		return
	}
	p.count += delta
	fmt.Fprintf(p.out, "导出进度 %s: %d/%d\n", p.name, p.count, p.total)
}

func (p *cliProgress) Finish(string) {
	fmt.Fprintf(p.out, "完成导出 %s: %d 个单词\n", p.name, p.count)
}

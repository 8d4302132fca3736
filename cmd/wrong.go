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
	"github.com/eslsoft/vocdrill/internal/adapter/mapping"
	"github.com/spf13/cobra"
)

var wrongCmd = &cobra.Command{
	Use:   "wrong",
	Short: "管理错题本",
}

var wrongListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出错题，按错误次数排序",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ref, _ := cmd.Flags().GetString("vocab")
		vocabularyID, err := optionalVocabulary(ctx, ref)
		if err != nil {
			return err
		}
		items, err := container.WrongWords.ListWrongWords(ctx, vocabularyID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			cmd.Println("错题本为空")
			return nil
		}
		renderTable(cmd.OutOrStdout(), []string{"词库", "单词", "释义", "错误次数", "首次出错"}, mapping.WrongWordRows(items))
		return nil
	},
}

var wrongRemoveCmd = &cobra.Command{
	Use:   "remove <word>",
	Short: "从所有词库的错题本中移除单词",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := container.WrongWords.RemoveWrongWord(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("已从错题本移除 %s\n", args[0])
		return nil
	},
}

var wrongClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "清空错题本",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := container.WrongWords.ClearAllWrongWords(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("已清空错题本，共 %d 条\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wrongCmd)
	wrongCmd.AddCommand(wrongListCmd, wrongRemoveCmd, wrongClearCmd)
	wrongListCmd.Flags().String("vocab", "", "只显示指定词库 (ID 或名称)")
}

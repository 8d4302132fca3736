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

	"github.com/eslsoft/vocdrill/internal/adapter/mapping"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:     "vocab",
	Aliases: []string{"vocabulary"},
	Short:   "管理词库",
}

var vocabCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "创建词库",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := container.Vocabularies.CreateVocabulary(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("已创建词库 %s (ID %d)\n", v.Name, v.ID)
		return nil
	},
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有词库",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := container.Vocabularies.ListVocabularies(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			cmd.Println("暂无词库")
			return nil
		}
		renderTable(cmd.OutOrStdout(), []string{"ID", "名称", "单词数"}, mapping.VocabularyRows(items))
		return nil
	},
}

var vocabDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "删除词库及其单词、学习记录与错题",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		if err := container.Vocabularies.DeleteVocabulary(ctx, v.ID); err != nil {
			return fmt.Errorf("删除词库 %s 失败: %w", v.Name, err)
		}
		cmd.Printf("已删除词库 %s\n", v.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabCreateCmd, vocabListCmd, vocabDeleteCmd)
}

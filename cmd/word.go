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
	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/spf13/cobra"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "管理词库中的单词与短语",
}

var wordAddCmd = &cobra.Command{
	Use:   "add <vocab> <word>",
	Short: "添加单词，释义可多次指定，例如 --sense \"n. 猫\" --sense \"vt. 鞭打\"",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		wordType, err := wordTypeFlag(cmd)
		if err != nil {
			return err
		}
		values, _ := cmd.Flags().GetStringArray("sense")
		entry, err := container.Words.AddWord(ctx, v.ID, args[1], parseSenses(values), wordType)
		if err != nil {
			return err
		}
		cmd.Printf("已添加到 %s: %s  %s\n", v.Name, entry.Word, entry.DisplayText())
		return nil
	},
}

var wordListCmd = &cobra.Command{
	Use:   "list <vocab>",
	Short: "列出词库中的单词",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		entries, err := container.Words.ListWords(ctx, v.ID)
		if err != nil {
			return err
		}
		printEntries(cmd, entries)
		return nil
	},
}

var wordSearchCmd = &cobra.Command{
	Use:   "search <vocab> <keyword>",
	Short: "按单词或释义搜索，不区分大小写",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		entries, err := container.Words.SearchWords(ctx, v.ID, args[1])
		if err != nil {
			return err
		}
		printEntries(cmd, entries)
		return nil
	},
}

var wordShowCmd = &cobra.Command{
	Use:   "show <vocab> <word>",
	Short: "查看单词的全部释义",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		entry, err := container.Words.GetWord(ctx, v.ID, args[1])
		if err != nil {
			return err
		}
		cmd.Printf("%s [%s]\n", entry.Word, mapping.TypeLabel(entry.Type))
		for _, s := range entry.Senses {
			cmd.Printf("  %s\n", s.Display())
		}
		return nil
	},
}

var wordEditCmd = &cobra.Command{
	Use:   "edit <vocab> <word>",
	Short: "修改单词；未指定 --sense 时保留原有释义",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		current, err := container.Words.GetWord(ctx, v.ID, args[1])
		if err != nil {
			return err
		}

		newWord := current.Word
		if rename, _ := cmd.Flags().GetString("rename"); rename != "" {
			newWord = rename
		}
		senses := current.Senses
		if values, _ := cmd.Flags().GetStringArray("sense"); len(values) > 0 {
			senses = parseSenses(values)
		}
		wordType := current.Type
		if cmd.Flags().Changed("type") || cmd.Flags().Changed("phrase") {
			if wordType, err = wordTypeFlag(cmd); err != nil {
				return err
			}
		}

		entry, err := container.Words.UpdateWord(ctx, v.ID, current.Word, newWord, senses, wordType)
		if err != nil {
			return err
		}
		cmd.Printf("已更新: %s  %s\n", entry.Word, entry.DisplayText())
		return nil
	},
}

var wordDeleteCmd = &cobra.Command{
	Use:   "delete <vocab> <word>",
	Short: "删除单词及其学习记录与错题",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := resolveVocabulary(ctx, args[0])
		if err != nil {
			return err
		}
		if err := container.Words.DeleteWord(ctx, v.ID, args[1]); err != nil {
			return err
		}
		cmd.Printf("已从 %s 删除 %s\n", v.Name, args[1])
		return nil
	},
}

var wordMoveCmd = &cobra.Command{
	Use:   "move <word>",
	Short: "将单词移动到另一个词库，源词库中的学习记录与错题一并删除",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transferWord(cmd, args[0], true)
	},
}

var wordCopyCmd = &cobra.Command{
	Use:   "copy <word>",
	Short: "将单词复制到另一个词库",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transferWord(cmd, args[0], false)
	},
}

func transferWord(cmd *cobra.Command, word string, move bool) error {
	ctx := cmd.Context()
	fromRef, _ := cmd.Flags().GetString("from")
	toRef, _ := cmd.Flags().GetString("to")
	from, err := resolveVocabulary(ctx, fromRef)
	if err != nil {
		return err
	}
	to, err := resolveVocabulary(ctx, toRef)
	if err != nil {
		return err
	}
	if move {
		if err := container.Words.MoveWord(ctx, word, from.ID, to.ID); err != nil {
			return err
		}
		cmd.Printf("已将 %s 从 %s 移动到 %s\n", word, from.Name, to.Name)
		return nil
	}
	if err := container.Words.CopyWord(ctx, word, from.ID, to.ID); err != nil {
		return err
	}
	cmd.Printf("已将 %s 从 %s 复制到 %s\n", word, from.Name, to.Name)
	return nil
}

func printEntries(cmd *cobra.Command, entries []entity.NumberedEntry) {
	if len(entries) == 0 {
		cmd.Println("没有找到单词")
		return
	}
	renderTable(cmd.OutOrStdout(), []string{"序号", "单词", "类型", "释义"}, mapping.WordRows(entries))
}

// wordTypeFlag reads --type, with --phrase as a shorthand.
func wordTypeFlag(cmd *cobra.Command) (entity.WordType, error) {
	if phrase, _ := cmd.Flags().GetBool("phrase"); phrase {
		return entity.WordTypePhrase, nil
	}
	value, _ := cmd.Flags().GetString("type")
	return entity.ParseWordType(value)
}

func init() {
	rootCmd.AddCommand(wordCmd)
	wordCmd.AddCommand(wordAddCmd, wordListCmd, wordSearchCmd, wordShowCmd, wordEditCmd, wordDeleteCmd, wordMoveCmd, wordCopyCmd)

	for _, c := range []*cobra.Command{wordAddCmd, wordEditCmd} {
		c.Flags().StringArrayP("sense", "s", nil, "释义，格式为 \"词性. 释义\"，可重复指定")
		c.Flags().StringP("type", "t", "word", "类型: word 或 phrase")
		c.Flags().Bool("phrase", false, "等同于 --type phrase")
	}
	wordEditCmd.Flags().String("rename", "", "新的拼写")

	for _, c := range []*cobra.Command{wordMoveCmd, wordCopyCmd} {
		c.Flags().String("from", "", "源词库 (ID 或名称)")
		c.Flags().String("to", "", "目标词库 (ID 或名称)")
		cobra.CheckErr(c.MarkFlagRequired("from"))
		cobra.CheckErr(c.MarkFlagRequired("to"))
	}
}

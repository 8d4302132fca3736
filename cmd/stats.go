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
	"github.com/spf13/viper"
)

const weeklyLimitKey = "study.weekly_limit"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "查看学习统计",
}

var statsDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "按天统计答题数与正确率",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocabularyID, err := statsVocabulary(cmd)
		if err != nil {
			return err
		}
		rows, err := container.Stats.DailyStats(cmd.Context(), vocabularyID)
		if err != nil {
			return err
		}
		printStats(cmd, "日期", rows, false)
		return nil
	},
}

var statsWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "按周统计答题数与正确率",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocabularyID, err := statsVocabulary(cmd)
		if err != nil {
			return err
		}
		rows, err := container.Stats.WeeklyStats(cmd.Context(), vocabularyID, viper.GetInt(weeklyLimitKey))
		if err != nil {
			return err
		}
		printStats(cmd, "周", rows, false)
		return nil
	},
}

var statsDetailedCmd = &cobra.Command{
	Use:   "detailed",
	Short: "按天和学习模式统计",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocabularyID, err := statsVocabulary(cmd)
		if err != nil {
			return err
		}
		rows, err := container.Stats.DetailedStatsByMode(cmd.Context(), vocabularyID)
		if err != nil {
			return err
		}
		printStats(cmd, "日期", rows, true)
		return nil
	},
}

func statsVocabulary(cmd *cobra.Command) (*int64, error) {
	ref, _ := cmd.Flags().GetString("vocab")
	return optionalVocabulary(cmd.Context(), ref)
}

func printStats(cmd *cobra.Command, periodLabel string, rows []entity.StatRow, withMode bool) {
	if len(rows) == 0 {
		cmd.Println("暂无学习记录")
		return
	}
	header := []string{periodLabel}
	if withMode {
		header = append(header, "模式")
	}
	header = append(header, "答题数", "正确数", "正确率")
	renderTable(cmd.OutOrStdout(), header, mapping.StatRows(rows, withMode))
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsDailyCmd, statsWeeklyCmd, statsDetailedCmd)

	statsCmd.PersistentFlags().String("vocab", "", "只统计指定词库 (ID 或名称)")
	statsWeeklyCmd.Flags().Int("limit", 0, "显示最近多少周 (默认 8)")
	bindFlagToViper(weeklyLimitKey, statsWeeklyCmd.Flags().Lookup("limit"))
}

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
	"os"

	"github.com/eslsoft/vocdrill/internal/adapter/mapping"
	"github.com/eslsoft/vocdrill/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	container *app.Container
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:           "vocdrill",
	Short:         "命令行背单词工具",
	Long:          "管理词库与单词，按认识、选择、拼写三种模式学习，并查看学习统计与错题本。",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		}
		c, clean, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("初始化失败: %w", err)
		}
		container, cleanup = c, clean
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	closeContainer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "错误:", mapping.UserMessage(err))
		os.Exit(1)
	}
}

func closeContainer() {
	if cleanup != nil {
		cleanup()
	}
	container, cleanup = nil, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认查找 ./config.yaml, ./config/config.yaml, ~/.vocdrill/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite 数据库文件路径")
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "日志格式 (json, text)")

	bindFlagToViper("database.path", rootCmd.PersistentFlags().Lookup("db"))
	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

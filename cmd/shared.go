package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// parseWordTypes accepts comma separated or repeated values; blanks are skipped.
func parseWordTypes(values []string) ([]entity.WordType, error) {
	if len(values) == 0 {
		return nil, nil
	}
	result := make([]entity.WordType, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			t, err := entity.ParseWordType(name)
			if err != nil {
				return nil, err
			}
			result = append(result, t)
		}
	}
	return result, nil
}

func resolveVocabulary(ctx context.Context, ref string) (*entity.Vocabulary, error) {
	return container.Vocabularies.ResolveVocabulary(ctx, ref)
}

// optionalVocabulary resolves ref when set; nil means every vocabulary.
func optionalVocabulary(ctx context.Context, ref string) (*int64, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, nil
	}
	v, err := resolveVocabulary(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &v.ID, nil
}

func renderTable(out io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
}

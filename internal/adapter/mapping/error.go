package mapping

import (
	"errors"
	"fmt"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// UserMessage turns a core error into the message shown on the command line.
func UserMessage(err error) string {
	var (
		storageErr *entity.StorageError
		valueErr   *entity.InvalidValueError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &valueErr):
		return invalidValueMessage(valueErr)
	case errors.Is(err, entity.ErrInvalidInput):
		return "输入无效: 名称或单词不能为空，且至少需要一个释义"
	case errors.Is(err, entity.ErrDuplicateName):
		return "词库名称已存在"
	case errors.Is(err, entity.ErrDuplicateWord):
		return "该单词已存在于词库中"
	case errors.Is(err, entity.ErrAlreadyExists):
		return "目标词库中已存在该单词"
	case errors.Is(err, entity.ErrVocabularyNotFound):
		return "词库不存在"
	case errors.Is(err, entity.ErrWordNotFound):
		return "单词不存在"
	case errors.Is(err, entity.ErrNotFound):
		return "记录不存在"
	case errors.Is(err, entity.ErrEmptyPool):
		return "所选词库中没有符合条件的单词"
	case errors.Is(err, entity.ErrSessionNotRunning):
		return "当前没有进行中的学习"
	case errors.As(err, &storageErr):
		return "数据库操作失败: " + storageErr.Error()
	default:
		return err.Error()
	}
}

func invalidValueMessage(err *entity.InvalidValueError) string {
	switch err.Field {
	case entity.FieldStudyMode:
		return fmt.Sprintf("未知学习模式 %q，可选 recognize、choice、spell", err.Value)
	case entity.FieldWordType:
		return fmt.Sprintf("未知单词类型 %q，可选 word、phrase", err.Value)
	default:
		return fmt.Sprintf("无效的 %s: %q", err.Field, err.Value)
	}
}

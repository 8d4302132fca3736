package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIProgressReportsSteps(t *testing.T) {
	var buf bytes.Buffer
	p := newCLIProgress(&buf)

	p.Start("Demo", 3)
	p.Increment("Demo", 2)
	p.Increment("Demo", 1)
	p.Finish("Demo")

	want := "开始导出 Demo (共 3 个单词)\n" +
		"导出进度 Demo: 2/3\n" +
		"导出进度 Demo: 3/3\n" +
		"完成导出 Demo: 3 个单词\n"
	if buf.String() != want {
		t.Fatalf("unexpected progress output:\n%s", buf.String())
	}
}

func TestCLIProgressEmptyVocabulary(t *testing.T) {
	var buf bytes.Buffer
	p := newCLIProgress(&buf)
	p.Start("Empty", 0)
	p.Finish("Empty")
	if !strings.HasSuffix(buf.String(), "完成导出 Empty: 0 个单词\n") {
		t.Fatalf("unexpected progress output:\n%s", buf.String())
	}
}

func TestCLIProgressIgnoresEmptyBatches(t *testing.T) {
	var buf bytes.Buffer
	p := newCLIProgress(&buf)
	p.Start("Demo", 1)
	p.Increment("Demo", 0)
	p.Finish("Demo")
	want := "开始导出 Demo (共 1 个单词)\n完成导出 Demo: 0 个单词\n"
	if buf.String() != want {
		t.Fatalf("unexpected progress output:\n%s", buf.String())
	}
}

func TestDefaultExportFilename(t *testing.T) {
	name := defaultExportFilename("a/b")
	if !strings.HasPrefix(name, "a_b-") || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("unexpected filename %q", name)
	}
}

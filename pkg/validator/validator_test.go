package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=debug info"`
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(sample{Name: "x", Level: "info"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateStruct(sample{Level: "loud"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "sample.Name") || !strings.Contains(msg, "Tag: oneof") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

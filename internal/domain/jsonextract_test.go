package domain_test

import (
	"testing"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

func TestExtractJSONObject_Plain(t *testing.T) {
	parsed, ok := domain.ExtractJSONObject(`{"answer": "네, 추천해드릴게요."}`)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	if parsed["answer"] != "네, 추천해드릴게요." {
		t.Errorf("unexpected answer: %v", parsed["answer"])
	}
}

func TestExtractJSONObject_CodeFences(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"```JSON\n{\"a\": 1}\n```",
		"```\n{\"a\": 1}\n```",
	}
	for _, in := range inputs {
		parsed, ok := domain.ExtractJSONObject(in)
		if !ok {
			t.Fatalf("input %q: expected successful extraction", in)
		}
		if parsed["a"] != float64(1) {
			t.Errorf("input %q: unexpected value: %v", in, parsed["a"])
		}
	}
}

func TestExtractJSONObject_SurroundingProse(t *testing.T) {
	in := "물론이죠! 분석 결과입니다.\n{\"filters\": {\"strict\": true}}\n도움이 되었길 바랍니다."
	parsed, ok := domain.ExtractJSONObject(in)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	filters, ok := parsed["filters"].(map[string]any)
	if !ok || filters["strict"] != true {
		t.Errorf("unexpected filters: %v", parsed["filters"])
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	for _, in := range []string{"", "그냥 평범한 문장입니다.", "no braces here"} {
		if _, ok := domain.ExtractJSONObject(in); ok {
			t.Errorf("input %q: expected extraction failure", in)
		}
	}
}

func TestExtractJSONObject_InvalidJSON(t *testing.T) {
	if _, ok := domain.ExtractJSONObject("{not json at all}"); ok {
		t.Error("expected extraction failure for malformed object")
	}
}

package verify

import (
	"context"
	"testing"

	"github.com/abhisek/lexiz/internal/wordgen"
)

// recordingOracle is a scriptable Oracle for tests.
type recordingOracle struct {
	result OracleResult
	err    error
	calls  int
}

func (o *recordingOracle) Check(_ context.Context, _ string, _ []string, _ string) (OracleResult, error) {
	o.calls++
	if o.err != nil {
		return OracleResult{}, o.err
	}
	return o.result, nil
}

func appleWord() wordgen.Word {
	return wordgen.Word{
		Text:               "apple",
		Phonetic:           "/ˈæpl/",
		Meanings:           []string{"苹果", "一种水果"},
		Example:            "She ate an apple.",
		ExampleTranslation: "她吃了一个苹果。",
	}
}

func TestCheck_ExactMeaning_LocalMatch(t *testing.T) {
	oracle := &recordingOracle{}
	svc := NewService(oracle)

	out := svc.Check(context.Background(), appleWord(), "苹果")

	if !out.Correct {
		t.Error("expected correct")
	}
	if out.Explanation != ExplanationLocalMatch {
		t.Errorf("Explanation = %q, want %q", out.Explanation, ExplanationLocalMatch)
	}
	if out.Degraded {
		t.Error("local match must not be degraded")
	}
	if oracle.calls != 0 {
		t.Errorf("oracle calls = %d, want 0", oracle.calls)
	}
}

func TestCheck_SubstringOfMeaning_LocalMatch(t *testing.T) {
	oracle := &recordingOracle{}
	svc := NewService(oracle)

	// "水果" is a substring of the accepted meaning "一种水果".
	out := svc.Check(context.Background(), appleWord(), "水果")

	if !out.Correct {
		t.Error("expected correct for substring of accepted meaning")
	}
	if oracle.calls != 0 {
		t.Errorf("oracle calls = %d, want 0", oracle.calls)
	}
}

func TestCheck_MeaningInsideAnswer_LocalMatch(t *testing.T) {
	oracle := &recordingOracle{}
	svc := NewService(oracle)

	out := svc.Check(context.Background(), appleWord(), "就是苹果的意思")

	if !out.Correct {
		t.Error("expected correct when answer contains an accepted meaning")
	}
	if oracle.calls != 0 {
		t.Errorf("oracle calls = %d, want 0", oracle.calls)
	}
}

func TestCheck_AnswerTrimmedBeforeMatching(t *testing.T) {
	svc := NewService(&recordingOracle{})

	out := svc.Check(context.Background(), appleWord(), "  苹果  ")

	if !out.Correct {
		t.Error("expected correct after trimming")
	}
	if out.Answer != "苹果" {
		t.Errorf("Answer = %q, want trimmed form", out.Answer)
	}
}

func TestCheck_NoLocalMatch_OracleAccepts(t *testing.T) {
	oracle := &recordingOracle{result: OracleResult{Correct: true, Explanation: "语义等价"}}
	svc := NewService(oracle)

	out := svc.Check(context.Background(), appleWord(), "红富士")

	if !out.Correct {
		t.Error("expected oracle verdict to be returned verbatim")
	}
	if out.Explanation != "语义等价" {
		t.Errorf("Explanation = %q, want oracle explanation", out.Explanation)
	}
	if out.Degraded {
		t.Error("successful oracle outcome must not be degraded")
	}
	if oracle.calls != 1 {
		t.Errorf("oracle calls = %d, want exactly 1", oracle.calls)
	}
}

func TestCheck_NoLocalMatch_OracleRejects(t *testing.T) {
	oracle := &recordingOracle{result: OracleResult{Correct: false, Explanation: "不是同一种水果"}}
	svc := NewService(oracle)

	out := svc.Check(context.Background(), appleWord(), "橘子")

	if out.Correct {
		t.Error("expected incorrect")
	}
	if out.Degraded {
		t.Error("oracle rejection is not a degraded outcome")
	}
}

func TestCheck_OracleFailure_DegradedFallback(t *testing.T) {
	oracle := &recordingOracle{err: &OracleError{}}
	svc := NewService(oracle)

	out := svc.Check(context.Background(), appleWord(), "橘子")

	if out.Correct {
		t.Error("fallback containment must reject a non-matching answer")
	}
	if !out.Degraded {
		t.Error("expected degraded outcome after oracle failure")
	}
	if oracle.calls != 1 {
		t.Errorf("oracle calls = %d, want exactly 1 (no retries)", oracle.calls)
	}
}

func TestCheck_NilOracle_DegradedFallback(t *testing.T) {
	svc := NewService(nil)

	out := svc.Check(context.Background(), appleWord(), "橘子")

	if out.Correct {
		t.Error("expected incorrect")
	}
	if !out.Degraded {
		t.Error("expected degraded outcome without an oracle")
	}
}

func TestCheck_FallbackFoldsCase(t *testing.T) {
	word := wordgen.Word{
		Text:     "laser",
		Phonetic: "/ˈleɪzə/",
		Meanings: []string{"激光", "LASER光束"},
		Example:  "The laser cut through steel.", ExampleTranslation: "激光切开了钢板。",
	}
	svc := NewService(&recordingOracle{err: &OracleError{}})

	// Tier 1 is case-sensitive and misses; the fallback's folding pass hits.
	out := svc.Check(context.Background(), word, "laser光束")

	if !out.Correct {
		t.Error("expected fallback case folding to accept")
	}
	if !out.Degraded {
		t.Error("expected degraded outcome")
	}
}

func TestContainsMatch_EmptyAnswer(t *testing.T) {
	if containsMatch([]string{"苹果"}, "") {
		t.Error("empty answer must never match")
	}
}

package verification

import "testing"

func TestVerdictFallsBackOnMalformedReply(t *testing.T) {
	for _, reply := range []string{
		"The content seems fine to me.",
		`{"credibility": "Highly Credible", "score": 90`,
		`credibility: high } score {`,
		`{credibility: Highly Credible}`,
		"",
	} {
		verdict := ParseVerdict(reply)
		if verdict.Parsed {
			t.Fatalf("%q: expected no parsed object", reply)
		}
		if verdict.Credibility != MixedReliability || verdict.Score != DefaultScore {
			t.Fatalf("%q: expected defaults got %+v", reply, verdict)
		}
		if verdict.Conclusion != reply {
			t.Fatalf("%q: conclusion should be the raw reply, got %q", reply, verdict.Conclusion)
		}
	}
}

func TestVerdictSurroundedByProse(t *testing.T) {
	reply := "Sure! Here you go:\n```json\n{\"credibility\": \"Mostly Unreliable\", \"score\": 30, \"conclusion\": \"Edited clip {cropped}\"}\n```\nLet me know {if} you need more."
	verdict := ParseVerdict(reply)
	if !verdict.Parsed {
		t.Fatal("expected parsed object")
	}
	if verdict.Credibility != MostlyUnreliable || verdict.Score != 30 || verdict.Conclusion != "Edited clip {cropped}" {
		t.Fatalf("unexpected verdict %+v", verdict)
	}
}

func TestVerdictFalsyFieldsUseDefaults(t *testing.T) {
	verdict := ParseVerdict(`{"credibility": "", "score": 0, "conclusion": null}`)
	if verdict.Credibility != MixedReliability || verdict.Score != DefaultScore || verdict.Conclusion != DefaultConclusion {
		t.Fatalf("expected defaults got %+v", verdict)
	}

	verdict = ParseVerdict(`{"score": 12}`)
	if verdict.Credibility != MixedReliability || verdict.Score != 12 || verdict.Conclusion != DefaultConclusion {
		t.Fatalf("unexpected verdict %+v", verdict)
	}
}

func TestVerdictScoreNotClamped(t *testing.T) {
	if verdict := ParseVerdict(`{"score": 140}`); verdict.Score != 140 {
		t.Fatalf("score was altered: %d", verdict.Score)
	}
	if verdict := ParseVerdict(`{"score": -20}`); verdict.Score != -20 {
		t.Fatalf("score was altered: %d", verdict.Score)
	}
}

func TestVerdictCredibilityNotValidated(t *testing.T) {
	verdict := ParseVerdict(`{"credibility": "Totally Fake"}`)
	if verdict.Credibility != "Totally Fake" {
		t.Fatalf("credibility should pass through, got %q", verdict.Credibility)
	}
}

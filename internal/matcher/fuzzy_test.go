package matcher

import "testing"

func TestTokenSetRatioIdenticalStrings(t *testing.T) {
	if got := tokenSetRatio("los angeles lakers", "los angeles lakers"); got < 99.9 {
		t.Fatalf("expected ~100 for identical strings, got %v", got)
	}
}

func TestTokenSetRatioOrderIndependent(t *testing.T) {
	a := tokenSetRatio("boston celtics los angeles lakers", "los angeles lakers boston celtics")
	if a < 99.9 {
		t.Fatalf("token_set_ratio should ignore token order, got %v", a)
	}
}

func TestTokenSetRatioUnrelatedNamesScoreLower(t *testing.T) {
	identical := tokenSetRatio("los angeles lakers", "los angeles lakers")
	partial := tokenSetRatio("los angeles lakers", "chicago bulls")
	if partial >= identical {
		t.Fatalf("unrelated names should score lower than identical ones: partial=%v identical=%v", partial, identical)
	}
}

func TestSimpleRatioEmptyStrings(t *testing.T) {
	if got := simpleRatio("", ""); got != 100 {
		t.Fatalf("expected 100 for two empty strings, got %v", got)
	}
}

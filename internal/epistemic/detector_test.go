package epistemic

import (
	"testing"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

func TestDetectIntrospective(t *testing.T) {
	cases := []string{
		"I think chocolate is the best flavor",
		"I feel tired today",
		"My opinion is that the plan works",
		"That seems wrong to me",
		"I'm sure this is correct",
	}

	for _, text := range cases {
		subject := Detect(text)
		if subject.Level != model.LevelIntrospective {
			t.Errorf("%q: expected introspective, got %s", text, subject.Level)
		}
		if subject.SubjectType != model.SubjectSelf {
			t.Errorf("%q: expected self subject, got %s", text, subject.SubjectType)
		}
		if subject.Confidence != 1.0 {
			t.Errorf("%q: expected confidence 1.0, got %f", text, subject.Confidence)
		}
		if subject.Verifiability != model.Unfalsifiable {
			t.Errorf("%q: expected unfalsifiable, got %s", text, subject.Verifiability)
		}
	}
}

func TestDetectTestimonial(t *testing.T) {
	cases := []string{
		"My friend said Bitcoin will hit $200k this year.",
		"She told everyone the store was closed",
		"According to the report, sales doubled",
		"The suspect allegedly fled the scene",
		"He believes the market will recover",
	}

	for _, text := range cases {
		subject := Detect(text)
		if subject.Level != model.LevelTestimonial {
			t.Errorf("%q: expected testimonial, got %s", text, subject.Level)
		}
		if subject.SubjectType != model.SubjectOther {
			t.Errorf("%q: expected other subject, got %s", text, subject.SubjectType)
		}
		if subject.AccessType != model.AccessReported {
			t.Errorf("%q: expected reported access, got %s", text, subject.AccessType)
		}
	}
}

func TestDetectAuthority(t *testing.T) {
	cases := []string{
		"Scientists found water on Mars",
		"Research shows exercise improves mood",
		"Experts agree the bridge is safe",
	}

	for _, text := range cases {
		subject := Detect(text)
		if subject.Level != model.LevelAPosteriori {
			t.Errorf("%q: expected a_posteriori, got %s", text, subject.Level)
		}
		if subject.SubjectType != model.SubjectAuthority {
			t.Errorf("%q: expected authority subject, got %s", text, subject.SubjectType)
		}
		if subject.Confidence != 0.85 {
			t.Errorf("%q: expected confidence 0.85, got %f", text, subject.Confidence)
		}
	}
}

func TestDetectAPriori(t *testing.T) {
	cases := []string{
		"2 + 2 = 4",
		"7 * 8",
		"A bachelor is unmarried by definition",
		"All squares are rectangles",
	}

	for _, text := range cases {
		subject := Detect(text)
		if subject.Level != model.LevelAPriori {
			t.Errorf("%q: expected a_priori, got %s", text, subject.Level)
		}
		if subject.SubjectType != model.SubjectUniversal {
			t.Errorf("%q: expected universal subject, got %s", text, subject.SubjectType)
		}
		if subject.Confidence != 1.0 {
			t.Errorf("%q: expected confidence 1.0, got %f", text, subject.Confidence)
		}
	}
}

func TestDetectNormative(t *testing.T) {
	cases := []string{
		"You should exercise daily",
		"We ought to help them",
		"Everyone must pay taxes",
	}

	for _, text := range cases {
		subject := Detect(text)
		if subject.Level != model.LevelNormative {
			t.Errorf("%q: expected normative, got %s", text, subject.Level)
		}
		if subject.Confidence != 0.6 {
			t.Errorf("%q: expected confidence 0.6, got %f", text, subject.Confidence)
		}
	}
}

func TestDetectDefault(t *testing.T) {
	subject := Detect("Water boils at sea level")
	if subject.Level != model.LevelAPosteriori {
		t.Errorf("expected a_posteriori default, got %s", subject.Level)
	}
	if subject.SubjectType != model.SubjectAnonymous {
		t.Errorf("expected anonymous subject, got %s", subject.SubjectType)
	}
	if subject.Confidence != 0.8 {
		t.Errorf("expected confidence 0.8, got %f", subject.Confidence)
	}
}

// Introspective self-report outranks testimonial framing when both appear.
func TestDetectPriorityOrder(t *testing.T) {
	subject := Detect("I think she said it was closed")
	if subject.Level != model.LevelIntrospective {
		t.Errorf("expected introspective to win over testimonial, got %s", subject.Level)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	subject := Detect("I THINK THIS IS FINE")
	if subject.Level != model.LevelIntrospective {
		t.Errorf("expected introspective for upper-case input, got %s", subject.Level)
	}
}

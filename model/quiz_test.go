package model

import (
	"errors"
	"testing"

	"github.com/bytedance/sonic"
)

func TestQuestionDataWireFormat(t *testing.T) {
	// The payload is flat: the discriminator sits next to the variant
	// fields, not in a nested object.
	data := QuestionData{
		Type: QuestionTypeMultipleChoice,
		MultipleChoice: &MultipleChoiceData{
			Answers:       []string{"a", "b", "c"},
			CorrectAnswer: 2,
		},
	}

	raw, err := EncodeQuestionData(data)
	if err != nil {
		t.Fatalf("EncodeQuestionData: %v", err)
	}

	var wire map[string]interface{}
	if err := sonic.Unmarshal([]byte(raw), &wire); err != nil {
		t.Fatalf("payload is not a JSON object: %v", err)
	}
	if wire["type"] != QuestionTypeMultipleChoice {
		t.Errorf("type = %v, want %q", wire["type"], QuestionTypeMultipleChoice)
	}
	if _, ok := wire["answers"]; !ok {
		t.Error("answers not at top level")
	}
	if _, ok := wire["correct_answer"]; !ok {
		t.Error("correct_answer not at top level")
	}
}

func TestQuestionDataRoundTrip(t *testing.T) {
	cases := []QuestionData{
		{
			Type: QuestionTypeMultipleChoice,
			MultipleChoice: &MultipleChoiceData{
				Answers:       []string{"red", "green"},
				CorrectAnswer: 0,
			},
		},
		{
			Type:    QuestionTypeNumeric,
			Numeric: &NumericData{RangeStart: -5, RangeEnd: 12},
		},
		{
			Type:        QuestionTypeTrueOrFalse,
			TrueOrFalse: &TrueOrFalseData{CorrectAnswer: true},
		},
	}

	for _, in := range cases {
		t.Run(in.Type, func(t *testing.T) {
			raw, err := EncodeQuestionData(in)
			if err != nil {
				t.Fatalf("EncodeQuestionData: %v", err)
			}

			out, err := DecodeQuestionData(raw)
			if err != nil {
				t.Fatalf("DecodeQuestionData: %v", err)
			}
			if out.Type != in.Type {
				t.Fatalf("type = %q, want %q", out.Type, in.Type)
			}

			switch in.Type {
			case QuestionTypeMultipleChoice:
				if out.MultipleChoice == nil || out.MultipleChoice.CorrectAnswer != in.MultipleChoice.CorrectAnswer ||
					len(out.MultipleChoice.Answers) != len(in.MultipleChoice.Answers) {
					t.Errorf("multiple choice payload lost: %+v", out.MultipleChoice)
				}
			case QuestionTypeNumeric:
				if out.Numeric == nil || *out.Numeric != *in.Numeric {
					t.Errorf("numeric payload lost: %+v", out.Numeric)
				}
			case QuestionTypeTrueOrFalse:
				if out.TrueOrFalse == nil || *out.TrueOrFalse != *in.TrueOrFalse {
					t.Errorf("true/false payload lost: %+v", out.TrueOrFalse)
				}
			}
		})
	}
}

func TestDecodeUnknownQuestionType(t *testing.T) {
	_, err := DecodeQuestionData(`{"type":"Essay","prompt":"why"}`)
	if !errors.Is(err, ErrUnknownQuestionType) {
		t.Errorf("want ErrUnknownQuestionType, got %v", err)
	}
}

func TestEncodeMissingPayload(t *testing.T) {
	_, err := EncodeQuestionData(QuestionData{Type: QuestionTypeNumeric})
	if err == nil {
		t.Error("variant without payload encoded")
	}

	_, err = EncodeQuestionData(QuestionData{Type: "Riddle"})
	if !errors.Is(err, ErrUnknownQuestionType) {
		t.Errorf("want ErrUnknownQuestionType, got %v", err)
	}
}

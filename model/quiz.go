package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

const (
	QuestionTypeMultipleChoice = "MultipleChoice"
	QuestionTypeNumeric        = "Numeric"
	QuestionTypeTrueOrFalse    = "TrueOrFalse"
)

// ErrUnknownQuestionType marks a stored question payload that does not
// decode into any known variant. Reads treat it as a data integrity fault.
var ErrUnknownQuestionType = errors.New("unknown question type")

type Quiz struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	TitleID   string       `gorm:"not null" json:"-"`
	Title     *Translation `gorm:"foreignKey:TitleID" json:"-"`
	CreatedBy string       `gorm:"not null" json:"created_by"`
	Creator   *User        `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedAt time.Time    `json:"created_at"`
	Questions []Question   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

type Question struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	QuizID     string       `gorm:"not null;index" json:"quiz_id"`
	QuestionID string       `gorm:"not null" json:"-"`
	Text       *Translation `gorm:"foreignKey:QuestionID" json:"-"`
	Data       string       `gorm:"type:text;not null" json:"-"`
	Position   int          `gorm:"not null;default:0" json:"-"`
}

type MultipleChoiceData struct {
	Answers       []string `json:"answers"`
	CorrectAnswer int      `json:"correct_answer"`
}

type NumericData struct {
	RangeStart int `json:"range_start"`
	RangeEnd   int `json:"range_end"`
}

type TrueOrFalseData struct {
	CorrectAnswer bool `json:"correct_answer"`
}

// QuestionData is the tagged variant behind a question's `data` payload.
// Exactly one of the variant pointers is set, matching Type.
type QuestionData struct {
	Type           string
	MultipleChoice *MultipleChoiceData
	Numeric        *NumericData
	TrueOrFalse    *TrueOrFalseData
}

func (d QuestionData) MarshalJSON() ([]byte, error) {
	switch d.Type {
	case QuestionTypeMultipleChoice:
		if d.MultipleChoice == nil {
			return nil, fmt.Errorf("question data: missing %s payload", d.Type)
		}
		return sonic.Marshal(struct {
			Type string `json:"type"`
			*MultipleChoiceData
		}{d.Type, d.MultipleChoice})
	case QuestionTypeNumeric:
		if d.Numeric == nil {
			return nil, fmt.Errorf("question data: missing %s payload", d.Type)
		}
		return sonic.Marshal(struct {
			Type string `json:"type"`
			*NumericData
		}{d.Type, d.Numeric})
	case QuestionTypeTrueOrFalse:
		if d.TrueOrFalse == nil {
			return nil, fmt.Errorf("question data: missing %s payload", d.Type)
		}
		return sonic.Marshal(struct {
			Type string `json:"type"`
			*TrueOrFalseData
		}{d.Type, d.TrueOrFalse})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionType, d.Type)
}

func (d *QuestionData) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := sonic.Unmarshal(data, &tag); err != nil {
		return err
	}

	*d = QuestionData{Type: tag.Type}
	switch tag.Type {
	case QuestionTypeMultipleChoice:
		var v MultipleChoiceData
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		d.MultipleChoice = &v
	case QuestionTypeNumeric:
		var v NumericData
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		d.Numeric = &v
	case QuestionTypeTrueOrFalse:
		var v TrueOrFalseData
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		d.TrueOrFalse = &v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, tag.Type)
	}

	return nil
}

// EncodeQuestionData serializes a variant for the question row's data column.
func EncodeQuestionData(d QuestionData) (string, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeQuestionData parses a stored data column back into its variant.
func DecodeQuestionData(raw string) (QuestionData, error) {
	var d QuestionData
	if err := d.UnmarshalJSON([]byte(raw)); err != nil {
		return QuestionData{}, err
	}
	return d, nil
}

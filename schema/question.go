package schema

import "encoding/json"

const (
	QuestionSheetCollection = "questionSheet"
)

type QuestionType string

const (
	QuestionTypeScale    QuestionType = "scale"
	QuestionTypeBoolean  QuestionType = "boolean"
	QuestionTypeText     QuestionType = "text"
	QuestionTypeMultiple QuestionType = "multiple"
)

// DailyQuestion is one generated wellness question. For type "scale" the
// legal answer range is an integer 1-10; for "multiple" the answer must be
// one of Options.
type DailyQuestion struct {
	ID       string       `json:"id" bson:"id"`
	Text     string       `json:"text" bson:"text"`
	Type     QuestionType `json:"type" bson:"type"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"`
	Required bool         `json:"required" bson:"required"`
}

// QuestionSheet is the set of questions served on a given calendar date.
// One sheet per date so question ids stay stable within a day.
type QuestionSheet struct {
	Date      string          `json:"date" bson:"date"`
	Questions []DailyQuestion `json:"questions" bson:"questions"`
	Source    string          `json:"source" bson:"source"`
	CreatedAt int64           `json:"created_at" bson:"created_at"`
}

type AnswerKind string

const (
	AnswerKindScale AnswerKind = "scale"
	AnswerKindBool  AnswerKind = "boolean"
	AnswerKindText  AnswerKind = "text"
)

// AnswerValue is a tagged variant over the three shapes a dynamic-question
// answer can take. Exactly one of the value fields is meaningful, selected
// by Kind.
type AnswerValue struct {
	Kind  AnswerKind `json:"kind" bson:"kind"`
	Scale int        `json:"scale,omitempty" bson:"scale,omitempty"`
	Bool  bool       `json:"bool,omitempty" bson:"bool,omitempty"`
	Text  string     `json:"text,omitempty" bson:"text,omitempty"`
}

func ScaleAnswer(v int) AnswerValue {
	return AnswerValue{Kind: AnswerKindScale, Scale: v}
}

func BoolAnswer(v bool) AnswerValue {
	return AnswerValue{Kind: AnswerKindBool, Bool: v}
}

func TextAnswer(v string) AnswerValue {
	return AnswerValue{Kind: AnswerKindText, Text: v}
}

// UnmarshalJSON accepts the wire form clients actually send: a bare JSON
// number, boolean or string. The tagged object form is accepted as well.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*a = ScaleAnswer(int(v))
		return nil
	case bool:
		*a = BoolAnswer(v)
		return nil
	case string:
		*a = TextAnswer(v)
		return nil
	}

	var tagged struct {
		Kind  AnswerKind `json:"kind"`
		Scale int        `json:"scale"`
		Bool  bool       `json:"bool"`
		Text  string     `json:"text"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	*a = AnswerValue{Kind: tagged.Kind, Scale: tagged.Scale, Bool: tagged.Bool, Text: tagged.Text}
	return nil
}

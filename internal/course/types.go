package course

// ChallengeType tags how a challenge is presented and graded.
type ChallengeType string

const (
	TypePrediction     ChallengeType = "prediction"
	TypeExplanation    ChallengeType = "explanation"
	TypeIdentification ChallengeType = "identification"
	TypeOrdering       ChallengeType = "ordering"
	TypeDiagnosis      ChallengeType = "diagnosis"
	TypeRecall         ChallengeType = "recall"
)

// AllChallengeTypes returns the closed set of challenge types.
func AllChallengeTypes() []ChallengeType {
	return []ChallengeType{
		TypePrediction,
		TypeExplanation,
		TypeIdentification,
		TypeOrdering,
		TypeDiagnosis,
		TypeRecall,
	}
}

// Challenge is a single gradable exercise. The grading fields that apply
// depend on Type: choice-based types carry Choices/CorrectIndex, ordering
// carries Steps (in correct order), explanation carries ModelAnswer.
type Challenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	Prompt      string        `json:"prompt"`
	Choices     []string      `json:"choices,omitempty"`
	CorrectIdx  int           `json:"correctIndex,omitempty"`
	Steps       []string      `json:"steps,omitempty"`
	ModelAnswer string        `json:"modelAnswer,omitempty"`
	Explanation string        `json:"explanation,omitempty"`
}

// IsChoiceBased returns true for types graded by picking one of Choices.
func (c Challenge) IsChoiceBased() bool {
	switch c.Type {
	case TypePrediction, TypeIdentification, TypeDiagnosis, TypeRecall:
		return true
	}
	return false
}

// Lesson is an ordered group of challenges within a module, optionally
// ending in a transfer challenge that applies the lesson to a new context.
type Lesson struct {
	ID       string      `json:"id"`
	Module   int         `json:"module"`
	Number   int         `json:"number"`
	Title    string      `json:"title"`
	Summary  string      `json:"summary"`
	Main     []Challenge `json:"challenges"`
	Transfer *Challenge  `json:"transfer,omitempty"`
}

// AllChallenges returns the lesson's challenges in presentation order,
// with the transfer challenge (if any) last.
func (l Lesson) AllChallenges() []Challenge {
	out := make([]Challenge, 0, len(l.Main)+1)
	out = append(out, l.Main...)
	if l.Transfer != nil {
		out = append(out, *l.Transfer)
	}
	return out
}

// ChallengeCount returns the number of challenges including the transfer.
func (l Lesson) ChallengeCount() int {
	n := len(l.Main)
	if l.Transfer != nil {
		n++
	}
	return n
}

// Module is an ordered group of lessons forming a course unit.
type Module struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

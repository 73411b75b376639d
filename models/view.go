package models

type InputState struct {
	Value          string
	Focused        bool
	CursorPosition int
}

func (s *InputState) Reset() {
	s.Value = ""
	s.CursorPosition = 0
}

func (s *InputState) SetValue(value string) {
	s.Value = value
	s.CursorPosition = len([]rune(value))
}

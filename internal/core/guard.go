package core

import "strings"

// Submit is the form submission guard. It picks SaveCard while a card
// is being edited and AddCard otherwise, but only when both staging
// fields hold something other than whitespace. When it returns false
// nothing should be dispatched.
func Submit(m Model) (Msg, bool) {
	if strings.TrimSpace(m.NewQuestion) == "" || strings.TrimSpace(m.NewAnswer) == "" {
		return nil, false
	}
	if m.IsEditing() {
		return SaveCard{}, true
	}
	return AddCard{}, true
}

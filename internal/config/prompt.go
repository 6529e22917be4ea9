package config

import "github.com/charmbracelet/huh"

// HuhConfirm asks question on the terminal.
func HuhConfirm(question string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

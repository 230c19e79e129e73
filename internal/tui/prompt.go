package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Confirm displays a yes/no confirmation prompt
func Confirm(message string) (bool, error) {
	var confirmed bool

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

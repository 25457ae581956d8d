package game

import "fmt"

// WinnerBanner is the title shown on the game-over screen.
func WinnerBanner(winner Side) string {
	if winner == SideNone {
		return ""
	}
	return fmt.Sprintf("%s Wins!", winner)
}

// ReplayMenu lists the replay options, one line per choice plus the exit line.
func ReplayMenu(choices []int) []string {
	lines := make([]string, 0, len(choices)+1)
	for _, choice := range choices {
		lines = append(lines, fmt.Sprintf("Press %d → Best of %d", choice, choice))
	}
	return append(lines, "Press ESC → Exit")
}

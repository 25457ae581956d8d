package utils

import (
	"math/rand"
)

// Key names follow the browser KeyboardEvent.code convention, which is also
// what ebiten.Key.String() produces ("ArrowUp", "W", "Digit3", "Escape").

const (
	IntentUp   = "up"
	IntentDown = "down"
)

func IntentFromKey(key string) string {
	switch key {
	case "ArrowUp", "W", "KeyW":
		return IntentUp
	case "ArrowDown", "S", "KeyS":
		return IntentDown
	}
	return ""
}

// ReplayChoiceFromKey maps a digit key to the best-of value it selects, or 0.
func ReplayChoiceFromKey(key string) int {
	switch key {
	case "Digit3", "Numpad3", "3":
		return 3
	case "Digit5", "Numpad5", "5":
		return 5
	case "Digit7", "Numpad7", "7":
		return 7
	}
	return 0
}

func IsQuitKey(key string) bool {
	return key == "Escape"
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Clamp limits x to [low, high]. When high < low the result is low.
func Clamp(x, low, high int) int {
	if x > high {
		x = high
	}
	if x < low {
		x = low
	}
	return x
}

// Choice picks a uniformly random element of values.
func Choice(rng *rand.Rand, values []int) int {
	if len(values) == 0 {
		panic("utils: Choice called with no values")
	}
	return values[rng.Intn(len(values))]
}

// SignedChoice picks a magnitude from values and gives it a random sign.
func SignedChoice(rng *rand.Rand, values []int) int {
	magnitude := Abs(Choice(rng, values))
	if rng.Intn(2) == 0 {
		return -magnitude
	}
	return magnitude
}

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/pongvolley/game"
)

// RGBPixel is one cell of the rasterized court.
type RGBPixel struct {
	R, G, B uint8
}

var (
	backgroundColor = RGBPixel{R: 0, G: 0, B: 0}
	paddleColor     = RGBPixel{R: 255, G: 255, B: 255}
	ballColor       = RGBPixel{R: 255, G: 255, B: 0}
	netColor        = RGBPixel{R: 90, G: 90, B: 90}
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert RGB color space to grayscale
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// Luminosity weights for RGB components
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel RGBPixel) uint8 {
	gray := RFactor*float64(pixel.R) + GFactor*float64(pixel.G) + BFactor*float64(pixel.B)
	return uint8(math.Min(255, math.Round(gray)))
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) string {
	index := int(float64(gray) / grayFactor)
	if index >= len(asciiChars) {
		index = len(asciiChars) - 1
	}
	return string(asciiChars[index])
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// Rasterize scales the snapshot's court onto a cols x rows grid. Later
// layers win: net, then paddles, then ball.
func Rasterize(s game.Snapshot, cols, rows int) [][]RGBPixel {
	if cols <= 0 || rows <= 0 || s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return nil
	}
	grid := make([][]RGBPixel, rows)
	for i := range grid {
		grid[i] = make([]RGBPixel, cols)
		for j := range grid[i] {
			grid[i][j] = backgroundColor
		}
	}

	netCol := (s.ScreenWidth / 2) * cols / s.ScreenWidth
	for row := 0; row < rows; row += 2 {
		grid[row][netCol] = netColor
	}

	fill := func(r game.Rect, color RGBPixel) {
		if r.Right() <= 0 || r.Bottom() <= 0 || r.X >= s.ScreenWidth || r.Y >= s.ScreenHeight {
			return
		}
		colStart := clampIndex(r.X*cols/s.ScreenWidth, cols)
		colEnd := clampIndex((r.Right()-1)*cols/s.ScreenWidth, cols)
		rowStart := clampIndex(r.Y*rows/s.ScreenHeight, rows)
		rowEnd := clampIndex((r.Bottom()-1)*rows/s.ScreenHeight, rows)
		for row := rowStart; row <= rowEnd; row++ {
			for col := colStart; col <= colEnd; col++ {
				grid[row][col] = color
			}
		}
	}
	fill(s.Player, paddleColor)
	fill(s.AI, paddleColor)
	fill(s.Ball, ballColor)

	return grid
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// RenderToASCII converts a 2D slice of RGBPixels to an ASCII string,
// optionally wrapping each character in its ANSI color.
func RenderToASCII(pixels [][]RGBPixel, color bool) string {
	var ascii strings.Builder
	for _, row := range pixels {
		for _, pixel := range row {
			char := grayToAscii(rgbToGray(pixel))
			if color && pixel != backgroundColor {
				ascii.WriteString(rgbToAnsi(pixel) + char + "\033[0m") // Reset color after each character
			} else {
				ascii.WriteString(char)
			}
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// RenderSnapshot draws the score line, the court and, once the match is
// over, the winner banner and replay menu.
func RenderSnapshot(s game.Snapshot, cols, rows int, color bool, replayChoices []int) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Player %d  -  %d AI    (best of %d, first to %d)\n", s.PlayerScore, s.AIScore, s.BestOf, s.TargetScore)
	out.WriteString(RenderToASCII(Rasterize(s, cols, rows), color))
	if s.GameOver {
		out.WriteString(game.WinnerBanner(s.Winner) + "\n")
		for _, line := range game.ReplayMenu(replayChoices) {
			out.WriteString(line + "\n")
		}
	}
	return out.String()
}

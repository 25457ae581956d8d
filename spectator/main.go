// Command spectator follows a running match from a terminal. It subscribes
// to the spectator feed and redraws the court as ASCII on every snapshot.
// Press q to quit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/render"
	"github.com/lguibr/pongvolley/utils"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	defaultCols = 80
	defaultRows = 30
	menuLines   = 6
)

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

// frame turns one feed message into the text to print. ok is false for
// messages that do not change the picture.
func frame(data []byte, cols, rows int, color bool, choices []int) (text string, ok bool, err error) {
	var header game.MessageHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return "", false, fmt.Errorf("decode message header: %w", err)
	}

	switch header.MessageType {
	case "matchSnapshot":
		var snapshot game.Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return "", false, fmt.Errorf("decode snapshot: %w", err)
		}
		return render.RenderSnapshot(snapshot, cols, rows, color, choices), true, nil
	case "matchOver":
		var over game.MatchOverMessage
		if err := json.Unmarshal(data, &over); err != nil {
			return "", false, fmt.Errorf("decode match over: %w", err)
		}
		return fmt.Sprintf("%s %d - %d (best of %d)\n",
			game.WinnerBanner(over.Winner), over.PlayerScore, over.AIScore, over.BestOf), true, nil
	}
	return "", false, nil
}

// courtSize fills in unset dimensions from the terminal size, leaving room
// for the score line and the replay menu.
func courtSize(fd, cols, rows int) (int, int) {
	termCols, termRows := defaultCols, defaultRows+menuLines
	if term.IsTerminal(fd) {
		if width, height, err := term.GetSize(fd); err == nil {
			termCols, termRows = width, height
		}
	}
	if cols <= 0 {
		cols = termCols
	}
	if rows <= 0 {
		rows = termRows - menuLines
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func follow(conn *websocket.Conn, cols, rows int, color bool, choices []int, done chan<- error) {
	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if err == io.EOF {
				done <- nil
			} else {
				done <- fmt.Errorf("read from server: %w", err)
			}
			return
		}
		text, ok, err := frame(data, cols, rows, color, choices)
		if err != nil {
			fmt.Println("Spectator:", err)
			continue
		}
		if !ok {
			continue
		}
		helpers.ClearScreen()
		fmt.Print(text)
	}
}

func main() {
	addr := flag.String("addr", "localhost:3001", "spectator server address")
	cols := flag.Int("cols", 0, "columns of the ASCII court; 0 fits the terminal")
	rows := flag.Int("rows", 0, "rows of the ASCII court; 0 fits the terminal")
	color := flag.Bool("color", true, "use ANSI colors")
	flag.Parse()
	*cols, *rows = courtSize(int(os.Stdout.Fd()), *cols, *rows)

	websocketConnection, err := websocket.Dial(fmt.Sprintf("ws://%s/subscribe", *addr), "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		os.Exit(1)
	}
	defer websocketConnection.Close()

	done := make(chan error, 1)
	go follow(websocketConnection, *cols, *rows, *color, utils.DefaultConfig().ReplayChoices, done)

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	restore := func() {
		_ = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
	}
	defer restore()

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)

	keys := make(chan byte)
	go func() {
		buffer := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buffer); err != nil {
				close(keys)
				return
			}
			keys <- buffer[0]
		}
	}()

	for {
		select {
		case err := <-done:
			restore()
			if err != nil {
				fmt.Println("Spectator:", err)
				os.Exit(1)
			}
			fmt.Println("Server closed the feed.")
			return
		case <-interruptSignalChannel:
			return
		case key, open := <-keys:
			if !open {
				return
			}
			switch key {
			case 'q', 'Q', 3:
				fmt.Println("Quitting spectator")
				return
			}
		}
	}
}

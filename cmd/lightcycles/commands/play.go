package commands

import (
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/lightcycles/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logFile string

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays the game in the terminal",
	Long: `plays the game in the terminal.

Click a slot and press its left then right key, then click Start or press
Ctrl+S. Ctrl+X stops the running game, Ctrl+R stops it and clears every
binding, Esc or Ctrl+C quits.`,
	RunE: func(c *cobra.Command, args []string) error {
		if logFile == "" {
			log.SetOutput(ioutil.Discard)
		} else {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return errors.Wrap(err, "unable to open log file")
			}
			defer f.Close()
			log.SetOutput(f)
		}
		return play()
	},
}

// termNotifier shows the game over message on the status line.
type termNotifier struct {
	surface *termSurface
}

func (n termNotifier) GameOver(message string) error {
	n.surface.setStatus(message + " - press any key")
	return nil
}

// keyLabel maps a terminal key to the label a browser reports for it, so
// bindings read the same on both front ends.
func keyLabel(ev termbox.Event) string {
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return "ArrowLeft"
	case termbox.KeyArrowRight:
		return "ArrowRight"
	case termbox.KeyArrowUp:
		return "ArrowUp"
	case termbox.KeyArrowDown:
		return "ArrowDown"
	case termbox.KeyEnter:
		return "Enter"
	case termbox.KeyTab:
		return "Tab"
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return "Backspace"
	case termbox.KeySpace:
		return " "
	}
	if ev.Ch != 0 {
		return string(ev.Ch)
	}
	return ""
}

func play() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)

	cols, rows := termbox.Size()
	surface := newTermSurface(cfg.Width, cfg.Height, cols, rows)
	sess := session.New(cfg, surface, termNotifier{surface: surface})
	defer sess.Close()

	if err := sess.Open(); err != nil {
		return err
	}

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return errors.Wrap(ev.Err, "terminal input failed")
		case termbox.EventResize:
			surface.resize(ev.Width, ev.Height)
		case termbox.EventMouse:
			if ev.Key != termbox.MouseLeft {
				continue
			}
			x, y := surface.point(ev.MouseX, ev.MouseY)
			if err := sess.Click(x, y); err != nil {
				return err
			}
		case termbox.EventKey:
			surface.setStatus("")
			var err error
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeyCtrlS:
				err = sess.Start()
			case termbox.KeyCtrlX:
				err = sess.Stop()
			case termbox.KeyCtrlR:
				err = sess.Reset()
			default:
				if key := keyLabel(ev); key != "" {
					err = sess.KeyTap(key)
				}
			}
			if err != nil {
				return err
			}
		}
	}
}

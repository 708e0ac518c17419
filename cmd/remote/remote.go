package remote

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/0w0mewo/firetv-cli/internal/cli"
	"github.com/0w0mewo/firetv-cli/internal/firetv"
	"github.com/0w0mewo/firetv-cli/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	device    string
	storePath string
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var Cmd = &cobra.Command{
	Use:   "remote",
	Short: "Interactive keyboard remote",
	Long:  "Interactive keyboard remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cli.ResolveSession(storePath, device)
		if err != nil {
			return err
		}

		printLegend()

		fd := int(os.Stdin.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, oldState)

		// leave the terminal usable when killed mid raw mode
		go func() {
			<-utils.WaitForSignal()
			term.Restore(fd, oldState)
			os.Exit(1)
		}()

		return keyLoop(sess, fd, oldState)
	},
}

func printLegend() {
	fmt.Fprintln(os.Stdout, titleStyle.Render("Fire TV Remote"))
	for _, line := range [][2]string{
		{"arrows", "navigate"},
		{"enter", "select"},
		{"backspace", "back"},
		{"h / m", "home / menu"},
		{"space", "play/pause"},
		{"< / >", "rewind / fast forward"},
		{"t", "text input"},
		{"q", "quit"},
	} {
		fmt.Fprintf(os.Stdout, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-9s", line[0])), line[1])
	}
}

func keyLoop(sess *firetv.Session, fd int, oldState *term.State) error {
	buf := make([]byte, 3)

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}

		var ok bool
		var what string

		switch {
		case n == 3 && buf[0] == 0x1b && buf[1] == '[':
			switch buf[2] {
			case 'A':
				what = "up"
				ok, err = sess.Up()
			case 'B':
				what = "down"
				ok, err = sess.Down()
			case 'C':
				what = "right"
				ok, err = sess.Right()
			case 'D':
				what = "left"
				ok, err = sess.Left()
			default:
				continue
			}
		case buf[0] == '\r':
			what = "select"
			ok, err = sess.Select()
		case buf[0] == 0x7f || buf[0] == 0x08:
			what = "back"
			ok, err = sess.Back()
		case buf[0] == 'h':
			what = "home"
			ok, err = sess.Home()
		case buf[0] == 'm':
			what = "menu"
			ok, err = sess.Menu()
		case buf[0] == ' ':
			what = "play/pause"
			ok, err = sess.PlayPause()
		case buf[0] == '<':
			what = "rewind"
			ok, err = sess.Rewind(10)
		case buf[0] == '>':
			what = "fast forward"
			ok, err = sess.FastForward(10)
		case buf[0] == 't':
			err = textEntry(sess, fd, oldState)
			if err != nil {
				return err
			}
			continue
		case buf[0] == 'q' || buf[0] == 0x03:
			fmt.Fprint(os.Stdout, "bye\r\n")
			return nil
		default:
			continue
		}

		if err != nil {
			fmt.Fprintf(os.Stdout, "%s\r\n", errStyle.Render(fmt.Sprintf("%s: %v", what, err)))
			continue
		}
		if !ok {
			fmt.Fprintf(os.Stdout, "%s\r\n", errStyle.Render(what+": rejected"))
		}
	}
}

// textEntry drops out of raw mode for one line of input, then sends it
// character by character.
func textEntry(sess *firetv.Session, fd int, oldState *term.State) error {
	err := term.Restore(fd, oldState)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, "\ntext> ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return err
	}

	line = strings.TrimSuffix(line, "\n")
	if line != "" {
		ok, err := sess.SendText(line)
		if err != nil {
			fmt.Fprintln(os.Stdout, errStyle.Render(fmt.Sprintf("text: %v", err)))
		} else if !ok {
			fmt.Fprintln(os.Stdout, errStyle.Render("text: partially delivered"))
		}
	}

	_, err = term.MakeRaw(fd)
	return err
}

func init() {
	Cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "paired device name or IP")
	Cmd.PersistentFlags().StringVar(&storePath, "store", "", "path of the paired device registry")
}

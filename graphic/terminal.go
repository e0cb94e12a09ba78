package graphic

import (
	"os"
	"strings"
)

// normalizeTerminal drops TERMINFO when running inside tmux, where termbox
// fails to start with some TERM and TERMINFO pairs. The returned func puts the
// environment back the way it was.
func normalizeTerminal() (func(), error) {
	prev, had := os.LookupEnv("TERMINFO")

	if strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	return func() {
		if had {
			os.Setenv("TERMINFO", prev)
		} else {
			os.Unsetenv("TERMINFO")
		}
	}, nil
}

package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

var (
	_ driven.Clipboard = (*Clipboard)(nil)
	_ driven.URLOpener = (*Opener)(nil)
)

// ErrUnsupported is returned when no utility exists for the platform.
var ErrUnsupported = errors.New("desktop: unsupported platform")

// command is a resolved utility invocation.
type command struct {
	name string
	args []string
}

// Clipboard copies text through atotto/clipboard, which shells out to
// pbcopy, wl-copy, xclip or xsel and calls the Win32 API on Windows.
type Clipboard struct {
	write       func(string) error
	unsupported func() bool
}

// NewClipboard creates a clipboard for the running platform.
func NewClipboard() *Clipboard {
	return &Clipboard{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy writes text to the system clipboard.
func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found (install wl-clipboard, xclip or xsel)", ErrUnsupported)
	}
	logger.Debug("Clipboard: copying %d bytes", len(text))

	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Opener opens URLs with the platform's default handler.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an opener for the running platform.
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, start: startDetached}
}

// Open launches the default handler for url and returns without waiting.
func (o *Opener) Open(_ context.Context, url string) error {
	cmdSpec, err := openCommand(o.goos, url)
	if err != nil {
		return err
	}
	logger.Debug("Opening %s with %s", url, cmdSpec.name)

	if err := o.start(cmdSpec.name, cmdSpec.args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// openCommand picks the launcher for goos.
func openCommand(goos, url string) (command, error) {
	switch goos {
	case "darwin":
		return command{name: "open", args: []string{url}}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return command{name: "xdg-open", args: []string{url}}, nil
	case "windows":
		return command{name: "rundll32", args: []string{"url.dll,FileProtocolHandler", url}}, nil
	default:
		return command{}, fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

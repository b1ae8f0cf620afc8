package present

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// Viewer presents a rendered image to the user.
type Viewer interface {
	Show(path string) error
}

// SystemViewer hands images to the desktop's default opener.
type SystemViewer struct {
	out    io.Writer
	logger *zap.Logger
	// command builds the opener invocation; replaced in tests.
	command func(path string) *exec.Cmd
}

func NewSystemViewer(out io.Writer, logger *zap.Logger) *SystemViewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemViewer{out: out, logger: logger, command: openCommand}
}

func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Show starts the opener without waiting for the viewer window to close.
func (v *SystemViewer) Show(path string) error {
	fmt.Fprintf(v.out, "🖼️  Chart saved: %s\n", path)

	cmd := v.command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	v.logger.Debug("viewer started", zap.String("path", path), zap.Int("pid", cmd.Process.Pid))
	go cmd.Wait()
	return nil
}

// PathViewer only reports where the image was written.
type PathViewer struct {
	out io.Writer
}

func NewPathViewer(out io.Writer) *PathViewer {
	return &PathViewer{out: out}
}

func (v *PathViewer) Show(path string) error {
	_, err := fmt.Fprintf(v.out, "🖼️  Chart saved: %s\n", path)
	return err
}

// Prompt gates the run between charts.
type Prompt interface {
	Wait(message string) error
}

type LinePrompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompt(in io.Reader, out io.Writer) *LinePrompt {
	return &LinePrompt{in: bufio.NewReader(in), out: out}
}

// Wait prints message and blocks until a line is entered. EOF releases it.
func (p *LinePrompt) Wait(message string) error {
	if _, err := fmt.Fprintf(p.out, "\n%s", message); err != nil {
		return err
	}
	_, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return nil
	}
	return err
}

// NoPrompt never blocks.
type NoPrompt struct{}

func (NoPrompt) Wait(string) error { return nil }

package printer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// SystemPrinter отправляет файлы на печать средствами ОС
type SystemPrinter struct {
	goos    string
	timeout time.Duration
	run     Runner
	log     Logger
}

// NewSystemPrinter создает принтер для текущей ОС
func NewSystemPrinter(timeout time.Duration, log Logger) *SystemPrinter {
	return &SystemPrinter{
		goos:    runtime.GOOS,
		timeout: timeout,
		run:     execRunner,
		log:     log,
	}
}

// WithRunner подменяет исполнителя команд и ОС (для тестирования)
func (p *SystemPrinter) WithRunner(goos string, run Runner) *SystemPrinter {
	p.goos = goos
	p.run = run
	return p
}

// Print отправляет файл на печать
func (p *SystemPrinter) Print(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrCommandFailed, path, err)
	}

	cmd, err := CommandFor(p.goos, path)
	if err != nil {
		return fmt.Errorf("%w: %s", err, p.goos)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := p.run(ctx, cmd.Name, cmd.Args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v: %s", ErrCommandFailed, cmd.Name, err, strings.TrimSpace(string(out)))
	}

	p.log.Info("Printer: sent %s to printer via %s", path, cmd.Name)
	return nil
}

// NopPrinter ничего не печатает
type NopPrinter struct{}

// Print ничего не делает
func (NopPrinter) Print(context.Context, string) error { return nil }

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

package notes

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Launch hands uri to the operating system's URL handler, which starts the
// notes app registered for the scheme. It returns once the handler has been
// started. The handler outlives ctx.
func Launch(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := launcher(runtime.GOOS)

	cmd := exec.Command(name, append(args, uri)...) //nolint:gosec,noctx // fixed launcher, uri is an argument
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", name, err)
	}

	go func() { _ = cmd.Wait() }()

	return nil
}

func launcher(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

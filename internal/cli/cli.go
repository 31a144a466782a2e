// Package cli implements the synckit operations console.
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/upfleet/synckit/internal/archive"
	"github.com/upfleet/synckit/internal/cli/iocli"
	"github.com/upfleet/synckit/internal/clients"
	"github.com/upfleet/synckit/internal/health"
	"github.com/upfleet/synckit/internal/router"
)

// EnvDeviceSecret is the environment variable consulted first when a
// command needs a device secret.
const EnvDeviceSecret = "SYNCKIT_DEVICE_SECRET"

// Secrets carries the non-interactive device secret sources.
type Secrets struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io       iocli.IO
	router   *router.Router
	health   *health.Evaluator
	clients  *clients.Service
	archiver *archive.Archiver // nil когда архивирование выключено в конфиге
	secrets  Secrets
}

func New(io iocli.IO, r *router.Router, h *health.Evaluator, cs *clients.Service, ar *archive.Archiver, secrets Secrets) *Cli {
	return &Cli{
		io:       io,
		router:   r,
		health:   h,
		clients:  cs,
		archiver: ar,
		secrets:  secrets,
	}
}

// getDeviceSecret retrieves the device secret from various sources with priority:
// 1. Environment variable SYNCKIT_DEVICE_SECRET
// 2. File specified in --secret-file parameter
// 3. Command-line parameter --secret
// 4. Interactive prompt (fallback)
func (c *Cli) getDeviceSecret(secrets Secrets) (string, error) {
	// Priority 1: Environment variable
	if envSecret := os.Getenv(EnvDeviceSecret); envSecret != "" {
		return envSecret, nil
	}

	// Priority 2: File
	if secrets.FromFile != "" {
		content, err := os.ReadFile(secrets.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		// Убираем trailing newline/whitespace
		secret := strings.TrimSpace(string(content))
		if secret == "" {
			return "", fmt.Errorf("secret file is empty")
		}
		return secret, nil
	}

	// Priority 3: CLI parameter
	if secrets.FromArgs != "" {
		return secrets.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	secret, err := c.io.ReadSecret("Device secret: ")
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}

	return secret, nil
}

// renderTemplate рендерит data в терминал через text/template.
func (c *Cli) renderTemplate(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func PrintUsage() {
	fmt.Println("Synckit Operations Console")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  synckit [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --config PATH        Path to config file (default: synckit.yaml)")
	fmt.Println("  --secret SECRET      Device secret (not recommended, use env var or file)")
	fmt.Println("  --secret-file PATH   Path to file containing the device secret")
	fmt.Println()
	fmt.Println("Device Secret Priority (highest to lowest):")
	fmt.Println("  1. SYNCKIT_DEVICE_SECRET environment variable")
	fmt.Println("  2. --secret-file (file path)")
	fmt.Println("  3. --secret (command line)")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  stats <client-id>                                    Show sync queue statistics for a client")
	fmt.Println("  health <org-id>                                      Evaluate sync health for an organization")
	fmt.Println("  process-event <client-id> <tag> [last-chance]        Route a background sync event into a job")
	fmt.Println("  retry <client-id> [max-retries]                      Re-queue failed items and schedule a retry job")
	fmt.Println("  cleanup [days]                                       Delete completed items older than N days")
	fmt.Println("  enqueue <client-id> <type> <operation> [payload]     Add a change to the sync queue")
	fmt.Println("  register-client <org-id> <user-id> <device-id>       Register a device for offline sync")
	fmt.Println("  register-sync <org-id> <user-id> <device-id> <tag> [interval]")
	fmt.Println("                                                       Subscribe a device to periodic background sync")
	fmt.Println("  archive [days]                                       Move old completed items to object storage")
	fmt.Println("  verify-archive [manifest-key]                        Verify archived batches against manifests")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Queue inspection")
	fmt.Println("  synckit stats 7c9e6679-7425-40de-944b-e07fc1f90ae7")
	fmt.Println("  synckit health org-1")
	fmt.Println()
	fmt.Println("  # Route a sync event the way a device background task would")
	fmt.Println("  synckit process-event 7c9e6679-7425-40de-944b-e07fc1f90ae7 sync-all")
	fmt.Println("  synckit process-event 7c9e6679-7425-40de-944b-e07fc1f90ae7 sync-tasks last-chance")
	fmt.Println()
	fmt.Println("  # Queue maintenance")
	fmt.Println("  synckit retry 7c9e6679-7425-40de-944b-e07fc1f90ae7")
	fmt.Println("  synckit cleanup 30")
	fmt.Println("  synckit archive 90")
	fmt.Println()
	fmt.Println("  # Device registration using environment variable (recommended)")
	fmt.Println("  export SYNCKIT_DEVICE_SECRET='long-random-device-secret'")
	fmt.Println("  synckit register-client org-1 user-1 field-tablet-07")
	fmt.Println()
	fmt.Println("  # Device registration using a secret file (for automation)")
	fmt.Println("  echo 'long-random-device-secret' > ~/.synckit-secret")
	fmt.Println("  chmod 600 ~/.synckit-secret")
	fmt.Println("  synckit --secret-file ~/.synckit-secret register-client org-1 user-1 field-tablet-07")
	fmt.Println()
	fmt.Println("  # Background sync subscription, at most one run per 30 minutes")
	fmt.Println("  synckit register-sync org-1 user-1 field-tablet-07 sync-tasks 30m")
}

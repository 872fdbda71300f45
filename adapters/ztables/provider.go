package ztables

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"dsconf/domain/core"
	"dsconf/ports"
)

// DefaultTimeout bounds one lookup subprocess run.
const DefaultTimeout = 30 * time.Second

// Provider resolves critical values by invoking the external ztables lookup
// tool as a subprocess and parsing its text output. The call is synchronous
// with a process-level timeout; a non-zero exit code is a hard failure of the
// enclosing analysis, with no retry.
type Provider struct {
	path      string
	extraArgs []string
	timeout   time.Duration
}

// NewProvider creates a subprocess-backed provider. extraArgs are appended
// verbatim to every invocation.
func NewProvider(path string, extraArgs []string, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{
		path:      path,
		extraArgs: extraArgs,
		timeout:   timeout,
	}
}

// CriticalValue runs the lookup tool: t-distribution mode for small samples,
// standard-normal mode otherwise.
func (p *Provider) CriticalValue(ctx context.Context, n int, confidenceLevel float64) (float64, error) {
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, core.NewProviderError(
			fmt.Sprintf("confidence level %g out of range (0..1)", confidenceLevel), nil)
	}

	conf := strconv.FormatFloat(confidenceLevel, 'g', -1, 64)
	var args []string
	if n < ports.SmallSampleCutoff {
		args = []string{"-t", strconv.Itoa(n), "-p", conf}
	} else {
		args = []string{"-s", "-p", conf}
	}
	args = append(args, p.extraArgs...)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, p.path, args...).CombinedOutput()
	if err != nil {
		return 0, core.NewProviderError(
			fmt.Sprintf("command failed: %s %s", p.path, strings.Join(args, " ")), err)
	}

	return ParseOutput(string(out))
}

// ParseOutput extracts the single critical value from the lookup tool's
// output. The value is the second field of the one line containing a '%'
// marker; zero or multiple candidate lines cannot be parsed.
func ParseOutput(out string) (float64, error) {
	found := false
	var value float64

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "%") {
			continue
		}
		if found {
			return 0, core.NewProviderError("unexpected output, found more than one candidate value", nil)
		}
		flds := strings.Fields(line)
		if len(flds) < 2 {
			return 0, core.NewProviderError(fmt.Sprintf("malformed output line: %q", line), nil)
		}
		v, err := strconv.ParseFloat(flds[1], 64)
		if err != nil {
			return 0, core.NewProviderError(fmt.Sprintf("malformed output value: %q", flds[1]), err)
		}
		value = v
		found = true
	}

	if !found {
		return 0, core.NewProviderError("unexpected output, did not find a critical value", nil)
	}
	if value <= 0 {
		return 0, core.NewProviderError(fmt.Sprintf("critical value %g is not positive", value), nil)
	}
	return value, nil
}

package sequences

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/gobwas/glob"

	"walrus/parallel"
)

// Target selects the terminal devices to write to.
type Target struct {
	Dir     string
	Pattern string
}

// DefaultTarget returns the pseudo-terminal devices of the platform.
func DefaultTarget(darwin bool) Target {
	if darwin {
		return Target{Dir: "/dev", Pattern: "ttys00[0-9]*"}
	}
	return Target{Dir: "/dev/pts", Pattern: "[0-9]*"}
}

// Report lists the outcome of a broadcast per device.
type Report struct {
	Written []string
	Failed  map[string]error
}

// Devices lists the device paths matching the target.
func (t Target) Devices() ([]string, error) {
	g, err := glob.Compile(t.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid device pattern %q: %w", t.Pattern, err)
	}

	entries, err := os.ReadDir(t.Dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", t.Dir, err)
	}

	var devices []string
	for _, e := range entries {
		if e.IsDir() || !g.Match(e.Name()) {
			continue
		}
		devices = append(devices, filepath.Join(t.Dir, e.Name()))
	}
	return devices, nil
}

// Broadcast writes seq to every device of the target. Failing devices are
// reported and logged, they do not stop the broadcast.
func Broadcast(seq string, target Target, workers int) (Report, error) {
	report := Report{Failed: map[string]error{}}

	devices, err := target.Devices()
	if err != nil {
		return report, err
	}

	var mu sync.Mutex
	pool := parallel.Start(workers)
	for _, dev := range devices {
		pool.Do(func() {
			err := writeDevice(dev, seq)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("could not write to terminal", "device", dev, "error", err)
				report.Failed[dev] = err
				return
			}
			report.Written = append(report.Written, dev)
		})
	}
	pool.Wait()

	slices.Sort(report.Written)
	return report, nil
}

func writeDevice(path, seq string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}

	_, err = f.WriteString(seq)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("could not write to %q: %w", path, err)
	}
	return nil
}

// Package testutil provides a standardized harness for integration tests:
// it writes workflow fixtures to a temp dir and runs the app end to end.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/internal/app"
	"github.com/vk/signalgridgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Stdout    string
	Err       error
	App       *app.App
}

// RunWorkflow writes the given files under a temp dir, starts the app
// against it, and runs the workflow once. Startup panics (bad workflow,
// invalid config) are recovered into the result's Err.
func RunWorkflow(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		WorkflowPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	}

	logBuffer := &SafeBuffer{}
	var outBuffer bytes.Buffer

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(context.Background(), &outBuffer, logBuffer, appConfig, modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Stdout:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}

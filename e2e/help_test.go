//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through the PTY since it exits straight away
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--content")
	for _, sub := range []string{"serve", "export", "print", "validate", "config"} {
		require.Contains(t, output, sub, "help should list %s", sub)
	}
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.NoError(t, tf.WaitForE(func(string) bool {
		return strings.Contains(tf.SnapshotPlain(), "previous section")
	}, 2*time.Second, "full help should list every key"))

	require.NoError(t, tf.Quit())
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteContent("sections:\n  - kind: testimonials\n    testimonials: []\n")
	require.NoError(t, err)

	out, err := exec.Command(binPath, "validate", path).CombinedOutput()
	require.Error(t, err, "empty carousel should fail validation")
	require.Contains(t, string(out), "testimonial")
}

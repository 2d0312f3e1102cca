//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const navContent = `title: E2E Page
sections:
  - kind: testimonials
    id: reviews
    title: Reviews
    testimonials:
      - name: Alpha Person
        message: first message
      - name: Beta Person
        message: second message
      - name: Gamma Person
        message: third message
      - name: Delta Person
        message: fourth message
      - name: Epsilon Person
        message: fifth message
  - kind: faq
    id: faq
    title: Questions
    items:
      - question: Is this a test?
        answer: Yes it is the hidden answer.
      - question: Second question?
        answer: Second answer.
`

func startNav(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteContent(navContent)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(append([]string{"--content", path}, args...)...))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("E2E Page"), "Should show the content title")
	return tf
}

func TestTabFocusPausesCarousel(t *testing.T) {
	t.Parallel()
	tf := startNav(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Tab())
	require.NoError(t, tf.WaitForE(func(string) bool {
		return strings.Contains(tf.SnapshotPlain(), "autoplay paused")
	}, 2*time.Second, "focusing the carousel should pause autoplay"))

	require.NoError(t, tf.Quit())
}

func TestAccordionToggle(t *testing.T) {
	t.Parallel()
	tf := startNav(t, "--no-autoplay")
	defer tf.Cleanup()

	require.False(t, strings.Contains(tf.SnapshotPlain(), "hidden answer"), "panels start closed")

	// carousel, then faq
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Enter())

	require.NoError(t, tf.WaitForE(func(string) bool {
		return strings.Contains(tf.SnapshotPlain(), "hidden answer")
	}, 2*time.Second, "enter should open the first panel"))

	require.NoError(t, tf.Quit())
}

func TestCarouselKeys(t *testing.T) {
	t.Parallel()
	tf := startNav(t, "--no-autoplay")
	defer tf.Cleanup()

	// five items: the third is off screen until it becomes active
	require.False(t, strings.Contains(tf.SnapshotPlain(), "third message"))
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.SendKeys("3"))
	require.NoError(t, tf.WaitForE(func(string) bool {
		return strings.Contains(tf.SnapshotPlain(), "third message")
	}, 2*time.Second, "digit should jump to the third testimonial"))

	require.NoError(t, tf.Quit())
}

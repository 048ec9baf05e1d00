package app

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLogPaneKeepsLastLines(t *testing.T) {
	pane := newLogPane(binding.NewString())
	t.Cleanup(pane.Stop)

	for i := 0; i < maxLogLines+25; i++ {
		_, err := fmt.Fprintf(pane, "line %d\n", i)
		require.NoError(t, err)
	}
	lines := strings.Split(pane.Text(), "\n")
	require.Len(t, lines, maxLogLines)
	assert.Equal(t, "line 25", lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", maxLogLines+24), lines[len(lines)-1])
}

func TestLogPaneSplitsAndSkipsBlankWrites(t *testing.T) {
	pane := newLogPane(binding.NewString())
	t.Cleanup(pane.Stop)

	n, err := pane.Write([]byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, _ = pane.Write([]byte("a\nb\n"))
	assert.Equal(t, "a\nb", pane.Text())
}

func TestLogPaneDebouncedFlush(t *testing.T) {
	test.NewTempApp(t)
	bind := binding.NewString()
	pane := newLogPane(bind)
	t.Cleanup(pane.Stop)

	_, _ = pane.Write([]byte("hello\n"))
	assert.Eventually(t, func() bool {
		got, _ := bind.Get()
		return got == "hello"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestLogPaneStopEndsUpdater(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	pane := newLogPane(binding.NewString())
	_, _ = pane.Write([]byte("bye\n"))
	pane.Stop()
	pane.Stop()
}

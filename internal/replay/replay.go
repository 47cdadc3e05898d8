// Package replay feeds a recorded push stream into the Bubble Tea loop, one
// push per step.
package replay

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/core"
	"github.com/glintlabs/glint/protocol"
)

// Feed walks a decoded recording.
type Feed struct {
	pushes []protocol.Push
	next   int
	delay  time.Duration
}

// Load reads a JSONL recording from disk.
func Load(path string, delay time.Duration) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	return FromBytes(data, delay)
}

// FromBytes decodes a recording held in memory.
func FromBytes(data []byte, delay time.Duration) (*Feed, error) {
	pushes, err := protocol.DecodeRecording(data)
	if err != nil {
		return nil, err
	}
	return &Feed{pushes: pushes, delay: delay}, nil
}

func (f *Feed) Len() int       { return len(f.pushes) }
func (f *Feed) Remaining() int { return len(f.pushes) - f.next }

// Next returns the command delivering the next push, honoring the configured
// delay. Past the end it reports ReplayDoneMsg once.
func (f *Feed) Next() tea.Cmd {
	if f.next >= len(f.pushes) {
		return func() tea.Msg { return core.ReplayDoneMsg{} }
	}
	p := f.pushes[f.next]
	f.next++
	if f.delay <= 0 {
		return func() tea.Msg { return core.PushMsg{Push: p} }
	}
	return tea.Tick(f.delay, func(time.Time) tea.Msg { return core.PushMsg{Push: p} })
}

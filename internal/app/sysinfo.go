package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuHistoryLen is the number of samples shown in the CPU graph.
const cpuHistoryLen = 10

// SysInfoMsg carries one CPU and memory sample.
type SysInfoMsg struct {
	CPU    float64
	Memory float64
	Err    error
}

// SysInfoCmd samples CPU and memory usage after delay. Sampling runs in the
// command goroutine, off the update loop.
func SysInfoCmd(delay time.Duration) tea.Cmd {
	sample := func() tea.Msg {
		var msg SysInfoMsg
		percents, err := cpu.Percent(0, false)
		if err != nil {
			msg.Err = fmt.Errorf("failed to read cpu usage: %w", err)
		} else if len(percents) > 0 {
			msg.CPU = percents[0]
		}
		vm, err := mem.VirtualMemory()
		if err != nil {
			msg.Err = fmt.Errorf("failed to read memory usage: %w", err)
		} else {
			msg.Memory = vm.UsedPercent
		}
		return msg
	}
	if delay <= 0 {
		return sample
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return sample() })
}

// recordSysInfo appends a sample to the history. Failed samples keep the
// previous values.
func (d *Desktop) recordSysInfo(msg SysInfoMsg) {
	if msg.Err != nil {
		d.Logger.Debug("sysinfo sample failed", "err", msg.Err)
		return
	}
	if len(d.CPUHistory) >= cpuHistoryLen {
		d.CPUHistory = d.CPUHistory[1:]
	}
	d.CPUHistory = append(d.CPUHistory, clampPercent(msg.CPU))
	d.MemUsage = clampPercent(msg.Memory)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}

var graphBars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// GetCPUGraph returns a formatted string with CPU usage graph and percentage.
// Always returns a fixed-width string to prevent layout shifts.
func (d *Desktop) GetCPUGraph() string {
	current := 0.0
	if len(d.CPUHistory) > 0 {
		current = d.CPUHistory[len(d.CPUHistory)-1]
	}

	var graph strings.Builder
	graph.WriteString(strings.Repeat(" ", cpuHistoryLen-len(d.CPUHistory)))
	for _, usage := range d.CPUHistory {
		// 100/8 = 12.5
		graph.WriteString(graphBars[min(int(usage/12.5), len(graphBars)-1)])
	}

	// "CPU " (4) + graph (10) + " " (1) + percentage (4) = 19 cells
	return fmt.Sprintf("CPU %s %3.0f%%", graph.String(), current)
}

// GetMemUsage returns the memory usage label, fixed width.
func (d *Desktop) GetMemUsage() string {
	return fmt.Sprintf("MEM %3.0f%%", d.MemUsage)
}

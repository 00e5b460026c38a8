package util

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine the renderer runs on
type HostInfo struct {
	CPUModel     string
	LogicalCores int
	ClockGHz     float64
	TotalRAMGB   float64
}

// String formats the host info for a log line
func (h HostInfo) String() string {
	return fmt.Sprintf("%s, %d logical cores @ %.2f GHz, %.1f GB RAM",
		h.CPUModel, h.LogicalCores, h.ClockGHz, h.TotalRAMGB)
}

// GetHostInfo collects CPU and memory details
func GetHostInfo() (HostInfo, error) {
	info := HostInfo{
		CPUModel:     "unknown CPU",
		LogicalCores: runtime.NumCPU(),
	}

	cpuInfo, err := cpu.Info()
	if err != nil {
		return info, fmt.Errorf("failed to read CPU info: %w", err)
	}
	if len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.ClockGHz = cpuInfo[0].Mhz / 1000
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return info, fmt.Errorf("failed to read memory info: %w", err)
	}
	info.TotalRAMGB = float64(memInfo.Total) / (1024 * 1024 * 1024)

	return info, nil
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"
)

const bytesPerMB = 1024 * 1024

// ResourceUsageData is a snapshot of process resource usage reported by health probes.
type ResourceUsageData struct {
	Timestamp      string         `json:"timestamp"`
	MemoryUsage    map[string]any `json:"memory_usage"`
	GCStats        map[string]any `json:"gc_stats"`
	SystemInfo     map[string]any `json:"system_info"`
	DetailedMemory map[string]any `json:"detailed_memory,omitempty"`
}

// CollectResourceUsage gathers current resource usage statistics.
// With detailed set, allocation counters and GC pause totals are included.
func CollectResourceUsage(detailed bool) *ResourceUsageData {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	data := &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":  float64(memStats.HeapAlloc) / bytesPerMB,
			"heap_sys_mb":    float64(memStats.HeapSys) / bytesPerMB,
			"heap_inuse_mb":  float64(memStats.HeapInuse) / bytesPerMB,
			"heap_objects":   memStats.HeapObjects,
			"stack_inuse_mb": float64(memStats.StackInuse) / bytesPerMB,
		},
		GCStats: map[string]any{
			"num_gc":          memStats.NumGC,
			"num_forced_gc":   memStats.NumForcedGC,
			"gc_cpu_fraction": memStats.GCCPUFraction,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
	}

	if detailed {
		data.DetailedMemory = map[string]any{
			"alloc_mb":          float64(memStats.Alloc) / bytesPerMB,
			"total_alloc_mb":    float64(memStats.TotalAlloc) / bytesPerMB,
			"sys_mb":            float64(memStats.Sys) / bytesPerMB,
			"mallocs":           memStats.Mallocs,
			"frees":             memStats.Frees,
			"gc_pause_total_ns": memStats.PauseTotalNs,
			"next_gc_mb":        float64(memStats.NextGC) / bytesPerMB,
		}
	}

	return data
}

// FormatResourceUsageAsJSON formats resource usage data as indented JSON.
func FormatResourceUsageAsJSON(data *ResourceUsageData) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource usage: %w", err)
	}
	return string(jsonData), nil
}

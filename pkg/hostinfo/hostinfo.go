// Package hostinfo logs a one-shot summary of the machine the agent runs on.
// The numbers help when reading logs sent back by users with slow devices.
package hostinfo

import (
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// LogSummary writes host, CPU and memory facts to the log. Failures are
// logged at debug level and never abort startup.
func LogSummary() {
	if hi, err := host.Info(); err == nil {
		log.Info().
			Str("os", hi.OS).
			Str("platform", hi.Platform).
			Str("platform_version", hi.PlatformVersion).
			Str("arch", hi.KernelArch).
			Msg("Host environment")
	} else {
		log.Debug().Err(err).Msg("Host info unavailable")
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		logical, _ := cpu.Counts(true)
		log.Info().
			Str("model", infos[0].ModelName).
			Int("logical_cores", logical).
			Msg("CPU")
	} else if err != nil {
		log.Debug().Err(err).Msg("CPU info unavailable")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		log.Info().
			Uint64("total_mb", vm.Total/1024/1024).
			Uint64("available_mb", vm.Available/1024/1024).
			Msg("Memory")
	} else {
		log.Debug().Err(err).Msg("Memory info unavailable")
	}
}

// Package resdir caches the path of the MAA resource bundle so that data
// loaders can resolve their JSON assets after the GUI picks a resource.
package resdir

import (
	"path/filepath"
	"sync"
	"sync/atomic"

	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

var (
	resourcePath atomic.Value // string
	registerOnce sync.Once
)

type pathSink struct{}

func (s *pathSink) OnResourceLoading(resource *maa.Resource, status maa.EventStatus, detail maa.ResourceLoadingDetail) {
	if status != maa.EventStatusSucceeded || detail.Path == "" {
		return
	}
	abs := detail.Path
	if p, err := filepath.Abs(detail.Path); err == nil {
		abs = p
	}
	resourcePath.Store(abs)
	log.Info().Str("resource_path", abs).Msg("Resource loaded; cached path")
}

// Register installs the resource-loading sink. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		maa.AgentServerAddResourceSink(&pathSink{})
	})
}

// Base returns the cached absolute resource directory, or "" before the
// first successful resource load.
func Base() string {
	if v := resourcePath.Load(); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// DataDir resolves a data subdirectory under the resource base. Before the
// base is known it falls back to the relative default used in development.
func DataDir(sub string) string {
	base := Base()
	if base == "" {
		base = "data"
	}
	return filepath.Join(base, sub)
}

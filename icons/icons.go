// Package icons holds the named vector icons that can be placed on OSD tiles.
//
// Icons are stored in the IconVG format. The built-in set is taken from the
// Material Design icons shipped with golang.org/x/exp/shiny, keyed by short
// kebab-case names. Custom IconVG graphics can be added with Register.
package icons

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	// ErrUnknownIcon is returned when no icon is registered under the requested name.
	ErrUnknownIcon = errors.New("unknown icon")
	// ErrDuplicateIcon is returned when registering a name which is already in use.
	ErrDuplicateIcon = errors.New("icon already registered")
)

var (
	mu       sync.RWMutex
	registry = map[string][]byte{
		"signal":        icons.DeviceSignalCellular4Bar,
		"signal-lq":     icons.DeviceSignalWiFi4Bar,
		"chevron-left":  icons.NavigationChevronLeft,
		"chevron-right": icons.NavigationChevronRight,
		"chevron-up":    icons.NavigationExpandLess,
		"chevron-down":  icons.NavigationExpandMore,
		"arrow-down":    icons.NavigationArrowDownward,
		"flash":         icons.ImageFlashOn,
		"home":          icons.ActionHome,
		"home-marker":   icons.MapsPlace,
		"blackbox":      icons.DeviceStorage,
		"roll":          icons.ImageRotateRight,
		"pitch":         icons.ActionCached,
		"rotate-left":   icons.ImageRotateLeft,
		"satellite":     icons.MapsSatellite,
		"speedometer":   icons.ActionDashboard,
		"crosshairs":    icons.ImageCenterFocusStrong,
		"thermometer":   icons.SocialWhatsHot,
		"altimeter":     icons.ActionTrendingUp,
		"latitude":      icons.MapsMyLocation,
		"longitude":     icons.ActionExplore,
		"battery":       icons.DeviceBatteryFull,
		"battery-90":    icons.DeviceBattery90,
		"battery-80":    icons.DeviceBattery80,
		"battery-60":    icons.DeviceBattery60,
		"battery-50":    icons.DeviceBattery50,
		"battery-30":    icons.DeviceBattery30,
		"battery-20":    icons.DeviceBattery20,
		"battery-alert": icons.DeviceBatteryAlert,
		"flight-timer":  icons.ActionFlightTakeoff,
		"battery-timer": icons.DeviceAccessTime,
		"timer":         icons.ImageTimer,
	}
)

// Lookup returns the IconVG data registered under name.
func Lookup(name string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()

	data, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return data, nil
}

// Names returns the registered icon names in lexical order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Register adds a custom IconVG graphic under name.
func Register(name string, data []byte) error {
	if name == "" {
		return errors.New("icon name cannot be empty")
	}
	if _, err := iconvg.DecodeMetadata(data); err != nil {
		return fmt.Errorf("invalid IconVG data for %q: %w", name, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateIcon, name)
	}
	registry[name] = data

	return nil
}

// unregister removes name from the registry. Used by tests only.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, name)
}

// FILE: lixenwraith/dconf/example/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/dconf"
)

// AppSettings mirrors a small dconf subtree.
type AppSettings struct {
	Theme     string        `dconf:"theme"`
	FontScale float64       `dconf:"font-scale"`
	Autosave  time.Duration `dconf:"autosave-interval"`
	Window    struct {
		Width     int32 `dconf:"width"`
		Height    int32 `dconf:"height"`
		Maximized bool  `dconf:"maximized"`
	} `dconf:"window"`
}

const (
	appDir       = "/org/example/dconf-demo/"
	snapshotPath = "dconf-demo.toml"
)

func main() {
	ctx := context.Background()

	// =========================================================================
	// PART 1: BUILD A CLIENT
	// Options come from DCONF_* variables over the defaults.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Building client...")

	client, err := dconf.NewBuilder().
		WithEnvPrefix(dconf.DefaultEnvPrefix).
		WithTimeout(2 * time.Second).
		Build()
	if err != nil && !errors.Is(err, dconf.ErrOptionsNotFound) {
		log.Fatalf("❌ Builder failed: %v", err)
	}
	log.Printf("✅ Client ready, invoking %q.", client.Tool())

	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.Remove(snapshotPath)
		log.Printf("Removed %s. Keys below %s are left in place.", snapshotPath, appDir)
	}()

	// =========================================================================
	// PART 2: TYPED ACCESSORS
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Writing and reading typed values...")

	if err := client.SetString(ctx, appDir+"theme", "dark"); err != nil {
		log.Fatalf("❌ SetString failed: %v", err)
	}
	if err := client.SetDouble(ctx, appDir+"font-scale", 1.25); err != nil {
		log.Fatalf("❌ SetDouble failed: %v", err)
	}

	theme, _ := client.String(ctx, appDir+"theme")
	scale, err := client.Double(ctx, appDir+"font-scale")
	if errors.Is(err, dconf.ErrNotDouble) {
		scale = 1.0
	}
	log.Printf("✅ theme=%s font-scale=%g", theme, scale)

	// =========================================================================
	// PART 3: STRUCT BINDING
	// Store writes a struct as a subtree, Scan reads it back.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Storing and scanning a struct...")

	settings := AppSettings{Theme: "solarized", FontScale: 1.1, Autosave: 5 * time.Minute}
	settings.Window.Width = 1280
	settings.Window.Height = 800

	if err := client.Store(ctx, appDir, &settings); err != nil {
		log.Fatalf("❌ Store failed: %v", err)
	}

	var loaded AppSettings
	if err := client.Scan(ctx, appDir, &loaded); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	printCurrentState(&loaded, "Scanned State")

	entries, _ := client.ListDir(ctx, appDir)
	log.Printf("✅ %s contains %v", appDir, entries)

	// =========================================================================
	// PART 4: SNAPSHOTS
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Saving a snapshot...")

	if err := client.Save(ctx, appDir, snapshotPath); err != nil {
		log.Fatalf("❌ Save failed: %v", err)
	}
	log.Printf("✅ Snapshot saved to %s.", snapshotPath)

	if err := client.Export(ctx, appDir, os.Stdout, "yaml"); err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
}

// printCurrentState is a helper to display the scanned settings.
func printCurrentState(s *AppSettings, title string) {
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("             %s\n", title)
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Theme:       %s\n", s.Theme)
	fmt.Printf("     Font Scale:  %g\n", s.FontScale)
	fmt.Printf("     Autosave:    %s\n", s.Autosave)
	fmt.Printf("     Window:      %dx%d (maximized: %t)\n", s.Window.Width, s.Window.Height, s.Window.Maximized)
	fmt.Println("   --------------------------------------------------")
}

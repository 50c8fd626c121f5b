// File: lixenwraith/dconf/doc.go

// Package dconf provides typed access to the dconf configuration database by
// invoking the dconf command-line tool and parsing its textual output.
//
// Features:
//   - Typed getters and setters for bool, string, int32, uint32 and double values
//   - Directory listing with the tool's trailing "list" artifact removed
//   - Classified errors: launch failure, precondition failure, parse failure
//   - Pluggable process runner for testing without a real database
//   - Struct binding with `dconf` tags (Scan and Store)
//   - Tree snapshots to TOML, YAML or JSON (Export, Save, Restore)
//   - Options from file, environment and builder, with structured logging and metrics
//
// Quick Start:
//
//	if err := dconf.SetString("/org/example/app/theme", "dark"); err != nil {
//	    log.Fatal(err)
//	}
//	theme, _ := dconf.GetString("/org/example/app/theme")
//	keys, _ := dconf.ListDir("/org/example/app/")
//
// Configured client:
//
//	client, err := dconf.NewBuilder().
//	    WithTimeout(2 * time.Second).
//	    WithLogger(logger).
//	    WithMetrics(prometheus.DefaultRegisterer).
//	    Build()
//
//	width, err := client.Int(ctx, "/org/example/app/width")
//	if errors.Is(err, dconf.ErrNotInteger) {
//	    width = 800
//	}
//
// Value syntax:
// Strings are written wrapped in single quotes without escaping, and every single
// quote is removed from values on read, so "it's" reads back as "its". Booleans read
// as true only when the raw value is exactly "true".
//
// Thread Safety:
// A Client holds no mutable state. Concurrent calls are safe, but no ordering is
// guaranteed between concurrent writes to the same key beyond what dconf provides.
package dconf

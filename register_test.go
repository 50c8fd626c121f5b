// FILE: lixenwraith/dconf/register_test.go
package dconf

import (
	"context"
	"math"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore tests writing struct fields as keys
func TestStore(t *testing.T) {
	ctx := context.Background()

	type Window struct {
		Width  int   `dconf:"width"`
		Height int64 `dconf:"height"`
	}

	type Settings struct {
		Theme    string        `dconf:"theme"`
		Enabled  bool          `dconf:"enabled"`
		Scale    float32       `dconf:"scale"`
		Retries  uint8         `dconf:"retries"`
		Autosave time.Duration `dconf:"autosave"`
		Untagged string
		Skipped  string  `dconf:"-"`
		Window   Window  `dconf:"window"`
		Panel    *Window `dconf:"panel"`
		hidden   string
	}

	t.Run("WritesEveryField", func(t *testing.T) {
		c, fake := newTestClient()
		s := Settings{
			Theme:    "dark",
			Enabled:  true,
			Scale:    1.5,
			Retries:  3,
			Autosave: 90 * time.Second,
			Untagged: "u",
			Skipped:  "s",
			Window:   Window{Width: 1280, Height: 800},
			hidden:   "h",
		}

		require.NoError(t, c.Store(ctx, "/app", &s))

		want := map[string]string{
			"/app/theme":         "'dark'",
			"/app/enabled":       "true",
			"/app/scale":         "1.5",
			"/app/retries":       "3",
			"/app/autosave":      "'1m30s'",
			"/app/Untagged":      "'u'",
			"/app/window/width":  "1280",
			"/app/window/height": "800",
		}
		assert.Equal(t, want, fake.values)
	})

	t.Run("NonNilPointerStruct", func(t *testing.T) {
		c, fake := newTestClient()
		s := Settings{Panel: &Window{Width: 48}}
		require.NoError(t, c.Store(ctx, "/app/", s))

		raw, ok := fake.get("/app/panel/width")
		require.True(t, ok)
		assert.Equal(t, "48", raw)
	})

	t.Run("RoundTripThroughScan", func(t *testing.T) {
		c, _ := newTestClient()
		in := Settings{Theme: "light", Scale: 0.75, Retries: 9, Autosave: time.Minute, Window: Window{Width: -1, Height: 2}}
		require.NoError(t, c.Store(ctx, "/app/", &in))

		var out Settings
		require.NoError(t, c.Scan(ctx, "/app/", &out))
		assert.Equal(t, in.Theme, out.Theme)
		assert.Equal(t, in.Scale, out.Scale)
		assert.Equal(t, in.Retries, out.Retries)
		assert.Equal(t, in.Autosave, out.Autosave)
		assert.Equal(t, in.Window, out.Window)
	})

	t.Run("RangeAndTypeErrorsCollected", func(t *testing.T) {
		type Bad struct {
			Big   int64          `dconf:"big"`
			Huge  uint64         `dconf:"huge"`
			Grid  [][]int        `dconf:"grid"`
			Attrs map[string]int `dconf:"attrs"`
			Ok    string         `dconf:"ok"`
		}

		c, fake := newTestClient()
		err := c.Store(ctx, "/bad/", Bad{Big: math.MaxInt32 + 1, Huge: math.MaxUint32 + 1, Ok: "yes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4 field(s)")
		assert.Contains(t, err.Error(), "overflows int32")
		assert.Contains(t, err.Error(), "overflows uint32")
		assert.Contains(t, err.Error(), "unsupported type [][]int")
		assert.Contains(t, err.Error(), "unsupported type map[string]int")

		raw, ok := fake.get("/bad/ok")
		require.True(t, ok, "valid fields are still written")
		assert.Equal(t, "'yes'", raw)
	})

	t.Run("Arrays", func(t *testing.T) {
		type Lists struct {
			Tags    []string  `dconf:"tags"`
			Empty   []string  `dconf:"empty"`
			Sizes   []int32   `dconf:"sizes"`
			Flags   [2]bool   `dconf:"flags"`
			Weights []float64 `dconf:"weights"`
			NoIDs   []uint    `dconf:"no-ids"`
			Wide    []int64   `dconf:"wide"`
		}

		c, fake := newTestClient()
		err := c.Store(ctx, "/l/", Lists{
			Tags:    []string{"a", "b"},
			Sizes:   []int32{1, -2},
			Flags:   [2]bool{true, false},
			Weights: []float64{0.5},
			Wide:    []int64{1, math.MaxInt32 + 1},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "element 1: value 2147483648 overflows int32")

		assert.Equal(t, map[string]string{
			"/l/tags":    "['a', 'b']",
			"/l/empty":   "@as []",
			"/l/sizes":   "[1, -2]",
			"/l/flags":   "[true, false]",
			"/l/weights": "[0.5]",
			"/l/no-ids":  "@au []",
		}, fake.values)
	})

	t.Run("ArrayRoundTripThroughScan", func(t *testing.T) {
		type Lists struct {
			Tags  []string `dconf:"tags"`
			Empty []string `dconf:"empty"`
			Sizes []int32  `dconf:"sizes"`
		}

		c, _ := newTestClient()
		in := Lists{Tags: []string{"x.txt", "y.txt"}, Sizes: []int32{640, 480}}
		require.NoError(t, c.Store(ctx, "/l/", in))

		var out Lists
		require.NoError(t, c.Scan(ctx, "/l/", &out))
		assert.Equal(t, in.Tags, out.Tags)
		assert.Equal(t, in.Sizes, out.Sizes)
		assert.Empty(t, out.Empty)
	})

	t.Run("TextValues", func(t *testing.T) {
		type Net struct {
			Proxy    net.IP   `dconf:"proxy"`
			Endpoint *url.URL `dconf:"endpoint"`
		}

		c, fake := newTestClient()
		endpoint, err := url.Parse("https://example.com:8443/v1")
		require.NoError(t, err)
		in := Net{Proxy: net.ParseIP("10.0.0.1"), Endpoint: endpoint}
		require.NoError(t, c.Store(ctx, "/n/", &in))

		assert.Equal(t, map[string]string{
			"/n/proxy":    "'10.0.0.1'",
			"/n/endpoint": "'https://example.com:8443/v1'",
		}, fake.values)

		var out Net
		require.NoError(t, c.Scan(ctx, "/n/", &out))
		assert.True(t, in.Proxy.Equal(out.Proxy))
		assert.Equal(t, endpoint.String(), out.Endpoint.String())
	})

	t.Run("LaunchFailureAborts", func(t *testing.T) {
		c, fake := newTestClient()
		fake.fail = assert.AnError

		err := c.Store(ctx, "/app/", Settings{Theme: "x"})
		require.Error(t, err)
		assert.Equal(t, KindLaunch, KindOf(err))
		assert.Equal(t, 1, fake.callCount())
	})

	t.Run("InvalidSource", func(t *testing.T) {
		c, _ := newTestClient()
		assert.Error(t, c.Store(ctx, "/app/", 42))
		assert.Error(t, c.Store(ctx, "/app/", (*Settings)(nil)))
	})
}

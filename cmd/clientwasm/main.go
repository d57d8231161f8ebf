//go:build js && wasm

// Command clientwasm runs the page behaviour in the browser. Build it with
//
//	GOOS=js GOARCH=wasm go build -o static/client.wasm ./cmd/clientwasm
package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"syscall/js"
	"time"

	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/client"
)

var (
	window   = js.Global()
	document = window.Get("document")
)

// frames schedules on requestAnimationFrame.
type frames struct{}

func (frames) RequestFrame(fn func(time.Time)) func() {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn(time.Now())
		return nil
	})
	id := window.Call("requestAnimationFrame", cb)
	return func() {
		window.Call("cancelAnimationFrame", id)
		cb.Release()
	}
}

// intersection observes one element with an IntersectionObserver.
type intersection struct{ el js.Value }

func (o intersection) Observe(threshold float64, fn func(client.Entry)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			e := entries.Index(i)
			fn(client.Entry{
				Intersecting: e.Get("isIntersecting").Bool(),
				Ratio:        e.Get("intersectionRatio").Float(),
			})
		}
		return nil
	})
	opts := window.Get("Object").New()
	opts.Set("threshold", threshold)
	obs := window.Get("IntersectionObserver").New(cb, opts)
	obs.Call("observe", o.el)
	return func() {
		obs.Call("unobserve", o.el)
		obs.Call("disconnect")
		cb.Release()
	}
}

// navigatorClipboard writes through navigator.clipboard and waits for the
// returned promise.
type navigatorClipboard struct{}

func (navigatorClipboard) WriteText(ctx context.Context, text string) error {
	clip := window.Get("navigator").Get("clipboard")
	if clip.IsUndefined() {
		return errors.New("clipboard unavailable")
	}
	done := make(chan error, 1)
	var onOK, onErr js.Func
	onOK = js.FuncOf(func(this js.Value, args []js.Value) any {
		done <- nil
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		msg := "clipboard write rejected"
		if len(args) > 0 && !args[0].IsUndefined() {
			msg = args[0].Call("toString").String()
		}
		done <- errors.New(msg)
		return nil
	})
	defer onOK.Release()
	defer onErr.Release()

	clip.Call("writeText", text).Call("then", onOK, onErr)
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func dataFloat(el js.Value, name string, def float64) float64 {
	v := el.Get("dataset").Get(name)
	if v.IsUndefined() {
		return def
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return def
	}
	return f
}

func queryAll(selector string) []js.Value {
	list := document.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger()
	body := document.Get("body")

	lookahead := dataFloat(body, "navLookahead", client.DefaultLookahead)
	navHeight := dataFloat(body, "navOffset", client.DefaultNavHeight)
	visibility := dataFloat(body, "visibilityThreshold", client.DefaultVisibilityThreshold)
	base := time.Duration(dataFloat(body, "baseDuration", float64(client.DefaultBaseDuration.Milliseconds()))) * time.Millisecond

	var teardown client.Teardown

	// Entrance animations.
	for _, el := range queryAll("[data-reveal]") {
		el := el
		tr := client.NewTrigger(visibility)
		tr.OnVisible = func() { el.Get("classList").Call("add", "is-visible") }
		tr.Mount(intersection{el: el})
		teardown.Add(tr.Unmount)
	}

	// Navigation highlight.
	header := document.Call("querySelector", "nav.nav")
	links := queryAll("[data-nav]")
	layout := func() []client.Section {
		var out []client.Section
		for _, el := range queryAll("main section[id]") {
			out = append(out, client.Section{ID: el.Get("id").String(), Top: el.Get("offsetTop").Float()})
		}
		return out
	}
	nav := client.NewNav(lookahead, layout())
	nav.ScrolledThreshold = dataFloat(body, "scrolledThreshold", client.DefaultScrolledThreshold)
	paint := func(now time.Time) {
		if !nav.Update(window.Get("scrollY").Float(), layout()) {
			return
		}
		st := nav.State()
		if !header.IsNull() {
			header.Get("classList").Call("toggle", "is-scrolled", st.Scrolled)
		}
		for _, el := range links {
			active := el.Get("dataset").Get("nav").String() == st.Active
			el.Get("classList").Call("toggle", "is-active", active)
			if active {
				el.Call("setAttribute", "aria-current", "page")
			} else {
				el.Call("removeAttribute", "aria-current")
			}
		}
	}
	throttle := client.NewFrameThrottle(frames{})
	onScroll := js.FuncOf(func(this js.Value, args []js.Value) any {
		throttle.Schedule(paint)
		return nil
	})
	window.Call("addEventListener", "scroll", onScroll)
	paint(time.Now())
	teardown.Add(throttle.Stop, func() {
		window.Call("removeEventListener", "scroll", onScroll)
		onScroll.Release()
	})

	for _, el := range links {
		el := el
		click := js.FuncOf(func(this js.Value, args []js.Value) any {
			id := el.Get("dataset").Get("nav").String()
			target := document.Call("getElementById", id)
			if target.IsNull() {
				return nil
			}
			args[0].Call("preventDefault")
			opts := window.Get("Object").New()
			opts.Set("top", client.ScrollTarget(target.Get("offsetTop").Float(), navHeight))
			opts.Set("behavior", "smooth")
			window.Call("scrollTo", opts)
			if !header.IsNull() {
				header.Get("classList").Call("remove", "is-open")
			}
			return nil
		})
		el.Call("addEventListener", "click", click)
	}

	toggle := document.Call("querySelector", "[data-nav-toggle]")
	if !toggle.IsNull() && !header.IsNull() {
		toggle.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			open := header.Get("classList").Call("toggle", "is-open").Bool()
			toggle.Call("setAttribute", "aria-expanded", strconv.FormatBool(open))
			return nil
		}))
	}

	// Animation pacing follows scroll speed.
	smoother := client.NewSmoother(time.Now())
	stopSmoother := smoother.Run(frames{}, func() float64 { return window.Get("scrollY").Float() })
	root := document.Get("documentElement").Get("style")
	pace := client.NewFrameThrottle(frames{})
	var setPace func(time.Time)
	setPace = func(time.Time) {
		root.Call("setProperty", "--motion-duration", strconv.FormatInt(smoother.Duration(base).Milliseconds(), 10)+"ms")
		pace.Schedule(setPace)
	}
	pace.Schedule(setPace)
	teardown.Add(stopSmoother, pace.Stop)

	// Email copy buttons.
	for _, card := range queryAll("[data-copy]") {
		card := card
		value := card.Get("dataset").Get("copy").String()
		btn := client.NewCopyButton(navigatorClipboard{}, client.DefaultCopiedFor, log)
		label := card.Call("querySelector", "[data-copy-button]")
		btn.OnChange = func(copied bool) {
			card.Get("classList").Call("toggle", "is-copied", copied)
			if label.IsNull() {
				return
			}
			label.Call("setAttribute", "aria-label", client.CopyLabel(copied))
		}
		teardown.Add(btn.Close)
		card.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			args[0].Call("preventDefault")
			go btn.Copy(context.Background(), value)
			return nil
		}))
	}

	unload := js.FuncOf(func(this js.Value, args []js.Value) any {
		persisted := len(args) > 0 && args[0].Get("persisted").Truthy()
		teardown.PageHide(persisted)
		return nil
	})
	window.Call("addEventListener", "pagehide", unload)

	select {}
}

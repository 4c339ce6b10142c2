//go:build js && wasm

// Package js binds the tracker to a real browser page through syscall/js.
package js

import (
	"syscall/js"

	"konjac/internal/tracker/core/ports"
)

// Environment reads window.location, document.referrer and window.history.
type Environment struct {
	window  js.Value
	history js.Value
}

// Detect returns nil when the global object is not a browser window.
func Detect() *Environment {
	g := js.Global()
	window := g.Get("window")
	if window.IsUndefined() || window.IsNull() {
		return nil
	}
	history := window.Get("history")
	if history.IsUndefined() || history.IsNull() {
		return nil
	}
	return &Environment{window: window, history: history}
}

var _ ports.Environment = (*Environment)(nil)

func (e *Environment) Location() string {
	return e.window.Get("location").Get("href").String()
}

func (e *Environment) Referrer() string {
	doc := e.window.Get("document")
	if doc.IsUndefined() {
		return ""
	}
	return doc.Get("referrer").String()
}

func (e *Environment) History() ports.History { return &history{v: e.history} }

func (e *Environment) AddPopStateListener(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	e.window.Call("addEventListener", "popstate", cb)
	return func() {
		e.window.Call("removeEventListener", "popstate", cb)
		cb.Release()
	}
}

// Beacon returns navigator.sendBeacon, or nil when the browser lacks it.
func (e *Environment) Beacon() ports.BeaconPort {
	nav := e.window.Get("navigator")
	if nav.IsUndefined() || nav.Get("sendBeacon").Type() != js.TypeFunction {
		return nil
	}
	return beacon{nav: nav}
}

type history struct {
	v js.Value

	// keeps the installed wrapper alive for the lifetime of the page
	wrapper js.Func
}

func (h *history) PushState() ports.PushStateFunc {
	original := h.v.Get("pushState")
	if original.Type() != js.TypeFunction {
		return nil
	}
	target := h.v
	return func(args ...any) any {
		return original.Call("apply", target, js.ValueOf(args))
	}
}

func (h *history) SetPushState(fn ports.PushStateFunc) {
	h.wrapper = js.FuncOf(func(this js.Value, args []js.Value) any {
		in := make([]any, len(args))
		for i, a := range args {
			in[i] = a
		}
		return fn(in...)
	})
	h.v.Set("pushState", h.wrapper)
}

type beacon struct {
	nav js.Value
}

func (b beacon) SendBeacon(url string, body []byte) bool {
	return b.nav.Call("sendBeacon", url, string(body)).Bool()
}

//go:build js && wasm

// Command konjac-wasm runs the tracker inside a web page.
//
//	<script>
//	  globalThis.konjacConfig = { apiKey: "site_123", endpoint: "https://api.konjac.io" };
//	</script>
//
// Once loaded it exposes konjac.trackEvent(name, data) to page scripts.
package main

import (
	"encoding/json"
	"syscall/js"

	"konjac"
	browser "konjac/internal/tracker/adapters/browser/js"
)

func main() {
	cfg := js.Global().Get("konjacConfig")
	if cfg.IsUndefined() || cfg.IsNull() {
		js.Global().Get("console").Call("warn", "konjac: konjacConfig is not defined")
		return
	}

	opts := konjac.Options{
		APIKey:   stringField(cfg, "apiKey"),
		Endpoint: stringField(cfg, "endpoint"),
	}

	var options []konjac.Option
	if env := browser.Detect(); env != nil {
		options = append(options, konjac.WithEnvironment(env))
		if b := env.Beacon(); b != nil {
			options = append(options, konjac.WithBeacon(b))
		}
	}

	client, err := konjac.Init(opts, options...)
	if err != nil {
		js.Global().Get("console").Call("warn", err.Error())
		return
	}

	api := map[string]any{
		"trackEvent": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			client.TrackEvent(args[0].String(), dataArg(args))
			return nil
		}),
	}
	js.Global().Set("konjac", js.ValueOf(api))

	select {}
}

func stringField(v js.Value, name string) string {
	f := v.Get(name)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

// dataArg converts the optional second argument through JSON, the only
// generic bridge from a JS object to map[string]any.
func dataArg(args []js.Value) map[string]any {
	if len(args) < 2 || args[1].Type() != js.TypeObject {
		return nil
	}
	raw := js.Global().Get("JSON").Call("stringify", args[1]).String()
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// Command konjac reports events, simulates browsing sessions and queries a
// konjac collector from the terminal.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"konjac"
	"konjac/internal/config"
	"konjac/internal/tracker/adapters/browser/headless"
)

const usage = `usage: konjac <command> [flags]

commands:
  track-event <name> [-data key=value ...]   report a custom event
  fetch [-limit N]                            print the latest records as JSON
  simulate [-nav path ...] [-back N]          drive a headless browsing session

common flags: -key, -endpoint, -timeout (env KONJAC_API_KEY, KONJAC_ENDPOINT, KONJAC_TIMEOUT)
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.SetFlags(0)
		log.Fatalf("konjac: %v", err)
	}
}

// kvFlag collects repeated key=value pairs.
type kvFlag map[string]any

func (kv kvFlag) String() string { return fmt.Sprint(map[string]any(kv)) }

func (kv kvFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	kv[k] = v
	return nil
}

// listFlag collects repeated string values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(s string) error {
	*l = append(*l, s)
	return nil
}

type common struct {
	key      string
	endpoint string
	timeout  time.Duration
}

func (c *common) register(fs *flag.FlagSet, defaults config.CLI) {
	fs.StringVar(&c.key, "key", defaults.APIKey, "site api key")
	fs.StringVar(&c.endpoint, "endpoint", defaults.Endpoint, "collector base url")
	fs.DurationVar(&c.timeout, "timeout", defaults.Timeout, "request / flush timeout")
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	defaults, err := config.LoadCLI()
	if err != nil {
		return err
	}

	switch args[0] {
	case "track-event":
		return runTrackEvent(args[1:], defaults)
	case "fetch":
		return runFetch(args[1:], defaults, stdout)
	case "simulate":
		return runSimulate(args[1:], defaults, stdout)
	case "-h", "--help", "help":
		_, _ = io.WriteString(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runTrackEvent(args []string, defaults config.CLI) error {
	fs := flag.NewFlagSet("track-event", flag.ContinueOnError)
	var c common
	c.register(fs, defaults)
	data := kvFlag{}
	fs.Var(data, "data", "event metadata as key=value (repeatable)")

	// Allow the name before the flags: konjac track-event signup -data plan=pro
	var name string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if name == "" {
		name = fs.Arg(0)
	}
	if name == "" {
		return errors.New("track-event: event name is required")
	}

	client, err := konjac.New(konjac.Options{APIKey: c.key, Endpoint: c.endpoint}, konjac.WithBeaconQueue(1))
	if err != nil {
		return err
	}
	client.TrackEvent(name, data)

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return client.Close(ctx)
}

func runFetch(args []string, defaults config.CLI, stdout io.Writer) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	var c common
	c.register(fs, defaults)
	limit := fs.Int("limit", 0, "max records (collector default 100)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := konjac.New(konjac.Options{APIKey: c.key, Endpoint: c.endpoint})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	records, err := client.FetchAnalytics(ctx, konjac.FetchParams{Limit: *limit})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func runSimulate(args []string, defaults config.CLI, stdout io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	var c common
	c.register(fs, defaults)
	var navs listFlag
	fs.Var(&navs, "nav", "path to push onto the history (repeatable)")
	start := fs.String("start", "https://example.com/", "initial page url")
	referrer := fs.String("referrer", "", "document.referrer of the session")
	back := fs.Int("back", 0, "back gestures after all navigations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	win := headless.NewWindow(*start, headless.WithReferrer(*referrer))

	client, err := konjac.New(
		konjac.Options{APIKey: c.key, Endpoint: c.endpoint},
		konjac.WithEnvironment(win),
		konjac.WithBeaconQueue(len(navs)+*back+1),
	)
	if err != nil {
		return err
	}

	visited := []string{win.Location()}
	for _, n := range navs {
		win.PushState(nil, "", n)
		visited = append(visited, win.Location())
	}
	for i := 0; i < *back; i++ {
		before := win.Index()
		win.Back()
		if win.Index() == before {
			break
		}
		visited = append(visited, win.Location())
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	if err := client.Close(ctx); err != nil {
		return err
	}

	for _, u := range visited {
		fmt.Fprintf(stdout, "pageview %s\n", u)
	}
	return nil
}

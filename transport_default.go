//go:build !js

package konjac

import (
	"konjac/internal/tracker/adapters/http/fasthttp"
	"konjac/internal/tracker/core/ports"
)

func defaultClients() (ports.TransportPort, ports.QuerierPort) {
	c := fasthttp.NewClient(nil)
	return c, c
}

func newBeaconQueue(t ports.TransportPort, size int) *fasthttp.BeaconQueue {
	return fasthttp.NewBeaconQueue(t, size)
}

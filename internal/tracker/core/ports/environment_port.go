package ports

// PushStateFunc is the environment's programmatic navigation primitive. Arguments
// and return value are opaque to the tracker and must be passed through as-is.
type PushStateFunc func(args ...any) any

// History exposes the push primitive so it can be decorated in place.
type History interface {
	PushState() PushStateFunc
	SetPushState(fn PushStateFunc)
}

// Environment is the navigation/DOM capability of the execution context.
// A nil Environment means there is no browser to observe.
type Environment interface {
	Location() string
	Referrer() string
	History() History

	// AddPopStateListener registers fn for back/forward navigation and
	// returns a function that removes it.
	AddPopStateListener(fn func()) (remove func())
}

// NavigationSubscriber is implemented by environments whose router can report
// programmatic navigations directly. When present it is used instead of
// wrapping the push primitive.
type NavigationSubscriber interface {
	SubscribeNavigation(fn func()) (cancel func())
}

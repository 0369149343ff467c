package session

import (
	"sync"

	"secret_santa/internal/domain"
)

// Fixed navigation destinations
const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"
)

// AuthStore is the persisted session state read at startup
type AuthStore interface {
	IsAuthenticated() bool
	GetUser() (*domain.UserProfile, bool)
	Logout() error
}

// Navigator moves the front end to another screen
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(route string)

// Navigate calls f(route)
func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

// Listener is told about every change of the current user; nil means signed out
type Listener func(user *domain.UserProfile)

// Context holds the signed-in user for the lifetime of the application. It
// is created once and passed to whoever needs it. Login and Logout are the
// only writers.
type Context struct {
	store AuthStore
	nav   Navigator

	initOnce sync.Once

	mu        sync.RWMutex
	user      *domain.UserProfile
	loading   bool
	listeners map[int]Listener
	nextID    int
}

// NewContext creates a Context that is loading until Init runs
func NewContext(store AuthStore, nav Navigator) *Context {
	return &Context{
		store:     store,
		nav:       nav,
		loading:   true,
		listeners: map[int]Listener{},
	}
}

// Init loads the persisted user, if any. Only the first call has an effect.
func (c *Context) Init() {
	c.initOnce.Do(func() {
		var user *domain.UserProfile
		if c.store.IsAuthenticated() {
			if u, ok := c.store.GetUser(); ok {
				user = u
			}
		}
		c.mu.Lock()
		c.user = user
		c.loading = false
		c.mu.Unlock()
		c.notify(user)
	})
}

// Loading reports whether Init has not completed yet. Consumers show a
// waiting indicator instead of content while it is true.
func (c *Context) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// User returns a copy of the current user, or nil when signed out
func (c *Context) User() *domain.UserProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Login sets the current user and navigates to the dashboard. The user
// record is taken as given.
func (c *Context) Login(user domain.UserProfile) {
	c.set(&user)
	c.nav.Navigate(RouteDashboard)
}

// Logout tears down the persisted session, clears the current user and
// navigates to the login screen. The user is cleared even when the teardown
// fails; the teardown error is returned.
func (c *Context) Logout() error {
	err := c.store.Logout()
	c.set(nil)
	c.nav.Navigate(RouteLogin)
	return err
}

// Subscribe registers fn for user changes and returns its unsubscribe func
func (c *Context) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Context) set(user *domain.UserProfile) {
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	c.notify(user)
}

// notify runs listeners outside the lock so they may read the context
func (c *Context) notify(user *domain.UserProfile) {
	c.mu.RLock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.RUnlock()
	for _, l := range listeners {
		if user == nil {
			l(nil)
			continue
		}
		u := *user
		l(&u)
	}
}

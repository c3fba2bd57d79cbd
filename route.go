package signalwall

import (
	"net/url"
	"strings"
)

// RouteKind is the variant of a Route.
type RouteKind int

const (
	RouteGateway RouteKind = iota
	RouteScreen
	RoutePost
)

// Route is the decoded form of a location fragment.
type Route struct {
	Kind  RouteKind
	Value string // screen name or post id
}

// ShowScreen builds a screen route.
func ShowScreen(name string) Route { return Route{Kind: RouteScreen, Value: name} }

// OpenPost builds a post route.
func OpenPost(id string) Route { return Route{Kind: RoutePost, Value: id} }

// CloseRoute is where closing the reader navigates to.
var CloseRoute = ShowScreen(ScreenWall)

var routePrefixes = []struct {
	prefix string
	kind   RouteKind
}{
	{"post=", RoutePost},
	{"screen=", RouteScreen},
}

// ParseRoute decodes a fragment such as "#post=wall-01" or "screen=wire".
// It is total: anything it does not recognize, including an empty value, is
// the gateway route.
func ParseRoute(fragment string) Route {
	f := strings.TrimPrefix(fragment, "#")
	for _, p := range routePrefixes {
		rest, ok := strings.CutPrefix(f, p.prefix)
		if !ok {
			continue
		}
		if i := strings.IndexByte(rest, '&'); i >= 0 {
			rest = rest[:i]
		}
		if v, err := url.PathUnescape(rest); err == nil {
			rest = v
		}
		if rest == "" {
			break
		}
		return Route{Kind: p.kind, Value: rest}
	}
	return Route{Kind: RouteGateway}
}

// Fragment encodes the route back into a location fragment. The value is
// escaped so that ParseRoute reads it back whole.
func (r Route) Fragment() string {
	switch r.Kind {
	case RoutePost:
		return "#post=" + fragmentEscape(r.Value)
	case RouteScreen:
		return "#screen=" + fragmentEscape(r.Value)
	}
	return ""
}

// fragmentEscape is url.PathEscape plus '&', which ends a value.
func fragmentEscape(v string) string {
	return strings.ReplaceAll(url.PathEscape(v), "&", "%26")
}

// PostLookup is the part of the post store the router needs.
type PostLookup interface {
	Find(id string) (Post, bool)
}

// Router maps routes to view states. It keeps no state between dispatches.
type Router struct {
	screens []Screen
	posts   PostLookup
}

// NewRouter creates a router over the given screens and posts.
func NewRouter(screens []Screen, posts PostLookup) *Router {
	return &Router{screens: screens, posts: posts}
}

// Screens returns the screens the router knows.
func (r *Router) Screens() []Screen {
	return r.screens
}

// Dispatch computes the view state for rt. Opening an unknown post leaves
// everything as it was (Changed is false).
func (r *Router) Dispatch(rt Route) ViewState {
	switch rt.Kind {
	case RoutePost:
		p, ok := r.posts.Find(rt.Value)
		if !ok {
			return ViewState{}
		}
		return ViewState{ModalOpen: true, Post: &p, Changed: true}
	case RouteScreen:
		s, ok := r.screen(rt.Value)
		if !ok {
			return r.gateway()
		}
		state := ViewState{Screen: s.Name, Changed: true}
		if s.Nav {
			state.ActiveNav = s.Name
		}
		return state
	}
	return r.gateway()
}

func (r *Router) gateway() ViewState {
	return ViewState{Screen: ScreenGateway, Changed: true}
}

func (r *Router) screen(name string) (Screen, bool) {
	for _, s := range r.screens {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}

// socket/router.go
package socket

import "strings"

// RegistrarFunc attaches one module's handler set to a connection.
type RegistrarFunc func(c *Client)

// Router maps (role, module) pairs to handler registrars. Event names are
// "<role>/<module>/<action>"; the first event seen for a module attaches the
// module's handlers to the connection exactly once, after which dispatch
// goes straight to the registered handler.
type Router struct {
	modules map[string]map[string]RegistrarFunc
}

// NewRouter creates an empty routing table.
func NewRouter() *Router {
	return &Router{modules: make(map[string]map[string]RegistrarFunc)}
}

// Handle registers a module registrar for a role.
func (r *Router) Handle(role, module string, reg RegistrarFunc) {
	byModule, ok := r.modules[role]
	if !ok {
		byModule = make(map[string]RegistrarFunc)
		r.modules[role] = byModule
	}
	byModule[module] = reg
}

// ModuleFromEvent extracts the module token, the segment directly following
// the role token. Returns "" for event names with fewer than two segments.
func ModuleFromEvent(event string) string {
	parts := strings.Split(event, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Dispatch routes one inbound frame. Events whose role prefix does not
// match the connection's resolved role are dropped without a response, as
// are events for modules the routing table does not know.
func (r *Router) Dispatch(c *Client, msg Message) {
	parts := strings.Split(msg.Event, "/")
	if len(parts) < 2 || parts[0] != c.Role {
		return
	}

	module := parts[1]
	if !c.Attached(module) {
		reg, ok := r.modules[c.Role][module]
		if !ok {
			return
		}
		reg(c)
		c.MarkAttached(module)
	}

	if h, ok := c.Handler(msg.Event); ok {
		h(msg.Payload)
	}
}

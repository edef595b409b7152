package lightset

import (
	"sync"
)

// Light describes one light and where it belongs. An empty Group or
// Location means the light is not a member of any.
type Light struct {
	Name      string `toml:"name"`
	Group     string `toml:"group"`
	Location  string `toml:"location"`
	Multizone bool   `toml:"multizone"`
}

// Registry is the set of known lights, indexed by group and location.
// Lights may be added and removed while a program runs; every accessor
// returns a snapshot that later changes don't affect. A Registry is safe
// for concurrent use.
type Registry struct {
	mu sync.Mutex

	lights    map[string]Light
	names     *NameSet
	multizone *NameSet
	groups    *index
	locations *index
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		lights:    map[string]Light{},
		names:     NewNameSet(),
		multizone: NewNameSet(),
		groups:    newIndex(),
		locations: newIndex(),
	}
}

// AddLight adds a light, replacing any light with the same name.
func (r *Registry) AddLight(light Light) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(light.Name)
	r.lights[light.Name] = light
	r.names.Add(light.Name)
	if light.Multizone {
		r.multizone.Add(light.Name)
	}
	r.groups.add(light.Group, light.Name)
	r.locations.add(light.Location, light.Name)
}

// RemoveLight removes the named light. Groups and locations left without
// members are removed as well. It returns false if there was no such light.
func (r *Registry) RemoveLight(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(name)
}

func (r *Registry) removeLocked(name string) bool {
	light, ok := r.lights[name]
	if !ok {
		return false
	}
	delete(r.lights, name)
	r.names.Remove(name)
	r.multizone.Remove(name)
	r.groups.remove(light.Group, name)
	r.locations.remove(light.Location, name)
	return true
}

// Light returns the named light.
func (r *Registry) Light(name string) (Light, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	light, ok := r.lights[name]
	return light, ok
}

// LightNames returns the names of all lights.
func (r *Registry) LightNames() *NameSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names.Clone()
}

// MultizoneNames returns the names of all multizone lights.
func (r *Registry) MultizoneNames() *NameSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.multizone.Clone()
}

// GroupNames returns the names of all groups that have members.
func (r *Registry) GroupNames() *NameSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups.keys.Clone()
}

// LocationNames returns the names of all locations that have members.
func (r *Registry) LocationNames() *NameSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locations.keys.Clone()
}

// Group returns the names of the lights in a group.
func (r *Registry) Group(name string) (*NameSet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups.get(name)
}

// Location returns the names of the lights in a location.
func (r *Registry) Location(name string) (*NameSet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locations.get(name)
}

// index maps a group or location name to its members.
type index struct {
	keys    *NameSet
	members map[string]*NameSet
}

func newIndex() *index {
	return &index{keys: NewNameSet(), members: map[string]*NameSet{}}
}

func (x *index) add(key, light string) {
	if key == "" {
		return
	}
	set, ok := x.members[key]
	if !ok {
		set = NewNameSet()
		x.members[key] = set
		x.keys.Add(key)
	}
	set.Add(light)
}

func (x *index) remove(key, light string) {
	set, ok := x.members[key]
	if !ok {
		return
	}
	set.Remove(light)
	if set.Len() == 0 {
		delete(x.members, key)
		x.keys.Remove(key)
	}
}

func (x *index) get(key string) (*NameSet, bool) {
	set, ok := x.members[key]
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

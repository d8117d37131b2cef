package engine

import (
	"strings"

	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// Registry keeps the active players in turn order plus the eliminated ones.
// A player is always in exactly one of the two lists.
type Registry struct {
	active     []*Player
	eliminated []*Player
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a player to the back of the turn queue
func (r *Registry) Add(p *Player) {
	r.active = append(r.active, p)
}

// Len returns the number of active players
func (r *Registry) Len() int {
	return len(r.active)
}

// Active returns the active players in turn order
func (r *Registry) Active() []*Player {
	out := make([]*Player, len(r.active))
	copy(out, r.active)
	return out
}

// Eliminated returns the eliminated players in elimination order
func (r *Registry) Eliminated() []*Player {
	out := make([]*Player, len(r.eliminated))
	copy(out, r.eliminated)
	return out
}

// All returns active then eliminated players
func (r *Registry) All() []*Player {
	out := make([]*Player, 0, len(r.active)+len(r.eliminated))
	out = append(out, r.active...)
	return append(out, r.eliminated...)
}

// Shuffle randomises the turn order
func (r *Registry) Shuffle(s shuffle.Shuffler) {
	s.Shuffle(len(r.active), func(i, j int) {
		r.active[i], r.active[j] = r.active[j], r.active[i]
	})
}

// NextDealer moves the front player to the back of the queue and returns them
func (r *Registry) NextDealer() *Player {
	if len(r.active) == 0 {
		return nil
	}
	p := r.active[0]
	copy(r.active, r.active[1:])
	r.active[len(r.active)-1] = p
	return p
}

// Eliminate moves p from the active queue to the eliminated list. The relative
// order of the remaining players is kept, so nobody's turn is skipped or repeated.
func (r *Registry) Eliminate(p *Player) bool {
	i := indexOf(r.active, p.ID)
	if i < 0 {
		return false
	}
	r.active = append(r.active[:i], r.active[i+1:]...)
	r.eliminated = append(r.eliminated, p)
	return true
}

// Remove drops a player from whichever list holds them
func (r *Registry) Remove(id string) *Player {
	if i := indexOf(r.active, id); i >= 0 {
		p := r.active[i]
		r.active = append(r.active[:i], r.active[i+1:]...)
		return p
	}
	if i := indexOf(r.eliminated, id); i >= 0 {
		p := r.eliminated[i]
		r.eliminated = append(r.eliminated[:i], r.eliminated[i+1:]...)
		return p
	}
	return nil
}

// FindByName returns the active player with the given name
func (r *Registry) FindByName(name string) *Player {
	name = strings.TrimSpace(name)
	for _, p := range r.active {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// FindByID searches both lists
func (r *Registry) FindByID(id string) *Player {
	for _, p := range r.All() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsActive reports whether the player is still in the turn queue
func (r *Registry) IsActive(id string) bool {
	return indexOf(r.active, id) >= 0
}

// Victims lists active players other than dealer who are not defended
func (r *Registry) Victims(dealer *Player) []*Player {
	var victims []*Player
	for _, p := range r.active {
		if p.Defended || p.Same(dealer) {
			continue
		}
		victims = append(victims, p)
	}
	return victims
}

// Reset returns eliminated players to the back of the queue and clears the
// elimination history
func (r *Registry) Reset() {
	r.active = append(r.active, r.eliminated...)
	r.eliminated = nil
}

// IDs returns the ids of every player except the one given
func (r *Registry) IDs(except string) []string {
	var ids []string
	for _, p := range r.All() {
		if p.ID == except {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

func indexOf(players []*Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

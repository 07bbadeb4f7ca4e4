package normalize

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Strategy selects how a Resolver mints canonical identities for an entity
// type. The lookup/register contract is identical across strategies.
type Strategy int

const (
	// StrategyPassThrough trusts the externally supplied token as the
	// canonical identity (teams, players). No translation layer, so
	// statistics and rankings documents that reference entities by the same
	// token resolve without a second table.
	StrategyPassThrough Strategy = iota
	// StrategySynthesized derives a stable token from the natural key the
	// first time the key is seen (conferences, divisions, venues, coaches,
	// seasons without a feed id).
	StrategySynthesized
	// StrategySequential numbers rows that exist only as output records
	// (statistics, rankings, schedule games).
	StrategySequential
)

// Key builds a composite resolution key from its parts. The separator cannot
// occur in feed values, so ("a","b-c") and ("a-b","c") stay distinct.
func Key(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

// Resolver maps resolution keys to canonical identities for one entity type
// within one pipeline run. Resolution is idempotent: registering the same
// key twice returns the same identity, and lookups of unregistered keys
// report unresolved instead of fabricating anything.
//
// A Resolver is not safe for concurrent use; each pipeline run owns its own.
type Resolver struct {
	strategy  Strategy
	namespace uuid.UUID
	ids       map[string]string
	next      int
}

// NewResolver creates a resolver for one entity type. The scope keeps
// synthesized tokens for different entity types apart even when natural keys
// collide (a venue and a conference may share a name).
func NewResolver(strategy Strategy, scope string) *Resolver {
	return &Resolver{
		strategy:  strategy,
		namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(scope)),
		ids:       make(map[string]string),
	}
}

// Register resolves key to a canonical identity, minting one on first sight
// per the strategy. The second return reports whether this call created the
// identity; callers append an entity record only when it did (first write
// wins across duplicate definitions).
func (r *Resolver) Register(key string) (string, bool) {
	return r.register(key, "")
}

// Adopt is Register for entity types whose documents sometimes carry a valid
// external token: the token becomes the identity when present, otherwise one
// is synthesized from the key. First write wins; a later call with a
// different token for the same key does not re-map it.
func (r *Resolver) Adopt(key, external string) (string, bool) {
	return r.register(key, external)
}

// Lookup returns the identity registered for key. The second return is false
// when the key was never registered; callers must treat that as "drop the
// reference", never as a license to invent one.
func (r *Resolver) Lookup(key string) (string, bool) {
	id, ok := r.ids[key]
	return id, ok
}

// Len reports how many distinct keys have been registered.
func (r *Resolver) Len() int {
	return len(r.ids)
}

func (r *Resolver) register(key, external string) (string, bool) {
	if id, ok := r.ids[key]; ok {
		return id, false
	}

	var id string
	switch {
	case external != "":
		id = external
	case r.strategy == StrategyPassThrough:
		id = key
	case r.strategy == StrategySequential:
		r.next++
		id = strconv.Itoa(r.next)
	default:
		id = uuid.NewSHA1(r.namespace, []byte(key)).String()
	}

	r.ids[key] = id
	return id, true
}

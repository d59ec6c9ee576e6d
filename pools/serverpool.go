package pools

import (
	"math/rand"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/rs/zerolog"

	"github.com/lanternmq/lanternmq/models"
	"github.com/lanternmq/lanternmq/utils"
)

// Server houses one broker endpoint candidate with its reconnect bookkeeping.
type Server struct {
	Endpoint       *models.Endpoint
	ReconnectCount int // incremented by the connection layer on every failed attempt
}

// ServerPool houses the ordered, de-duplicated set of broker endpoints a
// client may connect or reconnect to. Index 0 is the next endpoint to try.
//
// The pool performs no internal locking; callers serialize access across
// construction, AddNewURLs, GetNextServer, GetCurrentServer and Shutdown.
type ServerPool struct {
	Config  models.PoolConfig
	servers []*Server
	known   cmap.ConcurrentMap // membership index keyed by host:port
	rnd     *rand.Rand
	logger  zerolog.Logger
	poolID  string
}

// NewServerPool creates the ServerPool from the config.
func NewServerPool(config *models.PoolConfig) (*ServerPool, error) {
	return NewServerPoolWithSource(config, nil, utils.ShuffleSource())
}

// NewServerPoolWithLogger creates the ServerPool with pool events written to logger.
func NewServerPoolWithLogger(config *models.PoolConfig, logger *zerolog.Logger) (*ServerPool, error) {
	return NewServerPoolWithSource(config, logger, utils.ShuffleSource())
}

// NewServerPoolWithSource creates the ServerPool with an injected random
// source, which makes shuffle behavior reproducible.
//
// The primary URL is inserted first, then the additional servers in
// configuration order, de-duplicated by host:port. Unless NoRandomize is set
// the pool is shuffled. A configuration yielding zero servers falls back to
// models.DefaultURL. Any endpoint that fails to parse aborts construction.
func NewServerPoolWithSource(config *models.PoolConfig, logger *zerolog.Logger, src rand.Source) (*ServerPool, error) {
	if config == nil {
		return nil, models.ErrNilConfig
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	capacity := len(config.Servers)
	if config.URL != "" {
		capacity++
	}
	if capacity == 0 {
		capacity = 1 // room for the default endpoint
	}

	sp := &ServerPool{
		Config:  *config,
		servers: make([]*Server, 0, capacity),
		known:   cmap.New(),
		rnd:     rand.New(src),
		poolID:  uuid.NewString(),
	}
	sp.logger = logger.With().
		Str("pool_id", sp.poolID).
		Str("app", config.ApplicationName).
		Logger()

	if config.URL != "" {
		if _, err := sp.addEndpoint(config.URL); err != nil {
			return nil, err
		}
	}

	for _, raw := range config.Servers {
		if _, err := sp.addEndpoint(raw); err != nil {
			return nil, err
		}
	}

	if !config.NoRandomize {
		sp.shufflePool()
	}

	if len(sp.servers) == 0 {
		if _, err := sp.addEndpoint(models.DefaultURL); err != nil {
			return nil, err
		}
	}

	sp.logger.Debug().Int("size", len(sp.servers)).Msg("server pool built")

	return sp, nil
}

// addEndpoint parses raw and appends a Server for it unless its host:port is
// already tracked. Reports whether the pool grew.
func (sp *ServerPool) addEndpoint(raw string) (bool, error) {

	endpoint, err := models.ParseEndpoint(raw)
	if err != nil {
		return false, err
	}

	key := endpoint.Key()
	if sp.known.Has(key) {
		return false, nil
	}

	sp.servers = append(sp.servers, &Server{Endpoint: endpoint})
	sp.known.Set(key, struct{}{})

	return true, nil
}

// shufflePool applies an in-place Fisher-Yates permutation to the pool.
func (sp *ServerPool) shufflePool() {

	if len(sp.servers) <= 1 {
		return
	}

	for i := range sp.servers {
		j := sp.rnd.Intn(i + 1)
		sp.servers[i], sp.servers[j] = sp.servers[j], sp.servers[i]
	}
}

// AddNewURLs merges discovered endpoint strings into the pool. Candidates are
// normalized before the membership test, so strings that resolve to an
// already-tracked host:port are skipped. When at least one endpoint was added
// and shuffleIfChanged is true, the whole pool is reshuffled.
//
// A parse failure aborts the call; endpoints added before the failure remain
// in the pool.
func (sp *ServerPool) AddNewURLs(urls []string, shuffleIfChanged bool) error {

	updated := false
	for _, raw := range urls {
		added, err := sp.addEndpoint(raw)
		if err != nil {
			return err
		}
		if added {
			updated = true
			sp.logger.Debug().Str("endpoint", raw).Msg("discovered server added")
		}
	}

	if updated && shuffleIfChanged {
		sp.shufflePool()
	}

	return nil
}

// GetCurrentServer returns the tracked Server whose host:port matches url,
// along with its position, or (nil, -1) when the endpoint is not tracked.
func (sp *ServerPool) GetCurrentServer(url *models.Endpoint) (*Server, int) {

	if url == nil {
		return nil, -1
	}

	key := url.Key()
	for i, srv := range sp.servers {
		if srv.Endpoint.Key() == key {
			return srv, i
		}
	}

	return nil, -1
}

// GetNextServer pops the server matching url and moves it to the end of the
// list, evicting it instead once its reconnect budget is spent (a negative
// maxReconnects means unlimited). The head of the remaining list is returned
// as the next candidate to try.
//
// A nil return means the current endpoint is no longer tracked, or that no
// candidates remain; the caller treats the latter as fatal for its reconnect
// loop.
func (sp *ServerPool) GetNextServer(maxReconnects int, url *models.Endpoint) *Server {

	srv, i := sp.GetCurrentServer(url)
	if i < 0 {
		return nil
	}

	// Shift left the servers past the current one.
	copy(sp.servers[i:], sp.servers[i+1:])

	if maxReconnects < 0 || srv.ReconnectCount < maxReconnects {
		// Move the current server to the back of the list.
		sp.servers[len(sp.servers)-1] = srv
	} else {
		sp.servers[len(sp.servers)-1] = nil
		sp.servers = sp.servers[:len(sp.servers)-1]
		sp.known.Remove(srv.Endpoint.Key())

		sp.logger.Info().
			Str("endpoint", srv.Endpoint.String()).
			Int("reconnects", srv.ReconnectCount).
			Msg("server evicted")
	}

	if len(sp.servers) == 0 {
		sp.logger.Info().Msg("server pool exhausted")
		return nil
	}

	return sp.servers[0]
}

// Size returns the number of servers currently tracked.
func (sp *ServerPool) Size() int {
	return len(sp.servers)
}

// Servers returns a snapshot of the pool in its current order.
func (sp *ServerPool) Servers() []*Server {
	snapshot := make([]*Server, len(sp.servers))
	copy(snapshot, sp.servers)
	return snapshot
}

// EndpointStrings returns the normalized endpoint strings in pool order.
func (sp *ServerPool) EndpointStrings() []string {
	endpoints := make([]string, len(sp.servers))
	for i, srv := range sp.servers {
		endpoints[i] = srv.Endpoint.String()
	}
	return endpoints
}

// Shutdown releases every tracked Server and the membership index, resetting
// the pool to an unusable empty state. Safe to call on a nil pool.
func (sp *ServerPool) Shutdown() {

	if sp == nil {
		return
	}

	for i := range sp.servers {
		sp.servers[i] = nil
	}
	sp.servers = nil

	for _, key := range sp.known.Keys() {
		sp.known.Remove(key)
	}

	sp.logger.Debug().Msg("server pool shutdown")
}

package models

// ClientConfig represents the configuration values.
type ClientConfig struct {
	PoolConfig *PoolConfig `json:"PoolConfig"`
}

// PoolConfig represents settings for creating/configuring the ServerPool.
type PoolConfig struct {
	ApplicationName string   `json:"ApplicationName"`
	URL             string   `json:"URL"`           // primary broker endpoint, inserted first
	Servers         []string `json:"Servers"`       // additional broker endpoints, in order
	NoRandomize     bool     `json:"NoRandomize"`   // keep configuration order instead of shuffling
	MaxReconnects   int      `json:"MaxReconnects"` // per-server reconnect budget, negative means unlimited
}

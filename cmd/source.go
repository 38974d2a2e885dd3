package cmd

import (
	"sync"
	"time"

	"github.com/odyssey-club/aiosource/aio"
	"github.com/odyssey-club/aiosource/auth"
	"github.com/odyssey-club/aiosource/internal/cache"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/network"
	"github.com/odyssey-club/aiosource/query"
	"github.com/odyssey-club/aiosource/thread"
	"github.com/odyssey-club/aiosource/where"
	"github.com/spf13/viper"
)

var session = auth.NewSession()

// history is opened on first use so that path resolution happens after config setup.
var history = sync.OnceValue(func() *query.History {
	return query.NewHistory(where.Queries())
})

// newSource wires a Source from the current configuration.
func newSource() *aio.Source {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	client := network.NewClient(timeout, viper.GetBool(key.NetworkTLSFingerprint))
	gateway := network.NewGateway(client, session.Header)

	options := []aio.Option{aio.WithSuggester(history())}

	if viper.GetBool(key.CachePersist) {
		lifetime, err := time.ParseDuration(viper.GetString(key.CacheLifetime))
		if err != nil {
			log.Warnf("cache lifetime: %v", err)
			lifetime = 0
		}

		options = append(options,
			aio.WithThreadCache(cache.NewLayered[string, thread.Target](
				cache.NewPersistent[string, thread.Target](where.Threads(), lifetime),
			)),
			aio.WithEpisodeCache(cache.NewLayered[string, []string](
				cache.NewPersistent[string, []string](where.Episodes(), lifetime),
			)),
		)
	}

	return aio.New(gateway, session, aio.SettingsFromViper(), options...)
}

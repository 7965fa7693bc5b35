package infra_status_cache

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver marks which sessions have a recommendation run in flight.
// Markers are claimed with a set-if-absent so two racing requests
// cannot both start a run, and carry a TTL so a crashed run never
// wedges a session.
type Driver struct {
	client    *redis.Client
	namespace string
}

func New(
	client *redis.Client,
	namespace string,
) *Driver {
	return &Driver{
		client:    client,
		namespace: namespace,
	}
}

func (d *Driver) SetIfAbsent(sessionID string, status string, ttl time.Duration) (bool, error) {
	return d.client.SetNX(d.sessionKey(sessionID), status, ttl).Result()
}

func (d *Driver) Delete(sessionID string) error {
	return d.client.Del(d.sessionKey(sessionID)).Err()
}

func (d *Driver) sessionKey(sessionID string) string {
	if d.namespace != "" {
		return d.namespace + ":" + sessionID
	}
	return sessionID
}

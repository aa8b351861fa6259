// Package jointstate defines Config, the immutable joint configuration of
// every agent's vertex at one synchronous timestep, and its content-based
// fingerprint used as the sole EXPLORED deduplication key.
package jointstate

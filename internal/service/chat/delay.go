package chat

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultMinReplyDelay = time.Second
	DefaultMaxReplyDelay = 2 * time.Second
)

// UniformDelay returns a generator drawing delays uniformly from [min, max].
func UniformDelay(min, max time.Duration) func() time.Duration {
	if max <= min {
		return func() time.Duration { return min }
	}
	span := max - min
	return func() time.Duration {
		return min + rand.N(span+1)
	}
}

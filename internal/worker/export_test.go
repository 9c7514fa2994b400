package worker

import (
	"context"
	"time"
)

func (p *Poster) SetPacing(sleep func(context.Context, time.Duration) error, jitter func(int64) int64) {
	p.sleep = sleep
	p.jitter = jitter
}

package model

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestShowIsPast(t *testing.T) {
    now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
    tests := []struct {
        name  string
        start time.Time
        want  bool
    }{
        {"before now", now.Add(-time.Hour), true},
        {"exactly now", now, true},
        {"after now", now.Add(time.Second), false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            assert.Equal(t, tt.want, Show{StartTime: tt.start}.IsPast(now))
        })
    }
}

//go:build !linux && !darwin && !windows

package adapter

import (
	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

func newPlatformAdapter() (state.Adapter, string, error) {
	return nil, "", errors.ErrUnsupportedPlatform
}

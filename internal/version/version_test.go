package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo("2018-11-14")
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "2018-11-14", info.APIVersion)
}

func TestGetVersionDefaultsToDev(t *testing.T) {
	prev := Version
	defer func() { Version = prev }()

	Version = ""
	assert.Equal(t, "dev", GetVersion())

	Version = "v0.3.0"
	assert.Equal(t, "v0.3.0", GetVersion())
}

package logging

import (
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNewWritesDatedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger, closer, err := New(fsys)
	require.NoError(t, err)

	logger.WithField("op", "click").Info("clicked element")
	require.NoError(t, closer.Close())

	name := fmt.Sprintf("%s/log%s.txt", Dir, time.Now().Format("2006-01-02"))
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	require.Contains(t, string(data), "clicked element")
	require.Contains(t, string(data), "op=click")
}

func TestNewAppends(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, msg := range []string{"first run", "second run"} {
		logger, closer, err := New(fsys)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closer.Close())
	}

	name := fmt.Sprintf("%s/log%s.txt", Dir, time.Now().Format("2006-01-02"))
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	require.Contains(t, string(data), "first run")
	require.Contains(t, string(data), "second run")
}

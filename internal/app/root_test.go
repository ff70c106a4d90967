package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "English, Persian, Pashto")

	for _, name := range []string{"serve", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("port"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("host"))
}

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hofa/domain"
)

func TestGetChainDisplayName(t *testing.T) {
	name, err := GetChainDisplayName(137)
	require.NoError(t, err)
	require.Equal(t, "polygon", name)

	_, err = GetChainDisplayName(999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

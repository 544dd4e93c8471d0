package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecIssueAndVerify(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Issue()
	require.NoError(t, err)
	require.True(t, codec.Verify(token))
}

func TestCodecTokensAreUnique(t *testing.T) {
	codec := NewCodec("test-secret")

	a, err := codec.Issue()
	require.NoError(t, err)
	b, err := codec.Issue()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Issue()
	require.NoError(t, err)

	random, sig, _ := strings.Cut(token, ".")
	tampered := random[:len(random)-1] + "A" + "." + sig
	if tampered == token {
		tampered = random[:len(random)-1] + "B" + "." + sig
	}

	require.False(t, codec.Verify(tampered))
}

func TestCodecRejectsForeignSecret(t *testing.T) {
	token, err := NewCodec("secret-one").Issue()
	require.NoError(t, err)

	require.False(t, NewCodec("secret-two").Verify(token))
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, token := range []string{"", ".", "no-separator", "a.b", ".sig"} {
		require.False(t, codec.Verify(token), "token %q", token)
	}
}

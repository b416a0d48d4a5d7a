package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Nguyễn  ", "nguyen"},
		{"ACME Corp", "acme corp"},
		{"", ""},
		{"Trường", "truong"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizeQuery(tt.in), tt.in)
	}
}

func TestSuggestClientsMatchesDiacritics(t *testing.T) {
	clients := []string{"Nguyễn Văn A", "Acme Corp", "Globex"}

	suggestions := SuggestClients(clients, "nguyen van a", 5)

	require.NotEmpty(t, suggestions)
	require.Equal(t, "Nguyễn Văn A", suggestions[0].Name)
}

func TestSuggestClientsRespectsLimit(t *testing.T) {
	clients := []string{"Acme One", "Acme Two", "Acme Three", "Acme Four"}

	suggestions := SuggestClients(clients, "acme", 2)

	require.LessOrEqual(t, len(suggestions), 2)
}

func TestSuggestClientsEmptyQuery(t *testing.T) {
	suggestions := SuggestClients([]string{"Acme"}, "   ", 5)
	require.Empty(t, suggestions)
}

func TestSuggestClientsNoClients(t *testing.T) {
	suggestions := SuggestClients(nil, "acme", 5)
	require.Empty(t, suggestions)
}

func TestSimilarityBounds(t *testing.T) {
	require.Equal(t, 1.0, similarity("acme", "acme"))
	require.Equal(t, 1.0, similarity("", ""))
	require.Less(t, similarity("acme", "globex"), 0.3)
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usersvc/internal/client/api"
)

// printEnvelope renders an API response for the user: the HTTP status plus
// the pretty-printed envelope.
func printEnvelope(env *api.Envelope, status int) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("\nRespuesta de la API (HTTP %d):", status))
	printlnFn(strings.Repeat("-", 30))
	printlnFn(string(data))
	printlnFn(strings.Repeat("-", 30))
	return nil
}
